package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/domain"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/dto"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/service"
)

type MembershipHandler struct {
	provider     *service.MembershipProvider
	tokenService *TokenService
}

func NewMembershipHandler(provider *service.MembershipProvider, tokenService *TokenService) *MembershipHandler {
	return &MembershipHandler{provider: provider, tokenService: tokenService}
}

func (h *MembershipHandler) CreateUser(c *fiber.Ctx) error {
	var input dto.CreateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	user, err := h.provider.CreateUser(c.Context(), domain.CreateUserRequest{
		UserName:         input.UserName,
		Email:            input.Email,
		PasswordQuestion: input.PasswordQuestion,
		IsApproved:       input.IsApproved,
	}, input.Password, input.PasswordAnswer)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UserOutputFromDomain(user))
}

func (h *MembershipHandler) ValidateUser(c *fiber.Ctx) error {
	var input dto.ValidateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	ok, err := h.provider.ValidateUser(c.Context(), input.UserName, input.Password)
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		// The same body regardless of whether the account exists.
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})
	}

	user, err := h.provider.GetUser(c.Context(), input.UserName, false)
	if err != nil {
		return writeError(c, err)
	}

	token, expiresAt, err := h.tokenService.Generate(user.ID, user.UserName)
	if err != nil {
		return writeError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"access_token": token,
		"expires_at":   expiresAt,
	})
}

func (h *MembershipHandler) ChangePassword(c *fiber.Ctx) error {
	var input dto.ChangePasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.provider.ChangePassword(c.Context(), c.Params("username"), input.OldPassword, input.NewPassword)
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MembershipHandler) ResetPassword(c *fiber.Ctx) error {
	var input dto.ResetPasswordInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	newPassword, err := h.provider.ResetPassword(c.Context(), c.Params("username"), input.PasswordAnswer)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"password": newPassword})
}

func (h *MembershipHandler) GetPassword(c *fiber.Ctx) error {
	password, err := h.provider.GetPassword(c.Context(), c.Params("username"), c.Query("answer"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"password": password})
}

func (h *MembershipHandler) ChangeQuestionAnswer(c *fiber.Ctx) error {
	var input dto.ChangeQuestionAnswerInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.provider.ChangePasswordQuestionAndAnswer(c.Context(), c.Params("username"),
		input.Password, input.PasswordQuestion, input.PasswordAnswer)
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MembershipHandler) UnlockUser(c *fiber.Ctx) error {
	if err := h.provider.UnlockUser(c.Context(), c.Params("username")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MembershipHandler) GetUser(c *fiber.Ctx) error {
	updateActivity := c.QueryBool("update_activity", false)

	user, err := h.provider.GetUser(c.Context(), c.Params("username"), updateActivity)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.UserOutputFromDomain(user))
}

func (h *MembershipHandler) GetUserByID(c *fiber.Ctx) error {
	user, err := h.provider.GetUserByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(dto.UserOutputFromDomain(user))
}

func (h *MembershipHandler) GetUserNameByEmail(c *fiber.Ctx) error {
	username, err := h.provider.GetUserNameByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"username": username})
}

func (h *MembershipHandler) UpdateUser(c *fiber.Ctx) error {
	var input dto.UpdateUserInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	err := h.provider.UpdateUser(c.Context(), c.Params("username"), input.Email, input.Comment, input.IsApproved)
	if err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MembershipHandler) DeleteUser(c *fiber.Ctx) error {
	if err := h.provider.DeleteUser(c.Context(), c.Params("username")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *MembershipHandler) GetAllUsers(c *fiber.Ctx) error {
	pageIndex, err := strconv.Atoi(c.Query("page_index", "0"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid page_index"})
	}
	pageSize, err := strconv.Atoi(c.Query("page_size", "25"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid page_size"})
	}

	users, total, err := h.provider.GetAllUsers(c.Context(), pageIndex, pageSize)
	if err != nil {
		return writeError(c, err)
	}

	out := dto.PagedUsersOutput{
		Users:      make([]dto.UserOutput, 0, len(users)),
		TotalCount: total,
	}
	for i := range users {
		out.Users = append(out.Users, dto.UserOutputFromDomain(&users[i]))
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (h *MembershipHandler) FindUsersByName(c *fiber.Ctx) error {
	_, _, err := h.provider.FindUsersByName(c.Context(), c.Query("match"), 0, 0)
	return writeError(c, err)
}

func (h *MembershipHandler) FindUsersByEmail(c *fiber.Ctx) error {
	_, _, err := h.provider.FindUsersByEmail(c.Context(), c.Query("match"), 0, 0)
	return writeError(c, err)
}

func (h *MembershipHandler) GetNumberOfUsersOnline(c *fiber.Ctx) error {
	_, err := h.provider.GetNumberOfUsersOnline(c.Context())
	return writeError(c, err)
}
