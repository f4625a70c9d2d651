package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/dto"
	"github.com/AnthoniusHendriyanto/membership-service/internal/membership/service"
)

type RoleHandler struct {
	provider *service.MembershipProvider
}

func NewRoleHandler(provider *service.MembershipProvider) *RoleHandler {
	return &RoleHandler{provider: provider}
}

func (h *RoleHandler) CreateRole(c *fiber.Ctx) error {
	var input dto.CreateRoleInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.provider.CreateRole(c.Context(), input.RoleName); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusCreated)
}

func (h *RoleHandler) DeleteRole(c *fiber.Ctx) error {
	err := h.provider.DeleteRole(c.Context(), c.Params("role"), c.QueryBool("throw_on_populated", true))
	return writeError(c, err)
}

func (h *RoleHandler) GetAllRoles(c *fiber.Ctx) error {
	roles, err := h.provider.GetAllRoles(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"roles": roles})
}

func (h *RoleHandler) RoleExists(c *fiber.Ctx) error {
	exists, err := h.provider.RoleExists(c.Context(), c.Params("role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"exists": exists})
}

func (h *RoleHandler) AddUsersToRoles(c *fiber.Ctx) error {
	var input dto.RoleAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.provider.AddUsersToRoles(c.Context(), input.UserNames, input.RoleNames); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RoleHandler) RemoveUsersFromRoles(c *fiber.Ctx) error {
	var input dto.RoleAssignmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if err := h.provider.RemoveUsersFromRoles(c.Context(), input.UserNames, input.RoleNames); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *RoleHandler) GetRolesForUser(c *fiber.Ctx) error {
	roles, err := h.provider.GetRolesForUser(c.Context(), c.Params("username"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"roles": roles})
}

func (h *RoleHandler) GetUsersInRole(c *fiber.Ctx) error {
	users, err := h.provider.GetUsersInRole(c.Context(), c.Params("role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}

func (h *RoleHandler) FindUsersInRole(c *fiber.Ctx) error {
	users, err := h.provider.FindUsersInRole(c.Context(), c.Params("role"), c.Query("match"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"users": users})
}

func (h *RoleHandler) IsUserInRole(c *fiber.Ctx) error {
	inRole, err := h.provider.IsUserInRole(c.Context(), c.Params("username"), c.Params("role"))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"in_role": inRole})
}
