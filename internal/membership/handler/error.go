package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	autherror "github.com/AnthoniusHendriyanto/membership-service/internal/errors"
)

// writeError maps the service error taxonomy onto HTTP status codes.
// Credential failures always produce the same opaque 401 body.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case autherror.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case autherror.IsCredential(err):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid credentials"})

	case errors.Is(err, autherror.ErrUserNotFound),
		errors.Is(err, autherror.ErrRoleNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrDuplicateUserName),
		errors.Is(err, autherror.ErrDuplicateEmail),
		errors.Is(err, autherror.ErrDuplicateRole),
		errors.Is(err, autherror.ErrUserAlreadyInRole),
		errors.Is(err, autherror.ErrUserNotInRole):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, autherror.ErrUnsupportedOperation),
		errors.Is(err, autherror.ErrPasswordResetDisabled),
		errors.Is(err, autherror.ErrPasswordRetrievalOff),
		errors.Is(err, autherror.ErrCannotDecodeHashed):
		return c.Status(fiber.StatusNotImplemented).JSON(fiber.Map{"error": err.Error()})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
