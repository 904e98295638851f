package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/services"
)

type displayNameInput struct {
	Name string `json:"name" form:"name"`
}

func (handler *Handler) UpdateDisplayName(c *fiber.Ctx) error {
	input := displayNameInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	name, err := handler.settingsService.UpdateDisplayName(currentUserID(c), input.Name)
	if errors.Is(err, services.ErrSettingsDisplayNameRequired) {
		return apiError(c, fiber.StatusBadRequest, "name is required")
	}
	if err != nil {
		return handler.internalError(c, "failed to update name", err)
	}
	return c.JSON(fiber.Map{"msg": "Name updated", "name": name})
}

func (handler *Handler) ChangePassword(c *fiber.Ctx) error {
	input := services.PasswordChange{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	err := handler.settingsService.ChangePassword(currentUserID(c), input)
	switch {
	case errors.Is(err, services.ErrSettingsPasswordChangeInvalidInput):
		return apiError(c, fiber.StatusBadRequest, "all password fields are required")
	case errors.Is(err, services.ErrSettingsPasswordMismatch):
		return apiError(c, fiber.StatusBadRequest, "new passwords do not match")
	case errors.Is(err, services.ErrSettingsInvalidCurrentPassword):
		return apiError(c, fiber.StatusUnauthorized, "invalid current password")
	case errors.Is(err, services.ErrSettingsNewPasswordMustDiffer):
		return apiError(c, fiber.StatusBadRequest, "new password must differ from the current one")
	case errors.Is(err, services.ErrSettingsWeakPassword):
		return apiError(c, fiber.StatusBadRequest, services.PasswordRequirements)
	case err != nil:
		return handler.internalError(c, "failed to change password", err)
	}
	return c.JSON(fiber.Map{"msg": "Password updated"})
}
