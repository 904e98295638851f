package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/services"
)

func (handler *Handler) GetProfile(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	profile, found, err := handler.profileService.Get(user.ID)
	if err != nil {
		return handler.internalError(c, "failed to load profile", err)
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(newProfileView(profile, user.Name))
}

func (handler *Handler) UpdateProfile(c *fiber.Ctx) error {
	input := services.ProfileInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	result, err := handler.profileService.Update(currentUserID(c), input)
	switch {
	case errors.Is(err, health.ErrUnknownActivityLevel):
		return apiError(c, fiber.StatusBadRequest, "activity level must be sedentary, moderate or active")
	case errors.Is(err, services.ErrProfileAgeInvalid),
		errors.Is(err, services.ErrProfileHeightInvalid),
		errors.Is(err, services.ErrProfileWeightInvalid),
		errors.Is(err, services.ErrProfileBMIInvalid):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case err != nil:
		return handler.internalError(c, "failed to update profile", err)
	}

	return c.JSON(fiber.Map{
		"msg":             "Profile updated successfully",
		"bmi":             result.BMI,
		"recommendations": result.Recommendations,
	})
}
