package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/services"
)

func (handler *Handler) AddMedication(c *fiber.Ctx) error {
	input := services.MedicationInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	medication, err := handler.medicationService.Add(currentUserID(c), input)
	if errors.Is(err, services.ErrMedicationNameRequired) {
		return apiError(c, fiber.StatusBadRequest, "medication name is required")
	}
	if err != nil {
		return handler.internalError(c, "failed to add medication", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":        "Medication added successfully",
		"medication": newMedicationView(medication),
	})
}

func (handler *Handler) GetMedications(c *fiber.Ctx) error {
	medications, err := handler.medicationService.List(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load medications", err)
	}
	return c.JSON(newMedicationViews(medications))
}

func (handler *Handler) DeleteMedication(c *fiber.Ctx) error {
	medicationID, ok := parseUintParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid medication id")
	}

	err := handler.medicationService.Delete(currentUserID(c), medicationID)
	if errors.Is(err, services.ErrMedicationNotFound) {
		return apiError(c, fiber.StatusNotFound, "medication not found")
	}
	if err != nil {
		return handler.internalError(c, "failed to delete medication", err)
	}
	return c.JSON(fiber.Map{"msg": "Medication deleted"})
}
