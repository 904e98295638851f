package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/health"
	"github.com/terraincognita07/wellnest/internal/services"
)

type manualAlertInput struct {
	AlertText string `json:"alert_text" form:"alert_text"`
	Severity  string `json:"severity" form:"severity"`
}

func (handler *Handler) GetThresholds(c *fiber.Ctx) error {
	thresholds, err := handler.alertService.Thresholds(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load thresholds", err)
	}
	return c.JSON(thresholds)
}

func (handler *Handler) UpdateThresholds(c *fiber.Ctx) error {
	patch := health.ThresholdPatch{}
	if err := c.BodyParser(&patch); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	thresholds, err := handler.alertService.UpdateThresholds(currentUserID(c), patch)
	switch {
	case errors.Is(err, health.ErrHeartRateBounds):
		return apiError(c, fiber.StatusBadRequest, "Heart rate min must be less than max")
	case errors.Is(err, health.ErrBloodSugarBounds):
		return apiError(c, fiber.StatusBadRequest, "Blood sugar min must be less than max")
	case err != nil:
		return handler.internalError(c, "failed to update thresholds", err)
	}

	return c.JSON(fiber.Map{
		"msg":        "Thresholds updated successfully",
		"thresholds": thresholds,
	})
}

func (handler *Handler) GetAlerts(c *fiber.Ctx) error {
	feed, err := handler.alertService.List(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load alerts", err)
	}
	return c.JSON(fiber.Map{
		"unread": newAlertViews(feed.Unread),
		"read":   newAlertViews(feed.Read),
	})
}

func (handler *Handler) MarkAlertRead(c *fiber.Ctx) error {
	err := handler.alertService.MarkRead(currentUserID(c), c.Params("id"))
	if errors.Is(err, services.ErrAlertNotFound) {
		return apiError(c, fiber.StatusNotFound, "alert not found")
	}
	if err != nil {
		return handler.internalError(c, "failed to update alert", err)
	}
	return c.JSON(fiber.Map{"msg": "Alert marked as read"})
}

func (handler *Handler) CheckAlerts(c *fiber.Ctx) error {
	events, err := handler.alertService.Check(currentUserID(c))
	if errors.Is(err, services.ErrNoVitals) {
		return apiError(c, fiber.StatusBadRequest, "No vitals data available")
	}
	if err != nil {
		return handler.internalError(c, "failed to check alerts", err)
	}
	return c.JSON(fiber.Map{
		"alerts": events,
		"count":  len(events),
	})
}

func (handler *Handler) CreateManualAlert(c *fiber.Ctx) error {
	input := manualAlertInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	alert, err := handler.alertService.CreateManual(currentUserID(c), input.AlertText, input.Severity)
	switch {
	case errors.Is(err, services.ErrAlertTextRequired):
		return apiError(c, fiber.StatusBadRequest, "Alert text is required")
	case errors.Is(err, health.ErrUnknownSeverity):
		return apiError(c, fiber.StatusBadRequest, "severity must be warning or critical")
	case err != nil:
		return handler.internalError(c, "failed to create alert", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":   "Manual alert created",
		"alert": newAlertView(alert),
	})
}
