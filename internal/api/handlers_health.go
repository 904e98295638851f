package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/health"
)

// parseRawReading reads JSON bodies as typed values and form bodies as strings.
func parseRawReading(c *fiber.Ctx) (health.RawReading, error) {
	if isJSONBody(c) {
		raw := health.RawReading{}
		if err := c.BodyParser(&raw); err != nil {
			return health.RawReading{}, err
		}
		return raw, nil
	}
	return health.RawReading{
		HeartRate:  c.FormValue("heart_rate"),
		Systolic:   c.FormValue("bp_systolic"),
		Diastolic:  c.FormValue("bp_diastolic"),
		BloodSugar: c.FormValue("blood_sugar"),
	}, nil
}

func (handler *Handler) LogVitals(c *fiber.Ctx) error {
	raw, err := parseRawReading(c)
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input formatting")
	}

	logged, err := handler.vitalsService.Log(currentUserID(c), raw)
	var validationErr *health.ValidationError
	if errors.As(err, &validationErr) {
		return apiError(c, fiber.StatusBadRequest, validationErr.Message)
	}
	if err != nil {
		return handler.internalError(c, "failed to store vitals", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"msg":    "Logged successfully",
		"alerts": alertMessages(logged.Alerts),
	})
}

func (handler *Handler) GetVitalsLogs(c *fiber.Ctx) error {
	entries, err := handler.vitalsService.Recent(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load vitals", err)
	}
	return c.JSON(newVitalsViews(entries))
}

func (handler *Handler) GetLatestVitals(c *fiber.Ctx) error {
	latest, found, err := handler.vitalsService.Latest(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load latest vitals", err)
	}
	if !found {
		return c.JSON(fiber.Map{})
	}
	return c.JSON(newLatestVitalsView(latest))
}

func (handler *Handler) GetRisk(c *fiber.Ctx) error {
	assessment, err := handler.riskService.Assess(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to evaluate risk", err)
	}
	return c.JSON(newRiskView(assessment))
}

func (handler *Handler) GetVitalsTrends(c *fiber.Ctx) error {
	trend, err := handler.vitalsService.Trends(currentUserID(c), c.QueryInt("days", 0))
	if err != nil {
		return handler.internalError(c, "failed to load trends", err)
	}
	return c.JSON(fiber.Map{
		"days":     trend.Days,
		"from":     trend.From,
		"readings": newVitalsViews(trend.Readings),
		"summary":  trend.Summary,
	})
}

func (handler *Handler) GetInsights(c *fiber.Ctx) error {
	report, err := handler.riskService.Insights(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to generate insights", err)
	}
	return c.JSON(fiber.Map{
		"insights":     report.Insights,
		"risk_data":    newRiskView(report.Risk),
		"generated_at": report.GeneratedAt,
	})
}
