package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/favicon.ico", sendNoContent)

	app.Get("/", handler.ShowHome)
	app.Get("/login", handler.ShowLoginPage)
	app.Get("/register", handler.ShowRegisterPage)
	app.Post("/logout", handler.Logout)

	app.Get("/vitals", handler.AuthRequired, handler.ShowVitalsPage)
	app.Get("/risk", handler.AuthRequired, handler.ShowRiskPage)
	app.Get("/insights", handler.AuthRequired, handler.ShowInsightsPage)
	app.Get("/alerts", handler.AuthRequired, handler.ShowAlertsPage)
	app.Get("/profile", handler.AuthRequired, handler.ShowProfilePage)
	app.Get("/medication", handler.AuthRequired, handler.ShowMedicationPage)
	app.Get("/health-trends", handler.AuthRequired, handler.ShowHealthTrendsPage)
	app.Get("/health_trends", handler.AuthRequired, handler.ShowHealthTrendsPage)
	app.Get("/settings", handler.AuthRequired, handler.ShowSettingsPage)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
	profile.Post("", handler.UpdateProfile)

	vitals := api.Group("/health", handler.AuthRequired)
	vitals.Post("/log", handler.LogVitals)
	vitals.Get("/logs", handler.GetVitalsLogs)
	vitals.Get("/latest", handler.GetLatestVitals)
	vitals.Get("/risk", handler.GetRisk)
	vitals.Get("/trends", handler.GetVitalsTrends)
	vitals.Get("/export/summary", handler.ExportSummary)
	vitals.Get("/export/csv", handler.ExportCSV)
	vitals.Get("/export/json", handler.ExportJSON)

	api.Get("/insights", handler.AuthRequired, handler.GetInsights)

	alerts := api.Group("/alerts", handler.AuthRequired)
	alerts.Get("", handler.GetAlerts)
	alerts.Get("/thresholds", handler.GetThresholds)
	alerts.Put("/thresholds", handler.UpdateThresholds)
	alerts.Post("/thresholds", handler.UpdateThresholds)
	alerts.Post("/check", handler.CheckAlerts)
	alerts.Post("/manual", handler.CreateManualAlert)
	alerts.Post("/:id/read", handler.MarkAlertRead)
	alerts.Put("/:id/read", handler.MarkAlertRead)

	medication := api.Group("/medication", handler.AuthRequired)
	medication.Get("", handler.GetMedications)
	medication.Post("", handler.AddMedication)
	medication.Delete("/:id", handler.DeleteMedication)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/name", handler.UpdateDisplayName)
	settings.Post("/change-password", handler.ChangePassword)
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
