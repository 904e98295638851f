package api

import (
	"github.com/gofiber/fiber/v2"
)

const appTitle = "Wellnest"

func pageTitle(section string) string {
	if section == "" {
		return appTitle
	}
	return appTitle + " | " + section
}

// ShowHome renders the dashboard for signed-in users and the landing page otherwise.
func (handler *Handler) ShowHome(c *fiber.Ctx) error {
	user := handler.optionalSessionUser(c)
	if user == nil {
		return handler.render(c, "landing", fiber.Map{"Title": pageTitle("")})
	}

	latest, hasLatest, err := handler.vitalsService.Latest(user.ID)
	if err != nil {
		return handler.internalError(c, "failed to load dashboard", err)
	}
	assessment, err := handler.riskService.Assess(user.ID)
	if err != nil {
		return handler.internalError(c, "failed to load dashboard", err)
	}
	feed, err := handler.alertService.List(user.ID)
	if err != nil {
		return handler.internalError(c, "failed to load dashboard", err)
	}

	data := fiber.Map{
		"Title":        pageTitle("Dashboard"),
		"Risk":         newRiskView(assessment),
		"UnreadAlerts": newAlertViews(feed.Unread),
	}
	if hasLatest {
		data["Latest"] = newLatestVitalsView(latest)
	}
	return handler.render(c, "dashboard", data)
}

func (handler *Handler) ShowLoginPage(c *fiber.Ctx) error {
	if handler.optionalSessionUser(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "login", fiber.Map{"Title": pageTitle("Sign in")})
}

func (handler *Handler) ShowRegisterPage(c *fiber.Ctx) error {
	if handler.optionalSessionUser(c) != nil {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return handler.render(c, "register", fiber.Map{"Title": pageTitle("Create account")})
}

func (handler *Handler) ShowVitalsPage(c *fiber.Ctx) error {
	entries, err := handler.vitalsService.Recent(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load vitals", err)
	}
	return handler.render(c, "vitals", fiber.Map{
		"Title":   pageTitle("Vitals"),
		"Entries": newVitalsViews(entries),
	})
}

func (handler *Handler) ShowRiskPage(c *fiber.Ctx) error {
	assessment, err := handler.riskService.Assess(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to evaluate risk", err)
	}
	return handler.render(c, "risk", fiber.Map{
		"Title": pageTitle("Risk"),
		"Risk":  newRiskView(assessment),
	})
}

func (handler *Handler) ShowInsightsPage(c *fiber.Ctx) error {
	report, err := handler.riskService.Insights(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to generate insights", err)
	}
	return handler.render(c, "insights", fiber.Map{
		"Title":       pageTitle("Insights"),
		"Insights":    report.Insights,
		"Risk":        newRiskView(report.Risk),
		"GeneratedAt": report.GeneratedAt,
	})
}

func (handler *Handler) ShowAlertsPage(c *fiber.Ctx) error {
	userID := currentUserID(c)
	feed, err := handler.alertService.List(userID)
	if err != nil {
		return handler.internalError(c, "failed to load alerts", err)
	}
	thresholds, err := handler.alertService.Thresholds(userID)
	if err != nil {
		return handler.internalError(c, "failed to load thresholds", err)
	}
	return handler.render(c, "alerts", fiber.Map{
		"Title":      pageTitle("Alerts"),
		"Unread":     newAlertViews(feed.Unread),
		"Read":       newAlertViews(feed.Read),
		"Thresholds": thresholds,
	})
}

func (handler *Handler) ShowProfilePage(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	profile, found, err := handler.profileService.Get(user.ID)
	if err != nil {
		return handler.internalError(c, "failed to load profile", err)
	}
	data := fiber.Map{"Title": pageTitle("Profile")}
	if found {
		data["Profile"] = newProfileView(profile, user.Name)
	} else {
		data["Profile"] = profileView{FullName: user.Name, RecommendedExercises: []string{}}
	}
	return handler.render(c, "profile", data)
}

func (handler *Handler) ShowMedicationPage(c *fiber.Ctx) error {
	medications, err := handler.medicationService.List(currentUserID(c))
	if err != nil {
		return handler.internalError(c, "failed to load medications", err)
	}
	return handler.render(c, "medication", fiber.Map{
		"Title":       pageTitle("Medication"),
		"Medications": newMedicationViews(medications),
	})
}

func (handler *Handler) ShowHealthTrendsPage(c *fiber.Ctx) error {
	trend, err := handler.vitalsService.Trends(currentUserID(c), c.QueryInt("days", 0))
	if err != nil {
		return handler.internalError(c, "failed to load trends", err)
	}
	return handler.render(c, "health_trends", fiber.Map{
		"Title":    pageTitle("Health trends"),
		"Days":     trend.Days,
		"From":     trend.From,
		"Readings": newVitalsViews(trend.Readings),
		"Summary":  trend.Summary,
	})
}

func (handler *Handler) ShowSettingsPage(c *fiber.Ctx) error {
	return handler.render(c, "settings", fiber.Map{"Title": pageTitle("Settings")})
}
