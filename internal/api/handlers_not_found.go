package api

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) NotFound(c *fiber.Ctx) error {
	if strings.HasPrefix(c.Path(), "/api/") || acceptsJSON(c) {
		return apiError(c, fiber.StatusNotFound, "not found")
	}

	primaryPath, primaryLabel := "/login", "Sign in"
	if handler.optionalSessionUser(c) != nil {
		primaryPath, primaryLabel = "/", "Back to dashboard"
	}

	c.Status(fiber.StatusNotFound)
	return handler.render(c, "not_found", fiber.Map{
		"Title":        pageTitle("Page not found"),
		"PrimaryPath":  primaryPath,
		"PrimaryLabel": primaryLabel,
	})
}
