package api

import (
	"bytes"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (handler *Handler) render(c *fiber.Ctx, name string, data fiber.Map) error {
	tmpl, ok := handler.templates[name]
	if !ok {
		return c.Status(fiber.StatusInternalServerError).SendString("template not found")
	}
	if data == nil {
		data = fiber.Map{}
	}
	if _, exists := data["CurrentUser"]; !exists {
		if user, ok := currentUser(c); ok {
			data["CurrentUser"] = user
		}
	}
	data["CurrentPath"] = c.Path()

	var output bytes.Buffer
	if err := tmpl.ExecuteTemplate(&output, "base", data); err != nil {
		handler.log.Error("render template", zap.String("template", name), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).SendString("failed to render template")
	}
	c.Type("html", "utf-8")
	return c.Send(output.Bytes())
}

func zapFields(c *fiber.Ctx, err error) []zap.Field {
	fields := []zap.Field{
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
	}
	if userID := currentUserID(c); userID != 0 {
		fields = append(fields, zap.Uint("user_id", userID))
	}
	if requestID, ok := c.Locals("request_id").(string); ok {
		fields = append(fields, zap.String("request_id", requestID))
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	return fields
}
