package api

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/wellnest/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	exportRange, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	summary, err := handler.exportService.BuildSummary(currentUserID(c), exportRange)
	if err != nil {
		return handler.internalError(c, "failed to fetch vitals", err)
	}
	return c.JSON(summary)
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	exportRange, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	rows, err := handler.exportService.BuildCSVRows(currentUserID(c), exportRange)
	if err != nil {
		return handler.internalError(c, "failed to fetch vitals", err)
	}
	now := time.Now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return handler.internalError(c, "failed to build export", err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return handler.internalError(c, "failed to build export", err)
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	exportRange, rangeError := handler.parseExportRange(c)
	if rangeError != "" {
		return apiError(c, fiber.StatusBadRequest, rangeError)
	}

	entries, err := handler.exportService.BuildJSONEntries(currentUserID(c), exportRange)
	if err != nil {
		return handler.internalError(c, "failed to fetch vitals", err)
	}
	now := time.Now().In(handler.location)

	serialized, err := json.MarshalIndent(fiber.Map{
		"exported_at": now.Format(time.RFC3339),
		"entries":     entries,
	}, "", "  ")
	if err != nil {
		return handler.internalError(c, "failed to build export", err)
	}

	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.Send(serialized)
}

func (handler *Handler) parseExportRange(c *fiber.Ctx) (services.ExportRange, string) {
	exportRange, err := services.ParseExportRange(c.Query("from"), c.Query("to"), handler.location)
	switch {
	case err == nil:
		return exportRange, ""
	case errors.Is(err, services.ErrExportFromDateInvalid):
		return services.ExportRange{}, "invalid from date"
	case errors.Is(err, services.ErrExportToDateInvalid):
		return services.ExportRange{}, "invalid to date"
	default:
		return services.ExportRange{}, "invalid range"
	}
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("wellnest-vitals-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
