package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ExportData(c *fiber.Ctx) error {
	payload, err := handler.store.ExportAll()
	if err != nil {
		return respondServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="stride-export.json"`)
	return c.Send(payload)
}

// ImportData replaces the whole database with the uploaded snapshot. The
// payload is validated in full before anything is touched, so a rejected
// import leaves existing data intact.
func (handler *Handler) ImportData(c *fiber.Ctx) error {
	if err := handler.store.ImportAll(c.Body()); err != nil {
		return respondServiceError(c, err)
	}
	if err := handler.settings.EnsurePassphrase(); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
