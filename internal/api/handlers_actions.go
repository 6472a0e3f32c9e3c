package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListActions(c *fiber.Ctx) error {
	actions, err := handler.actions.Actions()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(actions)
}

func (handler *Handler) SaveAction(c *fiber.Ctx) error {
	item := models.ActionItem{}
	if err := c.BodyParser(&item); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.actions.SaveAction(&item); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}

// ToggleAction flips the done flag; unknown ids succeed as no-ops.
func (handler *Handler) ToggleAction(c *fiber.Ctx) error {
	if err := handler.actions.ToggleDone(c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
