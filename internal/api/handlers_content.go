package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListPrinciples(c *fiber.Ctx) error {
	principles, err := handler.principles.Principles()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(principles)
}

func (handler *Handler) SavePrinciple(c *fiber.Ctx) error {
	input := principleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.principles.SavePrinciple(input.Text); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListVisualizations(c *fiber.Ctx) error {
	items, err := handler.visualizations.Visualizations()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(items)
}

func (handler *Handler) SaveVisualization(c *fiber.Ctx) error {
	item := models.VisualizationItem{}
	if err := c.BodyParser(&item); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.visualizations.SaveVisualization(&item); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}

// GenerateVisualization returns a generated snapshot without persisting it;
// the client saves it through SaveVisualization once the user accepts it.
func (handler *Handler) GenerateVisualization(c *fiber.Ctx) error {
	item, err := handler.visualizations.GenerateSnapshot(c.Context())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(item)
}
