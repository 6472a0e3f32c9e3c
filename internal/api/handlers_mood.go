package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListMoodLogs(c *fiber.Ctx) error {
	logs, err := handler.moods.Logs()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) SaveMoodLog(c *fiber.Ctx) error {
	input := moodInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	date := handler.today()
	if input.Date != "" {
		parsed, err := models.ParseDate(input.Date)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid date")
		}
		date = parsed
	}

	if err := handler.moods.SaveMood(date, input.Scale, input.Notes); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
