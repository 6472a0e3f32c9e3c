package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListTasks(c *fiber.Ctx) error {
	tasks, err := handler.tasks.Tasks()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(tasks)
}

func (handler *Handler) SaveTask(c *fiber.Ctx) error {
	task := models.Task{}
	if err := c.BodyParser(&task); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.tasks.SaveTask(&task); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(task)
}

func (handler *Handler) TaskLogs(c *fiber.Ctx) error {
	from, err := handler.dateQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.dateQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	logs, err := handler.tasks.LogsForRange(from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) UpsertTaskHours(c *fiber.Ctx) error {
	date, err := dateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	input := hoursInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.tasks.UpsertHours(c.Params("id"), date, input.Hours, input.Ignored); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}
