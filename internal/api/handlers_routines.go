package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListRoutines(c *fiber.Ctx) error {
	routines, err := handler.routines.Routines()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(routines)
}

func (handler *Handler) SaveRoutine(c *fiber.Ctx) error {
	routine := models.Routine{}
	if err := c.BodyParser(&routine); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.routines.SaveRoutine(&routine); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(routine)
}

func (handler *Handler) RoutineLogs(c *fiber.Ctx) error {
	from, err := handler.dateQuery(c, "from")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid from date")
	}
	to, err := handler.dateQuery(c, "to")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid to date")
	}

	logs, err := handler.routines.LogsForRange(from, to)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(logs)
}

func (handler *Handler) SetRoutineStatus(c *fiber.Ctx) error {
	date, err := dateParam(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}
	input := statusInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	if err := handler.routines.SetStatus(c.Params("id"), date, input.Status); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) PendingRoutines(c *fiber.Ctx) error {
	date, err := handler.dateQuery(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	count, err := handler.routines.PendingCount(date)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"count": count})
}
