package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
)

func (handler *Handler) ListGoals(c *fiber.Ctx) error {
	goals, err := handler.goals.Goals()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(goals)
}

func (handler *Handler) SaveGoal(c *fiber.Ctx) error {
	goal := models.Goal{}
	if err := c.BodyParser(&goal); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.goals.SaveGoal(&goal); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(goal)
}

func (handler *Handler) ToggleGoal(c *fiber.Ctx) error {
	if err := handler.goals.ToggleGoal(c.Params("id")); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) ListGoalCategories(c *fiber.Ctx) error {
	categories, err := handler.goals.Categories()
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(categories)
}

func (handler *Handler) SaveGoalCategory(c *fiber.Ctx) error {
	category := models.GoalCategory{}
	if err := c.BodyParser(&category); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}
	if err := handler.goals.SaveCategory(&category); err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(category)
}
