package api

import (
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) DashboardMetrics(c *fiber.Ctx) error {
	date, err := handler.dateQuery(c, "date")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid date")
	}

	metrics, err := handler.metrics.ComputeDashboardMetrics(date)
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(metrics)
}

func (handler *Handler) ListNotifications(c *fiber.Ctx) error {
	notices, err := handler.notifications.Notifications(handler.today())
	if err != nil {
		return respondServiceError(c, err)
	}
	return c.JSON(notices)
}
