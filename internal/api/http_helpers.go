package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/models"
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

// respondServiceError maps validation failures to 400 with the field-specific
// message; everything else is an infrastructure error the caller may retry.
func respondServiceError(c *fiber.Ctx, err error) error {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		return apiError(c, fiber.StatusBadRequest, validation.Error())
	}
	if errors.Is(err, store.ErrInvalidImportPayload) {
		return apiError(c, fiber.StatusBadRequest, err.Error())
	}
	return apiError(c, fiber.StatusInternalServerError, "operation failed")
}

func (handler *Handler) today() models.Date {
	return models.DateOf(time.Now().In(handler.location))
}

func (handler *Handler) dateQuery(c *fiber.Ctx, name string) (models.Date, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return handler.today(), nil
	}
	return models.ParseDate(raw)
}

func dateParam(c *fiber.Ctx, name string) (models.Date, error) {
	return models.ParseDate(c.Params(name))
}
