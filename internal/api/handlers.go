package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
	"github.com/stridehq/stride/internal/textgen"
)

type Handler struct {
	store        *store.Store
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	routines       *services.RoutineService
	tasks          *services.TaskService
	actions        *services.ActionService
	goals          *services.GoalService
	moods          *services.MoodService
	principles     *services.PrincipleService
	visualizations *services.VisualizationService
	settings       *services.SettingsService
	metrics        *services.MetricsService
	notifications  *services.NotificationService
}

func NewHandler(recordStore *store.Store, secret string, location *time.Location, generator textgen.Generator, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	handler := &Handler{
		store:        recordStore,
		secretKey:    []byte(secret),
		location:     location,
		cookieSecure: cookieSecure,
	}
	handler.buildServices(generator)
	return handler
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
