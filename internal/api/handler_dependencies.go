package api

import (
	"github.com/stridehq/stride/internal/services"
	"github.com/stridehq/stride/internal/store"
	"github.com/stridehq/stride/internal/textgen"
)

func (handler *Handler) buildServices(generator textgen.Generator) {
	if generator == nil {
		generator = textgen.Disabled{}
	}

	collections := store.NewCollections(handler.store)

	handler.routines = services.NewRoutineService(collections.Routines, collections.RoutineLogs)
	handler.tasks = services.NewTaskService(collections.Tasks, collections.TaskLogs)
	handler.actions = services.NewActionService(collections.Actions)
	handler.goals = services.NewGoalService(collections.Goals, collections.GoalCategories)
	handler.moods = services.NewMoodService(collections.MoodLogs)
	handler.principles = services.NewPrincipleService(collections.LifePrinciples)
	handler.settings = services.NewSettingsService(collections.Settings)
	handler.visualizations = services.NewVisualizationService(collections.Visualizations, handler.goals, handler.moods, generator)
	handler.metrics = services.NewMetricsService(handler.routines, handler.tasks, handler.moods)
	handler.notifications = services.NewNotificationService(handler.actions, handler.routines)
}
