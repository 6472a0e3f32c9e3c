package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	routines := api.Group("/routines", handler.AuthRequired)
	routines.Get("", handler.ListRoutines)
	routines.Post("", handler.SaveRoutine)
	routines.Get("/pending", handler.PendingRoutines)
	routines.Get("/logs", handler.RoutineLogs)
	routines.Post("/:id/logs/:date", handler.SetRoutineStatus)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Get("", handler.ListTasks)
	tasks.Post("", handler.SaveTask)
	tasks.Get("/logs", handler.TaskLogs)
	tasks.Post("/:id/logs/:date", handler.UpsertTaskHours)

	actions := api.Group("/actions", handler.AuthRequired)
	actions.Get("", handler.ListActions)
	actions.Post("", handler.SaveAction)
	actions.Post("/:id/toggle", handler.ToggleAction)

	goals := api.Group("/goals", handler.AuthRequired)
	goals.Get("/categories", handler.ListGoalCategories)
	goals.Post("/categories", handler.SaveGoalCategory)
	goals.Get("", handler.ListGoals)
	goals.Post("", handler.SaveGoal)
	goals.Post("/:id/toggle", handler.ToggleGoal)

	mood := api.Group("/mood", handler.AuthRequired)
	mood.Get("", handler.ListMoodLogs)
	mood.Post("", handler.SaveMoodLog)

	principles := api.Group("/principles", handler.AuthRequired)
	principles.Get("", handler.ListPrinciples)
	principles.Post("", handler.SavePrinciple)

	visualizations := api.Group("/visualizations", handler.AuthRequired)
	visualizations.Get("", handler.ListVisualizations)
	visualizations.Post("", handler.SaveVisualization)
	visualizations.Post("/generate", handler.GenerateVisualization)

	api.Get("/metrics/dashboard", handler.AuthRequired, handler.DashboardMetrics)
	api.Get("/notifications", handler.AuthRequired, handler.ListNotifications)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Get("", handler.GetSettings)
	settings.Post("/profile", handler.SaveProfile)
	settings.Post("/theme", handler.SaveTheme)
	settings.Post("/change-passphrase", handler.ChangePassphrase)
	settings.Post("/clear-data", handler.ClearData)

	api.Get("/export", handler.AuthRequired, handler.ExportData)
	api.Post("/import", handler.AuthRequired, handler.ImportData)
}
