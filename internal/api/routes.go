package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")
	api.Get("/data", handler.GetData)

	days := api.Group("/days")
	days.Get("", handler.GetDays)
	days.Get("/:date", handler.GetDay)
	days.Post("/:date", handler.UpsertDay)
	days.Delete("/:date", handler.DeleteDay)

	stats := api.Group("/stats")
	stats.Get("/overview", handler.GetStatsOverview)

	profiles := api.Group("/profiles")
	profiles.Get("", handler.GetProfiles)
	profiles.Post("", handler.CreateProfile)
	profiles.Post("/:id/activate", handler.ActivateProfile)
	profiles.Delete("/:id", handler.DeleteProfile)

	settings := api.Group("/settings")
	settings.Post("/theme", handler.UpdateTheme)
	settings.Post("/complete-onboarding", handler.CompleteOnboarding)
	settings.Post("/clear-data", handler.ClearAllData)

	export := api.Group("/export")
	export.Get("/json", handler.ExportJSON)

	api.Post("/import", handler.ImportJSON)
}
