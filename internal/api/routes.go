package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)

	habits := api.Group("/habits", handler.AuthRequired)
	habits.Get("", handler.ListHabits)
	habits.Post("", handler.CreateHabit)
	habits.Get("/:id", handler.GetHabit)
	habits.Put("/:id", handler.UpdateHabit)
	habits.Delete("/:id", handler.DeleteHabit)
	habits.Get("/:id/stats", handler.GetHabitStats)
	habits.Post("/:id/progress", handler.LogProgress)
	habits.Get("/:id/progress", handler.ListProgress)

	achievements := api.Group("/achievements", handler.AuthRequired)
	achievements.Get("", handler.ListAchievements)
	achievements.Get("/unlocked", handler.ListUnlockedAchievements)
	achievements.Get("/summary", handler.AchievementSummary)
	achievements.Post("/check", handler.CheckAchievements)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("/overview", handler.GetStatsOverview)
}
