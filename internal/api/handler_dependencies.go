package api

import (
	"github.com/fittrackhq/fittrack/internal/db"
	"github.com/fittrackhq/fittrack/internal/services"
	"gorm.io/gorm"
)

func (handler *Handler) withDependencies(database *gorm.DB) *Handler {
	handler.repositories = db.NewRepositories(database)
	handler.authService = services.NewAuthService(handler.repositories.Users)
	handler.habitService = services.NewHabitService(handler.repositories.Habits)
	handler.achievementService = services.NewAchievementService(
		handler.repositories.Achievements,
		handler.repositories.Habits,
		handler.repositories.Progress,
		handler.location,
	)
	handler.progressService = services.NewProgressService(
		handler.repositories.Progress,
		handler.repositories.Habits,
		handler.achievementService,
		handler.location,
	)
	handler.statsService = services.NewStatsService(
		handler.repositories.Habits,
		handler.repositories.Progress,
		handler.achievementService,
	)
	return handler
}
