package api

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/db"
	"github.com/fittrackhq/fittrack/internal/services"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories       *db.Repositories
	authService        *services.AuthService
	habitService       *services.HabitService
	progressService    *services.ProgressService
	achievementService *services.AchievementService
	statsService       *services.StatsService
}

const defaultAuthTokenTTL = 7 * 24 * time.Hour

func NewHandler(database *gorm.DB, secretKey string, location *time.Location, cookieSecure bool) *Handler {
	if location == nil {
		location = time.UTC
	}
	handler := &Handler{
		db:           database,
		secretKey:    []byte(secretKey),
		location:     location,
		cookieSecure: cookieSecure,
	}
	return handler.withDependencies(database)
}
