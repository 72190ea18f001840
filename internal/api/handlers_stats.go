package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetStatsOverview(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	overview, err := handler.statsService.BuildOverview(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load overview")
	}

	return c.JSON(fiber.Map{
		"total_habits":          overview.TotalHabits,
		"active_habits":         overview.ActiveHabits,
		"total_completions":     overview.TotalCompletions,
		"current_streak":        overview.CurrentStreak,
		"longest_streak":        overview.LongestStreak,
		"category_counts":       overview.CategoryCounts,
		"achievement_points":    overview.AchievementPoints,
		"achievements_unlocked": overview.AchievementsUnlocked,
	})
}
