package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) ListAchievements(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	views, err := handler.achievementService.ListForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load achievements")
	}
	return c.JSON(fiber.Map{"achievements": achievementViewListResponse(views)})
}

func (handler *Handler) ListUnlockedAchievements(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.achievementService.SummaryForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load achievements")
	}
	return c.JSON(fiber.Map{"achievements": achievementViewListResponse(summary.Unlocked)})
}

func (handler *Handler) AchievementSummary(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	summary, err := handler.achievementService.SummaryForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load achievements")
	}
	return c.JSON(fiber.Map{
		"unlocked":        achievementViewListResponse(summary.Unlocked),
		"locked":          achievementViewListResponse(summary.Locked),
		"total_points":    summary.TotalPoints,
		"completion_rate": summary.CompletionRate,
	})
}

// CheckAchievements forces an evaluation pass outside the usual
// progress-log trigger, useful after backfills.
func (handler *Handler) CheckAchievements(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	unlocked, err := handler.achievementService.EvaluateUser(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to evaluate achievements")
	}
	return c.JSON(fiber.Map{"newly_unlocked": unlockedResponse(unlocked)})
}
