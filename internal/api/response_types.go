package api

import (
	"github.com/fittrackhq/fittrack/internal/models"
	"github.com/fittrackhq/fittrack/internal/services"
	"github.com/gofiber/fiber/v2"
)

func userResponse(user models.User) fiber.Map {
	return fiber.Map{
		"id":         user.ID,
		"name":       user.Name,
		"email":      user.Email,
		"created_at": user.CreatedAt,
	}
}

func habitResponse(habit models.Habit) fiber.Map {
	return fiber.Map{
		"id":                habit.ID,
		"name":              habit.Name,
		"description":       habit.Description,
		"category":          habit.Category,
		"target_value":      habit.TargetValue,
		"target_unit":       habit.TargetUnit,
		"color":             habit.Color,
		"is_active":         habit.IsActive,
		"current_streak":    habit.CurrentStreak,
		"longest_streak":    habit.LongestStreak,
		"last_completed_at": habit.LastCompletedAt,
		"created_at":        habit.CreatedAt,
	}
}

func habitListResponse(habits []models.Habit) []fiber.Map {
	items := make([]fiber.Map, 0, len(habits))
	for _, habit := range habits {
		items = append(items, habitResponse(habit))
	}
	return items
}

func progressEntryResponse(entry models.ProgressEntry) fiber.Map {
	return fiber.Map{
		"id":           entry.ID,
		"habit_id":     entry.HabitID,
		"date":         entry.Date.Format("2006-01-02"),
		"value":        entry.Value,
		"target_value": entry.TargetValue,
		"goal_met":     entry.GoalMet,
		"notes":        entry.Notes,
	}
}

func progressListResponse(entries []models.ProgressEntry) []fiber.Map {
	items := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		items = append(items, progressEntryResponse(entry))
	}
	return items
}

func unlockedResponse(unlocked []services.UnlockedAchievement) []fiber.Map {
	items := make([]fiber.Map, 0, len(unlocked))
	for _, achievement := range unlocked {
		items = append(items, fiber.Map{
			"code":        achievement.Definition.Code,
			"title":       achievement.Definition.Title,
			"description": achievement.Definition.Description,
			"icon":        achievement.Definition.Icon,
			"rarity":      achievement.Definition.Rarity,
			"points":      achievement.Definition.Points,
			"unlocked_at": achievement.UnlockedAt,
		})
	}
	return items
}

func achievementViewResponse(view services.AchievementView) fiber.Map {
	return fiber.Map{
		"code":        view.Definition.Code,
		"title":       view.Definition.Title,
		"description": view.Definition.Description,
		"icon":        view.Definition.Icon,
		"type":        view.Definition.Type,
		"category":    view.Definition.Category,
		"rarity":      view.Definition.Rarity,
		"points":      view.Definition.Points,
		"current":     view.Current,
		"target":      view.Target,
		"percentage":  view.Percentage,
		"unlocked":    view.Unlocked,
		"unlocked_at": view.UnlockedAt,
	}
}

func achievementViewListResponse(views []services.AchievementView) []fiber.Map {
	items := make([]fiber.Map, 0, len(views))
	for _, view := range views {
		items = append(items, achievementViewResponse(view))
	}
	return items
}

func streakResponse(streak services.StreakState) fiber.Map {
	var lastCompleted *string
	if streak.LastCompleted != nil {
		formatted := streak.LastCompleted.Format("2006-01-02")
		lastCompleted = &formatted
	}
	return fiber.Map{
		"current":        streak.Current,
		"longest":        streak.Longest,
		"last_completed": lastCompleted,
	}
}

func habitStatsResponse(stats services.HabitStats) fiber.Map {
	var lastCompleted *string
	if stats.LastCompletedAt != nil {
		formatted := stats.LastCompletedAt.Format("2006-01-02")
		lastCompleted = &formatted
	}
	return fiber.Map{
		"total_completions":   stats.TotalCompletions,
		"current_streak":      stats.CurrentStreak,
		"longest_streak":      stats.LongestStreak,
		"completion_rate":     stats.CompletionRate,
		"weekly_completions":  stats.WeeklyCompletions,
		"monthly_completions": stats.MonthlyCompletions,
		"last_completed_at":   lastCompleted,
		"recent_entries":      progressListResponse(stats.RecentEntries),
	}
}
