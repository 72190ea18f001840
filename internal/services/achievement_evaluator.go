package services

import (
	"math"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

// UserStats are the aggregates the evaluator scores against. They are
// recomputed from the stores before every evaluation pass, never cached
// across requests.
type UserStats struct {
	CurrentStreak    int
	TotalHabits      int
	TotalCompletions int
}

// HabitHistory pairs a habit with its goal-met entries inside the
// evaluation window (consistency rules only look at recent history).
type HabitHistory struct {
	Habit   models.Habit
	GoalMet []models.ProgressEntry
}

type EvaluationInput struct {
	Stats    UserStats
	Habits   []HabitHistory
	Today    time.Time
	Location *time.Location
}

// AchievementProgressValue computes a definition's type-specific
// progress metric. Definitions are evaluated independently: no rule
// reads another achievement's state, so evaluation order is free.
func AchievementProgressValue(definition models.AchievementDefinition, input EvaluationInput) int {
	switch definition.Type {
	case models.AchievementTypeStreak:
		return input.Stats.CurrentStreak
	case models.AchievementTypeCompletion:
		return input.Stats.TotalCompletions
	case models.AchievementTypeMilestone:
		return input.Stats.TotalHabits
	case models.AchievementTypeConsistency:
		return consistentHabitCount(definition.CriteriaTarget, input)
	case models.AchievementTypeVariety:
		return distinctCategoryCount(input.Habits)
	default:
		return 0
	}
}

// consistentHabitCount counts habits with at least windowDays goal-met
// days inside the trailing windowDays-day window ending today.
func consistentHabitCount(windowDays int, input EvaluationInput) int {
	if windowDays < 1 {
		return 0
	}
	windowStart := DateAtLocation(input.Today, input.Location).AddDate(0, 0, -windowDays)

	consistent := 0
	for _, history := range input.Habits {
		days := make(map[time.Time]struct{})
		for _, entry := range history.GoalMet {
			day := DateAtLocation(entry.Date, input.Location)
			if day.Before(windowStart) {
				continue
			}
			days[day] = struct{}{}
		}
		if len(days) >= windowDays {
			consistent++
		}
	}
	return consistent
}

func distinctCategoryCount(habits []HabitHistory) int {
	categories := make(map[string]struct{}, len(habits))
	for _, history := range habits {
		categories[history.Habit.Category] = struct{}{}
	}
	return len(categories)
}

// ProgressPercentage is capped at 100 so overachieving never inflates
// the reported completion.
func ProgressPercentage(current int, target int) int {
	if target < 1 {
		return 0
	}
	percentage := int(math.Round(float64(current) / float64(target) * 100))
	if percentage > 100 {
		return 100
	}
	if percentage < 0 {
		return 0
	}
	return percentage
}
