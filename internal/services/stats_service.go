package services

import (
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

type StatsHabitReader interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	CountByUser(userID uint) (int64, error)
}

type StatsProgressReader interface {
	CountGoalMetByUser(userID uint) (int64, error)
}

type StatsAchievementReader interface {
	SummaryForUser(userID uint) (AchievementSummary, error)
}

type StatsService struct {
	habits       StatsHabitReader
	progress     StatsProgressReader
	achievements StatsAchievementReader
}

func NewStatsService(habits StatsHabitReader, progress StatsProgressReader, achievements StatsAchievementReader) *StatsService {
	return &StatsService{
		habits:       habits,
		progress:     progress,
		achievements: achievements,
	}
}

// UserOverview is the dashboard aggregate: habit counts, the best
// streaks across active habits, lifetime completions and achievement
// points.
type UserOverview struct {
	TotalHabits          int
	ActiveHabits         int
	TotalCompletions     int
	CurrentStreak        int
	LongestStreak        int
	CategoryCounts       map[string]int
	AchievementPoints    int
	AchievementsUnlocked int
}

func (service *StatsService) BuildOverview(userID uint, now time.Time) (UserOverview, error) {
	activeHabits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		return UserOverview{}, err
	}

	totalHabits, err := service.habits.CountByUser(userID)
	if err != nil {
		return UserOverview{}, err
	}

	totalCompletions, err := service.progress.CountGoalMetByUser(userID)
	if err != nil {
		return UserOverview{}, err
	}

	overview := UserOverview{
		TotalHabits:      int(totalHabits),
		ActiveHabits:     len(activeHabits),
		TotalCompletions: int(totalCompletions),
		CategoryCounts:   make(map[string]int),
	}
	for _, habit := range activeHabits {
		overview.CategoryCounts[habit.Category]++
		if habit.CurrentStreak > overview.CurrentStreak {
			overview.CurrentStreak = habit.CurrentStreak
		}
		if habit.LongestStreak > overview.LongestStreak {
			overview.LongestStreak = habit.LongestStreak
		}
	}

	if service.achievements != nil {
		summary, err := service.achievements.SummaryForUser(userID)
		if err != nil {
			return UserOverview{}, err
		}
		overview.AchievementPoints = summary.TotalPoints
		overview.AchievementsUnlocked = len(summary.Unlocked)
	}

	return overview, nil
}
