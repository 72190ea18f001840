package services

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

var (
	ErrHabitNotFound     = errors.New("habit not found")
	ErrHabitLoadFailed   = errors.New("load habit failed")
	ErrHabitCreateFailed = errors.New("create habit failed")
	ErrHabitUpdateFailed = errors.New("update habit failed")
	ErrHabitDeleteFailed = errors.New("delete habit failed")
)

var habitColorPattern = regexp.MustCompile(`^#([A-Fa-f0-9]{6}|[A-Fa-f0-9]{3})$`)

type HabitInput struct {
	Name        string
	Description string
	Category    string
	TargetValue int
	TargetUnit  string
	Color       string
}

// FieldErrors maps an input field to what is wrong with it. Validation
// runs in full before any store mutation, so the caller always gets the
// complete picture in one response.
type FieldErrors map[string]string

func (errs FieldErrors) Any() bool {
	return len(errs) > 0
}

func ValidateHabitInput(input HabitInput) FieldErrors {
	errs := FieldErrors{}

	name := strings.TrimSpace(input.Name)
	if name == "" || len(name) > 100 {
		errs["name"] = "name must be between 1 and 100 characters"
	}
	if len(input.Description) > 500 {
		errs["description"] = "description cannot exceed 500 characters"
	}
	if !models.IsValidHabitCategory(input.Category) {
		errs["category"] = "unknown category"
	}
	if input.TargetValue < 1 {
		errs["target_value"] = "target value must be a positive integer"
	}
	if !models.IsValidHabitUnit(input.TargetUnit) {
		errs["target_unit"] = "unknown target unit"
	}
	if input.Color != "" && !habitColorPattern.MatchString(input.Color) {
		errs["color"] = "color must be a valid hex color"
	}

	return errs
}

type HabitStore interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	ListByUser(userID uint, category string, activeOnly bool) ([]models.Habit, error)
	Create(habit *models.Habit) error
	Save(habit *models.Habit) error
	Deactivate(habitID uint) error
}

type HabitService struct {
	habits HabitStore
}

func NewHabitService(habits HabitStore) *HabitService {
	return &HabitService{habits: habits}
}

func (service *HabitService) CreateHabit(userID uint, input HabitInput) (models.Habit, error) {
	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = models.DefaultHabitColor
	}

	habit := models.Habit{
		UserID:      userID,
		Name:        strings.TrimSpace(input.Name),
		Description: strings.TrimSpace(input.Description),
		Category:    input.Category,
		TargetValue: input.TargetValue,
		TargetUnit:  input.TargetUnit,
		Color:       color,
		IsActive:    true,
	}
	if err := service.habits.Create(&habit); err != nil {
		return models.Habit{}, ErrHabitCreateFailed
	}
	return habit, nil
}

func (service *HabitService) GetHabit(habitID uint, userID uint) (models.Habit, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return models.Habit{}, ErrHabitLoadFailed
	}
	if !found {
		return models.Habit{}, ErrHabitNotFound
	}
	return habit, nil
}

func (service *HabitService) ListHabits(userID uint, category string, activeOnly bool) ([]models.Habit, error) {
	habits, err := service.habits.ListByUser(userID, category, activeOnly)
	if err != nil {
		return nil, ErrHabitLoadFailed
	}
	return habits, nil
}

func (service *HabitService) UpdateHabit(habitID uint, userID uint, input HabitInput) (models.Habit, error) {
	habit, err := service.GetHabit(habitID, userID)
	if err != nil {
		return models.Habit{}, err
	}

	habit.Name = strings.TrimSpace(input.Name)
	habit.Description = strings.TrimSpace(input.Description)
	habit.Category = input.Category
	habit.TargetValue = input.TargetValue
	habit.TargetUnit = input.TargetUnit
	if color := strings.TrimSpace(input.Color); color != "" {
		habit.Color = color
	}

	if err := service.habits.Save(&habit); err != nil {
		return models.Habit{}, ErrHabitUpdateFailed
	}
	return habit, nil
}

// DeleteHabit soft-deletes: the habit stops appearing in active lists
// and evaluations, but its rows stay so lifetime totals keep counting.
func (service *HabitService) DeleteHabit(habitID uint, userID uint) error {
	if _, err := service.GetHabit(habitID, userID); err != nil {
		return err
	}
	if err := service.habits.Deactivate(habitID); err != nil {
		return ErrHabitDeleteFailed
	}
	return nil
}

// HabitStats is the per-habit dashboard block: streaks plus windowed
// completion counts.
type HabitStats struct {
	TotalCompletions   int
	CurrentStreak      int
	LongestStreak      int
	CompletionRate     int
	WeeklyCompletions  int
	MonthlyCompletions int
	LastCompletedAt    *time.Time
	RecentEntries      []models.ProgressEntry
}

const recentEntryLimit = 7

// BuildHabitStats derives the stats block from the habit's full entry
// list, ordered ascending by date as the repositories return it.
func BuildHabitStats(habit models.Habit, entries []models.ProgressEntry, now time.Time, location *time.Location) HabitStats {
	today := DateAtLocation(now, location)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())

	stats := HabitStats{
		CurrentStreak:   habit.CurrentStreak,
		LongestStreak:   habit.LongestStreak,
		LastCompletedAt: habit.LastCompletedAt,
	}

	goalMetLastWeek := 0
	for _, entry := range entries {
		if !entry.GoalMet {
			continue
		}
		stats.TotalCompletions++

		day := DateAtLocation(entry.Date, location)
		if !day.Before(weekStart) {
			stats.WeeklyCompletions++
		}
		if !day.Before(monthStart) {
			stats.MonthlyCompletions++
		}
		if !day.Before(today.AddDate(0, 0, -6)) {
			goalMetLastWeek++
		}
	}
	stats.CompletionRate = ProgressPercentage(goalMetLastWeek, 7)

	recent := make([]models.ProgressEntry, 0, recentEntryLimit)
	for i := len(entries) - 1; i >= 0 && len(recent) < recentEntryLimit; i-- {
		recent = append(recent, entries[i])
	}
	stats.RecentEntries = recent

	return stats
}
