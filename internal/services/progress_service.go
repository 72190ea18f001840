package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

var (
	ErrProgressLoadFailed   = errors.New("load progress failed")
	ErrProgressCreateFailed = errors.New("create progress entry failed")
	ErrProgressUpdateFailed = errors.New("update progress entry failed")
	ErrStreakSaveFailed     = errors.New("save streak snapshot failed")
)

// earliestProgressDate bounds backdated entries; anything older is a
// typo, not history worth accepting.
var earliestProgressDate = time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC)

type ProgressInput struct {
	Value int
	Date  *time.Time
	Notes string
}

func ValidateProgressInput(input ProgressInput, now time.Time, location *time.Location) FieldErrors {
	errs := FieldErrors{}

	if input.Value < 0 {
		errs["value"] = "value must be zero or greater"
	}
	if len(input.Notes) > 500 {
		errs["notes"] = "notes cannot exceed 500 characters"
	}
	if input.Date != nil {
		day := DateAtLocation(*input.Date, location)
		today := DateAtLocation(now, location)
		if day.After(today) {
			errs["date"] = "date cannot be in the future"
		}
		if day.Before(earliestProgressDate) {
			errs["date"] = "date is too far in the past"
		}
	}

	return errs
}

type ProgressStore interface {
	ListByHabit(habitID uint) ([]models.ProgressEntry, error)
	ListByHabitRange(habitID uint, fromStart *time.Time, toEnd *time.Time) ([]models.ProgressEntry, error)
	FindByHabitAndDayRange(habitID uint, dayStart time.Time, dayEnd time.Time) (models.ProgressEntry, bool, error)
	Create(entry *models.ProgressEntry) error
	Save(entry *models.ProgressEntry) error
}

type ProgressHabitStore interface {
	FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error)
	UpdateStreak(habitID uint, current int, longest int, lastCompleted *time.Time) error
}

// UnlockEvaluator is the achievement pass run after each progress
// write. The progress service only needs the one method, not the whole
// achievement service.
type UnlockEvaluator interface {
	EvaluateUser(userID uint, now time.Time) ([]UnlockedAchievement, error)
}

type ProgressService struct {
	progress  ProgressStore
	habits    ProgressHabitStore
	evaluator UnlockEvaluator
	location  *time.Location
	locks     *userLocks
}

func NewProgressService(progress ProgressStore, habits ProgressHabitStore, evaluator UnlockEvaluator, location *time.Location) *ProgressService {
	if location == nil {
		location = time.UTC
	}
	return &ProgressService{
		progress:  progress,
		habits:    habits,
		evaluator: evaluator,
		location:  location,
		locks:     newUserLocks(),
	}
}

type LogProgressResult struct {
	Entry         models.ProgressEntry
	Streak        StreakState
	NewlyUnlocked []UnlockedAchievement
}

// LogProgress runs the full pipeline for one submission: upsert the
// entry for (habit, day), recompute the streak from the whole history,
// persist the snapshot, then re-run achievement evaluation. The
// sequence is serialized per user. If evaluation fails after the entry
// committed, the entry stays committed and the failure is logged; the
// next evaluation pass recomputes from scratch anyway.
func (service *ProgressService) LogProgress(userID uint, habitID uint, input ProgressInput, now time.Time) (LogProgressResult, error) {
	userLock := service.locks.lock(userID)
	defer userLock.Unlock()

	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return LogProgressResult{}, ErrHabitLoadFailed
	}
	if !found || !habit.IsActive {
		return LogProgressResult{}, ErrHabitNotFound
	}

	day := now
	if input.Date != nil {
		day = *input.Date
	}
	dayStart, dayEnd := DayRange(day, service.location)

	entry, err := service.upsertEntry(habit, dayStart, dayEnd, input)
	if err != nil {
		return LogProgressResult{}, err
	}

	history, err := service.progress.ListByHabit(habit.ID)
	if err != nil {
		return LogProgressResult{}, ErrProgressLoadFailed
	}

	streak := CalculateStreak(history, habit.LongestStreak, now, service.location)
	if err := service.habits.UpdateStreak(habit.ID, streak.Current, streak.Longest, streak.LastCompleted); err != nil {
		return LogProgressResult{}, ErrStreakSaveFailed
	}

	result := LogProgressResult{Entry: entry, Streak: streak}
	if service.evaluator != nil {
		unlocked, err := service.evaluator.EvaluateUser(userID, now)
		if err != nil {
			log.Printf("achievement evaluation failed for user %d: %v", userID, err)
		} else {
			result.NewlyUnlocked = unlocked
		}
	}
	return result, nil
}

func (service *ProgressService) upsertEntry(habit models.Habit, dayStart time.Time, dayEnd time.Time, input ProgressInput) (models.ProgressEntry, error) {
	entry, found, err := service.progress.FindByHabitAndDayRange(habit.ID, dayStart, dayEnd)
	if err != nil {
		return models.ProgressEntry{}, ErrProgressLoadFailed
	}

	notes := strings.TrimSpace(input.Notes)
	goalMet := input.Value >= habit.TargetValue

	if found {
		entry.Value = input.Value
		entry.TargetValue = habit.TargetValue
		entry.GoalMet = goalMet
		entry.Notes = notes
		if err := service.progress.Save(&entry); err != nil {
			return models.ProgressEntry{}, ErrProgressUpdateFailed
		}
		return entry, nil
	}

	entry = models.ProgressEntry{
		HabitID:     habit.ID,
		Date:        dayStart,
		Value:       input.Value,
		TargetValue: habit.TargetValue,
		GoalMet:     goalMet,
		Notes:       notes,
	}
	if err := service.progress.Create(&entry); err != nil {
		return models.ProgressEntry{}, ErrProgressCreateFailed
	}
	return entry, nil
}

// ListProgress returns a habit's entries, optionally bounded by an
// inclusive from/to day range. Ownership is checked first so one user
// can never read another's history.
func (service *ProgressService) ListProgress(userID uint, habitID uint, from *time.Time, to *time.Time) ([]models.ProgressEntry, error) {
	habit, found, err := service.habits.FindByIDForUser(habitID, userID)
	if err != nil {
		return nil, ErrHabitLoadFailed
	}
	if !found {
		return nil, ErrHabitNotFound
	}

	var fromStart *time.Time
	var toEnd *time.Time
	if from != nil {
		start, _ := DayRange(*from, service.location)
		fromStart = &start
	}
	if to != nil {
		_, end := DayRange(*to, service.location)
		toEnd = &end
	}
	return service.progress.ListByHabitRange(habit.ID, fromStart, toEnd)
}
