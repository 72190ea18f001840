package services

import (
	"errors"
	"log"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

var (
	ErrAchievementLoadFailed = errors.New("load achievements failed")
	ErrAchievementSaveFailed = errors.New("save achievement progress failed")
)

type AchievementStore interface {
	ListActiveDefinitions() ([]models.AchievementDefinition, error)
	ExistsDefinitionByCode(code string) (bool, error)
	CreateDefinition(definition *models.AchievementDefinition) error
	ListUserAchievements(userID uint) ([]models.UserAchievement, error)
	FindUserAchievement(userID uint, achievementID uint) (models.UserAchievement, bool, error)
	CreateUserAchievement(row *models.UserAchievement) error
	SaveUserAchievement(row *models.UserAchievement) error
}

type AchievementHabitReader interface {
	ListActiveByUser(userID uint) ([]models.Habit, error)
	CountByUser(userID uint) (int64, error)
}

type AchievementProgressReader interface {
	CountGoalMetByUser(userID uint) (int64, error)
	ListGoalMetByHabitSince(habitID uint, since time.Time) ([]models.ProgressEntry, error)
}

type AchievementService struct {
	store    AchievementStore
	habits   AchievementHabitReader
	progress AchievementProgressReader
	location *time.Location
}

func NewAchievementService(store AchievementStore, habits AchievementHabitReader, progress AchievementProgressReader, location *time.Location) *AchievementService {
	if location == nil {
		location = time.UTC
	}
	return &AchievementService{
		store:    store,
		habits:   habits,
		progress: progress,
		location: location,
	}
}

// SeedDefaultCatalog inserts the built-in definitions that are not in
// the database yet. Malformed entries are logged and skipped; existing
// codes are left untouched so operators can tune them.
func (service *AchievementService) SeedDefaultCatalog() error {
	for _, definition := range models.DefaultAchievementCatalog() {
		if err := ValidateAchievementDefinition(definition); err != nil {
			log.Printf("skipping invalid achievement definition %q: %v", definition.Code, err)
			continue
		}

		exists, err := service.store.ExistsDefinitionByCode(definition.Code)
		if err != nil {
			return err
		}
		if exists {
			continue
		}

		definition.IsActive = true
		if err := service.store.CreateDefinition(&definition); err != nil {
			return err
		}
	}
	return nil
}

// UnlockedAchievement is what the client celebrates: the definition
// plus the moment it unlocked.
type UnlockedAchievement struct {
	Definition models.AchievementDefinition
	UnlockedAt time.Time
}

// EvaluateUser re-checks every active, valid definition against the
// user's current aggregates and returns only the newly unlocked ones.
// The pass is idempotent: re-running it after a miss reproduces the
// same state, and unlocked rows are never reverted or re-emitted.
func (service *AchievementService) EvaluateUser(userID uint, now time.Time) ([]UnlockedAchievement, error) {
	definitions, err := service.loadValidDefinitions()
	if err != nil {
		return nil, ErrAchievementLoadFailed
	}

	input, err := service.buildEvaluationInput(userID, now, definitions)
	if err != nil {
		return nil, ErrAchievementLoadFailed
	}

	newlyUnlocked := make([]UnlockedAchievement, 0)
	for _, definition := range definitions {
		row, found, err := service.store.FindUserAchievement(userID, definition.ID)
		if err != nil {
			return newlyUnlocked, ErrAchievementLoadFailed
		}
		if found && row.Unlocked {
			continue
		}

		current := AchievementProgressValue(definition, input)
		row.UserID = userID
		row.AchievementID = definition.ID
		row.Current = current
		row.Target = definition.CriteriaTarget
		row.Percentage = ProgressPercentage(current, definition.CriteriaTarget)

		if current >= definition.CriteriaTarget {
			unlockedAt := now
			row.Unlocked = true
			row.UnlockedAt = &unlockedAt
		}

		if found {
			err = service.store.SaveUserAchievement(&row)
		} else {
			err = service.store.CreateUserAchievement(&row)
		}
		if err != nil {
			return newlyUnlocked, ErrAchievementSaveFailed
		}

		if row.Unlocked {
			newlyUnlocked = append(newlyUnlocked, UnlockedAchievement{
				Definition: definition,
				UnlockedAt: *row.UnlockedAt,
			})
		}
	}

	return newlyUnlocked, nil
}

func (service *AchievementService) loadValidDefinitions() ([]models.AchievementDefinition, error) {
	definitions, err := service.store.ListActiveDefinitions()
	if err != nil {
		return nil, err
	}

	valid, problems := FilterValidDefinitions(definitions)
	for _, problem := range problems {
		log.Printf("ignoring malformed achievement definition %q: %v", problem.Code, problem.Err)
	}
	return valid, nil
}

func (service *AchievementService) buildEvaluationInput(userID uint, now time.Time, definitions []models.AchievementDefinition) (EvaluationInput, error) {
	activeHabits, err := service.habits.ListActiveByUser(userID)
	if err != nil {
		return EvaluationInput{}, err
	}

	totalHabits, err := service.habits.CountByUser(userID)
	if err != nil {
		return EvaluationInput{}, err
	}

	totalCompletions, err := service.progress.CountGoalMetByUser(userID)
	if err != nil {
		return EvaluationInput{}, err
	}

	currentStreak := 0
	for _, habit := range activeHabits {
		if habit.CurrentStreak > currentStreak {
			currentStreak = habit.CurrentStreak
		}
	}

	histories, err := service.loadConsistencyHistories(activeHabits, now, definitions)
	if err != nil {
		return EvaluationInput{}, err
	}

	return EvaluationInput{
		Stats: UserStats{
			CurrentStreak:    currentStreak,
			TotalHabits:      int(totalHabits),
			TotalCompletions: int(totalCompletions),
		},
		Habits:   histories,
		Today:    now,
		Location: service.location,
	}, nil
}

// loadConsistencyHistories fetches goal-met entries only as far back as
// the widest consistency window in the catalog needs. Other rule types
// work off aggregates and do not read histories at all.
func (service *AchievementService) loadConsistencyHistories(habits []models.Habit, now time.Time, definitions []models.AchievementDefinition) ([]HabitHistory, error) {
	widestWindow := 0
	for _, definition := range definitions {
		if definition.Type == models.AchievementTypeConsistency && definition.CriteriaTarget > widestWindow {
			widestWindow = definition.CriteriaTarget
		}
	}

	histories := make([]HabitHistory, 0, len(habits))
	if widestWindow == 0 {
		for _, habit := range habits {
			histories = append(histories, HabitHistory{Habit: habit})
		}
		return histories, nil
	}

	since := DateAtLocation(now, service.location).AddDate(0, 0, -widestWindow)
	for _, habit := range habits {
		entries, err := service.progress.ListGoalMetByHabitSince(habit.ID, since)
		if err != nil {
			return nil, err
		}
		histories = append(histories, HabitHistory{Habit: habit, GoalMet: entries})
	}
	return histories, nil
}

// AchievementView is one catalog entry combined with the viewer's
// progress toward it.
type AchievementView struct {
	Definition models.AchievementDefinition
	Current    int
	Target     int
	Percentage int
	Unlocked   bool
	UnlockedAt *time.Time
}

type AchievementSummary struct {
	Unlocked       []AchievementView
	Locked         []AchievementView
	TotalPoints    int
	CompletionRate int
}

// ListForUser returns every active valid definition with the user's
// progress, defaulting to zero progress for rows that have never been
// evaluated for this user.
func (service *AchievementService) ListForUser(userID uint) ([]AchievementView, error) {
	definitions, err := service.loadValidDefinitions()
	if err != nil {
		return nil, ErrAchievementLoadFailed
	}

	rows, err := service.store.ListUserAchievements(userID)
	if err != nil {
		return nil, ErrAchievementLoadFailed
	}

	rowsByAchievement := make(map[uint]models.UserAchievement, len(rows))
	for _, row := range rows {
		rowsByAchievement[row.AchievementID] = row
	}

	views := make([]AchievementView, 0, len(definitions))
	for _, definition := range definitions {
		view := AchievementView{
			Definition: definition,
			Target:     definition.CriteriaTarget,
		}
		if row, evaluated := rowsByAchievement[definition.ID]; evaluated {
			view.Current = row.Current
			view.Target = row.Target
			view.Percentage = row.Percentage
			view.Unlocked = row.Unlocked
			view.UnlockedAt = row.UnlockedAt
		}
		views = append(views, view)
	}
	return views, nil
}

func (service *AchievementService) SummaryForUser(userID uint) (AchievementSummary, error) {
	views, err := service.ListForUser(userID)
	if err != nil {
		return AchievementSummary{}, err
	}

	summary := AchievementSummary{
		Unlocked: make([]AchievementView, 0),
		Locked:   make([]AchievementView, 0),
	}
	for _, view := range views {
		if view.Unlocked {
			summary.Unlocked = append(summary.Unlocked, view)
			summary.TotalPoints += view.Definition.Points
		} else {
			summary.Locked = append(summary.Locked, view)
		}
	}
	if len(views) > 0 {
		summary.CompletionRate = ProgressPercentage(len(summary.Unlocked), len(views))
	}
	return summary, nil
}
