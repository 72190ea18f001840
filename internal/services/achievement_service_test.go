package services

import (
	"testing"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

type stubAchievementStore struct {
	definitions []models.AchievementDefinition
	rows        map[uint]models.UserAchievement
	nextRowID   uint
}

func newStubAchievementStore(definitions ...models.AchievementDefinition) *stubAchievementStore {
	return &stubAchievementStore{
		definitions: definitions,
		rows:        make(map[uint]models.UserAchievement),
		nextRowID:   1,
	}
}

func (s *stubAchievementStore) ListActiveDefinitions() ([]models.AchievementDefinition, error) {
	active := make([]models.AchievementDefinition, 0, len(s.definitions))
	for _, definition := range s.definitions {
		if definition.IsActive {
			active = append(active, definition)
		}
	}
	return active, nil
}

func (s *stubAchievementStore) ExistsDefinitionByCode(code string) (bool, error) {
	for _, definition := range s.definitions {
		if definition.Code == code {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubAchievementStore) CreateDefinition(definition *models.AchievementDefinition) error {
	definition.ID = uint(len(s.definitions) + 1)
	s.definitions = append(s.definitions, *definition)
	return nil
}

func (s *stubAchievementStore) ListUserAchievements(userID uint) ([]models.UserAchievement, error) {
	rows := make([]models.UserAchievement, 0, len(s.rows))
	for _, row := range s.rows {
		if row.UserID == userID {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func (s *stubAchievementStore) FindUserAchievement(userID uint, achievementID uint) (models.UserAchievement, bool, error) {
	for _, row := range s.rows {
		if row.UserID == userID && row.AchievementID == achievementID {
			return row, true, nil
		}
	}
	return models.UserAchievement{}, false, nil
}

func (s *stubAchievementStore) CreateUserAchievement(row *models.UserAchievement) error {
	row.ID = s.nextRowID
	s.nextRowID++
	s.rows[row.ID] = *row
	return nil
}

func (s *stubAchievementStore) SaveUserAchievement(row *models.UserAchievement) error {
	s.rows[row.ID] = *row
	return nil
}

type stubHabitReader struct {
	active []models.Habit
	total  int64
}

func (s *stubHabitReader) ListActiveByUser(userID uint) ([]models.Habit, error) {
	return s.active, nil
}

func (s *stubHabitReader) CountByUser(userID uint) (int64, error) {
	return s.total, nil
}

type stubProgressReader struct {
	completions int64
	byHabit     map[uint][]models.ProgressEntry
}

func (s *stubProgressReader) CountGoalMetByUser(userID uint) (int64, error) {
	return s.completions, nil
}

func (s *stubProgressReader) ListGoalMetByHabitSince(habitID uint, since time.Time) ([]models.ProgressEntry, error) {
	entries := make([]models.ProgressEntry, 0)
	for _, entry := range s.byHabit[habitID] {
		if !entry.Date.Before(since) {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func streakDefinition(id uint, code string, target int) models.AchievementDefinition {
	return models.AchievementDefinition{
		ID:                id,
		Code:              code,
		Title:             code,
		Type:              models.AchievementTypeStreak,
		Rarity:            models.RarityCommon,
		Points:            25,
		CriteriaTarget:    target,
		CriteriaUnit:      "days",
		CriteriaCondition: "streak",
		IsActive:          true,
	}
}

func TestEvaluateUserUnlocksAtThreshold(t *testing.T) {
	store := newStubAchievementStore(streakDefinition(1, "week-warrior", 7))
	habits := &stubHabitReader{
		active: []models.Habit{{ID: 1, UserID: 1, CurrentStreak: 7}},
		total:  1,
	}
	progress := &stubProgressReader{completions: 7}

	service := NewAchievementService(store, habits, progress, time.UTC)
	now := mustParseDay("2024-03-10")

	unlocked, err := service.EvaluateUser(1, now)
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(unlocked) != 1 {
		t.Fatalf("expected 1 newly unlocked achievement, got %d", len(unlocked))
	}
	if unlocked[0].Definition.Code != "week-warrior" {
		t.Fatalf("unexpected unlock %q", unlocked[0].Definition.Code)
	}
	if !unlocked[0].UnlockedAt.Equal(now) {
		t.Fatalf("unexpected unlock time %v", unlocked[0].UnlockedAt)
	}
}

func TestEvaluateUserTracksPartialProgress(t *testing.T) {
	store := newStubAchievementStore(streakDefinition(1, "week-warrior", 7))
	habits := &stubHabitReader{
		active: []models.Habit{{ID: 1, UserID: 1, CurrentStreak: 5}},
		total:  1,
	}
	progress := &stubProgressReader{completions: 5}

	service := NewAchievementService(store, habits, progress, time.UTC)

	unlocked, err := service.EvaluateUser(1, mustParseDay("2024-03-10"))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("expected no unlocks, got %d", len(unlocked))
	}

	row, found, err := store.FindUserAchievement(1, 1)
	if err != nil || !found {
		t.Fatalf("expected a progress row, found=%v err=%v", found, err)
	}
	if row.Current != 5 || row.Target != 7 {
		t.Fatalf("unexpected progress %d/%d", row.Current, row.Target)
	}
	if row.Percentage != 71 {
		t.Fatalf("expected 71%%, got %d%%", row.Percentage)
	}
	if row.Unlocked {
		t.Fatal("row must stay locked below the target")
	}
}

func TestEvaluateUserNeverRelocks(t *testing.T) {
	store := newStubAchievementStore(streakDefinition(1, "week-warrior", 7))
	habits := &stubHabitReader{
		active: []models.Habit{{ID: 1, UserID: 1, CurrentStreak: 7}},
		total:  1,
	}
	progress := &stubProgressReader{completions: 7}

	service := NewAchievementService(store, habits, progress, time.UTC)
	now := mustParseDay("2024-03-10")

	if _, err := service.EvaluateUser(1, now); err != nil {
		t.Fatalf("first evaluate failed: %v", err)
	}

	// Streak later drops below the threshold.
	habits.active[0].CurrentStreak = 0

	unlocked, err := service.EvaluateUser(1, now.AddDate(0, 0, 5))
	if err != nil {
		t.Fatalf("second evaluate failed: %v", err)
	}
	if len(unlocked) != 0 {
		t.Fatalf("unlocked rows must not be re-emitted, got %d", len(unlocked))
	}

	row, found, _ := store.FindUserAchievement(1, 1)
	if !found || !row.Unlocked {
		t.Fatal("unlock must persist after the metric drops")
	}
	if row.UnlockedAt == nil || !row.UnlockedAt.Equal(now) {
		t.Fatalf("original unlock time must be preserved, got %v", row.UnlockedAt)
	}
}

func TestEvaluateUserSkipsMalformedDefinitions(t *testing.T) {
	broken := streakDefinition(2, "broken-entry", 0)
	store := newStubAchievementStore(streakDefinition(1, "week-warrior", 7), broken)
	habits := &stubHabitReader{
		active: []models.Habit{{ID: 1, UserID: 1, CurrentStreak: 7}},
		total:  1,
	}
	progress := &stubProgressReader{completions: 7}

	service := NewAchievementService(store, habits, progress, time.UTC)

	unlocked, err := service.EvaluateUser(1, mustParseDay("2024-03-10"))
	if err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}
	if len(unlocked) != 1 {
		t.Fatalf("expected only the valid definition to unlock, got %d", len(unlocked))
	}

	if _, found, _ := store.FindUserAchievement(1, broken.ID); found {
		t.Fatal("malformed definitions must never produce progress rows")
	}
}

func TestSeedDefaultCatalogIsIdempotent(t *testing.T) {
	store := newStubAchievementStore()
	service := NewAchievementService(store, &stubHabitReader{}, &stubProgressReader{}, time.UTC)

	if err := service.SeedDefaultCatalog(); err != nil {
		t.Fatalf("first seed failed: %v", err)
	}
	seeded := len(store.definitions)
	if seeded != len(models.DefaultAchievementCatalog()) {
		t.Fatalf("expected full catalog seeded, got %d", seeded)
	}

	if err := service.SeedDefaultCatalog(); err != nil {
		t.Fatalf("second seed failed: %v", err)
	}
	if len(store.definitions) != seeded {
		t.Fatalf("reseeding duplicated rows: %d -> %d", seeded, len(store.definitions))
	}
}

func TestSummaryForUser(t *testing.T) {
	first := streakDefinition(1, "getting-started", 3)
	first.Points = 25
	second := streakDefinition(2, "week-warrior", 7)
	second.Points = 50

	store := newStubAchievementStore(first, second)
	habits := &stubHabitReader{
		active: []models.Habit{{ID: 1, UserID: 1, CurrentStreak: 4}},
		total:  1,
	}
	progress := &stubProgressReader{completions: 4}

	service := NewAchievementService(store, habits, progress, time.UTC)
	if _, err := service.EvaluateUser(1, mustParseDay("2024-03-10")); err != nil {
		t.Fatalf("evaluate failed: %v", err)
	}

	summary, err := service.SummaryForUser(1)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Unlocked) != 1 || len(summary.Locked) != 1 {
		t.Fatalf("expected 1 unlocked and 1 locked, got %d/%d", len(summary.Unlocked), len(summary.Locked))
	}
	if summary.TotalPoints != 25 {
		t.Fatalf("expected 25 points, got %d", summary.TotalPoints)
	}
	if summary.CompletionRate != 50 {
		t.Fatalf("expected 50%% completion, got %d%%", summary.CompletionRate)
	}
}
