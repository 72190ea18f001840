package services

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

type stubHabitStore struct {
	habits map[uint]models.Habit
	nextID uint
}

func newStubHabitStore() *stubHabitStore {
	return &stubHabitStore{habits: make(map[uint]models.Habit), nextID: 1}
}

func (s *stubHabitStore) FindByIDForUser(habitID uint, userID uint) (models.Habit, bool, error) {
	habit, ok := s.habits[habitID]
	if !ok || habit.UserID != userID {
		return models.Habit{}, false, nil
	}
	return habit, true, nil
}

func (s *stubHabitStore) ListByUser(userID uint, category string, activeOnly bool) ([]models.Habit, error) {
	habits := make([]models.Habit, 0)
	for _, habit := range s.habits {
		if habit.UserID != userID {
			continue
		}
		if category != "" && habit.Category != category {
			continue
		}
		if activeOnly && !habit.IsActive {
			continue
		}
		habits = append(habits, habit)
	}
	return habits, nil
}

func (s *stubHabitStore) Create(habit *models.Habit) error {
	habit.ID = s.nextID
	s.nextID++
	s.habits[habit.ID] = *habit
	return nil
}

func (s *stubHabitStore) Save(habit *models.Habit) error {
	s.habits[habit.ID] = *habit
	return nil
}

func (s *stubHabitStore) Deactivate(habitID uint) error {
	habit := s.habits[habitID]
	habit.IsActive = false
	s.habits[habitID] = habit
	return nil
}

func validHabitInput() HabitInput {
	return HabitInput{
		Name:        "Drink Water",
		Category:    models.CategoryHealth,
		TargetValue: 8,
		TargetUnit:  "glasses",
	}
}

func TestValidateHabitInput(t *testing.T) {
	if errs := ValidateHabitInput(validHabitInput()); errs.Any() {
		t.Fatalf("expected valid input, got %v", errs)
	}

	cases := []struct {
		name   string
		mutate func(*HabitInput)
		field  string
	}{
		{"blank name", func(in *HabitInput) { in.Name = "   " }, "name"},
		{"long name", func(in *HabitInput) { in.Name = strings.Repeat("x", 101) }, "name"},
		{"long description", func(in *HabitInput) { in.Description = strings.Repeat("x", 501) }, "description"},
		{"unknown category", func(in *HabitInput) { in.Category = "gaming" }, "category"},
		{"zero target", func(in *HabitInput) { in.TargetValue = 0 }, "target_value"},
		{"unknown unit", func(in *HabitInput) { in.TargetUnit = "furlongs" }, "target_unit"},
		{"bad color", func(in *HabitInput) { in.Color = "blue" }, "color"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validHabitInput()
			tc.mutate(&input)
			errs := ValidateHabitInput(input)
			if errs[tc.field] == "" {
				t.Fatalf("expected error on %q, got %v", tc.field, errs)
			}
		})
	}
}

func TestCreateHabitDefaultsColor(t *testing.T) {
	service := NewHabitService(newStubHabitStore())

	habit, err := service.CreateHabit(1, validHabitInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if habit.Color != models.DefaultHabitColor {
		t.Fatalf("expected default color, got %q", habit.Color)
	}
	if !habit.IsActive {
		t.Fatal("new habits must start active")
	}
	if habit.CurrentStreak != 0 || habit.LongestStreak != 0 {
		t.Fatalf("new habits must start with zero streaks, got %d/%d", habit.CurrentStreak, habit.LongestStreak)
	}
}

func TestUpdateHabitChecksOwnership(t *testing.T) {
	store := newStubHabitStore()
	service := NewHabitService(store)

	habit, err := service.CreateHabit(1, validHabitInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if _, err := service.UpdateHabit(habit.ID, 2, validHabitInput()); !errors.Is(err, ErrHabitNotFound) {
		t.Fatalf("expected ErrHabitNotFound for foreign habit, got %v", err)
	}
}

func TestDeleteHabitSoftDeletes(t *testing.T) {
	store := newStubHabitStore()
	service := NewHabitService(store)

	habit, err := service.CreateHabit(1, validHabitInput())
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := service.DeleteHabit(habit.ID, 1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	stored := store.habits[habit.ID]
	if stored.IsActive {
		t.Fatal("deleted habit must be deactivated")
	}

	active, err := service.ListHabits(1, "", true)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated habit must leave active lists, got %d", len(active))
	}

	all, err := service.ListHabits(1, "", false)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("deactivated habit row must survive, got %d", len(all))
	}
}

func TestBuildHabitStats(t *testing.T) {
	now := mustParseDay("2024-03-13").Add(15 * time.Hour)
	habit := testHabit()
	habit.CurrentStreak = 3
	habit.LongestStreak = 9

	entries := []models.ProgressEntry{
		{HabitID: 1, Date: mustParseDay("2024-02-20"), Value: 8, TargetValue: 8, GoalMet: true},
		{HabitID: 1, Date: mustParseDay("2024-03-04"), Value: 8, TargetValue: 8, GoalMet: true},
		{HabitID: 1, Date: mustParseDay("2024-03-11"), Value: 8, TargetValue: 8, GoalMet: true},
		{HabitID: 1, Date: mustParseDay("2024-03-12"), Value: 3, TargetValue: 8, GoalMet: false},
		{HabitID: 1, Date: mustParseDay("2024-03-13"), Value: 8, TargetValue: 8, GoalMet: true},
	}

	stats := BuildHabitStats(habit, entries, now, time.UTC)

	if stats.TotalCompletions != 4 {
		t.Fatalf("expected 4 completions, got %d", stats.TotalCompletions)
	}
	if stats.CurrentStreak != 3 || stats.LongestStreak != 9 {
		t.Fatalf("streak snapshot not carried over: %d/%d", stats.CurrentStreak, stats.LongestStreak)
	}
	// 2024-03-13 is a Wednesday; the week starts Sunday 2024-03-10.
	if stats.WeeklyCompletions != 2 {
		t.Fatalf("expected 2 weekly completions, got %d", stats.WeeklyCompletions)
	}
	if stats.MonthlyCompletions != 3 {
		t.Fatalf("expected 3 monthly completions, got %d", stats.MonthlyCompletions)
	}
	// 2 goal-met days inside the trailing 7-day window.
	if stats.CompletionRate != 29 {
		t.Fatalf("expected 29%% completion rate, got %d%%", stats.CompletionRate)
	}
	if len(stats.RecentEntries) != 5 {
		t.Fatalf("expected all 5 entries as recent, got %d", len(stats.RecentEntries))
	}
	if !stats.RecentEntries[0].Date.Equal(mustParseDay("2024-03-13")) {
		t.Fatalf("recent entries must be newest first, got %v", stats.RecentEntries[0].Date)
	}
}
