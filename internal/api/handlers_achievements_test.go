package api

import (
	"net/http"
	"testing"

	"github.com/fittrackhq/fittrack/internal/models"
)

func TestListAchievementsReturnsSeededCatalog(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "achievements-list@example.com", "supersecret")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "supersecret")

	response := doJSONRequest(t, app, http.MethodGet, "/api/achievements", authCookie, nil)
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	achievements := decodeJSONBody(t, response)["achievements"].([]any)
	if len(achievements) != len(models.DefaultAchievementCatalog()) {
		t.Fatalf("expected full catalog, got %d entries", len(achievements))
	}

	first := achievements[0].(map[string]any)
	if first["unlocked"] != false {
		t.Fatal("fresh user must have everything locked")
	}
	if first["percentage"] != float64(0) {
		t.Fatalf("fresh user must have zero progress, got %v", first["percentage"])
	}
}

func TestCheckAchievementsUnlocksVariety(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "achievements-variety@example.com", "supersecret")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "supersecret")

	categories := []string{models.CategoryExercise, models.CategoryHealth, models.CategoryLearning}
	for _, category := range categories {
		body := validHabitBody()
		body["name"] = "Habit " + category
		body["category"] = category
		body["target_unit"] = "times"
		response := doJSONRequest(t, app, http.MethodPost, "/api/habits", authCookie, body)
		response.Body.Close()
		if response.StatusCode != http.StatusCreated {
			t.Fatalf("create habit failed with status %d", response.StatusCode)
		}
	}

	response := doJSONRequest(t, app, http.MethodPost, "/api/achievements/check", authCookie, nil)
	defer response.Body.Close()

	unlocked := decodeJSONBody(t, response)["newly_unlocked"].([]any)
	found := false
	for _, item := range unlocked {
		if item.(map[string]any)["code"] == "well-rounded" {
			found = true
		}
	}
	if !found {
		t.Fatalf("three categories must unlock well-rounded, got %v", unlocked)
	}
}

func TestCheckAchievementsIsIdempotent(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "achievements-idempotent@example.com", "supersecret")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "supersecret")

	create := doJSONRequest(t, app, http.MethodPost, "/api/habits", authCookie, validHabitBody())
	create.Body.Close()
	log := doJSONRequest(t, app, http.MethodPost, "/api/habits/1/progress", authCookie, map[string]any{"value": 8})
	log.Body.Close()

	second := doJSONRequest(t, app, http.MethodPost, "/api/achievements/check", authCookie, nil)
	defer second.Body.Close()

	unlocked := decodeJSONBody(t, second)["newly_unlocked"].([]any)
	for _, item := range unlocked {
		if item.(map[string]any)["code"] == "first-steps" {
			t.Fatal("already unlocked achievements must not be re-emitted")
		}
	}
}

func TestAchievementSummaryAggregates(t *testing.T) {
	t.Parallel()

	app, database := newTestApp(t)
	user := createTestUser(t, database, "achievements-summary@example.com", "supersecret")
	authCookie := loginAndExtractAuthCookie(t, app, user.Email, "supersecret")

	create := doJSONRequest(t, app, http.MethodPost, "/api/habits", authCookie, validHabitBody())
	create.Body.Close()
	log := doJSONRequest(t, app, http.MethodPost, "/api/habits/1/progress", authCookie, map[string]any{"value": 8})
	log.Body.Close()

	response := doJSONRequest(t, app, http.MethodGet, "/api/achievements/summary", authCookie, nil)
	defer response.Body.Close()

	payload := decodeJSONBody(t, response)
	unlocked := payload["unlocked"].([]any)
	if len(unlocked) == 0 {
		t.Fatal("expected at least one unlocked achievement")
	}
	if payload["total_points"] == float64(0) {
		t.Fatal("unlocks must carry points")
	}

	locked := payload["locked"].([]any)
	if len(unlocked)+len(locked) != len(models.DefaultAchievementCatalog()) {
		t.Fatalf("summary must cover the whole catalog, got %d+%d", len(unlocked), len(locked))
	}
}
