package services

import (
	"sort"
	"time"

	"github.com/fittrackhq/fittrack/internal/models"
)

// StreakState is the derived streak snapshot for one habit. It is never
// stored on its own: callers persist it onto the habit row after each
// recomputation.
type StreakState struct {
	Current       int
	Longest       int
	LastCompleted *time.Time
}

// CalculateStreak recomputes the consecutive-day streak from the full
// progress history of a habit. Only goal-met entries qualify. The input
// does not need to be sorted. A qualifying entry yesterday keeps the
// streak alive even if today has not been logged yet; anything older
// than that resets the current streak to zero.
//
// Longest is monotone: the previously stored longest is retained and
// max-ed against the freshly computed current.
func CalculateStreak(entries []models.ProgressEntry, previousLongest int, today time.Time, location *time.Location) StreakState {
	qualifying := qualifyingDays(entries, location)
	if len(qualifying) == 0 {
		return StreakState{Current: 0, Longest: previousLongest}
	}

	sort.Slice(qualifying, func(i, j int) bool {
		return qualifying[i].After(qualifying[j])
	})

	mostRecent := qualifying[0]
	state := StreakState{LastCompleted: &mostRecent}

	if DaysBetween(mostRecent, today, location) > 1 {
		state.Longest = previousLongest
		return state
	}

	state.Current = 1
	for i := 1; i < len(qualifying); i++ {
		if DaysBetween(qualifying[i], qualifying[i-1], location) != 1 {
			break
		}
		state.Current++
	}

	state.Longest = state.Current
	if previousLongest > state.Longest {
		state.Longest = previousLongest
	}
	return state
}

// qualifyingDays normalizes goal-met entry dates to midnight and
// deduplicates, so a day counts once no matter how it was stored.
func qualifyingDays(entries []models.ProgressEntry, location *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(entries))
	days := make([]time.Time, 0, len(entries))
	for _, entry := range entries {
		if !entry.GoalMet {
			continue
		}
		day := DateAtLocation(entry.Date, location)
		if _, duplicate := seen[day]; duplicate {
			continue
		}
		seen[day] = struct{}{}
		days = append(days, day)
	}
	return days
}
