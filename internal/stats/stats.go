// ABOUTME: Progress statistics aggregated from sessions and sets.
// ABOUTME: Pure reductions; empty history yields zero values, never an error.
package stats

import (
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// SessionStore is the slice of the persistence gateway statistics read from.
type SessionStore interface {
	ListUserSessions(userID int64, limit int) ([]*models.WorkoutSession, error)
	ListSessionSets(sessionID int64) ([]*models.WorkoutSet, error)
}

// Summary is the overview a progress screen displays.
type Summary struct {
	CompletedWorkouts int
	TotalVolumeKg     float64
	WeekdayVolume     [7]float64 // Monday..Sunday
	ActiveDays        []int      // days of the current month with a session
}

// ExercisePoint is one session's best set weight for an exercise.
type ExercisePoint struct {
	Date     time.Time
	WeightKg float64
}

// Summarize computes the overview for a user. now anchors the current-month
// activity calendar.
func Summarize(s SessionStore, userID int64, now time.Time) (*Summary, error) {
	sessions, err := s.ListUserSessions(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	sum := &Summary{CompletedWorkouts: len(sessions)}
	activeDays := make(map[int]bool)

	for _, session := range sessions {
		sets, err := s.ListSessionSets(session.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets: %w", err)
		}

		var volume float64
		for _, set := range sets {
			volume += set.Volume()
		}
		sum.TotalVolumeKg += volume

		// time.Weekday counts Sunday=0; the plan week runs Monday=1.
		weekday := (int(session.StartTime.Weekday()) + 6) % 7
		sum.WeekdayVolume[weekday] += volume

		if session.SessionDate.Year() == now.Year() && session.SessionDate.Month() == now.Month() {
			activeDays[session.SessionDate.Day()] = true
		}
	}

	for day := 1; day <= 31; day++ {
		if activeDays[day] {
			sum.ActiveDays = append(sum.ActiveDays, day)
		}
	}
	return sum, nil
}

// ExerciseProgression returns the best set weight per session for one
// exercise, oldest first, for charting strength over time.
func ExerciseProgression(s SessionStore, userID, exerciseID int64) ([]ExercisePoint, error) {
	sessions, err := s.ListUserSessions(userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	var points []ExercisePoint
	// Sessions list newest-first; walk backwards for a chronological series.
	for i := len(sessions) - 1; i >= 0; i-- {
		session := sessions[i]
		sets, err := s.ListSessionSets(session.ID)
		if err != nil {
			return nil, fmt.Errorf("list sets: %w", err)
		}

		var best float64
		var found bool
		for _, set := range sets {
			if set.ExerciseID == exerciseID && set.WeightKg > best {
				best = set.WeightKg
				found = true
			}
		}
		if found {
			points = append(points, ExercisePoint{Date: session.StartTime, WeightKg: best})
		}
	}
	return points, nil
}
