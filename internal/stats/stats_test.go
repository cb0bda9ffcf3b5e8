// ABOUTME: Tests for progress statistics over an in-memory session store.
// ABOUTME: Weekday buckets run Monday-first; active days track the given month.
package stats

import (
	"testing"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

// fakeSessions returns sessions newest-first like the real store.
type fakeSessions struct {
	sessions []*models.WorkoutSession
	sets     map[int64][]*models.WorkoutSet
}

func (f *fakeSessions) ListUserSessions(userID int64, limit int) ([]*models.WorkoutSession, error) {
	return f.sessions, nil
}

func (f *fakeSessions) ListSessionSets(sessionID int64) ([]*models.WorkoutSet, error) {
	return f.sets[sessionID], nil
}

func session(id int64, start time.Time) *models.WorkoutSession {
	s := models.NewWorkoutSession(1, start, start.Add(time.Hour))
	s.ID = id
	return s
}

func TestSummarize(t *testing.T) {
	// 2026-08-24 is a Monday, 2026-08-26 a Wednesday.
	monday := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	wednesday := time.Date(2026, 8, 26, 18, 0, 0, 0, time.UTC)

	f := &fakeSessions{
		sessions: []*models.WorkoutSession{session(2, wednesday), session(1, monday)},
		sets: map[int64][]*models.WorkoutSet{
			1: {
				{ExerciseID: 10, Reps: 5, WeightKg: 100}, // 500
				{ExerciseID: 10, Reps: 5, WeightKg: 110}, // 550
			},
			2: {
				{ExerciseID: 11, Reps: 10, WeightKg: 60}, // 600
			},
		},
	}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	sum, err := Summarize(f, 1, now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}

	if sum.CompletedWorkouts != 2 {
		t.Errorf("workouts = %d, want 2", sum.CompletedWorkouts)
	}
	if sum.TotalVolumeKg != 1650 {
		t.Errorf("volume = %.0f, want 1650", sum.TotalVolumeKg)
	}
	if sum.WeekdayVolume[0] != 1050 {
		t.Errorf("Monday volume = %.0f, want 1050", sum.WeekdayVolume[0])
	}
	if sum.WeekdayVolume[2] != 600 {
		t.Errorf("Wednesday volume = %.0f, want 600", sum.WeekdayVolume[2])
	}
	if sum.WeekdayVolume[6] != 0 {
		t.Errorf("Sunday volume = %.0f, want 0", sum.WeekdayVolume[6])
	}

	wantDays := []int{24, 26}
	if len(sum.ActiveDays) != len(wantDays) {
		t.Fatalf("active days = %v, want %v", sum.ActiveDays, wantDays)
	}
	for i, d := range wantDays {
		if sum.ActiveDays[i] != d {
			t.Errorf("active days = %v, want %v", sum.ActiveDays, wantDays)
		}
	}
}

func TestSummarizeIgnoresOtherMonths(t *testing.T) {
	july := time.Date(2026, 7, 10, 18, 0, 0, 0, time.UTC)
	f := &fakeSessions{
		sessions: []*models.WorkoutSession{session(1, july)},
		sets:     map[int64][]*models.WorkoutSet{},
	}

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	sum, err := Summarize(f, 1, now)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if len(sum.ActiveDays) != 0 {
		t.Errorf("July session counted in August calendar: %v", sum.ActiveDays)
	}
	if sum.CompletedWorkouts != 1 {
		t.Errorf("workouts = %d, want 1 (totals span all time)", sum.CompletedWorkouts)
	}
}

func TestSummarizeEmptyHistory(t *testing.T) {
	sum, err := Summarize(&fakeSessions{}, 1, time.Now())
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if sum.CompletedWorkouts != 0 || sum.TotalVolumeKg != 0 || len(sum.ActiveDays) != 0 {
		t.Errorf("empty history summary = %+v", sum)
	}
}

func TestExerciseProgressionChronological(t *testing.T) {
	day1 := time.Date(2026, 8, 17, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)

	// Newest-first input, like the store returns.
	f := &fakeSessions{
		sessions: []*models.WorkoutSession{session(2, day2), session(1, day1)},
		sets: map[int64][]*models.WorkoutSet{
			1: {
				{ExerciseID: 10, Reps: 5, WeightKg: 80},
				{ExerciseID: 10, Reps: 5, WeightKg: 85},
				{ExerciseID: 11, Reps: 10, WeightKg: 200}, // other exercise
			},
			2: {
				{ExerciseID: 10, Reps: 5, WeightKg: 90},
			},
		},
	}

	points, err := ExerciseProgression(f, 1, 10)
	if err != nil {
		t.Fatalf("ExerciseProgression: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("got %d points, want 2", len(points))
	}
	if points[0].WeightKg != 85 || points[1].WeightKg != 90 {
		t.Errorf("points = %.0f, %.0f, want 85, 90 (oldest first, best set)", points[0].WeightKg, points[1].WeightKg)
	}
	if !points[0].Date.Before(points[1].Date) {
		t.Error("points not in chronological order")
	}
}

func TestExerciseProgressionSkipsSessionsWithoutExercise(t *testing.T) {
	day := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	f := &fakeSessions{
		sessions: []*models.WorkoutSession{session(1, day)},
		sets: map[int64][]*models.WorkoutSet{
			1: {{ExerciseID: 99, Reps: 5, WeightKg: 100}},
		},
	}

	points, err := ExerciseProgression(f, 1, 10)
	if err != nil {
		t.Fatalf("ExerciseProgression: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("got %d points for an unlogged exercise", len(points))
	}
}
