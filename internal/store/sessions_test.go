// ABOUTME: Tests for session and set persistence.
// ABOUTME: The transactional save must stamp session ids and keep set order.
package store

import (
	"testing"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

func TestSaveSessionWithSets(t *testing.T) {
	d := newTestDB(t)
	u := newTestUser(t, d)
	bench := seededExercise(t, d, "Bench press")
	squat, err := d.GetExerciseByName("Squat")
	if err != nil {
		t.Fatalf("GetExerciseByName: %v", err)
	}

	start := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	session := models.NewWorkoutSession(u.ID, start, start.Add(45*time.Minute))
	sets := []*models.WorkoutSet{
		{ExerciseID: squat.ID, SetNumber: 1, Reps: 5, WeightKg: 100},
		{ExerciseID: bench.ID, SetNumber: 1, Reps: 5, WeightKg: 80},
		{ExerciseID: bench.ID, SetNumber: 2, Reps: 5, WeightKg: 85},
	}

	if err := d.SaveSessionWithSets(session, sets); err != nil {
		t.Fatalf("SaveSessionWithSets: %v", err)
	}
	if session.ID == 0 {
		t.Fatal("expected assigned session id")
	}
	for i, set := range sets {
		if set.SessionID != session.ID {
			t.Errorf("set %d session id = %d, want %d", i, set.SessionID, session.ID)
		}
		if set.ID == 0 {
			t.Errorf("set %d has no assigned id", i)
		}
	}

	got, err := d.ListSessionSets(session.ID)
	if err != nil {
		t.Fatalf("ListSessionSets: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d sets, want 3", len(got))
	}
	// Ordered by (exercise id, set number): bench set 1, bench set 2, squat.
	if got[0].ExerciseID != bench.ID || got[0].SetNumber != 1 {
		t.Errorf("unexpected first set: exercise %d set %d", got[0].ExerciseID, got[0].SetNumber)
	}
	if got[1].ExerciseID != bench.ID || got[1].SetNumber != 2 {
		t.Errorf("unexpected second set: exercise %d set %d", got[1].ExerciseID, got[1].SetNumber)
	}
	if got[2].ExerciseID != squat.ID {
		t.Errorf("unexpected third set: exercise %d", got[2].ExerciseID)
	}
}

func TestSessionDurationComputed(t *testing.T) {
	start := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	s := models.NewWorkoutSession(1, start, start.Add(75*time.Minute))
	if s.DurationMinutes != 75 {
		t.Errorf("duration = %d, want 75", s.DurationMinutes)
	}
}

func TestListUserSessionsNewestFirst(t *testing.T) {
	d := newTestDB(t)
	u := newTestUser(t, d)

	base := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		newTestSession(t, d, u.ID, base.AddDate(0, 0, i))
	}

	sessions, err := d.ListUserSessions(u.ID, 0)
	if err != nil {
		t.Fatalf("ListUserSessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("got %d sessions, want 3", len(sessions))
	}
	for i := 1; i < len(sessions); i++ {
		if sessions[i-1].SessionDate.Before(sessions[i].SessionDate) {
			t.Error("sessions not newest-first")
		}
	}

	limited, err := d.ListUserSessions(u.ID, 2)
	if err != nil {
		t.Fatalf("ListUserSessions limit: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("got %d sessions with limit 2", len(limited))
	}
}

func TestSessionNotesRoundTrip(t *testing.T) {
	d := newTestDB(t)
	u := newTestUser(t, d)

	start := time.Date(2026, 8, 24, 18, 0, 0, 0, time.UTC)
	session := models.NewWorkoutSession(u.ID, start, start.Add(time.Hour)).WithNotes("Push day")
	if err := d.SaveWorkoutSession(session); err != nil {
		t.Fatalf("SaveWorkoutSession: %v", err)
	}

	got, err := d.GetWorkoutSession(session.ID)
	if err != nil {
		t.Fatalf("GetWorkoutSession: %v", err)
	}
	if got.Notes == nil || *got.Notes != "Push day" {
		t.Errorf("notes = %v, want Push day", got.Notes)
	}
}
