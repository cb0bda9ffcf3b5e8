// ABOUTME: Shared test fixtures for the store package.
// ABOUTME: Each test gets a fresh SQLite file in a temp directory.
package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/holdonapp/holdon/internal/models"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

// newTestUser inserts a user row so foreign keys on sessions and records hold.
func newTestUser(t *testing.T, d *DB) *models.User {
	t.Helper()
	u := models.NewUser("tester", "tester@example.com", "hash")
	if err := d.SaveUser(u); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	return u
}

// seededExercise seeds the reference set and returns the exercise by name.
func seededExercise(t *testing.T, d *DB, name string) *models.Exercise {
	t.Helper()
	if err := d.SeedExercisesIfEmpty(); err != nil {
		t.Fatalf("SeedExercisesIfEmpty: %v", err)
	}
	ex, err := d.GetExerciseByName(name)
	if err != nil {
		t.Fatalf("GetExerciseByName(%q): %v", name, err)
	}
	return ex
}

func newTestSession(t *testing.T, d *DB, userID int64, start time.Time) *models.WorkoutSession {
	t.Helper()
	s := models.NewWorkoutSession(userID, start, start.Add(time.Hour))
	if err := d.SaveWorkoutSession(s); err != nil {
		t.Fatalf("SaveWorkoutSession: %v", err)
	}
	return s
}
