// ABOUTME: Tests for the finish-workout service over a real SQLite store.
// ABOUTME: Covers the empty-save guard, record detection, and the mirror copy.
package workout

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/store"
)

type capturedWorkout struct {
	name   string
	volume float64
}

type fakeMirror struct {
	workouts []capturedWorkout
}

func (m *fakeMirror) AppendWorkout(name string, date time.Time, totalVolume float64) error {
	m.workouts = append(m.workouts, capturedWorkout{name: name, volume: totalVolume})
	return nil
}

func newTestService(t *testing.T) (*Service, *store.DB, *fakeMirror, int64, int64) {
	t.Helper()
	d, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })

	u := models.NewUser("tester", "tester@example.com", "hash")
	if err := d.SaveUser(u); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}
	if err := d.SeedExercisesIfEmpty(); err != nil {
		t.Fatalf("seed: %v", err)
	}
	bench, err := d.GetExerciseByName("Bench press")
	if err != nil {
		t.Fatalf("GetExerciseByName: %v", err)
	}

	mirror := &fakeMirror{}
	logger := log.New(io.Discard)
	return NewService(d, mirror, logger), d, mirror, u.ID, bench.ID
}

func TestSaveEmptyWorkout(t *testing.T) {
	service, d, _, userID, _ := newTestService(t)

	_, err := service.Save(userID, "Empty", time.Now(), time.Now(), nil)
	if !errors.Is(err, ErrEmptyWorkout) {
		t.Fatalf("got %v, want ErrEmptyWorkout", err)
	}

	sessions, err := d.ListUserSessions(userID, 0)
	if err != nil {
		t.Fatalf("ListUserSessions: %v", err)
	}
	if len(sessions) != 0 {
		t.Errorf("empty save wrote %d sessions", len(sessions))
	}
}

func TestSavePersistsSessionAndSets(t *testing.T) {
	service, d, _, userID, benchID := newTestService(t)

	end := time.Now()
	entries := []ExerciseEntry{{
		ExerciseID: benchID,
		Name:       "Bench press",
		Sets: []SetEntry{
			{Reps: 5, WeightKg: 80},
			{Reps: 5, WeightKg: 85},
			{Reps: 3, WeightKg: 90},
		},
	}}

	result, err := service.Save(userID, "Push day", end.Add(-time.Hour), end, entries)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if result.Session.ID == 0 {
		t.Fatal("expected persisted session id")
	}
	if result.Session.Notes == nil || *result.Session.Notes != "Push day" {
		t.Errorf("notes = %v, want Push day", result.Session.Notes)
	}

	sets, err := d.ListSessionSets(result.Session.ID)
	if err != nil {
		t.Fatalf("ListSessionSets: %v", err)
	}
	if len(sets) != 3 {
		t.Fatalf("got %d sets, want 3", len(sets))
	}
	for i, set := range sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d numbered %d", i, set.SetNumber)
		}
	}
}

func TestSaveReportsNewRecords(t *testing.T) {
	service, d, _, userID, benchID := newTestService(t)

	entry := func(weights ...float64) []ExerciseEntry {
		var sets []SetEntry
		for _, w := range weights {
			sets = append(sets, SetEntry{Reps: 5, WeightKg: w})
		}
		return []ExerciseEntry{{ExerciseID: benchID, Name: "Bench press", Sets: sets}}
	}
	save := func(weights ...float64) *Result {
		t.Helper()
		end := time.Now()
		result, err := service.Save(userID, "", end.Add(-time.Hour), end, entry(weights...))
		if err != nil {
			t.Fatalf("Save: %v", err)
		}
		return result
	}

	// First session: the max set (85) is the first record.
	result := save(80, 85)
	if len(result.NewRecords) != 1 || result.NewRecords[0].WeightKg != 85 {
		t.Fatalf("first save records = %+v, want one at 85", result.NewRecords)
	}

	// Matching the best is not a record.
	result = save(85)
	if len(result.NewRecords) != 0 {
		t.Fatalf("tie reported as record: %+v", result.NewRecords)
	}

	// Beating it is.
	result = save(86)
	if len(result.NewRecords) != 1 || result.NewRecords[0].WeightKg != 86 {
		t.Fatalf("improvement records = %+v, want one at 86", result.NewRecords)
	}

	n, err := d.CountRecords(userID, benchID, models.RecordType1RM)
	if err != nil {
		t.Fatalf("CountRecords: %v", err)
	}
	if n != 2 {
		t.Errorf("record rows = %d, want 2 (append-only, ties skipped)", n)
	}
}

func TestSavePostsActivityFeed(t *testing.T) {
	service, d, _, userID, benchID := newTestService(t)

	end := time.Now()
	entries := []ExerciseEntry{{
		ExerciseID: benchID,
		Name:       "Bench press",
		Sets:       []SetEntry{{Reps: 5, WeightKg: 80}},
	}}
	if _, err := service.Save(userID, "Push day", end.Add(-time.Hour), end, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	feed, err := d.ListActivityFeed(userID, 0)
	if err != nil {
		t.Fatalf("ListActivityFeed: %v", err)
	}
	// One workout_completed entry plus one new_record entry.
	if len(feed) != 2 {
		t.Fatalf("got %d feed entries, want 2", len(feed))
	}
	types := map[string]bool{}
	for _, a := range feed {
		types[a.ActivityType] = true
	}
	if !types[models.ActivityWorkoutCompleted] || !types[models.ActivityNewRecord] {
		t.Errorf("feed types = %v", types)
	}
}

func TestSaveMirrorsWorkoutLog(t *testing.T) {
	service, _, mirror, userID, benchID := newTestService(t)

	end := time.Now()
	entries := []ExerciseEntry{{
		ExerciseID: benchID,
		Name:       "Bench press",
		Sets: []SetEntry{
			{Reps: 5, WeightKg: 80},
			{Reps: 5, WeightKg: 85},
		},
	}}
	if _, err := service.Save(userID, "Push day", end.Add(-time.Hour), end, entries); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if len(mirror.workouts) != 1 {
		t.Fatalf("mirror got %d workouts, want 1", len(mirror.workouts))
	}
	got := mirror.workouts[0]
	if got.name != "Push day" {
		t.Errorf("mirror name = %q", got.name)
	}
	if want := 5*80.0 + 5*85.0; got.volume != want {
		t.Errorf("mirror volume = %.1f, want %.1f", got.volume, want)
	}
}
