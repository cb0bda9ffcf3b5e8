// ABOUTME: Tests for the personal record tracker.
// ABOUTME: Equal weights never count; only strict improvement inserts.
package tracker

import (
	"testing"

	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/store"
)

// fakeRecordStore keeps record rows in memory, best-by-value like the real
// store query.
type fakeRecordStore struct {
	rows []*models.PersonalRecord
}

func (f *fakeRecordStore) GetBestRecord(userID, exerciseID int64, recordType string) (*models.PersonalRecord, error) {
	var best *models.PersonalRecord
	for _, r := range f.rows {
		if r.UserID != userID || r.ExerciseID != exerciseID || r.RecordType != recordType {
			continue
		}
		if best == nil || r.Value > best.Value {
			best = r
		}
	}
	if best == nil {
		return nil, store.ErrNotFound
	}
	return best, nil
}

func (f *fakeRecordStore) InsertPersonalRecord(r *models.PersonalRecord) error {
	r.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, r)
	return nil
}

func TestUpdateIfBetterFirstRecord(t *testing.T) {
	fake := &fakeRecordStore{}
	tr := New(fake)

	isNew, err := tr.UpdateIfBetter(1, 10, 80, 100)
	if err != nil {
		t.Fatalf("UpdateIfBetter: %v", err)
	}
	if !isNew {
		t.Error("first weight for an exercise should be a record")
	}
	if len(fake.rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(fake.rows))
	}
	r := fake.rows[0]
	if r.RecordType != models.RecordType1RM || r.Unit != "kg" || r.Value != 80 {
		t.Errorf("unexpected record row: %+v", r)
	}
}

func TestUpdateIfBetterStrictImprovement(t *testing.T) {
	fake := &fakeRecordStore{}
	tr := New(fake)

	weights := []struct {
		weight float64
		isNew  bool
	}{
		{80, true},
		{80, false}, // ties never count
		{79, false},
		{81, true},
	}
	for _, tc := range weights {
		isNew, err := tr.UpdateIfBetter(1, 10, tc.weight, 100)
		if err != nil {
			t.Fatalf("UpdateIfBetter(%.0f): %v", tc.weight, err)
		}
		if isNew != tc.isNew {
			t.Errorf("UpdateIfBetter(%.0f) = %v, want %v", tc.weight, isNew, tc.isNew)
		}
	}

	// Only the two improvements inserted rows; nothing was overwritten.
	if len(fake.rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(fake.rows))
	}
	if fake.rows[0].Value != 80 || fake.rows[1].Value != 81 {
		t.Errorf("rows = %.0f, %.0f, want 80, 81", fake.rows[0].Value, fake.rows[1].Value)
	}
}

func TestUpdateIfBetterSeparateExercises(t *testing.T) {
	fake := &fakeRecordStore{}
	tr := New(fake)

	if _, err := tr.UpdateIfBetter(1, 10, 100, 1); err != nil {
		t.Fatalf("UpdateIfBetter: %v", err)
	}

	// A lighter weight on a different exercise is still that exercise's first
	// record.
	isNew, err := tr.UpdateIfBetter(1, 11, 60, 1)
	if err != nil {
		t.Fatalf("UpdateIfBetter: %v", err)
	}
	if !isNew {
		t.Error("records must be tracked per exercise")
	}
}
