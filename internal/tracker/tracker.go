// ABOUTME: Personal-record decision logic over the append-only record table.
// ABOUTME: Only strict improvement over the current best inserts a new row.
package tracker

import (
	"errors"
	"fmt"

	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/store"
)

// RecordStore is the slice of the persistence gateway the tracker needs.
type RecordStore interface {
	GetBestRecord(userID, exerciseID int64, recordType string) (*models.PersonalRecord, error)
	InsertPersonalRecord(r *models.PersonalRecord) error
}

// Tracker decides whether a logged lift is a new personal best.
type Tracker struct {
	store RecordStore
}

// New creates a tracker over the given record store.
func New(s RecordStore) *Tracker {
	return &Tracker{store: s}
}

// UpdateIfBetter compares weightKg against the stored best 1RM for
// (userID, exerciseID) and appends a new record row when it is strictly
// greater, or when no record exists yet. Ties insert nothing. Returns whether
// a new record was achieved.
func (t *Tracker) UpdateIfBetter(userID, exerciseID int64, weightKg float64, sessionID int64) (bool, error) {
	best, err := t.store.GetBestRecord(userID, exerciseID, models.RecordType1RM)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return false, fmt.Errorf("get best record: %w", err)
	}

	if best != nil && weightKg <= best.Value {
		return false, nil
	}

	r := models.NewMaxWeightRecord(userID, exerciseID, weightKg, sessionID)
	notes := "Recorded automatically"
	r.Notes = &notes
	if err := t.store.InsertPersonalRecord(r); err != nil {
		return false, fmt.Errorf("insert record: %w", err)
	}
	return true, nil
}
