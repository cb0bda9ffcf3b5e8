// ABOUTME: Append-only personal record rows.
// ABOUTME: Current best is always MAX(value) per (user, exercise, type), never a pointer.
package models

import "time"

// RecordType1RM is the single-lift max-weight record type.
const RecordType1RM = "1RM"

// PersonalRecord is one achieved record. Rows are append-only: a new best
// inserts a row, the previous best is kept.
type PersonalRecord struct {
	ID           int64
	UserID       int64
	ExerciseID   int64
	RecordType   string
	Value        float64
	Unit         string
	AchievedDate time.Time
	SessionID    int64
	Notes        *string
}

// NewMaxWeightRecord creates an unpersisted 1RM record in kilograms.
func NewMaxWeightRecord(userID, exerciseID int64, weightKg float64, sessionID int64) *PersonalRecord {
	return &PersonalRecord{
		UserID:       userID,
		ExerciseID:   exerciseID,
		RecordType:   RecordType1RM,
		Value:        weightKg,
		Unit:         "kg",
		AchievedDate: time.Now(),
		SessionID:    sessionID,
	}
}
