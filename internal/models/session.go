// ABOUTME: Workout session and per-set rows as logged by the user.
// ABOUTME: Sets order by (exercise id, set number) for display.
package models

import "time"

// WorkoutSession is one finished workout. Sessions are never deleted in the
// normal flow.
type WorkoutSession struct {
	ID              int64
	UserID          int64
	SessionDate     time.Time
	StartTime       time.Time
	EndTime         time.Time
	DurationMinutes int
	Notes           *string
}

// NewWorkoutSession creates an unpersisted session spanning start..end.
func NewWorkoutSession(userID int64, start, end time.Time) *WorkoutSession {
	return &WorkoutSession{
		UserID:          userID,
		SessionDate:     start.Truncate(24 * time.Hour),
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: int(end.Sub(start).Minutes()),
	}
}

// WithNotes sets the session notes.
func (s *WorkoutSession) WithNotes(notes string) *WorkoutSession {
	s.Notes = &notes
	return s
}

// WorkoutSet is a single set within a session.
type WorkoutSet struct {
	ID         int64
	SessionID  int64
	ExerciseID int64
	SetNumber  int
	Reps       int
	WeightKg   float64
	IsWarmup   bool
	IsDropset  bool
	IsFailure  bool
}

// Volume returns reps x weight for this set.
func (s *WorkoutSet) Volume() float64 {
	return float64(s.Reps) * s.WeightKg
}
