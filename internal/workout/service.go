// ABOUTME: The finish-workout aggregate: session + sets + record checks + feed entry.
// ABOUTME: Session and sets commit in one transaction; records append after commit.
package workout

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/tracker"
)

// ErrEmptyWorkout is returned when a save is attempted with no exercises.
// Nothing is written; callers treat it as a no-op.
var ErrEmptyWorkout = errors.New("workout has no exercises")

// SetEntry is one logged set of an exercise.
type SetEntry struct {
	Reps     int
	WeightKg float64
	IsWarmup bool
}

// ExerciseEntry groups the sets logged for one exercise.
type ExerciseEntry struct {
	ExerciseID int64
	Name       string
	Sets       []SetEntry
}

// NewRecord reports a personal best achieved during a save.
type NewRecord struct {
	ExerciseName string
	WeightKg     float64
}

// Result is what a completed save reports back for user-facing confirmation.
type Result struct {
	Session    *models.WorkoutSession
	NewRecords []NewRecord
}

// SessionStore is the slice of the persistence gateway the service needs.
type SessionStore interface {
	SaveSessionWithSets(s *models.WorkoutSession, sets []*models.WorkoutSet) error
	InsertActivity(a *models.Activity) error
	tracker.RecordStore
}

// Mirror receives a lightweight copy of each finished workout. The
// preferences workout log implements it; a nil mirror skips the copy.
type Mirror interface {
	AppendWorkout(name string, date time.Time, totalVolume float64) error
}

// Service orchestrates the multi-step workout save.
type Service struct {
	store   SessionStore
	tracker *tracker.Tracker
	mirror  Mirror
	logger  *log.Logger
}

// NewService creates a workout service. mirror may be nil.
func NewService(s SessionStore, mirror Mirror, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{
		store:   s,
		tracker: tracker.New(s),
		mirror:  mirror,
		logger:  logger,
	}
}

// Save persists a finished workout for userID. The session row and every set
// row are written in one transaction; each exercise's max weight then runs
// through the record tracker. Returns the achieved records for confirmation.
// An empty exercise list aborts before anything is written.
func (s *Service) Save(userID int64, name string, start, end time.Time, entries []ExerciseEntry) (*Result, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyWorkout
	}

	session := models.NewWorkoutSession(userID, start, end)
	if name != "" {
		session.WithNotes(name)
	}

	var sets []*models.WorkoutSet
	for _, entry := range entries {
		for i, set := range entry.Sets {
			sets = append(sets, &models.WorkoutSet{
				ExerciseID: entry.ExerciseID,
				SetNumber:  i + 1,
				Reps:       set.Reps,
				WeightKg:   set.WeightKg,
				IsWarmup:   set.IsWarmup,
			})
		}
	}

	if err := s.store.SaveSessionWithSets(session, sets); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}
	s.logger.Debug("session saved", "session_id", session.ID, "sets", len(sets))

	// Record check runs once per exercise against the session max, not per set.
	var newRecords []NewRecord
	for _, entry := range entries {
		if len(entry.Sets) == 0 {
			continue
		}
		maxWeight := entry.Sets[0].WeightKg
		for _, set := range entry.Sets[1:] {
			if set.WeightKg > maxWeight {
				maxWeight = set.WeightKg
			}
		}

		isNew, err := s.tracker.UpdateIfBetter(userID, entry.ExerciseID, maxWeight, session.ID)
		if err != nil {
			return nil, fmt.Errorf("record check for %s: %w", entry.Name, err)
		}
		if isNew {
			newRecords = append(newRecords, NewRecord{ExerciseName: entry.Name, WeightKg: maxWeight})
		}
	}

	s.postActivity(userID, name, entries, newRecords)
	s.mirrorWorkout(name, session, entries)

	return &Result{Session: session, NewRecords: newRecords}, nil
}

// postActivity appends the feed entry for a finished workout. Feed failures
// are logged, not fatal: the session is already committed.
func (s *Service) postActivity(userID int64, name string, entries []ExerciseEntry, newRecords []NewRecord) {
	if name == "" {
		name = "Workout"
	}
	payload := fmt.Sprintf("%s (%d exercises)", name, len(entries))
	if err := s.store.InsertActivity(models.NewActivity(userID, models.ActivityWorkoutCompleted, payload)); err != nil {
		s.logger.Warn("activity feed write failed", "err", err)
	}
	for _, r := range newRecords {
		payload := fmt.Sprintf("%s: %.1f kg", r.ExerciseName, r.WeightKg)
		if err := s.store.InsertActivity(models.NewActivity(userID, models.ActivityNewRecord, payload)); err != nil {
			s.logger.Warn("activity feed write failed", "err", err)
		}
	}
}

// mirrorWorkout copies the finished workout into the preferences log.
func (s *Service) mirrorWorkout(name string, session *models.WorkoutSession, entries []ExerciseEntry) {
	if s.mirror == nil {
		return
	}
	var volume float64
	for _, entry := range entries {
		for _, set := range entry.Sets {
			volume += float64(set.Reps) * set.WeightKg
		}
	}
	if name == "" {
		name = "Workout"
	}
	if err := s.mirror.AppendWorkout(name, session.StartTime, volume); err != nil {
		s.logger.Warn("workout log mirror failed", "err", err)
	}
}
