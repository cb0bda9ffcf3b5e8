// ABOUTME: Profile and workout-log preference blobs over a key-value store.
// ABOUTME: Missing or corrupt entries yield defaults, never an error.
package prefs

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/holdonapp/holdon/internal/models"
)

const (
	profileKey  = "profile"
	workoutsKey = "workouts"
)

// KV is the slice of a key-value store the preference layer needs. The charm
// KV client satisfies it; tests use an in-memory fake.
type KV interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Close() error
}

// Profile is the single serialized user profile blob.
type Profile struct {
	Name            string           `json:"name"`
	WeightKg        float64          `json:"weight_kg,omitempty"`
	HeightCm        float64          `json:"height_cm,omitempty"`
	FitnessGoal     models.Goal      `json:"fitness_goal"`
	Equipment       models.Equipment `json:"equipment"`
	ExperienceLevel models.Level     `json:"experience_level"`
	DaysPerWeek     int              `json:"days_per_week"`
	ActivePlanID    string           `json:"active_plan_id,omitempty"`
	TargetCalories  float64          `json:"target_calories,omitempty"`
	TargetProtein   float64          `json:"target_protein,omitempty"`
}

// DefaultProfile is what a fresh install reads before anything is saved.
func DefaultProfile() *Profile {
	return &Profile{
		Name:            "Athlete",
		FitnessGoal:     models.GoalMuscleGain,
		Equipment:       models.EquipmentGym,
		ExperienceLevel: models.LevelBeginner,
		DaysPerWeek:     3,
		TargetCalories:  2800,
		TargetProtein:   180,
	}
}

// Workout is one lightweight entry in the preferences workout log, kept
// alongside the relational store for quick history display.
type Workout struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Date          time.Time `json:"date"`
	TotalVolumeKg float64   `json:"total_volume_kg"`
}

// Store reads and writes the two preference blobs.
type Store struct {
	kv KV
	mu sync.Mutex
}

// NewStore wraps a key-value backend.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.kv.Close()
}

// GetProfile reads the profile blob. A missing or unreadable entry yields
// the default profile.
func (s *Store) GetProfile() *Profile {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get([]byte(profileKey))
	if err != nil || len(data) == 0 {
		return DefaultProfile()
	}

	var p Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return DefaultProfile()
	}
	return &p
}

// SaveProfile overwrites the profile blob.
func (s *Store) SaveProfile(p *Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return s.kv.Set([]byte(profileKey), data)
}

// GetWorkouts reads the ordered workout log. A missing or unreadable entry
// yields an empty log.
func (s *Store) GetWorkouts() []Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readWorkouts()
}

// AppendWorkout adds one entry to the end of the workout log.
func (s *Store) AppendWorkout(name string, date time.Time, totalVolume float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	workouts := s.readWorkouts()
	workouts = append(workouts, Workout{
		ID:            uuid.New(),
		Name:          name,
		Date:          date,
		TotalVolumeKg: totalVolume,
	})

	data, err := json.Marshal(workouts)
	if err != nil {
		return err
	}
	return s.kv.Set([]byte(workoutsKey), data)
}

func (s *Store) readWorkouts() []Workout {
	data, err := s.kv.Get([]byte(workoutsKey))
	if err != nil || len(data) == 0 {
		return nil
	}
	var workouts []Workout
	if err := json.Unmarshal(data, &workouts); err != nil {
		return nil
	}
	return workouts
}
