// ABOUTME: User account and per-user profile settings rows.
// ABOUTME: Zero ID means the row has not been persisted yet.
package models

import "time"

// User represents an account row. Email and username are unique.
type User struct {
	ID                int64
	Username          string
	Email             string
	PasswordHash      string
	PreferredLanguage string
	CreatedAt         time.Time
	LastLogin         *time.Time
}

// NewUser creates an unpersisted user with the default language.
func NewUser(username, email, passwordHash string) *User {
	return &User{
		Username:          username,
		Email:             email,
		PasswordHash:      passwordHash,
		PreferredLanguage: "en",
		CreatedAt:         time.Now(),
	}
}

// UserProfile holds the training settings a plan is generated from.
// One row per user.
type UserProfile struct {
	ID              int64
	UserID          int64
	Age             *int
	Gender          *string
	WeightKg        *float64
	HeightCm        *float64
	FitnessGoal     Goal
	ExperienceLevel Level
	Equipment       Equipment
	DaysPerWeek     int
	ActivePlanID    *string
	UpdatedAt       time.Time
}

// DefaultProfile returns the settings a fresh install starts with.
func DefaultProfile(userID int64) *UserProfile {
	return &UserProfile{
		UserID:          userID,
		FitnessGoal:     GoalMuscleGain,
		ExperienceLevel: LevelBeginner,
		Equipment:       EquipmentGym,
		DaysPerWeek:     3,
		UpdatedAt:       time.Now(),
	}
}
