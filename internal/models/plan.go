// ABOUTME: Generated weekly workout plan types and the goal/equipment/level enums.
// ABOUTME: Plans are regenerated deterministically from profile settings, never stored.
package models

// Goal selects which plan catalog a weekly plan is generated from.
type Goal string

const (
	GoalMuscleGain   Goal = "muscle_gain"
	GoalWeightLoss   Goal = "weight_loss"
	GoalStrength     Goal = "strength"
	GoalConditioning Goal = "conditioning"
)

// AllGoals lists the supported plan goals in catalog order.
var AllGoals = []Goal{GoalMuscleGain, GoalWeightLoss, GoalStrength, GoalConditioning}

// IsValidGoal checks whether s names a supported goal.
func IsValidGoal(s string) bool {
	for _, g := range AllGoals {
		if string(g) == s {
			return true
		}
	}
	return false
}

// Equipment describes what the user trains with.
type Equipment string

const (
	EquipmentGym     Equipment = "gym"
	EquipmentHome    Equipment = "home"
	EquipmentMinimal Equipment = "minimal"
)

// Level is the user's training experience level.
type Level string

const (
	LevelBeginner Level = "beginner"
	LevelAdvanced Level = "advanced"
)

// WorkoutPlan is a full generated weekly template. The seven WorkoutDays
// cover day numbers 1..7 exactly once after rest-day fill.
type WorkoutPlan struct {
	ID            string
	Name          string
	Description   string
	Goal          Goal
	Equipment     Equipment
	Level         Level
	DaysPerWeek   int
	DurationWeeks int
	Days          []WorkoutDay
}

// WorkoutDay is one calendar-day slot, Monday=1 through Sunday=7.
type WorkoutDay struct {
	DayNumber int
	DayName   string
	Focus     string
	Exercises []PlannedExercise
	IsRestDay bool
}

// PlannedExercise is a single prescription within a training day.
// Reps is descriptive ("8-12", "AMRAP", "30s on / 30s off"), not numeric.
type PlannedExercise struct {
	Name     string
	Sets     int
	Reps     string
	RestTime string
	Notes    string
	VideoURL string
}
