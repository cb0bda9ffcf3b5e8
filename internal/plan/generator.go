// ABOUTME: Deterministic weekly plan generation from profile settings.
// ABOUTME: Pure functions, no I/O; same inputs always yield the same plan.
package plan

import (
	"errors"
	"fmt"
	"sort"

	"github.com/holdonapp/holdon/internal/models"
)

// ErrUnknownGoal is returned for a goal outside the supported catalog. The
// original app silently produced an all-rest week here; that fallback hid
// typos, so unsupported goals now fail loudly.
var ErrUnknownGoal = errors.New("unknown plan goal")

// dayNames maps day number 1..7 to its display name, Monday first.
var dayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName returns the display name for day number 1..7.
func DayName(dayNumber int) string {
	if dayNumber < 1 || dayNumber > 7 {
		return ""
	}
	return dayNames[dayNumber-1]
}

// Generate maps (goal, equipment, level, daysPerWeek) to a complete weekly
// plan. Deterministic for a fixed catalog version. Fewer than 3 training days
// per week yields an all-rest week; the catalog currently schedules exactly
// three training days at positions 1/3/5.
func Generate(goal models.Goal, equipment models.Equipment, level models.Level, daysPerWeek int) (*models.WorkoutPlan, error) {
	p := &models.WorkoutPlan{
		ID:            planID(goal, equipment, level, daysPerWeek),
		Goal:          goal,
		Equipment:     equipment,
		Level:         level,
		DaysPerWeek:   daysPerWeek,
		DurationWeeks: 8,
	}

	switch goal {
	case models.GoalMuscleGain:
		p.Name = "Muscle mass builder"
		p.Description = "8-week program for building muscle mass with high-volume training"
		if daysPerWeek >= 3 {
			p.Days = muscleGainDays()
		}
	case models.GoalWeightLoss:
		p.Name = "Fat loss and definition"
		p.Description = "8-week program for losing fat and defining muscle"
		if daysPerWeek >= 3 {
			p.Days = weightLossDays()
		}
	case models.GoalStrength:
		p.Name = "Strength development"
		p.Description = "8-week program for building strength in the main lifts"
		if daysPerWeek >= 3 {
			p.Days = strengthDays()
		}
	case models.GoalConditioning:
		p.Name = "Conditioning improvement"
		p.Description = "8-week program for cardiovascular conditioning"
		if daysPerWeek >= 3 {
			p.Days = conditioningDays()
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGoal, goal)
	}

	FillRestDays(p)
	return p, nil
}

// FillRestDays post-processes the day list so every day number 1-7 appears
// exactly once, inserting rest placeholders for missing days and sorting by
// day number. Idempotent: days already present are left untouched.
func FillRestDays(p *models.WorkoutPlan) {
	present := make(map[int]bool, len(p.Days))
	for _, d := range p.Days {
		present[d.DayNumber] = true
	}

	for day := 1; day <= 7; day++ {
		if present[day] {
			continue
		}
		p.Days = append(p.Days, models.WorkoutDay{
			DayNumber: day,
			DayName:   DayName(day),
			Focus:     "Rest",
			IsRestDay: true,
		})
	}

	sort.Slice(p.Days, func(i, j int) bool {
		return p.Days[i].DayNumber < p.Days[j].DayNumber
	})
}

// DefaultPlans generates one representative plan per supported goal, for the
// plan gallery. Fixed at gym equipment, beginner level, 3 days per week.
func DefaultPlans() []*models.WorkoutPlan {
	plans := make([]*models.WorkoutPlan, 0, len(models.AllGoals))
	for _, goal := range models.AllGoals {
		p, err := Generate(goal, models.EquipmentGym, models.LevelBeginner, 3)
		if err != nil {
			continue
		}
		plans = append(plans, p)
	}
	return plans
}

// planID is stable for a given settings tuple so the profile's active plan
// reference survives regeneration.
func planID(goal models.Goal, equipment models.Equipment, level models.Level, daysPerWeek int) string {
	return fmt.Sprintf("%s-%s-%s-%dd", goal, equipment, level, daysPerWeek)
}
