// ABOUTME: Static training-day templates for each supported goal.
// ABOUTME: Three training days at 1/3/5; rest-day fill completes the week.
package plan

import "github.com/holdonapp/holdon/internal/models"

// exercise builds a prescription with its video link resolved.
func exercise(name string, sets int, reps, rest string, notes ...string) models.PlannedExercise {
	e := models.PlannedExercise{
		Name:     name,
		Sets:     sets,
		Reps:     reps,
		RestTime: rest,
		VideoURL: ResolveVideoURL(name),
	}
	if len(notes) > 0 {
		e.Notes = notes[0]
	}
	return e
}

func muscleGainDays() []models.WorkoutDay {
	return []models.WorkoutDay{
		{
			DayNumber: 1,
			DayName:   DayName(1),
			Focus:     "Push day (Chest, Shoulders, Triceps)",
			Exercises: []models.PlannedExercise{
				exercise("Bench press", 4, "8-12", "90s"),
				exercise("Incline dumbbell press", 3, "10-12", "60s"),
				exercise("Shoulder press", 3, "10-12", "60s"),
				exercise("Lateral raises", 3, "12-15", "45s"),
				exercise("Triceps extensions", 3, "12-15", "45s"),
			},
		},
		{
			DayNumber: 3,
			DayName:   DayName(3),
			Focus:     "Pull day (Back, Biceps)",
			Exercises: []models.PlannedExercise{
				exercise("Deadlift", 4, "6-10", "120s"),
				exercise("Barbell row", 4, "8-12", "90s"),
				exercise("Lat pulldown", 3, "10-12", "60s"),
				exercise("Biceps curls", 3, "10-12", "60s"),
				exercise("Hammer curls", 3, "12-15", "45s"),
			},
		},
		{
			DayNumber: 5,
			DayName:   DayName(5),
			Focus:     "Leg day (Quads, Glutes, Calves)",
			Exercises: []models.PlannedExercise{
				exercise("Squat", 4, "8-12", "120s"),
				exercise("Leg press", 4, "10-12", "90s"),
				exercise("Romanian deadlift", 3, "10-12", "90s"),
				exercise("Leg curl", 3, "12-15", "60s"),
				exercise("Calf raises", 4, "15-20", "45s"),
			},
		},
	}
}

func weightLossDays() []models.WorkoutDay {
	return []models.WorkoutDay{
		{
			DayNumber: 1,
			DayName:   DayName(1),
			Focus:     "Full body + cardio",
			Exercises: []models.PlannedExercise{
				exercise("Squat", 3, "12-15", "60s"),
				exercise("Bench press", 3, "12-15", "60s"),
				exercise("Barbell row", 3, "12-15", "60s"),
				exercise("Shoulder press", 3, "12-15", "60s"),
				exercise("Cardio (run/cycle)", 1, "20 min", "-"),
			},
		},
		{
			DayNumber: 3,
			DayName:   DayName(3),
			Focus:     "HIIT training",
			Exercises: []models.PlannedExercise{
				exercise("Burpees", 4, "30s on / 30s off", "-"),
				exercise("Mountain climbers", 4, "30s on / 30s off", "-"),
				exercise("Jump rope", 4, "30s on / 30s off", "-"),
				exercise("Kettlebell swing", 4, "30s on / 30s off", "-"),
			},
		},
		{
			DayNumber: 5,
			DayName:   DayName(5),
			Focus:     "Full body circuit",
			Exercises: []models.PlannedExercise{
				exercise("Deadlift", 3, "12-15", "60s"),
				exercise("Push-ups", 3, "12-15", "60s"),
				exercise("Biceps curls", 3, "12-15", "60s"),
				exercise("Plank", 3, "60s", "60s"),
			},
		},
	}
}

func strengthDays() []models.WorkoutDay {
	return []models.WorkoutDay{
		{
			DayNumber: 1,
			DayName:   DayName(1),
			Focus:     "Bench press",
			Exercises: []models.PlannedExercise{
				exercise("Bench press", 5, "5", "3-5 min", "85-90% 1RM"),
				exercise("Incline bench press", 3, "8", "2 min"),
				exercise("Dips", 3, "8-10", "90s"),
				exercise("Triceps work", 3, "10-12", "60s"),
			},
		},
		{
			DayNumber: 3,
			DayName:   DayName(3),
			Focus:     "Squat",
			Exercises: []models.PlannedExercise{
				exercise("Squat", 5, "5", "3-5 min", "85-90% 1RM"),
				exercise("Front squat", 3, "6-8", "2 min"),
				exercise("Leg press", 3, "10-12", "90s"),
				exercise("Bulgarian split squat", 3, "8-10", "60s"),
			},
		},
		{
			DayNumber: 5,
			DayName:   DayName(5),
			Focus:     "Deadlift",
			Exercises: []models.PlannedExercise{
				exercise("Deadlift", 5, "5", "3-5 min", "85-90% 1RM"),
				exercise("Romanian deadlift", 3, "8", "2 min"),
				exercise("Barbell row", 4, "8-10", "90s"),
				exercise("Pull-ups", 3, "AMRAP", "2 min"),
			},
		},
	}
}

func conditioningDays() []models.WorkoutDay {
	return []models.WorkoutDay{
		{
			DayNumber: 1,
			DayName:   DayName(1),
			Focus:     "Cardio intervals",
			Exercises: []models.PlannedExercise{
				exercise("Warm-up", 1, "5 min", "-"),
				exercise("Sprint intervals", 8, "30s sprint / 90s rest", "-"),
				exercise("Cool-down", 1, "5 min", "-"),
			},
		},
		{
			DayNumber: 3,
			DayName:   DayName(3),
			Focus:     "Circuit training",
			Exercises: []models.PlannedExercise{
				exercise("Burpees", 3, "15", "30s"),
				exercise("Kettlebell swing", 3, "20", "30s"),
				exercise("Box jumps", 3, "12", "30s"),
				exercise("Battle ropes", 3, "30s", "30s"),
				exercise("Rowing machine", 3, "500m", "2 min"),
			},
		},
		{
			DayNumber: 5,
			DayName:   DayName(5),
			Focus:     "Steady state cardio",
			Exercises: []models.PlannedExercise{
				exercise("Running or cycling", 1, "30-45 min", "-", "Sustainable pace"),
			},
		},
	}
}
