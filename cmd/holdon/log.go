// ABOUTME: The log command: save a finished workout from the command line.
// ABOUTME: Parses "Exercise name:REPSxWEIGHT,REPSxWEIGHT" arguments into sets.
package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/prefs"
	"github.com/holdonapp/holdon/internal/workout"
	"github.com/spf13/cobra"
)

var (
	logNameFlag     string
	logDurationFlag int
)

var logCmd = &cobra.Command{
	Use:   "log [exercise:sets...]",
	Short: "Log a finished workout",
	Long: `Save a finished workout session.

Each argument is one exercise followed by its sets as comma-separated
REPSxWEIGHT pairs. Weight is in kilograms. Exercise names match the
reference library (case-insensitive).

New personal records are detected automatically from each exercise's
heaviest set and reported on save.

EXAMPLES:

  $ holdon log "Bench press:5x80,5x85,3x90"
  $ holdon log "Squat:5x100,5x105" "Deadlift:5x140" --name "Lower body"
  $ holdon log "Pull-up:8x0,8x0,6x0" --duration 45`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var entries []workout.ExerciseEntry
		for _, arg := range args {
			name, sets, err := parseExerciseArg(arg)
			if err != nil {
				return err
			}
			ex, err := db.GetExerciseByName(name)
			if err != nil {
				return fmt.Errorf("exercise not found: %q (see 'holdon exercises')", name)
			}
			entries = append(entries, workout.ExerciseEntry{
				ExerciseID: ex.ID,
				Name:       ex.Name(cfg.GetLanguage()),
				Sets:       sets,
			})
		}

		duration := logDurationFlag
		if duration <= 0 {
			duration = 60
		}
		end := time.Now()
		start := end.Add(-time.Duration(duration) * time.Minute)

		service := workout.NewService(db, openMirror(), log.Default())
		result, err := service.Save(currentUserID(), logNameFlag, start, end, entries)
		if err != nil {
			return err
		}

		color.Green("✓ Session %d saved (%d exercises)", result.Session.ID, len(entries))
		for _, r := range result.NewRecords {
			color.Yellow("★ New record: %s %.1f kg", r.ExerciseName, r.WeightKg)
		}
		return nil
	},
}

// parseExerciseArg splits "Bench press:5x80,5x85" into the exercise name and
// its ordered sets.
func parseExerciseArg(arg string) (string, []workout.SetEntry, error) {
	name, setsPart, ok := strings.Cut(arg, ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.TrimSpace(setsPart) == "" {
		return "", nil, fmt.Errorf("invalid exercise argument %q (expected \"Name:REPSxWEIGHT,...\")", arg)
	}

	var sets []workout.SetEntry
	for _, part := range strings.Split(setsPart, ",") {
		part = strings.TrimSpace(part)
		repsStr, weightStr, ok := strings.Cut(strings.ToLower(part), "x")
		if !ok {
			return "", nil, fmt.Errorf("invalid set %q in %q (expected REPSxWEIGHT)", part, arg)
		}
		reps, err := strconv.Atoi(strings.TrimSpace(repsStr))
		if err != nil || reps <= 0 {
			return "", nil, fmt.Errorf("invalid rep count in set %q", part)
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(weightStr), 64)
		if err != nil || weight < 0 {
			return "", nil, fmt.Errorf("invalid weight in set %q", part)
		}
		sets = append(sets, workout.SetEntry{Reps: reps, WeightKg: weight})
	}
	return name, sets, nil
}

// openMirror opens the preference workout log as a save mirror. An
// unavailable preference store degrades to no mirror rather than blocking
// the save.
func openMirror() workout.Mirror {
	store, err := prefs.OpenCharm()
	if err != nil {
		return nil
	}
	return store
}

func init() {
	logCmd.Flags().StringVar(&logNameFlag, "name", "", "workout name (stored as session notes)")
	logCmd.Flags().IntVar(&logDurationFlag, "duration", 60, "session duration in minutes")
	rootCmd.AddCommand(logCmd)
}
