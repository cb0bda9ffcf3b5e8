// ABOUTME: The sessions command: recent workout history with per-set detail.
// ABOUTME: Newest first; --sets expands each session's set list.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	sessionsLimitFlag int
	sessionsSetsFlag  bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List recent workout sessions",
	Long: `List recent workout sessions, newest first.

EXAMPLES:

  $ holdon sessions
  $ holdon sessions --limit 5 --sets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sessions, err := db.ListUserSessions(currentUserID(), sessionsLimitFlag)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Log one with 'holdon log'.")
			return nil
		}

		faint := color.New(color.Faint)
		lang := cfg.GetLanguage()
		for _, s := range sessions {
			name := "Workout"
			if s.Notes != nil && *s.Notes != "" {
				name = *s.Notes
			}
			color.New(color.Bold).Printf("#%d  %s", s.ID, name)
			faint.Printf("  %s · %d min\n", s.StartTime.Format("2006-01-02 15:04"), s.DurationMinutes)

			if !sessionsSetsFlag {
				continue
			}
			sets, err := db.ListSessionSets(s.ID)
			if err != nil {
				return err
			}
			var lastExercise int64
			for _, set := range sets {
				if set.ExerciseID != lastExercise {
					ex, err := db.GetExercise(set.ExerciseID)
					if err != nil {
						return err
					}
					fmt.Printf("  %s\n", ex.Name(lang))
					lastExercise = set.ExerciseID
				}
				faint.Printf("    set %d: %d x %.1f kg\n", set.SetNumber, set.Reps, set.WeightKg)
			}
		}
		return nil
	},
}

func init() {
	sessionsCmd.Flags().IntVar(&sessionsLimitFlag, "limit", 20, "max sessions to list (0 for all)")
	sessionsCmd.Flags().BoolVar(&sessionsSetsFlag, "sets", false, "show each session's sets")
	rootCmd.AddCommand(sessionsCmd)
}
