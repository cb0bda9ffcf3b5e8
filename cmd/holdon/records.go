// ABOUTME: The records command: personal bests per exercise.
// ABOUTME: Default view shows current bests; --all lists the full history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var recordsAllFlag bool

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records",
	Long: `Show personal records.

The default view shows the current best per exercise. Records are
append-only: superseded bests are kept and visible with --all.

EXAMPLES:

  $ holdon records
  $ holdon records --all`,
	RunE: func(cmd *cobra.Command, args []string) error {
		records, err := db.ListUserRecords(currentUserID())
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No records yet. They appear automatically as you log workouts.")
			return nil
		}

		faint := color.New(color.Faint)
		lang := cfg.GetLanguage()
		seen := make(map[int64]bool)
		for _, r := range records {
			// The list is most-recent-first; for each exercise the highest
			// value is the current best regardless of date, so resolve it
			// explicitly unless the full history was asked for.
			if !recordsAllFlag {
				if seen[r.ExerciseID] {
					continue
				}
				seen[r.ExerciseID] = true
				best, err := db.GetBestRecord(r.UserID, r.ExerciseID, r.RecordType)
				if err != nil {
					return err
				}
				r = best
			}

			ex, err := db.GetExercise(r.ExerciseID)
			if err != nil {
				return err
			}
			color.New(color.Bold).Printf("%-28s", ex.Name(lang))
			fmt.Printf(" %.1f %s", r.Value, r.Unit)
			faint.Printf("  %s · %s\n", r.RecordType, r.AchievedDate.Format("2006-01-02"))
		}
		return nil
	},
}

func init() {
	recordsCmd.Flags().BoolVar(&recordsAllFlag, "all", false, "show full record history, not just current bests")
	rootCmd.AddCommand(recordsCmd)
}
