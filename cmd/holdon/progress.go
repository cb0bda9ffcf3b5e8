// ABOUTME: The progress command: volume summary and per-exercise progression.
// ABOUTME: Weekday volume renders as a simple text bar chart, Monday first.
package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/plan"
	"github.com/holdonapp/holdon/internal/stats"
	"github.com/spf13/cobra"
)

var progressExerciseFlag string

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show training progress",
	Long: `Show a training progress overview: completed workouts, total volume,
volume by weekday, and active days this month.

With --exercise, show that exercise's best set weight per session instead,
oldest first.

EXAMPLES:

  $ holdon progress
  $ holdon progress --exercise "Bench press"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if progressExerciseFlag != "" {
			return showProgression(progressExerciseFlag)
		}
		return showSummary()
	},
}

func showSummary() error {
	summary, err := stats.Summarize(db, currentUserID(), time.Now())
	if err != nil {
		return err
	}

	faint := color.New(color.Faint)
	fmt.Printf("Completed workouts: %d\n", summary.CompletedWorkouts)
	fmt.Printf("Total volume:       %.0f kg\n\n", summary.TotalVolumeKg)

	var maxVolume float64
	for _, v := range summary.WeekdayVolume {
		if v > maxVolume {
			maxVolume = v
		}
	}
	for i, v := range summary.WeekdayVolume {
		bar := ""
		if maxVolume > 0 {
			bar = strings.Repeat("█", int(v/maxVolume*30))
		}
		fmt.Printf("%-10s %-30s", plan.DayName(i+1), bar)
		faint.Printf(" %.0f kg\n", v)
	}

	if len(summary.ActiveDays) > 0 {
		fmt.Printf("\nActive days this month: ")
		for i, day := range summary.ActiveDays {
			if i > 0 {
				fmt.Print(", ")
			}
			fmt.Print(day)
		}
		fmt.Println()
	}
	return nil
}

func showProgression(name string) error {
	ex, err := db.GetExerciseByName(name)
	if err != nil {
		return fmt.Errorf("exercise not found: %q (see 'holdon exercises')", name)
	}

	points, err := stats.ExerciseProgression(db, currentUserID(), ex.ID)
	if err != nil {
		return err
	}
	if len(points) == 0 {
		fmt.Printf("No logged sets for %s yet.\n", ex.Name(cfg.GetLanguage()))
		return nil
	}

	color.New(color.Bold).Printf("%s: best set weight per session\n\n", ex.Name(cfg.GetLanguage()))
	var maxWeight float64
	for _, p := range points {
		if p.WeightKg > maxWeight {
			maxWeight = p.WeightKg
		}
	}
	faint := color.New(color.Faint)
	for _, p := range points {
		bar := strings.Repeat("█", int(p.WeightKg/maxWeight*30))
		fmt.Printf("%s %-30s", p.Date.Format("2006-01-02"), bar)
		faint.Printf(" %.1f kg\n", p.WeightKg)
	}
	return nil
}

func init() {
	progressCmd.Flags().StringVar(&progressExerciseFlag, "exercise", "", "show progression for one exercise")
	rootCmd.AddCommand(progressCmd)
}
