// ABOUTME: Plan commands: show the current plan, browse the goal gallery.
// ABOUTME: Plans are regenerated from profile settings on every invocation.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/plan"
	"github.com/holdonapp/holdon/internal/prefs"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Weekly workout plans",
	Long: `Show or browse generated weekly workout plans.

Plans are deterministic: the same goal, equipment, level, and days-per-week
settings always produce the same week. Nothing is stored; 'plan show' reads
your profile settings and regenerates.

EXAMPLES:

  $ holdon plan show
  $ holdon plan show --goal strength --days 3
  $ holdon plan list`,
}

var (
	planGoalFlag  string
	planEquipFlag string
	planLevelFlag string
	planDaysFlag  int
)

var planShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the weekly plan for your profile settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := loadProfile()

		goal := profile.FitnessGoal
		if planGoalFlag != "" {
			if !models.IsValidGoal(planGoalFlag) {
				return fmt.Errorf("unknown goal %q (valid: muscle_gain, weight_loss, strength, conditioning)", planGoalFlag)
			}
			goal = models.Goal(planGoalFlag)
		}
		equipment := profile.Equipment
		if planEquipFlag != "" {
			equipment = models.Equipment(planEquipFlag)
		}
		level := profile.ExperienceLevel
		if planLevelFlag != "" {
			level = models.Level(planLevelFlag)
		}
		days := profile.DaysPerWeek
		if planDaysFlag != 0 {
			days = planDaysFlag
		}

		p, err := plan.Generate(goal, equipment, level, days)
		if err != nil {
			return err
		}
		printPlan(p)
		return nil
	},
}

var planListCmd = &cobra.Command{
	Use:   "list",
	Short: "Browse one representative plan per goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		for _, p := range plan.DefaultPlans() {
			color.New(color.Bold).Printf("%s", p.Name)
			faint.Printf("  (%s)\n", p.Goal)
			fmt.Printf("  %s\n", p.Description)

			training := 0
			for _, d := range p.Days {
				if !d.IsRestDay {
					training++
				}
			}
			faint.Printf("  %d weeks, %d training days/week\n\n", p.DurationWeeks, training)
		}
		return nil
	},
}

// printPlan renders a full weekly plan, training days expanded, rest days
// as a single line.
func printPlan(p *models.WorkoutPlan) {
	faint := color.New(color.Faint)

	color.New(color.Bold).Println(p.Name)
	fmt.Println(p.Description)
	faint.Printf("%s · %s · %d days/week · %d weeks\n\n", p.Equipment, p.Level, p.DaysPerWeek, p.DurationWeeks)

	for _, day := range p.Days {
		if day.IsRestDay {
			faint.Printf("%-10s Rest\n", day.DayName)
			continue
		}
		color.New(color.Bold).Printf("%-10s %s\n", day.DayName, day.Focus)
		for _, ex := range day.Exercises {
			fmt.Printf("  %-28s %d x %-14s rest %s\n", ex.Name, ex.Sets, ex.Reps, ex.RestTime)
			if ex.Notes != "" {
				faint.Printf("  %-28s %s\n", "", ex.Notes)
			}
		}
		fmt.Println()
	}
}

// loadProfile reads the preference profile, falling back to defaults when the
// preference store is unavailable.
func loadProfile() *prefs.Profile {
	store, err := prefs.OpenCharm()
	if err != nil {
		return prefs.DefaultProfile()
	}
	return store.GetProfile()
}

func init() {
	planShowCmd.Flags().StringVar(&planGoalFlag, "goal", "", "override goal (muscle_gain, weight_loss, strength, conditioning)")
	planShowCmd.Flags().StringVar(&planEquipFlag, "equipment", "", "override equipment (gym, home, minimal)")
	planShowCmd.Flags().StringVar(&planLevelFlag, "level", "", "override level (beginner, advanced)")
	planShowCmd.Flags().IntVar(&planDaysFlag, "days", 0, "override days per week")

	planCmd.AddCommand(planShowCmd)
	planCmd.AddCommand(planListCmd)
	rootCmd.AddCommand(planCmd)
}
