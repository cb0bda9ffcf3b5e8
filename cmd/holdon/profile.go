// ABOUTME: Profile commands over the preference store.
// ABOUTME: Settings here drive plan generation; unset flags leave values alone.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/prefs"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change your profile",
	Long: `Show or change your profile preferences.

The goal, equipment, level, and days settings drive 'plan show'. Profile
preferences live in the local Charm KV store, separate from the workout
database.

EXAMPLES:

  $ holdon profile show
  $ holdon profile set --goal strength --days 3
  $ holdon profile set --name "Ana" --weight 72.5`,
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		p := loadProfile()
		faint := color.New(color.Faint)

		color.New(color.Bold).Println(p.Name)
		fmt.Printf("Goal:       %s\n", p.FitnessGoal)
		fmt.Printf("Equipment:  %s\n", p.Equipment)
		fmt.Printf("Level:      %s\n", p.ExperienceLevel)
		fmt.Printf("Days/week:  %d\n", p.DaysPerWeek)
		if p.WeightKg > 0 {
			faint.Printf("Weight:     %.1f kg\n", p.WeightKg)
		}
		if p.HeightCm > 0 {
			faint.Printf("Height:     %.0f cm\n", p.HeightCm)
		}
		if p.TargetCalories > 0 {
			faint.Printf("Calories:   %.0f kcal/day\n", p.TargetCalories)
		}
		if p.TargetProtein > 0 {
			faint.Printf("Protein:    %.0f g/day\n", p.TargetProtein)
		}
		return nil
	},
}

var (
	profileNameFlag     string
	profileGoalFlag     string
	profileEquipFlag    string
	profileLevelFlag    string
	profileDaysFlag     int
	profileWeightFlag   float64
	profileHeightFlag   float64
	profileCaloriesFlag float64
	profileProteinFlag  float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change profile settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := prefs.OpenCharm()
		if err != nil {
			return err
		}
		p := store.GetProfile()

		if profileNameFlag != "" {
			p.Name = profileNameFlag
		}
		if profileGoalFlag != "" {
			if !models.IsValidGoal(profileGoalFlag) {
				return fmt.Errorf("unknown goal %q (valid: muscle_gain, weight_loss, strength, conditioning)", profileGoalFlag)
			}
			p.FitnessGoal = models.Goal(profileGoalFlag)
		}
		if profileEquipFlag != "" {
			p.Equipment = models.Equipment(profileEquipFlag)
		}
		if profileLevelFlag != "" {
			p.ExperienceLevel = models.Level(profileLevelFlag)
		}
		if profileDaysFlag != 0 {
			p.DaysPerWeek = profileDaysFlag
		}
		if profileWeightFlag != 0 {
			p.WeightKg = profileWeightFlag
		}
		if profileHeightFlag != 0 {
			p.HeightCm = profileHeightFlag
		}
		if profileCaloriesFlag != 0 {
			p.TargetCalories = profileCaloriesFlag
		}
		if profileProteinFlag != 0 {
			p.TargetProtein = profileProteinFlag
		}

		if err := store.SaveProfile(p); err != nil {
			return err
		}
		color.Green("✓ Profile saved")
		return nil
	},
}

func init() {
	profileSetCmd.Flags().StringVar(&profileNameFlag, "name", "", "display name")
	profileSetCmd.Flags().StringVar(&profileGoalFlag, "goal", "", "fitness goal (muscle_gain, weight_loss, strength, conditioning)")
	profileSetCmd.Flags().StringVar(&profileEquipFlag, "equipment", "", "equipment (gym, home, minimal)")
	profileSetCmd.Flags().StringVar(&profileLevelFlag, "level", "", "experience level (beginner, advanced)")
	profileSetCmd.Flags().IntVar(&profileDaysFlag, "days", 0, "training days per week")
	profileSetCmd.Flags().Float64Var(&profileWeightFlag, "weight", 0, "body weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeightFlag, "height", 0, "height in cm")
	profileSetCmd.Flags().Float64Var(&profileCaloriesFlag, "calories", 0, "daily calorie target")
	profileSetCmd.Flags().Float64Var(&profileProteinFlag, "protein", 0, "daily protein target in grams")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	rootCmd.AddCommand(profileCmd)
}
