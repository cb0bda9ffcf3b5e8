// ABOUTME: The exercises command: browse the reference library.
// ABOUTME: Shows localized names, category, difficulty, and demo video links.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/plan"
	"github.com/spf13/cobra"
)

var exercisesCategoryFlag string

var exercisesCmd = &cobra.Command{
	Use:   "exercises",
	Short: "List the exercise reference library",
	Long: `List the exercise reference library.

EXAMPLES:

  $ holdon exercises
  $ holdon exercises --category chest`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var category *string
		if exercisesCategoryFlag != "" {
			category = &exercisesCategoryFlag
		}

		exercises, err := db.ListExercises(category)
		if err != nil {
			return err
		}
		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		lang := cfg.GetLanguage()
		for _, ex := range exercises {
			color.New(color.Bold).Printf("%-28s", ex.Name(lang))
			if ex.Category != nil {
				faint.Printf(" %s", *ex.Category)
			}
			if ex.Difficulty != nil {
				faint.Printf(" · %s", *ex.Difficulty)
			}
			fmt.Println()
			if url := plan.ResolveVideoURL(ex.NameEn); url != "" {
				faint.Printf("  %s\n", url)
			}
		}
		return nil
	},
}

func init() {
	exercisesCmd.Flags().StringVar(&exercisesCategoryFlag, "category", "", "filter by category (chest, back, legs, shoulders)")
	rootCmd.AddCommand(exercisesCmd)
}
