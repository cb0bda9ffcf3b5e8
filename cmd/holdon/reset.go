// ABOUTME: The reset command: delete the workout database.
// ABOUTME: Refuses without --force; preferences are left untouched.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var resetForceFlag bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the workout database",
	Long: `Delete the workout database file. All sessions, sets, records, and
users are lost. Profile preferences in the Charm KV store are not touched.

EXAMPLES:

  $ holdon reset --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetForceFlag {
			return fmt.Errorf("refusing to delete %s without --force", db.Path())
		}

		path := db.Path()
		if err := db.Destroy(); err != nil {
			return err
		}
		db = nil
		color.Green("✓ Deleted %s", path)
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetForceFlag, "force", false, "actually delete the database")
	rootCmd.AddCommand(resetCmd)
}
