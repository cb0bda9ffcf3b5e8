// ABOUTME: Root Cobra command for the holdon CLI.
// ABOUTME: Opens config and store in PersistentPreRunE, closes in PostRunE.
package main

import (
	"fmt"

	"github.com/holdonapp/holdon/internal/config"
	"github.com/holdonapp/holdon/internal/store"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	db         *store.DB
	userIDFlag int64
)

// currentUserID resolves the account commands act for: the --user flag when
// given, otherwise the configured default.
func currentUserID() int64 {
	if userIDFlag != 0 {
		return userIDFlag
	}
	return cfg.GetDefaultUserID()
}

var rootCmd = &cobra.Command{
	Use:   "holdon",
	Short: "Workout tracker with generated weekly plans",
	Long: `HoldON is a CLI workout tracker: log sessions with sets and reps, follow
deterministic generated weekly plans, and track personal records.

QUICK START:

  $ holdon profile set --goal strength --days 3   # Pick your plan settings
  $ holdon plan show                              # See this week's plan
  $ holdon log "Bench press:5x80,5x85" --name "Push day"
  $ holdon records                                # Personal bests
  $ holdon progress                               # Volume and activity summary

LOGGING SESSIONS:

  Each argument is one exercise with its sets as REPSxWEIGHT pairs:

  $ holdon log "Squat:5x100,5x105,3x110" "Leg press:10x180"

  New personal records are detected automatically from each exercise's
  heaviest set.

PLANS:

  Plans are regenerated deterministically from your profile settings; they
  are never stored. Goals: muscle_gain, weight_loss, strength, conditioning.

MCP INTEGRATION:

  Run 'holdon mcp' to start the Model Context Protocol server for use with
  MCP-compatible AI assistants.

DATA STORAGE:

  The workout database is a single SQLite file under the XDG data directory.
  Profile preferences live in a local Charm KV store.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		db, err = cfg.OpenStore()
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}

		if err := db.SeedExercisesIfEmpty(); err != nil {
			return fmt.Errorf("seed exercises: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if db != nil {
			return db.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&userIDFlag, "user", 0, "account id to act for (default from config)")
}
