// ABOUTME: Config commands: show and change tool configuration.
// ABOUTME: Writes the JSON config file at the XDG config path.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change tool configuration",
	Long: `Show or change tool configuration.

EXAMPLES:

  $ holdon config show
  $ holdon config set --language sl
  $ holdon config set --default-user 2
  $ holdon config set --data-dir ~/fitness`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint)
		fmt.Printf("Data dir:     %s\n", cfg.GetDataDir())
		fmt.Printf("Language:     %s\n", cfg.GetLanguage())
		fmt.Printf("Default user: %d\n", cfg.GetDefaultUserID())
		faint.Printf("Config file:  %s\n", config.GetConfigPath())
		return nil
	},
}

var (
	configDataDirFlag  string
	configLanguageFlag string
	configUserFlag     int64
)

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change configuration values",
	RunE: func(cmd *cobra.Command, args []string) error {
		if configDataDirFlag != "" {
			cfg.DataDir = configDataDirFlag
		}
		if configLanguageFlag != "" {
			if configLanguageFlag != "en" && configLanguageFlag != "sl" {
				return fmt.Errorf("unsupported language %q (valid: en, sl)", configLanguageFlag)
			}
			cfg.Language = configLanguageFlag
		}
		if configUserFlag != 0 {
			cfg.DefaultUserID = configUserFlag
		}

		if err := cfg.Save(); err != nil {
			return err
		}
		color.Green("✓ Configuration saved to %s", config.GetConfigPath())
		return nil
	},
}

func init() {
	configSetCmd.Flags().StringVar(&configDataDirFlag, "data-dir", "", "data directory for the workout database")
	configSetCmd.Flags().StringVar(&configLanguageFlag, "language", "", "exercise name language (en, sl)")
	configSetCmd.Flags().Int64Var(&configUserFlag, "default-user", 0, "default account id")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
