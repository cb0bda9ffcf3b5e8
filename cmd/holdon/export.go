// ABOUTME: Export and import commands for full-database snapshots.
// ABOUTME: JSON or YAML; import re-inserts rows with fresh remapped ids.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/holdonapp/holdon/internal/store"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	exportFormatFlag string
	exportOutputFlag string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your data as JSON or YAML",
	Long: `Export your exercises, sessions, sets, and records as a snapshot.

EXAMPLES:

  $ holdon export > backup.json
  $ holdon export --format yaml -o backup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		switch exportFormatFlag {
		case "json":
			data, err = db.ExportJSON(currentUserID())
		case "yaml":
			data, err = db.ExportYAML(currentUserID())
		default:
			return fmt.Errorf("unsupported format %q (valid: json, yaml)", exportFormatFlag)
		}
		if err != nil {
			return err
		}

		if exportOutputFlag == "" {
			fmt.Print(string(data))
			return nil
		}
		if err := os.WriteFile(exportOutputFlag, data, 0600); err != nil {
			return err
		}
		color.Green("✓ Exported to %s", exportOutputFlag)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a snapshot file",
	Long: `Import a snapshot produced by 'holdon export'. Rows are re-inserted
with fresh ids; references between sessions, sets, and records are
preserved.

EXAMPLES:

  $ holdon import backup.json
  $ holdon import backup.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		var data store.ExportData
		if err := json.Unmarshal(raw, &data); err != nil {
			if yamlErr := yaml.Unmarshal(raw, &data); yamlErr != nil {
				return fmt.Errorf("parse snapshot: %w", err)
			}
		}

		if err := db.ImportData(&data); err != nil {
			return err
		}
		color.Green("✓ Imported %d exercises, %d sessions, %d records",
			len(data.Exercises), len(data.Sessions), len(data.Records))
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormatFlag, "format", "json", "output format (json, yaml)")
	exportCmd.Flags().StringVarP(&exportOutputFlag, "output", "o", "", "write to file instead of stdout")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
