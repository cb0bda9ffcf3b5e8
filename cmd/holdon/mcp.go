// ABOUTME: The mcp command: serve the workout tracker over MCP stdio.
// ABOUTME: Tools and resources act for the resolved user id.
package main

import (
	"github.com/charmbracelet/log"
	"github.com/holdonapp/holdon/internal/mcp"
	"github.com/holdonapp/holdon/internal/workout"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server on stdio.

Exposes tools for generating plans, logging sessions, and listing
sessions, records, and exercises, plus read-only resources for the
progress summary, record list, and plan gallery.

Add to an MCP client configuration:

  {
    "mcpServers": {
      "holdon": {
        "command": "holdon",
        "args": ["mcp"]
      }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := log.Default()
		logger.SetLevel(log.WarnLevel) // stdio transport owns stdout

		service := workout.NewService(db, openMirror(), logger)
		server, err := mcp.NewServer(db, service, currentUserID())
		if err != nil {
			return err
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
