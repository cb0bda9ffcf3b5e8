// ABOUTME: MCP server setup for the workout tracker.
// ABOUTME: Wraps the MCP server with store access and a default user id.
package mcp

import (
	"context"

	"github.com/holdonapp/holdon/internal/store"
	"github.com/holdonapp/holdon/internal/workout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access. All tools act for a
// single userID fixed at startup.
type Server struct {
	mcpServer *mcp.Server
	db        *store.DB
	service   *workout.Service
	userID    int64
}

// NewServer creates an MCP server over the given store for one user.
func NewServer(db *store.DB, service *workout.Service, userID int64) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "holdon",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		db:        db,
		service:   service,
		userID:    userID,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
