// ABOUTME: MCP resource implementations for the workout tracker.
// ABOUTME: Provides holdon://summary, holdon://records, and holdon://plans.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/plan"
	"github.com/holdonapp/holdon/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "holdon://summary",
		Name:        "Progress Summary",
		Description: "Completed workouts, total volume, and current-month activity",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "holdon://records",
		Name:        "Personal Records",
		Description: "All personal record rows, most recent first",
		MIMEType:    "application/json",
	}, s.handleRecordsResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "holdon://plans",
		Name:        "Plan Gallery",
		Description: "One representative generated plan per supported goal",
		MIMEType:    "application/json",
	}, s.handlePlansResource)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	summary, err := stats.Summarize(s.db, s.userID, time.Now())
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}
	return jsonResource(req.Params.URI, summary)
}

func (s *Server) handleRecordsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	records, err := s.db.ListUserRecords(s.userID)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	return jsonResource(req.Params.URI, records)
}

func (s *Server) handlePlansResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, plan.DefaultPlans())
}

func jsonResource(uri string, v interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
