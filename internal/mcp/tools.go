// ABOUTME: MCP tool implementations for plans, sessions, and records.
// ABOUTME: log_session runs the full transactional save including record checks.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/holdonapp/holdon/internal/models"
	"github.com/holdonapp/holdon/internal/plan"
	"github.com/holdonapp/holdon/internal/store"
	"github.com/holdonapp/holdon/internal/workout"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_plan",
		Description: "Generate a deterministic weekly workout plan from goal, equipment, level, and days per week",
	}, s.handleGeneratePlan)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_session",
		Description: "Save a finished workout session with per-exercise sets; reports new personal records",
	}, s.handleLogSession)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_sessions",
		Description: "List recent workout sessions",
	}, s.handleListSessions)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_records",
		Description: "List personal records, most recent first",
	}, s.handleListRecords)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List the exercise reference library",
	}, s.handleListExercises)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_profile",
		Description: "Get the user's training settings (goal, equipment, level, days per week)",
	}, s.handleGetProfile)
}

// Tool input/output types

type generatePlanInput struct {
	Goal        string `json:"goal" jsonschema:"Plan goal (muscle_gain, weight_loss, strength, conditioning)"`
	Equipment   string `json:"equipment,omitempty" jsonschema:"Equipment (gym, home, minimal); default gym"`
	Level       string `json:"level,omitempty" jsonschema:"Experience level (beginner, advanced); default beginner"`
	DaysPerWeek int    `json:"days_per_week,omitempty" jsonschema:"Training days per week; default 3"`
}

type logSetInput struct {
	Reps     int     `json:"reps" jsonschema:"Repetitions"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
}

type logExerciseInput struct {
	Exercise string        `json:"exercise" jsonschema:"Exercise name from the reference library"`
	Sets     []logSetInput `json:"sets" jsonschema:"Ordered sets"`
}

type logSessionInput struct {
	Name            string             `json:"name,omitempty" jsonschema:"Workout name"`
	DurationMinutes int                `json:"duration_minutes,omitempty" jsonschema:"Session duration; default 60"`
	Exercises       []logExerciseInput `json:"exercises" jsonschema:"Exercises with their sets"`
}

type logSessionOutput struct {
	SessionID  int64    `json:"session_id"`
	NewRecords []string `json:"new_records,omitempty"`
	Message    string   `json:"message"`
}

type listSessionsInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type listRecordsInput struct{}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category (chest, back, legs, shoulders)"`
}

type getProfileInput struct{}

// Tool handlers

func (s *Server) handleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input generatePlanInput) (*mcp.CallToolResult, any, error) {
	if !models.IsValidGoal(input.Goal) {
		return nil, nil, fmt.Errorf("unknown goal: %s (valid: muscle_gain, weight_loss, strength, conditioning)", input.Goal)
	}

	equipment := models.EquipmentGym
	if input.Equipment != "" {
		equipment = models.Equipment(input.Equipment)
	}
	level := models.LevelBeginner
	if input.Level != "" {
		level = models.Level(input.Level)
	}
	days := input.DaysPerWeek
	if days == 0 {
		days = 3
	}

	p, err := plan.Generate(models.Goal(input.Goal), equipment, level, days)
	if err != nil {
		return nil, nil, fmt.Errorf("generate plan: %w", err)
	}
	return nil, p, nil
}

func (s *Server) handleLogSession(ctx context.Context, req *mcp.CallToolRequest, input logSessionInput) (*mcp.CallToolResult, logSessionOutput, error) {
	duration := input.DurationMinutes
	if duration <= 0 {
		duration = 60
	}

	var entries []workout.ExerciseEntry
	for _, ex := range input.Exercises {
		dbEx, err := s.db.GetExerciseByName(ex.Exercise)
		if err != nil {
			return nil, logSessionOutput{}, fmt.Errorf("exercise not found: %s", ex.Exercise)
		}
		entry := workout.ExerciseEntry{ExerciseID: dbEx.ID, Name: dbEx.NameEn}
		for _, set := range ex.Sets {
			entry.Sets = append(entry.Sets, workout.SetEntry{Reps: set.Reps, WeightKg: set.WeightKg})
		}
		entries = append(entries, entry)
	}

	end := time.Now()
	start := end.Add(-time.Duration(duration) * time.Minute)
	result, err := s.service.Save(s.userID, input.Name, start, end, entries)
	if err != nil {
		return nil, logSessionOutput{}, fmt.Errorf("save session: %w", err)
	}

	out := logSessionOutput{
		SessionID: result.Session.ID,
		Message:   fmt.Sprintf("Saved session %d with %d exercises", result.Session.ID, len(entries)),
	}
	for _, r := range result.NewRecords {
		out.NewRecords = append(out.NewRecords, fmt.Sprintf("%s: %.1f kg", r.ExerciseName, r.WeightKg))
	}
	return nil, out, nil
}

func (s *Server) handleListSessions(ctx context.Context, req *mcp.CallToolRequest, input listSessionsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}
	sessions, err := s.db.ListUserSessions(s.userID, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		return nil, map[string]interface{}{"message": "No sessions found."}, nil
	}
	return nil, sessions, nil
}

func (s *Server) handleListRecords(ctx context.Context, req *mcp.CallToolRequest, input listRecordsInput) (*mcp.CallToolResult, any, error) {
	records, err := s.db.ListUserRecords(s.userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list records: %w", err)
	}
	if len(records) == 0 {
		return nil, map[string]interface{}{"message": "No records yet."}, nil
	}
	return nil, records, nil
}

func (s *Server) handleGetProfile(ctx context.Context, req *mcp.CallToolRequest, input getProfileInput) (*mcp.CallToolResult, any, error) {
	profile, err := s.db.GetUserProfile(s.userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, models.DefaultProfile(s.userID), nil
		}
		return nil, nil, fmt.Errorf("get profile: %w", err)
	}
	return nil, profile, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var category *string
	if input.Category != "" {
		category = &input.Category
	}
	exercises, err := s.db.ListExercises(category)
	if err != nil {
		return nil, nil, fmt.Errorf("list exercises: %w", err)
	}
	return nil, exercises, nil
}
