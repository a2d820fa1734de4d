// ABOUTME: MCP tool implementations for the consumption tracker.
// ABOUTME: Provides event CRUD plus windowed statistics for AI assistants.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// log_event
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_event",
		Description: "Record a consumption event (herbe, hash, or cigarette)",
	}, s.handleLogEvent)

	// list_events
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_events",
		Description: "List recent consumption events, optionally filtered by category",
	}, s.handleListEvents)

	// delete_event
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_event",
		Description: "Delete a consumption event by ID or ID prefix",
	}, s.handleDeleteEvent)

	// get_stats
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_stats",
		Description: "Get windowed consumption statistics (week, month, daily averages, lifetime cost)",
	}, s.handleGetStats)

	// get_price_defaults
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_price_defaults",
		Description: "Get the default unit prices used to derive event costs",
	}, s.handleGetPriceDefaults)
}

// Tool input/output types

type logEventInput struct {
	Category   string  `json:"category" jsonschema:"Category of consumable (herbe, hash, cigarette)"`
	Quantity   string  `json:"quantity" jsonschema:"Free-text quantity (e.g. 0.5g or 2)"`
	ConsumedAt string  `json:"consumed_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
	Price      float64 `json:"price,omitempty" jsonschema:"Explicit price paid, overrides derived pricing"`
	Note       string  `json:"note,omitempty" jsonschema:"Optional note"`
}

type eventOutput struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Quantity string `json:"quantity"`
	Message  string `json:"message"`
}

type listEventsInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category (herbe, hash, cigarette)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteEventInput struct {
	ID string `json:"id" jsonschema:"Event ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getStatsInput struct{}

type getPriceDefaultsInput struct{}

// Tool handlers

func (s *Server) handleLogEvent(ctx context.Context, req *mcp.CallToolRequest, input logEventInput) (*mcp.CallToolResult, eventOutput, error) {
	if !models.IsValidCategory(input.Category) {
		return nil, eventOutput{}, fmt.Errorf("unknown category: %s (use herbe, hash, or cigarette)", input.Category)
	}

	e := models.NewEvent(models.Category(input.Category), input.Quantity)

	if input.ConsumedAt != "" {
		t, err := time.Parse(time.RFC3339, input.ConsumedAt)
		if err != nil {
			// Naive timestamps are local; stats bucket days by local date.
			t, err = time.ParseInLocation("2006-01-02 15:04", input.ConsumedAt, time.Local)
		}
		if err != nil {
			return nil, eventOutput{}, fmt.Errorf("invalid timestamp: %s", input.ConsumedAt)
		}
		e.WithConsumedAt(t)
	}

	if input.Price > 0 {
		e.WithPrice(input.Price)
	}
	if input.Note != "" {
		e.WithNote(input.Note)
	}

	if err := s.repo.CreateEvent(e); err != nil {
		return nil, eventOutput{}, fmt.Errorf("failed to create event: %w", err)
	}

	return nil, eventOutput{
		ID:       e.ID.String()[:8],
		Category: input.Category,
		Quantity: input.Quantity,
		Message:  fmt.Sprintf("Logged %s: %s (ID: %s)", input.Category, input.Quantity, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListEvents(ctx context.Context, req *mcp.CallToolRequest, input listEventsInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	var category *models.Category
	if input.Category != "" {
		if !models.IsValidCategory(input.Category) {
			return nil, nil, fmt.Errorf("unknown category: %s", input.Category)
		}
		c := models.Category(input.Category)
		category = &c
	}

	events, err := s.repo.ListEvents(category, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list events: %w", err)
	}

	if len(events) == 0 {
		return nil, map[string]interface{}{"message": "No events found."}, nil
	}

	return nil, events, nil
}

func (s *Server) handleDeleteEvent(ctx context.Context, req *mcp.CallToolRequest, input deleteEventInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteEvent(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete event: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted event: %s", input.ID),
	}, nil
}

func (s *Server) handleGetStats(ctx context.Context, req *mcp.CallToolRequest, input getStatsInput) (*mcp.CallToolResult, any, error) {
	events, err := s.repo.ListEvents(nil, 0)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list events: %w", err)
	}

	snap := stats.Compute(events, s.prices, time.Now())
	return nil, snap, nil
}

func (s *Server) handleGetPriceDefaults(ctx context.Context, req *mcp.CallToolRequest, input getPriceDefaultsInput) (*mcp.CallToolResult, any, error) {
	return nil, map[string]float64{
		"per_gram_herbe": s.prices.PerGramHerb,
		"per_gram_hash":  s.prices.PerGramHash,
		"per_cigarette":  s.prices.PerCigarette,
	}, nil
}
