// ABOUTME: MCP resource implementations for the consumption tracker.
// ABOUTME: Provides taper://recent, taper://today, and taper://stats resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/stats"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// taper://recent - Last 10 events
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "taper://recent",
		Name:        "Recent Consumption Events",
		Description: "Last 10 consumption events across all categories",
		MIMEType:    "application/json",
	}, s.handleRecentResource)

	// taper://today - All events logged today
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "taper://today",
		Name:        "Today's Consumption",
		Description: "All consumption events logged today",
		MIMEType:    "application/json",
	}, s.handleTodayResource)

	// taper://stats - Full windowed statistics snapshot
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "taper://stats",
		Name:        "Consumption Statistics",
		Description: "Week/month totals, daily averages, and lifetime cost",
		MIMEType:    "application/json",
	}, s.handleStatsResource)
}

// Resource handlers

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	events, err := s.repo.ListEvents(nil, 10)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return jsonResource("taper://recent", events)
}

func (s *Server) handleTodayResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	events, err := s.repo.ListEventsSince(todayStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	if events == nil {
		events = []*models.ConsumptionEvent{}
	}

	return jsonResource("taper://today", events)
}

func (s *Server) handleStatsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	events, err := s.repo.ListEvents(nil, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	snap := stats.Compute(events, s.prices, time.Now())
	return jsonResource("taper://stats", snap)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
