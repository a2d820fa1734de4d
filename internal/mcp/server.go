// ABOUTME: MCP server setup for the consumption tracker.
// ABOUTME: Wraps MCP server with storage Repository and price defaults.
package mcp

import (
	"context"

	"github.com/jdufour/taper/internal/models"
	"github.com/jdufour/taper/internal/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP server with storage access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	prices    models.PriceDefaults
}

// NewServer creates a new MCP server with the given storage and price defaults.
func NewServer(repo storage.Repository, prices models.PriceDefaults) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "taper",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		prices:    prices.Resolve(),
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
