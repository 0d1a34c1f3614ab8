// Package mcp exposes the scoreboard engine as MCP tools so an external
// gesture layer or assistant can drive it over stdio.
package mcp

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/tantoak/internal/services/scoreboard/domain"
	"github.com/louisbranch/tantoak/internal/services/scoreboard/i18n"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"golang.org/x/text/message"
)

const (
	serverName = "tantoak-scoreboard"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Engine is the part of the scoreboard engine the tools drive.
type Engine interface {
	State() domain.State
	Dispatch(ctx context.Context, action domain.Action) (domain.State, error)
}

// Options configures tool behavior.
type Options struct {
	// ResetRoundOnGamePoint clears round scores when a game point is awarded.
	ResetRoundOnGamePoint bool
	// Printer localizes summaries. Nil uses the default locale.
	Printer *message.Printer
}

// Server wraps an MCP server with the scoreboard tools registered.
type Server struct {
	engine    Engine
	opts      Options
	mcpServer *mcpsdk.Server
}

// NewServer registers the scoreboard tools against engine.
func NewServer(engine Engine, opts Options) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if opts.Printer == nil {
		opts.Printer = i18n.Printer(i18n.Default())
	}
	s := &Server{
		engine:    engine,
		opts:      opts,
		mcpServer: mcpsdk.NewServer(&mcpsdk.Implementation{Name: serverName, Version: serverVersion}, nil),
	}
	mcpsdk.AddTool(s.mcpServer, StateTool(), s.stateHandler())
	mcpsdk.AddTool(s.mcpServer, GestureTool(), s.gestureHandler())
	mcpsdk.AddTool(s.mcpServer, ResetTool(), s.resetHandler())
	mcpsdk.AddTool(s.mcpServer, SetCeilingTool(), s.setCeilingHandler())
	return s, nil
}

// Serve runs the MCP server on transport until the client disconnects or ctx
// ends. A nil transport means stdio. Context cancellation is a clean exit.
func (s *Server) Serve(ctx context.Context, transport mcpsdk.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if transport == nil {
		transport = &mcpsdk.StdioTransport{}
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
