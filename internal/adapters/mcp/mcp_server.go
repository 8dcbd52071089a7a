// Package mcp provides the MCP (Model Context Protocol) server implementation.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Server implements the MCP server using mark3labs/mcp-go.
type Server struct {
	server     *server.MCPServer
	controller ports.TimerController
	logger     *slog.Logger
	ctx        context.Context
	cancel     context.CancelFunc
}

// sessionView is the JSON shape of one session record.
type sessionView struct {
	Name        string `json:"name"`
	InitialTime int    `json:"initial_time"`
	TimeLeft    int    `json:"time_left"`
	Formatted   string `json:"formatted"`
}

// snapshotView is the JSON payload every tool returns.
type snapshotView struct {
	Current   string                 `json:"current"`
	Label     string                 `json:"label"`
	Running   bool                   `json:"running"`
	TimeLeft  int                    `json:"time_left"`
	Formatted string                 `json:"formatted"`
	Sessions  map[string]sessionView `json:"sessions"`
}

// control binds a tool name to one controller operation.
type control struct {
	name        string
	description string
	apply       func() ports.TimerSnapshot
}

// NewServer creates a new MCP server instance.
func NewServer(controller ports.TimerController, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		controller: controller,
		logger:     logger.With("component", "mcp"),
	}

	s.server = server.NewMCPServer(
		"pomo",
		"1.0.0",
		server.WithLogging(),
	)

	s.registerTools()

	return s
}

func (s *Server) controls() []control {
	return []control{
		{"get_timer_state", "Get the timer state: active session, running flag, and time left for both sessions", s.controller.Snapshot},
		{"toggle_timer", "Start the countdown if stopped, stop it if running", s.controller.Toggle},
		{"start_timer", "Start the countdown of the active session", s.controller.Start},
		{"stop_timer", "Stop the countdown without changing the time left", s.controller.Stop},
		{"add_five_minutes", "Add five minutes to the active session (capped at 60:00)", s.controller.AddFive},
		{"subtract_five_minutes", "Remove five minutes from the active session (floored at 00:00)", s.controller.SubtractFive},
		{"reset_session", "Stop the countdown and restore the active session to its initial time", s.controller.Reset},
		{"change_session", "Stop the countdown and switch between pomodoro and break", s.controller.Change},
	}
}

// registerTools registers all available MCP tools.
func (s *Server) registerTools() {
	for _, c := range s.controls() {
		s.server.AddTool(
			mcp.NewTool(c.name, mcp.WithDescription(c.description)),
			s.handleControl(c),
		)
	}
}

// Start begins serving MCP requests via stdio.
func (s *Server) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)
	return server.ServeStdio(s.server)
}

// HandleMessage processes one raw JSON-RPC message without a transport.
func (s *Server) HandleMessage(ctx context.Context, raw json.RawMessage) mcp.JSONRPCMessage {
	return s.server.HandleMessage(ctx, raw)
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// IsRunning returns true if the server is active.
func (s *Server) IsRunning() bool {
	if s.ctx == nil {
		return false
	}
	return s.ctx.Err() == nil
}

// Ensure Server implements ports.MCPHandler.
var _ ports.MCPHandler = (*Server)(nil)

// handleControl returns the tool handler that runs c and reports the resulting snapshot.
func (s *Server) handleControl(c control) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		if err := ctx.Err(); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%s cancelled: %v", c.name, err)), nil
		}

		snap := c.apply()
		s.logger.Debug("tool called",
			slog.String("tool", c.name),
			slog.String("current", string(snap.State.Current)),
			slog.Bool("running", snap.Running),
			slog.Int("time_left", snap.State.Active().TimeLeft))

		jsonData, err := json.MarshalIndent(newSnapshotView(snap), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal timer state: %w", err)
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}
}

func newSnapshotView(snap ports.TimerSnapshot) snapshotView {
	active := snap.State.Active()
	view := snapshotView{
		Current:   string(snap.State.Current),
		Label:     snap.State.Current.Label(),
		Running:   snap.Running,
		TimeLeft:  active.TimeLeft,
		Formatted: domain.FormatTime(active.TimeLeft).String(),
		Sessions:  make(map[string]sessionView, 2),
	}
	for _, r := range []domain.SessionRecord{snap.State.Pomodoro, snap.State.Break} {
		view.Sessions[string(r.Name)] = sessionView{
			Name:        string(r.Name),
			InitialTime: r.InitialTime,
			TimeLeft:    r.TimeLeft,
			Formatted:   domain.FormatTime(r.TimeLeft).String(),
		}
	}
	return view
}
