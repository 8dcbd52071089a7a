package ports

import (
	"context"

	"github.com/xvierd/pomo/internal/domain"
)

// MCPHandler defines the interface for MCP server operations.
// This is a driving port (called by the application layer).
type MCPHandler interface {
	// Start begins serving MCP requests.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server.
	Stop() error

	// IsRunning returns true if the server is active.
	IsRunning() bool
}

// TimerSnapshot is a consistent read of the timer at one instant.
type TimerSnapshot struct {
	State   domain.AppState
	Running bool
}

// TimerController exposes the timer controls to non-interactive drivers.
// This is a driven port (implemented by the services layer).
type TimerController interface {
	// Toggle flips the running flag.
	Toggle() TimerSnapshot

	// Start sets running to true.
	Start() TimerSnapshot

	// Stop sets running to false.
	Stop() TimerSnapshot

	// AddFive adds five minutes to the active session.
	AddFive() TimerSnapshot

	// SubtractFive removes five minutes from the active session.
	SubtractFive() TimerSnapshot

	// Reset stops the countdown and restores the active session.
	Reset() TimerSnapshot

	// Change stops the countdown and switches sessions.
	Change() TimerSnapshot

	// Snapshot returns the current state without changing it.
	Snapshot() TimerSnapshot
}
