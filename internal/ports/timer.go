// Package ports defines the interfaces (driven and driving ports)
// between the pomo domain and its adapters.
package ports

import (
	"context"

	"github.com/xvierd/pomo/internal/domain"
)

// Timer is the interactive timer interface.
// This is a driving port (called by the application layer).
type Timer interface {
	// Run starts the timer interface and blocks until the user quits or ctx is cancelled.
	Run(ctx context.Context) error

	// Stop gracefully stops the timer interface.
	Stop()

	// State returns the last state rendered by the timer.
	State() domain.AppState
}
