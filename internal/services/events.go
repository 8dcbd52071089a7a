package services

import (
	"time"

	"github.com/xvierd/pomo/internal/ports"
)

// EventType defines the type of controller event.
type EventType string

const (
	// EventStateChange is emitted after every transition or running flag change.
	EventStateChange EventType = "state_change"

	// EventFinished is emitted when a tick brings the active session to zero.
	EventFinished EventType = "finished"
)

// Event represents a controller update for observers.
type Event struct {
	Type     EventType
	Snapshot ports.TimerSnapshot
	At       time.Time
}
