// Package services contains the application services driving the timer
// outside of the interactive terminal UI.
package services

import (
	"log/slog"
	"sync"
	"time"

	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Options contains runtime options for Controller.
type Options struct {
	// TickInterval is the countdown period. Zero means one second.
	TickInterval time.Duration

	// Logger receives debug output. Nil means slog.Default().
	Logger *slog.Logger
}

// scheduleKey is the pair whose change re-arms the tick schedule.
type scheduleKey struct {
	running  bool
	timeLeft int
}

// Controller owns a session state, the running flag and the single tick
// schedule. It is safe for concurrent use; every method runs under one lock
// so dispatches are applied in the order they are issued.
type Controller struct {
	mu         sync.Mutex
	options    Options
	logger     *slog.Logger
	state      domain.AppState
	running    bool
	schedule   *time.Timer
	generation uint64
	armedFor   scheduleKey
	events     []chan Event
	closed     bool
}

// Ensure Controller implements ports.TimerController.
var _ ports.TimerController = (*Controller)(nil)

// NewController creates a stopped controller holding the initial state.
func NewController(options Options) *Controller {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Controller{
		options: options,
		logger:  logger.With("component", "controller"),
		state:   domain.InitialState(),
	}
}

// Subscribe registers a new observer channel. Slow observers miss events
// rather than block the countdown.
func (c *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		close(ch)
		return ch
	}
	c.events = append(c.events, ch)
	return ch
}

// Toggle flips the running flag.
func (c *Controller) Toggle() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRunningLocked(!c.running)
	return c.commitLocked()
}

// Start sets running to true.
func (c *Controller) Start() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRunningLocked(true)
	return c.commitLocked()
}

// Stop sets running to false.
func (c *Controller) Stop() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRunningLocked(false)
	return c.commitLocked()
}

// AddFive adds five minutes to the active session, running or not.
func (c *Controller) AddFive() ports.TimerSnapshot {
	return c.Dispatch(domain.Increment(domain.AdjustStep))
}

// SubtractFive removes five minutes from the active session, running or not.
func (c *Controller) SubtractFive() ports.TimerSnapshot {
	return c.Dispatch(domain.Decrement(domain.AdjustStep))
}

// Reset stops the countdown, then restores the active session's initial time.
func (c *Controller) Reset() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRunningLocked(false)
	c.applyLocked(domain.Reset())
	return c.commitLocked()
}

// Change stops the countdown, then switches to the other session.
func (c *Controller) Change() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setRunningLocked(false)
	c.applyLocked(domain.ChangeSession())
	return c.commitLocked()
}

// Dispatch applies an arbitrary action without touching the running flag.
func (c *Controller) Dispatch(action domain.Action) ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.applyLocked(action)
	return c.commitLocked()
}

// Snapshot returns the current state without changing it.
func (c *Controller) Snapshot() ports.TimerSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close releases the tick schedule and closes all observers.
// Controls called after Close still update state but never schedule ticks.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.disarmLocked()
	events := c.events
	c.events = nil
	c.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (c *Controller) setRunningLocked(running bool) {
	c.running = running
}

func (c *Controller) applyLocked(action domain.Action) {
	c.state = domain.Apply(c.state, action)
	c.logger.Debug("action applied",
		slog.String("action", string(action.Kind)),
		slog.Int("payload", action.Payload),
		slog.String("current", string(c.state.Current)),
		slog.Int("time_left", c.state.Active().TimeLeft))
}

// commitLocked re-arms the schedule if its inputs changed and notifies observers.
func (c *Controller) commitLocked() ports.TimerSnapshot {
	c.syncScheduleLocked()
	snap := c.snapshotLocked()
	c.emitLocked(Event{Type: EventStateChange, Snapshot: snap, At: time.Now()})
	return snap
}

// syncScheduleLocked tears down the current schedule and arms a new one
// whenever running or the active time left differs from what the schedule
// was armed for. Nothing is armed once the countdown reaches zero.
func (c *Controller) syncScheduleLocked() {
	key := scheduleKey{running: c.running, timeLeft: c.state.Active().TimeLeft}
	if key == c.armedFor && (c.schedule != nil || !c.shouldTickLocked()) {
		return
	}

	c.disarmLocked()
	c.armedFor = key
	if c.closed || !c.shouldTickLocked() {
		return
	}

	gen := c.generation
	c.schedule = time.AfterFunc(c.options.TickInterval, func() {
		c.tick(gen)
	})
}

func (c *Controller) shouldTickLocked() bool {
	return c.running && c.state.Active().TimeLeft > 0
}

// disarmLocked stops the live schedule and invalidates any callback already in flight.
func (c *Controller) disarmLocked() {
	c.generation++
	if c.schedule != nil {
		c.schedule.Stop()
		c.schedule = nil
	}
}

func (c *Controller) tick(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation || c.closed {
		return
	}
	c.schedule = nil

	c.applyLocked(domain.Decrement(domain.TickStep))
	snap := c.commitLocked()

	if snap.State.Active().IsFinished() {
		c.logger.Info("countdown finished", slog.String("session", string(snap.State.Current)))
		c.emitLocked(Event{Type: EventFinished, Snapshot: snap, At: time.Now()})
	}
}

func (c *Controller) snapshotLocked() ports.TimerSnapshot {
	return ports.TimerSnapshot{State: c.state, Running: c.running}
}

func (c *Controller) emitLocked(event Event) {
	for _, ch := range c.events {
		select {
		case ch <- event:
		default:
		}
	}
}
