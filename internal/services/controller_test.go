package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xvierd/pomo/internal/domain"
)

// newIdleController returns a controller whose ticks never fire during a test.
func newIdleController(t *testing.T) *Controller {
	t.Helper()
	c := NewController(Options{TickInterval: time.Hour})
	t.Cleanup(c.Close)
	return c
}

func TestNewController_InitialSnapshot(t *testing.T) {
	c := newIdleController(t)

	snap := c.Snapshot()
	assert.False(t, snap.Running)
	assert.Equal(t, domain.InitialState(), snap.State)
}

func TestController_ToggleFlipsRunning(t *testing.T) {
	c := newIdleController(t)

	assert.True(t, c.Toggle().Running)
	assert.False(t, c.Toggle().Running)
	assert.Equal(t, 1500, c.Snapshot().State.Active().TimeLeft, "toggling must not touch time")
}

func TestController_AdjustIgnoresRunning(t *testing.T) {
	c := newIdleController(t)

	assert.Equal(t, 1800, c.AddFive().State.Active().TimeLeft)
	c.Start()
	snap := c.SubtractFive()
	assert.Equal(t, 1500, snap.State.Active().TimeLeft)
	assert.True(t, snap.Running, "adjusting time must not stop the countdown")
}

func TestController_ResetStopsThenResets(t *testing.T) {
	c := newIdleController(t)
	c.SubtractFive()
	c.Start()

	snap := c.Reset()
	assert.False(t, snap.Running)
	assert.Equal(t, 1500, snap.State.Active().TimeLeft)
	assert.Nil(t, c.schedule, "reset must leave no live schedule")
}

func TestController_ChangeStopsThenSwitches(t *testing.T) {
	c := newIdleController(t)
	c.Start()

	snap := c.Change()
	assert.False(t, snap.Running)
	assert.Equal(t, domain.SessionBreak, snap.State.Current)
	assert.Equal(t, 300, snap.State.Active().TimeLeft)
	assert.Nil(t, c.schedule)
}

func TestController_StaleTickIsIgnored(t *testing.T) {
	c := newIdleController(t)
	c.Start()
	stale := c.generation

	// A manual adjustment re-arms the schedule; the old one must not fire.
	c.AddFive()
	require.NotEqual(t, stale, c.generation)

	c.tick(stale)
	assert.Equal(t, 1800, c.Snapshot().State.Active().TimeLeft)
}

func TestController_AdjustAtCeilingKeepsSchedule(t *testing.T) {
	c := newIdleController(t)
	c.Dispatch(domain.Increment(domain.MaxTimeLeft))
	c.Start()
	gen := c.generation

	c.AddFive()
	assert.Equal(t, gen, c.generation, "no time change means no re-arm")
	assert.NotNil(t, c.schedule)
}

func TestController_TickDecrementsByOne(t *testing.T) {
	c := newIdleController(t)
	c.Start()

	c.tick(c.generation)
	assert.Equal(t, 1499, c.Snapshot().State.Active().TimeLeft)
	assert.NotNil(t, c.schedule, "tick re-arms while time remains")
}

func TestController_CountdownStopsAtZero(t *testing.T) {
	c := NewController(Options{TickInterval: 10 * time.Millisecond})
	defer c.Close()

	events := c.Subscribe(64)
	c.Dispatch(domain.Decrement(1498))
	c.Start()

	require.Eventually(t, func() bool {
		return c.Snapshot().State.Active().TimeLeft == 0
	}, 2*time.Second, 5*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	snap := c.Snapshot()
	assert.Equal(t, 0, snap.State.Active().TimeLeft)
	assert.True(t, snap.Running, "running stays true at zero")

	c.mu.Lock()
	assert.Nil(t, c.schedule, "nothing is scheduled at zero")
	c.mu.Unlock()

	var finished int
	for {
		select {
		case ev := <-events:
			if ev.Type == EventFinished {
				finished++
			}
			continue
		default:
		}
		break
	}
	assert.Equal(t, 1, finished)
}

func TestController_ManualChangeRearmsAfterZero(t *testing.T) {
	c := newIdleController(t)
	c.Dispatch(domain.Decrement(1500))
	c.Start()
	assert.Nil(t, c.schedule)

	c.AddFive()
	assert.NotNil(t, c.schedule, "time added at zero re-arms the countdown")
}

func TestController_CloseClosesSubscribers(t *testing.T) {
	c := NewController(Options{})
	events := c.Subscribe(1)
	c.Start()
	c.Close()

	c.mu.Lock()
	assert.Nil(t, c.schedule)
	c.mu.Unlock()

	// Drain whatever was buffered; the channel must end closed.
	for range events {
	}

	late := c.Subscribe(1)
	_, ok := <-late
	assert.False(t, ok)
}
