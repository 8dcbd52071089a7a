package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// Timer implements the ports.Timer interface using Bubbletea.
type Timer struct {
	opts    Options
	program *tea.Program
	state   domain.AppState
	cancel  context.CancelFunc
	mu      sync.RWMutex
	wg      sync.WaitGroup
}

// NewTimer creates a new TUI timer adapter. Options.Inline selects the
// compact renderer; otherwise the timer takes over the alternate screen.
func NewTimer(opts Options) *Timer {
	return &Timer{
		opts:  opts,
		state: domain.InitialState(),
	}
}

// Run starts the timer interface and blocks until the user quits or ctx is cancelled.
func (t *Timer) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var programOpts []tea.ProgramOption
	if !t.opts.Inline {
		programOpts = append(programOpts, tea.WithAltScreen())
	}

	t.mu.Lock()
	t.program = tea.NewProgram(NewModel(t.opts), programOpts...)
	t.cancel = cancel
	program := t.program
	t.mu.Unlock()

	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		<-ctx.Done()
		program.Quit()
	}()

	final, err := program.Run()

	cancel()
	t.wg.Wait()

	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if m, ok := final.(Model); ok {
		t.mu.Lock()
		t.state = m.State()
		t.mu.Unlock()
	}
	return nil
}

// Stop gracefully stops the timer interface.
func (t *Timer) Stop() {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.cancel != nil {
		t.cancel()
	}
}

// State returns the state the timer held when it last exited.
func (t *Timer) State() domain.AppState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.state
}

// Ensure Timer implements ports.Timer.
var _ ports.Timer = (*Timer)(nil)
