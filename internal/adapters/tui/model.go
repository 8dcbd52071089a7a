// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

// tickMsg is sent when a tick schedule fires. Generation identifies the
// schedule that produced it; ticks from a torn-down schedule are dropped.
type tickMsg struct {
	generation uint64
	at         time.Time
}

// scheduleKey is the pair whose change tears down and re-arms the tick schedule.
type scheduleKey struct {
	running  bool
	timeLeft int
}

// Options configures a Model.
type Options struct {
	Theme     *config.ThemeConfig
	Inline    bool
	BigDigits bool
	Git       *ports.GitInfo
	Logger    *slog.Logger

	// TickInterval is the countdown period. Zero means one second.
	TickInterval time.Duration
}

// Model represents the TUI state.
type Model struct {
	state        domain.AppState
	running      bool
	generation   uint64
	armedFor     scheduleKey
	tickInterval time.Duration

	keys      keyMap
	help      help.Model
	progress  progress.Model
	width     int
	height    int
	inline    bool
	bigDigits bool
	theme     config.ThemeConfig
	git       *ports.GitInfo
	logger    *slog.Logger
}

// NewModel creates a stopped model holding the initial session state.
func NewModel(opts Options) Model {
	theme := resolveTheme(opts.Theme)
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	interval := opts.TickInterval
	if interval <= 0 {
		interval = time.Second
	}

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.ColorTitle))
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp))
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.ColorHelp))

	state := domain.InitialState()
	m := Model{
		state:        state,
		tickInterval: interval,
		keys:         defaultKeyMap(),
		help:         h,
		inline:       opts.Inline,
		bigDigits:    opts.BigDigits,
		theme:        theme,
		git:          opts.Git,
		logger:       logger.With("component", "tui"),
		armedFor:     scheduleKey{running: false, timeLeft: state.Active().TimeLeft},
	}
	m.progress = m.newProgress()
	if opts.Inline {
		m.width = getTerminalWidth()
		m.progress.Width = inlineProgressWidth(m.width)
	}
	return m
}

// State returns the current session state.
func (m Model) State() domain.AppState {
	return m.state
}

// Running reports whether the countdown is running.
func (m Model) Running() bool {
	return m.running
}

// Init initializes the TUI. The timer starts stopped, so nothing is scheduled.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			m.running = !m.running
			m.logger.Debug("toggle", slog.Bool("running", m.running))
		case key.Matches(msg, m.keys.Plus):
			m.dispatch(domain.Increment(domain.AdjustStep))
		case key.Matches(msg, m.keys.Minus):
			m.dispatch(domain.Decrement(domain.AdjustStep))
		case key.Matches(msg, m.keys.Reset):
			m.running = false
			m.dispatch(domain.Reset())
		case key.Matches(msg, m.keys.Change):
			m.running = false
			m.dispatch(domain.ChangeSession())
			m.progress = m.newProgress()
		default:
			return m, nil
		}
		return m, m.syncSchedule()

	case tickMsg:
		if msg.generation != m.generation {
			return m, nil
		}
		m.dispatch(domain.Decrement(domain.TickStep))
		if m.state.Active().IsFinished() {
			m.logger.Info("countdown finished", slog.String("session", string(m.state.Current)))
		}
		return m, m.syncSchedule()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.inline {
			m.progress.Width = inlineProgressWidth(msg.Width)
		} else {
			m.progress.Width = min(msg.Width-4, 60)
		}
		m.help.Width = msg.Width
	}

	return m, nil
}

func (m *Model) dispatch(action domain.Action) {
	m.state = domain.Apply(m.state, action)
	m.logger.Debug("action applied",
		slog.String("action", string(action.Kind)),
		slog.Int("payload", action.Payload),
		slog.String("current", string(m.state.Current)),
		slog.Int("time_left", m.state.Active().TimeLeft))
}

// syncSchedule re-arms the tick schedule when running or the active time left
// changed since it was last armed. Bumping the generation invalidates any tick
// already in flight, so at most one schedule is live.
func (m *Model) syncSchedule() tea.Cmd {
	next := scheduleKey{running: m.running, timeLeft: m.state.Active().TimeLeft}
	if next == m.armedFor {
		return nil
	}
	m.armedFor = next
	m.generation++

	if !m.running || m.state.Active().TimeLeft <= 0 {
		return nil
	}
	return tickCmd(m.tickInterval, m.generation)
}

// tickCmd creates a command that sends one tick for the given schedule.
func tickCmd(interval time.Duration, generation uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg{generation: generation, at: t}
	})
}

func (m Model) newProgress() progress.Model {
	start, end := sessionGradient(m.theme, m.state.Current)
	opts := []progress.Option{progress.WithGradient(start, end)}
	if m.inline {
		opts = append(opts, progress.WithoutPercentage())
	}
	p := progress.New(opts...)
	if m.progress.Width > 0 {
		p.Width = m.progress.Width
	}
	return p
}

// clockColor is the session accent while running and the stopped color otherwise.
func (m Model) clockColor() lipgloss.Color {
	if !m.running {
		return lipgloss.Color(m.theme.ColorStopped)
	}
	return sessionColor(m.theme, m.state.Current)
}

// View renders the TUI.
func (m Model) View() string {
	if m.inline {
		return m.viewInline()
	}
	if m.width == 0 {
		return "Loading..."
	}

	active := m.state.Active()
	accent := sessionColor(m.theme, m.state.Current)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	clockStyle := lipgloss.NewStyle().Bold(true).Foreground(m.clockColor())
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var sections []string
	sections = append(sections, titleStyle.Render(fmt.Sprintf("%s %s", sessionIcon(m.theme, m.state.Current), m.state.Current.Label())))

	clock := domain.FormatTime(active.TimeLeft)
	if m.bigDigits {
		sections = append(sections, renderBigClock(clock, clockStyle, m.width))
	} else {
		sections = append(sections, clockStyle.Render(clock.String()))
	}

	sections = append(sections, "")
	sections = append(sections, m.progress.ViewAs(active.Progress()))

	sections = append(sections, "")
	sections = append(sections, m.viewPad())

	if m.git != nil {
		gitInfo := fmt.Sprintf("%s %s (%s)", m.theme.IconGit, m.git.Branch, m.git.ShortCommit())
		sections = append(sections, "")
		sections = append(sections, helpStyle.Render(gitInfo))
	}

	sections = append(sections, "")
	sections = append(sections, m.help.View(m.keys.forRunning(m.running)))

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// viewPad renders the five controls as a row of buttons.
func (m Model) viewPad() string {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.ColorHelp)).
		Padding(0, 1)

	start := base
	label := "Start"
	if m.running {
		start = start.
			BorderForeground(lipgloss.Color(m.theme.ColorPomodoro)).
			Foreground(lipgloss.Color(m.theme.ColorPomodoro)).
			Bold(true)
		label = "Stop"
	}

	buttons := []string{
		start.Render(label),
		base.Render("+5 MIN"),
		base.Render("-5 MIN"),
		base.Render("Reset"),
		base.Render("Change"),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}
