package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/ports"
)

func TestNewModel(t *testing.T) {
	m := NewModel(Options{})

	if m.Running() {
		t.Error("new model should be stopped")
	}
	if m.State() != domain.InitialState() {
		t.Errorf("state = %+v, want initial state", m.State())
	}
	if m.Init() != nil {
		t.Error("Init should not schedule anything")
	}
	if m.tickInterval.Seconds() != 1 {
		t.Errorf("tick interval = %v, want 1s", m.tickInterval)
	}
}

func TestModel_View_Loading(t *testing.T) {
	m := NewModel(Options{})
	if got := m.View(); got != "Loading..." {
		t.Errorf("View before first resize = %q", got)
	}
}

func sized(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

func TestModel_View(t *testing.T) {
	m := sized(t, NewModel(Options{}))
	view := m.View()

	for _, want := range []string{"Pomodoro Timer", "25:00", "Start", "+5 MIN", "-5 MIN", "Reset", "Change"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
	if strings.Contains(view, "Stop") {
		t.Error("stopped view should not show Stop")
	}
}

func TestModel_View_Running(t *testing.T) {
	m := sized(t, NewModel(Options{}))
	m, _ = update(t, m, press("s"))
	view := m.View()
	if !strings.Contains(view, "Stop") {
		t.Error("running view should show Stop")
	}
}

func TestModel_View_Break(t *testing.T) {
	m := sized(t, NewModel(Options{}))
	m, _ = update(t, m, press("c"))
	view := m.View()
	if !strings.Contains(view, "Break") {
		t.Error("View should show the break label")
	}
	if !strings.Contains(view, "05:00") {
		t.Error("View should show 05:00 for a fresh break")
	}
}

func TestModel_View_BigDigits(t *testing.T) {
	m := sized(t, NewModel(Options{BigDigits: true}))
	view := m.View()
	if strings.Contains(view, "25:00") {
		t.Error("big digit view should not contain the plain clock")
	}
	if !strings.Contains(view, "▪") {
		t.Error("big digit view should draw the colon glyph")
	}
}

func TestModel_View_Git(t *testing.T) {
	git := &ports.GitInfo{Branch: "main", Commit: "0123456789abcdef"}
	m := sized(t, NewModel(Options{Git: git}))
	view := m.View()
	if !strings.Contains(view, "main (0123456)") {
		t.Error("View should show branch and short commit")
	}

	m = sized(t, NewModel(Options{}))
	if strings.Contains(m.View(), "main (") {
		t.Error("View should omit the git line without git info")
	}
}

func TestModel_ViewInline(t *testing.T) {
	m := NewModel(Options{Inline: true})
	view := m.View()
	for _, want := range []string{"Pomodoro Timer", "25:00", "stopped", "[s]tart", "[c]hange"} {
		if !strings.Contains(view, want) {
			t.Errorf("inline view should contain %q", want)
		}
	}

	m, _ = update(t, m, press("s"))
	view = m.View()
	if strings.Contains(view, "stopped") {
		t.Error("running inline view should not say stopped")
	}
	if !strings.Contains(view, "[s]top") {
		t.Error("running inline view should offer [s]top")
	}
}

func TestRenderBigClock_NarrowFallsBack(t *testing.T) {
	m := NewModel(Options{})
	got := renderBigClock(domain.FormatTime(65), m.help.Styles.ShortDesc, minBigWidth-1)
	if !strings.Contains(got, "01:05") {
		t.Errorf("narrow render = %q, want plain clock", got)
	}
}

func TestRenderBigClock_Rows(t *testing.T) {
	m := NewModel(Options{})
	got := renderBigClock(domain.FormatTime(3600), m.help.Styles.ShortDesc, 80)
	if rows := strings.Count(got, "\n") + 1; rows != glyphHeight {
		t.Errorf("rows = %d, want %d", rows, glyphHeight)
	}
}

func TestResolveTheme(t *testing.T) {
	defaults := config.DefaultThemeConfig()

	if got := resolveTheme(nil); got != defaults {
		t.Error("nil theme should resolve to defaults")
	}

	partial := &config.ThemeConfig{ColorPomodoro: "#123456"}
	got := resolveTheme(partial)
	if got.ColorPomodoro != "#123456" {
		t.Errorf("ColorPomodoro = %q, want override", got.ColorPomodoro)
	}
	if got.ColorBreak != defaults.ColorBreak {
		t.Errorf("ColorBreak = %q, want default %q", got.ColorBreak, defaults.ColorBreak)
	}
}

func TestKeyMap_ForRunning(t *testing.T) {
	k := defaultKeyMap()
	if got := k.forRunning(true).Toggle.Help().Desc; got != "stop" {
		t.Errorf("running toggle help = %q, want stop", got)
	}
	if got := k.forRunning(false).Toggle.Help().Desc; got != "start" {
		t.Errorf("stopped toggle help = %q, want start", got)
	}
}

func TestTimer_BeforeRun(t *testing.T) {
	timer := NewTimer(Options{Inline: true})
	if timer.State() != domain.InitialState() {
		t.Errorf("State before Run = %+v, want initial state", timer.State())
	}
	// Stop before Run must be a no-op.
	timer.Stop()
}
