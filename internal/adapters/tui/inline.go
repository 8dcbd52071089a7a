package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/xvierd/pomo/internal/domain"
)

// getTerminalWidth returns the current terminal width, defaulting to 80.
func getTerminalWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

func inlineProgressWidth(width int) int {
	return max(width-16, 20)
}

// viewInline renders the compact three-line timer used with --inline.
func (m Model) viewInline() string {
	active := m.state.Active()
	accent := lipgloss.NewStyle().Foreground(sessionColor(m.theme, m.state.Current)).Bold(true)
	clock := lipgloss.NewStyle().Foreground(m.clockColor()).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))

	var b strings.Builder

	// icon + label + time
	b.WriteString(accent.Render(fmt.Sprintf("  %s %s", sessionIcon(m.theme, m.state.Current), m.state.Current.Label())))
	b.WriteString("  ")
	b.WriteString(clock.Render(domain.FormatTime(active.TimeLeft).String()))
	if !m.running {
		b.WriteString(dim.Render("  stopped"))
	}
	if m.git != nil {
		b.WriteString(dim.Render(fmt.Sprintf("  %s %s", m.theme.IconGit, m.git.Branch)))
	}
	b.WriteString("\n")

	prog := active.Progress()
	b.WriteString("  " + m.progress.ViewAs(prog))
	b.WriteString(dim.Render(fmt.Sprintf("  %d%%", int(prog*100))))
	b.WriteString("\n")

	toggle := "[s]tart"
	if m.running {
		toggle = "[s]top"
	}
	b.WriteString(dim.Render(fmt.Sprintf("  %s [+]5 [-]5 [r]eset [c]hange [q]uit", toggle)))
	b.WriteString("\n")

	return b.String()
}
