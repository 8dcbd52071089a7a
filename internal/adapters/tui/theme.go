package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// sessionColor returns the accent color of a session.
func sessionColor(theme config.ThemeConfig, name domain.SessionName) lipgloss.Color {
	if name == domain.SessionBreak {
		return lipgloss.Color(theme.ColorBreak)
	}
	return lipgloss.Color(theme.ColorPomodoro)
}

// sessionIcon returns the icon shown before the session label.
func sessionIcon(theme config.ThemeConfig, name domain.SessionName) string {
	if name == domain.SessionBreak {
		return theme.IconBreak
	}
	return theme.IconPomodoro
}

// sessionGradient returns the progress bar gradient of a session.
func sessionGradient(theme config.ThemeConfig, name domain.SessionName) (string, string) {
	if name == domain.SessionBreak {
		return theme.BreakGradientStart, theme.BreakGradientEnd
	}
	return theme.PomodoroGradientStart, theme.PomodoroGradientEnd
}
