// Package config provides configuration management for pomo.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the pomo application.
// Session lengths are fixed and deliberately absent.
type Config struct {
	UI    UIConfig    `mapstructure:"ui"`
	Log   LogConfig   `mapstructure:"log"`
	Theme ThemeConfig `mapstructure:"theme"`
}

// UIConfig holds terminal rendering options.
type UIConfig struct {
	Inline    bool `mapstructure:"inline"`
	BigDigits bool `mapstructure:"big_digits"`
	ShowGit   bool `mapstructure:"show_git"`
}

// LogConfig holds logging options. An empty File means the default under the data dir.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorPomodoro         string `mapstructure:"color_pomodoro"`
	ColorBreak            string `mapstructure:"color_break"`
	ColorStopped          string `mapstructure:"color_stopped"`
	ColorTitle            string `mapstructure:"color_title"`
	ColorHelp             string `mapstructure:"color_help"`
	PomodoroGradientStart string `mapstructure:"pomodoro_gradient_start"`
	PomodoroGradientEnd   string `mapstructure:"pomodoro_gradient_end"`
	BreakGradientStart    string `mapstructure:"break_gradient_start"`
	BreakGradientEnd      string `mapstructure:"break_gradient_end"`
	IconPomodoro          string `mapstructure:"icon_pomodoro"`
	IconBreak             string `mapstructure:"icon_break"`
	IconGit               string `mapstructure:"icon_git"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorPomodoro:         "#E8575A",
		ColorBreak:            "#4ECDC4",
		ColorStopped:          "#6B7280",
		ColorTitle:            "#A0AEC0",
		ColorHelp:             "#95A5A6",
		PomodoroGradientStart: "#E8575A",
		PomodoroGradientEnd:   "#F6AD55",
		BreakGradientStart:    "#4ECDC4",
		BreakGradientEnd:      "#2ECC71",
		IconPomodoro:          "🍅",
		IconBreak:             "☕",
		IconGit:               "🌿",
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			Inline:    false,
			BigDigits: true,
			ShowGit:   true,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultThemeConfig(),
	}
}

// DataDir returns the directory holding the config and log files.
func DataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pomo"), nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	dir, err := DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load loads the configuration from the default config file.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadFrom(configPath)
}

// LoadFrom loads the configuration at configPath, writing defaults first if
// the file does not exist yet.
func LoadFrom(configPath string) (*Config, error) {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := SaveTo(configPath, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	v := newViper(configPath)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Log.File == "" {
		cfg.Log.File = filepath.Join(filepath.Dir(configPath), "pomo.log")
	}

	return &cfg, nil
}

// SaveTo writes cfg to configPath as TOML.
func SaveTo(configPath string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(configPath)
	for _, e := range cfg.Entries() {
		v.Set(e.Key, e.Value)
	}

	return v.WriteConfigAs(configPath)
}

// newViper returns a viper instance bound to configPath with all defaults set.
// POMO_* environment variables override file values (POMO_UI_INLINE, POMO_LOG_LEVEL, ...).
func newViper(configPath string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")
	v.SetEnvPrefix("pomo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	for _, e := range DefaultConfig().Entries() {
		v.SetDefault(e.Key, e.Value)
	}
}

// Entry is one config key in dotted form with its value.
type Entry struct {
	Key   string
	Value any
}

// Entries flattens c into dotted keys in file order.
func (c *Config) Entries() []Entry {
	return []Entry{
		{"ui.inline", c.UI.Inline},
		{"ui.big_digits", c.UI.BigDigits},
		{"ui.show_git", c.UI.ShowGit},
		{"log.file", c.Log.File},
		{"log.level", c.Log.Level},
		{"theme.color_pomodoro", c.Theme.ColorPomodoro},
		{"theme.color_break", c.Theme.ColorBreak},
		{"theme.color_stopped", c.Theme.ColorStopped},
		{"theme.color_title", c.Theme.ColorTitle},
		{"theme.color_help", c.Theme.ColorHelp},
		{"theme.pomodoro_gradient_start", c.Theme.PomodoroGradientStart},
		{"theme.pomodoro_gradient_end", c.Theme.PomodoroGradientEnd},
		{"theme.break_gradient_start", c.Theme.BreakGradientStart},
		{"theme.break_gradient_end", c.Theme.BreakGradientEnd},
		{"theme.icon_pomodoro", c.Theme.IconPomodoro},
		{"theme.icon_break", c.Theme.IconBreak},
		{"theme.icon_git", c.Theme.IconGit},
	}
}

// SlogLevel maps the configured level name to a slog.Level. Unknown names mean Info.
func (c LogConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
