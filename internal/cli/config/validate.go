package config

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"
)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}

	switch c.LogFormat {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log_format %q (expected text or json)", c.LogFormat)
	}

	ui := c.GetUIConfig()
	if !slices.Contains(Themes, ui.Theme) {
		return fmt.Errorf("unknown ui.theme %q (expected one of: %s)", ui.Theme, strings.Join(Themes, ", "))
	}
	if ui.Width < 0 {
		return fmt.Errorf("ui.width must not be negative, got %d", ui.Width)
	}

	return nil
}

// ParseLevel converts a log level name into a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		name = DefaultLogLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("unknown log_level %q (expected debug, info, warn or error)", name)
	}
	return level, nil
}
