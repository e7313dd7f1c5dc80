// Package config provides configuration management for the LeapCalc CLI.
//
// Configuration is layered with koanf: built-in defaults, then a YAML file,
// then LEAPCALC_* environment variables, then explicitly set command-line
// flags.
package config

import (
	"log/slog"

	"github.com/leapstack-labs/leapcalc/pkg/calc"
)

// Config holds all CLI configuration options.
type Config struct {
	Verbose         bool         `koanf:"verbose"`
	LogLevel        string       `koanf:"log_level"`
	LogFormat       string       `koanf:"log_format"`
	ErrorMessage    string       `koanf:"error_message"`
	OverflowMessage string       `koanf:"overflow_message"`
	REPL            *REPLConfig  `koanf:"repl"`
	UI              *UIConfig    `koanf:"ui"`
	Serve           *ServeConfig `koanf:"serve"`
}

// REPLConfig holds configuration for the interactive line REPL.
type REPLConfig struct {
	Prompt      string `koanf:"prompt"`
	HistoryFile string `koanf:"history_file"`
}

// UIConfig holds configuration for the terminal keypad UI.
type UIConfig struct {
	Theme string `koanf:"theme"`
	Width int    `koanf:"width"`
}

// ServeConfig holds configuration for the MCP server.
type ServeConfig struct {
	HTTP string `koanf:"http"` // empty serves over stdio
}

// Default configuration values.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
	DefaultPrompt    = "calc> "
	DefaultTheme     = "default"
	DefaultWidth     = 28
	DefaultHistory   = ".leapcalc_history"
)

// Themes lists the accepted ui.theme values.
var Themes = []string{"default", "mono"}

// GetREPLConfig returns the REPL config with defaults applied for unset values.
func (c *Config) GetREPLConfig() *REPLConfig {
	r := &REPLConfig{}
	if c.REPL != nil {
		*r = *c.REPL
	}
	if r.Prompt == "" {
		r.Prompt = DefaultPrompt
	}
	return r
}

// GetUIConfig returns the UI config with defaults applied for unset values.
func (c *Config) GetUIConfig() *UIConfig {
	ui := &UIConfig{}
	if c.UI != nil {
		*ui = *c.UI
	}
	if ui.Theme == "" {
		ui.Theme = DefaultTheme
	}
	if ui.Width == 0 {
		ui.Width = DefaultWidth
	}
	return ui
}

// GetServeConfig returns the serve config, never nil.
func (c *Config) GetServeConfig() *ServeConfig {
	if c.Serve == nil {
		return &ServeConfig{}
	}
	return c.Serve
}

// EngineConfig builds the engine configuration for this CLI configuration.
func (c *Config) EngineConfig(logger *slog.Logger) calc.Config {
	return calc.Config{
		ErrorMessage:    c.ErrorMessage,
		OverflowMessage: c.OverflowMessage,
		Logger:          logger,
	}
}
