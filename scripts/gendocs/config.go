package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/leapstack-labs/leapcalc/internal/cli/config"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
)

// ConfigField describes one configuration key.
type ConfigField struct {
	Key         string
	Type        string
	Default     string
	Flag        string
	Description string
}

// configFields mirrors internal/cli/config.Config.
func configFields() []ConfigField {
	return []ConfigField{
		{Key: "verbose", Type: "bool", Default: "false", Flag: "--verbose", Description: "Shortcut for log_level: debug"},
		{Key: "log_level", Type: "string", Default: config.DefaultLogLevel, Flag: "--log-level", Description: "debug, info, warn or error"},
		{Key: "log_format", Type: "string", Default: config.DefaultLogFormat, Flag: "--log-format", Description: "text or json"},
		{Key: "error_message", Type: "string", Default: calc.DefaultErrorMessage, Flag: "--error-message", Description: "Display text after a division by zero"},
		{Key: "overflow_message", Type: "string", Default: calc.DefaultOverflowMessage, Description: "Display text after a result that is not a finite number"},
		{Key: "repl.prompt", Type: "string", Default: config.DefaultPrompt, Flag: "--prompt", Description: "REPL prompt"},
		{Key: "repl.history_file", Type: "string", Default: "~/" + config.DefaultHistory, Flag: "--history-file", Description: "REPL history file"},
		{Key: "ui.theme", Type: "string", Default: config.DefaultTheme, Flag: "--theme", Description: "Keypad theme: " + strings.Join(config.Themes, ", ")},
		{Key: "ui.width", Type: "int", Default: strconv.Itoa(config.DefaultWidth), Flag: "--width", Description: "Keypad display width in cells"},
		{Key: "serve.http", Type: "string", Flag: "--http", Description: "MCP listen address; empty serves over stdio"},
	}
}

// envName returns the environment variable that sets key.
func envName(key string) string {
	return config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, ".", "__"))
}

// generateConfigDoc writes the configuration reference page.
func generateConfigDoc(outDir string) error {
	log.Printf("Generating configuration docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Configuration", "LeapCalc configuration reference")
	w.GeneratedMarker()

	w.Header(1, "Configuration")
	w.Paragraph("LeapCalc reads `leapcalc.yaml` from the working directory, then `~/.leapcalc/leapcalc.yaml`. " +
		"Environment variables override the file and explicitly set flags override both.")

	headers := []string{"Key", "Type", "Default", "Flag", "Description"}
	var rows [][]string
	for _, f := range configFields() {
		defVal := "-"
		if f.Default != "" {
			defVal = InlineCode(f.Default)
		}
		flagName := "-"
		if f.Flag != "" {
			flagName = InlineCode(f.Flag)
		}
		rows = append(rows, []string{InlineCode(f.Key), f.Type, defVal, flagName, f.Description})
	}
	w.Table(headers, rows)

	w.Header(2, "Example")
	w.CodeBlock("yaml", `log_level: info
error_message: "Error"
repl:
  prompt: "> "
ui:
  theme: mono
  width: 32
serve:
  http: ":8080"`)

	return os.WriteFile(filepath.Join(outDir, "configuration.md"), w.Bytes(), 0600)
}
