// Package main provides tests for the LeapCalc CLI.
package main

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/leapstack-labs/leapcalc/internal/cli"
	"github.com/leapstack-labs/leapcalc/internal/cli/testutil"
)

func TestVersionCommand(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "", "version")
	if res.Err != nil {
		t.Errorf("version command error = %v", res.Err)
	}
	if !strings.Contains(res.Out, "LeapCalc") {
		t.Errorf("version output should contain 'LeapCalc', got: %s", res.Out)
	}
}

func TestVersionFlag(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "", "--version")
	if res.Err != nil {
		t.Fatalf("--version error = %v", res.Err)
	}
	if want := "leapcalc " + cli.Version + "\n"; res.Out != want {
		t.Errorf("--version output = %q, want %q", res.Out, want)
	}
}

func TestHelpCommand(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "", "--help")
	if res.Err != nil {
		t.Errorf("help command error = %v", res.Err)
	}

	expectedCommands := []string{"eval", "repl", "tui", "serve", "version", "completion"}
	for _, expected := range expectedCommands {
		if !strings.Contains(res.Out, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, res.Out)
		}
	}
}

func TestEvalCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"sum", []string{"eval", "5", "+", "3", "="}, "8"},
		{"packed", []string{"eval", "12*3="}, "36"},
		{"clear entry keeps operation", []string{"eval", "9 + 4 CE 6 ="}, "15"},
		{"divide by zero", []string{"eval", "7/0="}, "Cannot divide by zero"},
		{"custom error message", []string{"--error-message", "E", "eval", "7/0="}, "E"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.IsolateEnv(t)

			res := testutil.Run(t, cli.NewRootCmd(), "", tt.args...)
			if res.Err != nil {
				t.Fatalf("eval error = %v", res.Err)
			}
			if got := strings.TrimSpace(res.Out); got != tt.want {
				t.Errorf("eval output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEvalFromStdin(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "2 * 2 =\n", "eval", "--format", "json")
	if res.Err != nil {
		t.Fatalf("eval error = %v", res.Err)
	}

	var state struct {
		Display string `json:"display"`
	}
	if err := json.Unmarshal([]byte(res.Out), &state); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, res.Out)
	}
	if state.Display != "4" {
		t.Errorf("display = %q, want 4", state.Display)
	}
}

func TestConfigFileErrorMessage(t *testing.T) {
	dir := testutil.IsolateEnv(t)
	testutil.WriteFile(t, dir, "leapcalc.yaml", "error_message: \"div/0\"\n")

	res := testutil.Run(t, cli.NewRootCmd(), "", "eval", "1/0=")
	if res.Err != nil {
		t.Fatalf("eval error = %v", res.Err)
	}
	if got := strings.TrimSpace(res.Out); got != "div/0" {
		t.Errorf("eval output = %q, want div/0", got)
	}
}

func TestInvalidConfig(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "", "--log-level", "loud", "eval", "1")
	if res.Err == nil {
		t.Fatal("expected an error for an invalid log level")
	}
	if !strings.Contains(res.Err.Error(), "invalid configuration") {
		t.Errorf("unexpected error: %v", res.Err)
	}
}

func TestUnknownCommand(t *testing.T) {
	testutil.IsolateEnv(t)

	res := testutil.Run(t, cli.NewRootCmd(), "", "unknown-command")
	if res.Err == nil {
		t.Error("expected error for unknown command")
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}
	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			testutil.IsolateEnv(t)

			res := testutil.Run(t, cli.NewRootCmd(), "", "completion", shell)
			if res.Err != nil {
				t.Errorf("completion %s error = %v", shell, res.Err)
			}
			if !strings.Contains(res.Out, "leapcalc") {
				t.Errorf("completion %s output should mention leapcalc", shell)
			}
		})
	}
}
