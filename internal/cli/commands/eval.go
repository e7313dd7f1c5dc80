package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// EvalOptions holds options for the eval command.
type EvalOptions struct {
	Format string
	Input  string
	Trace  bool
}

// errNoInput is returned when eval has nothing to read.
var errNoInput = errors.New("no button presses given (pass them as arguments, --input or stdin)")

// NewEvalCommand creates the eval command.
func NewEvalCommand() *cobra.Command {
	opts := &EvalOptions{}

	cmd := &cobra.Command{
		Use:   "eval [presses...]",
		Short: "Press a sequence of buttons and print the display",
		Long: `Run a sequence of button presses through a fresh calculator and print
the final display.

Presses are button labels: 0-9 . + - * / +/- DEL CE C =
They may be written together ("12+3=") or separated by spaces or commas.`,
		Example: `  # Simple sum
  leapcalc eval 5 + 3 =

  # Clear entry keeps the pending operation
  leapcalc eval "9 + 4 CE 6 ="

  # Show every step as a table
  leapcalc eval --trace "1/3="

  # Read presses from a file, trace as JSON
  leapcalc eval -i presses.txt --trace --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "table", "Output format: table, json, csv, md")
	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read presses from file")
	cmd.Flags().BoolVar(&opts.Trace, "trace", false, "Print the engine state after every press")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "json", "csv", "md"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func runEval(cmd *cobra.Command, args []string, opts *EvalOptions) error {
	cmdCtx := NewCommandContext(cmd)

	input, err := readEvalInput(cmd.InOrStdin(), args, opts.Input)
	if err != nil {
		return err
	}

	toks, err := token.Scan(input)
	if err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	cmdCtx.Logger.Debug("evaluating", "presses", len(toks))

	engine := cmdCtx.NewEngine()
	steps := make([]TraceStep, 0, len(toks))
	for i, tok := range toks {
		engine.Submit(tok)
		steps = append(steps, TraceStep{Step: i + 1, Token: tok.String(), State: engine.State()})
	}

	out := cmd.OutOrStdout()
	if opts.Trace {
		return renderTrace(out, steps, opts.Format)
	}
	return renderFinal(out, engine.State(), opts.Format)
}

// readEvalInput determines where presses come from: arguments, a file, or
// piped stdin, in that order.
func readEvalInput(stdin io.Reader, args []string, inputFile string) (string, error) {
	switch {
	case len(args) > 0:
		return strings.Join(args, " "), nil
	case inputFile != "":
		content, err := os.ReadFile(inputFile)
		if err != nil {
			return "", fmt.Errorf("failed to read file: %w", err)
		}
		return string(content), nil
	case !isTerminal(stdin):
		content, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		if strings.TrimSpace(string(content)) == "" {
			return "", errNoInput
		}
		return string(content), nil
	default:
		return "", errNoInput
	}
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// TraceStep records the engine state after one press.
type TraceStep struct {
	Step  int        `json:"step"`
	Token string     `json:"token"`
	State calc.State `json:"state"`
}
