package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/spf13/cobra"
)

// NewREPLCommand creates the repl command.
func NewREPLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Press buttons interactively, one line at a time",
		Long: `Start an interactive session with a single calculator.

Each line is a sequence of button presses ("12+3=", "CE", "+/-"); the display
is printed after every line. Type .help for commands, .quit to exit.`,
		RunE: runREPL,
	}

	cmd.Flags().String("prompt", "", "Prompt string")
	cmd.Flags().String("history-file", "", "History file path")

	return cmd
}

func runREPL(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	replCfg := cmdCtx.Cfg.GetREPLConfig()

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          replCfg.Prompt,
		HistoryFile:     replCfg.HistoryFile,
		AutoComplete:    newPressCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	session := newREPLSession(cmdCtx.NewEngine(), cmd.OutOrStdout(), cmd.ErrOrStderr())

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "LeapCalc REPL")
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(cmd.OutOrStdout())

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if session.handleLine(line) {
			break
		}
	}

	cmdCtx.Logger.Debug("repl finished", "lines", session.lines)
	return nil
}

// replSession feeds REPL lines into one engine.
type replSession struct {
	engine *calc.Engine
	out    io.Writer
	errOut io.Writer
	lines  int
}

func newREPLSession(engine *calc.Engine, out, errOut io.Writer) *replSession {
	return &replSession{engine: engine, out: out, errOut: errOut}
}

// handleLine processes one line and reports whether the session should end.
func (s *replSession) handleLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" {
		return false
	}
	s.lines++

	if strings.HasPrefix(line, ".") && !isPressLine(line) {
		return s.handleDotCommand(line)
	}

	toks, err := token.Scan(line)
	if err != nil {
		_, _ = fmt.Fprintf(s.errOut, "Error: %v\n", err)
		return false
	}
	_, _ = fmt.Fprintln(s.out, s.engine.SubmitAll(toks))
	return false
}

// isPressLine distinguishes a leading decimal press (".5") from a dot-command.
func isPressLine(line string) bool {
	_, err := token.Scan(line)
	return err == nil
}

func (s *replSession) handleDotCommand(line string) bool {
	command := strings.ToLower(strings.Fields(line)[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printREPLHelp(s.out)

	case ".state":
		st := s.engine.State()
		_, _ = fmt.Fprintf(s.out, "display:   %s\n", st.Display)
		_, _ = fmt.Fprintf(s.out, "operand1:  %s\n", calc.FormatNumber(st.Operand1))
		_, _ = fmt.Fprintf(s.out, "operand2:  %s\n", calc.FormatNumber(st.Operand2))
		_, _ = fmt.Fprintf(s.out, "pending:   %s\n", st.Pending)
		_, _ = fmt.Fprintf(s.out, "new entry: %t\n", st.StartNewNumber)
		_, _ = fmt.Fprintf(s.out, "error:     %t\n", st.ErrorState)

	case ".reset":
		_, _ = fmt.Fprintln(s.out, s.engine.Submit(token.Clear))

	default:
		_, _ = fmt.Fprintf(s.errOut, "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

func printREPLHelp(w io.Writer) {
	help := `
Commands:
  .help           Show this help message
  .state          Show the full calculator state
  .reset          Full clear (same as pressing C)
  .quit / .exit   Exit the REPL

Buttons:
  0-9 . + - * / +/- DEL CE C =

Tips:
  - Several presses may share a line: 12+3=
  - Use arrow keys to navigate history
  - Tab completion works for button labels
`
	_, _ = fmt.Fprintln(w, help)
}

// newPressCompleter creates a readline completer for button labels.
func newPressCompleter() *readline.PrefixCompleter {
	var items []readline.PrefixCompleterInterface
	for _, tok := range token.All() {
		items = append(items, readline.PcItem(tok.String()))
	}
	items = append(items,
		readline.PcItem(".help"),
		readline.PcItem(".state"),
		readline.PcItem(".reset"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
	return readline.NewPrefixCompleter(items...)
}
