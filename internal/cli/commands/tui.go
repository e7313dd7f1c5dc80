package commands

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leapstack-labs/leapcalc/internal/tui"
	"github.com/spf13/cobra"
)

// NewTUICommand creates the tui command.
func NewTUICommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the full-screen keypad",
		Long: `Open a full-screen calculator keypad.

Type digits and operators directly, or move the cursor with the arrow keys
and press space. Enter is =, backspace is DEL, delete is CE, esc is C and
n is +/-.`,
		RunE: runTUI,
	}

	cmd.Flags().String("theme", "", "Color theme (default, mono)")
	cmd.Flags().Int("width", 0, "Display width in cells")

	return cmd
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cmdCtx := NewCommandContext(cmd)
	uiCfg := cmdCtx.Cfg.GetUIConfig()

	model := tui.New(cmdCtx.NewEngine(), tui.Options{
		Styles: tui.NewStyles(uiCfg.Theme, cmd.OutOrStdout()),
		Width:  uiCfg.Width,
	})

	p := tea.NewProgram(model,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("keypad: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		cmdCtx.Logger.Debug("tui finished", "presses", m.Presses(), "display", m.Display())
	}
	return nil
}
