package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/leapstack-labs/leapcalc/internal/cli"
	"github.com/leapstack-labs/leapcalc/internal/mcpserver"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
	"github.com/leapstack-labs/leapcalc/pkg/token"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// section appends command-specific reference material to a page.
type section func(w *MarkdownWriter)

var commandSections = map[string][]section{
	"eval":  {writeButtonTable, writeTraceFormats},
	"repl":  {writeButtonTable, writeDotCommands},
	"tui":   {writeKeypadKeys},
	"serve": {writeMCPTools},
}

// generateCLIDocs writes index.md plus one page per visible command.
func generateCLIDocs(outDir string) error {
	log.Printf("Generating CLI docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	root := cli.NewRootCmd()
	commands := visibleCommands(root)

	if err := writePage(outDir, "index", cliIndex(root, commands)); err != nil {
		return err
	}
	for _, cmd := range commands {
		if err := writePage(outDir, cmd.Name(), commandPage(cmd)); err != nil {
			return err
		}
	}
	return nil
}

func writePage(outDir, name string, w *MarkdownWriter) error {
	path := filepath.Join(outDir, name+".md")
	if err := os.WriteFile(path, w.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.Printf("  Generated %s.md", name)
	return nil
}

func visibleCommands(root *cobra.Command) []*cobra.Command {
	var out []*cobra.Command
	for _, cmd := range root.Commands() {
		if cmd.Hidden || cmd.Name() == "help" {
			continue
		}
		out = append(out, cmd)
	}
	return out
}

func cliIndex(root *cobra.Command, commands []*cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("CLI Reference", "Command-line interface reference for LeapCalc")
	w.GeneratedMarker()

	w.Header(1, "CLI Reference")
	w.Paragraph(root.Long)
	w.CodeBlock("bash", "go install github.com/leapstack-labs/leapcalc/cmd/leapcalc@latest")

	var rows [][]string
	for _, cmd := range commands {
		link := fmt.Sprintf("[%s](/cli/%s)", InlineCode(cmd.Name()), cmd.Name())
		rows = append(rows, []string{link, cleanDescription(cmd.Short)})
	}
	w.Header(2, "Commands")
	w.Table([]string{"Command", "Description"}, rows)

	w.Header(2, "Global flags")
	w.Table(flagHeaders, flagRows(root.PersistentFlags()))

	var envRows [][]string
	for _, f := range configFields() {
		envRows = append(envRows, []string{InlineCode(envName(f.Key)), InlineCode(f.Key)})
	}
	w.Header(2, "Environment")
	w.Paragraph("Each configuration key has an environment variable. " +
		"Flags override the environment, which overrides `leapcalc.yaml`. See [configuration](/configuration).")
	w.Table([]string{"Variable", "Key"}, envRows)

	w.Paragraph("Every command exits 0 on success and 1 after printing `Error: ...` to stderr. " +
		"A division by zero is not an error: it is shown on the display.")
	return w
}

func commandPage(cmd *cobra.Command) *MarkdownWriter {
	w := NewMarkdownWriter()
	w.Frontmatter("leapcalc "+cmd.Name(), cmd.Short)
	w.GeneratedMarker()

	w.Header(1, "leapcalc "+cmd.Name())
	if cmd.Long != "" {
		w.Paragraph(cmd.Long)
	} else {
		w.Paragraph(cmd.Short)
	}
	w.CodeBlock("bash", cmd.UseLine())

	if cmd.HasLocalFlags() {
		w.Header(2, "Flags")
		w.Table(flagHeaders, flagRows(cmd.LocalFlags()))
	}
	if cmd.Example != "" {
		w.Header(2, "Examples")
		w.CodeBlock("bash", unindent(cmd.Example))
	}
	for _, write := range commandSections[cmd.Name()] {
		write(w)
	}
	return w
}

var flagHeaders = []string{"Flag", "Type", "Default", "Description"}

func flagRows(flags *pflag.FlagSet) [][]string {
	var rows [][]string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		name := InlineCode("--" + f.Name)
		if f.Shorthand != "" {
			name = InlineCode("-"+f.Shorthand) + ", " + name
		}
		def := "-"
		if f.DefValue != "" && f.DefValue != "false" {
			def = InlineCode(f.DefValue)
		}
		rows = append(rows, []string{name, f.Value.Type(), def, cleanDescription(f.Usage)})
	})
	return rows
}

// unindent strips the two-space indent cobra examples are written with.
func unindent(example string) string {
	lines := strings.Split(strings.Trim(example, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimPrefix(line, "  ")
	}
	return strings.Join(lines, "\n")
}

func writeButtonTable(w *MarkdownWriter) {
	var rows [][]string
	for _, tok := range token.All() {
		rows = append(rows, []string{InlineCode(tok.String()), describeButton(tok)})
	}
	w.Header(2, "Buttons")
	w.Paragraph("Labels may be run together (`12+3=`) or separated by spaces or commas. " +
		"`DEL`, `CE` and `C` are case-insensitive. Unknown text is rejected before anything is pressed.")
	w.Table([]string{"Label", "Effect"}, rows)
}

func writeTraceFormats(w *MarkdownWriter) {
	w.Header(2, "Trace output")
	w.Paragraph("`--trace` prints the state after every press: step, button, display, first operand, " +
		"pending operator and error flag. `--format` picks the rendering:")
	w.BulletList([]string{
		InlineCode("table") + ": box table followed by the press count",
		InlineCode("json") + ": array of steps with the full engine state",
		InlineCode("csv") + ": comma-separated rows with a header",
		InlineCode("md") + ": markdown table",
	})
}

func writeDotCommands(w *MarkdownWriter) {
	w.Header(2, "Session commands")
	w.Paragraph("A line starting with `.` that is not a valid press sequence is a session command. `.5` still presses `.` and `5`.")
	w.Table([]string{"Command", "Effect"}, [][]string{
		{InlineCode(".help"), "List commands and buttons"},
		{InlineCode(".state"), "Show display, operands, pending operator and flags"},
		{InlineCode(".reset"), "Press " + InlineCode("C")},
		{InlineCode(".quit") + ", " + InlineCode(".exit"), "Leave the REPL"},
	})
}

func writeKeypadKeys(w *MarkdownWriter) {
	w.Header(2, "Keys")
	w.Table([]string{"Key", "Action"}, [][]string{
		{"digits, `.`, `+ - * /`, `=`", "Press that button"},
		{"enter", "Press " + InlineCode("=")},
		{"arrows or `h j k l`", "Move the cursor (wraps at the edges)"},
		{"space", "Press the selected button"},
		{"backspace", "Press " + InlineCode("DEL")},
		{"delete", "Press " + InlineCode("CE")},
		{"esc", "Press " + InlineCode("C")},
		{"`n`", "Press " + InlineCode("+/-")},
		{"`?`", "Toggle full help"},
		{"`q`, ctrl+c", "Quit"},
	})
}

func writeMCPTools(w *MarkdownWriter) {
	var rows [][]string
	for _, tool := range mcpserver.New("docs", calc.Config{}).Tools() {
		args := "-"
		if props := tool.InputSchema.Properties; len(props) > 0 {
			var names []string
			for name := range props {
				if slices.Contains(tool.InputSchema.Required, name) {
					name += " (required)"
				}
				names = append(names, InlineCode(name))
			}
			slices.Sort(names)
			args = strings.Join(names, ", ")
		}
		rows = append(rows, []string{InlineCode(tool.Name), args, cleanDescription(tool.Description)})
	}
	w.Header(2, "MCP tools")
	w.Paragraph("Each client session gets its own calculator. Bad input comes back as a tool error result.")
	w.Table([]string{"Tool", "Arguments", "Description"}, rows)
}
