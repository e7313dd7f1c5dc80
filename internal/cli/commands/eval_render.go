package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/leapstack-labs/leapcalc/pkg/calc"
)

var traceHeader = table.Row{"#", "Press", "Display", "Operand 1", "Pending", "Error"}

func renderTrace(w io.Writer, steps []TraceStep, format string) error {
	switch format {
	case "json":
		return renderJSON(w, steps)
	case "csv", "md", "markdown", "table", "":
	default:
		return fmt.Errorf("unknown format %q (expected table, json, csv or md)", format)
	}

	if len(steps) == 0 {
		_, _ = fmt.Fprintln(w, "(0 presses)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(traceHeader)
	for _, s := range steps {
		t.AppendRow(table.Row{
			s.Step,
			s.Token,
			s.State.Display,
			calc.FormatNumber(s.State.Operand1),
			s.State.Pending.String(),
			yesNo(s.State.ErrorState),
		})
	}

	switch format {
	case "csv":
		t.RenderCSV()
	case "md", "markdown":
		t.RenderMarkdown()
	default:
		t.Render()
		_, _ = fmt.Fprintf(w, "(%d presses)\n", len(steps))
	}
	return nil
}

func renderFinal(w io.Writer, state calc.State, format string) error {
	if format == "json" {
		return renderJSON(w, state)
	}
	_, err := fmt.Fprintln(w, state.Display)
	return err
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return ""
}
