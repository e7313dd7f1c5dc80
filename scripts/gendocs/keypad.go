package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/leapcalc/pkg/token"
)

var buttonDescriptions = map[token.Token]string{
	token.Decimal:    "Start the fractional part; ignored if the entry already has one",
	token.Plus:       "Store the display as the first operand and wait for the second",
	token.Minus:      "Store the display as the first operand and wait for the second",
	token.Star:       "Store the display as the first operand and wait for the second",
	token.Slash:      "Store the display as the first operand and wait for the second",
	token.Negate:     "Invert the sign of the displayed number",
	token.Delete:     "Remove the last character of the entry",
	token.ClearEntry: "Reset the entry to 0, keeping the pending operation",
	token.Clear:      "Reset everything, including the error state",
	token.Equals:     "Apply the pending operation",
}

func describeButton(tok token.Token) string {
	if tok.IsDigit() {
		return fmt.Sprintf("Enter the digit %d", tok.DigitValue())
	}
	return buttonDescriptions[tok]
}

// generateKeypadDoc writes the button reference page.
func generateKeypadDoc(outDir string) error {
	log.Printf("Generating keypad docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Keypad", "Buttons accepted by every LeapCalc front end")
	w.GeneratedMarker()

	w.Header(1, "Keypad")

	var layout [][]string
	for _, row := range token.Keypad {
		cells := make([]string, 0, len(row))
		for _, tok := range row {
			cells = append(cells, InlineCode(tok.String()))
		}
		layout = append(layout, cells)
	}
	w.Table([]string{"", "", "", ""}, layout)

	w.Header(2, "Buttons")
	var rows [][]string
	for _, tok := range token.All() {
		rows = append(rows, []string{InlineCode(tok.String()), describeButton(tok)})
	}
	w.Table([]string{"Label", "Effect"}, rows)

	w.Paragraph("Labels are case-insensitive and may be written together (`12+3=`) or separated by spaces or commas.")

	return os.WriteFile(filepath.Join(outDir, "keypad.md"), w.Bytes(), 0600)
}
