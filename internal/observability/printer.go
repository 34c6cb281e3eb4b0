// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/rune-augmenter/internal/store"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRecord outputs a human-readable summary of one rune definition before
// it is processed.
func (p *Printer) PrintRecord(index int, rec *store.RuneDefinition) {
	if rec == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:  %s\n", rec.DisplayName()))
	sb.WriteString(fmt.Sprintf("Kind:  %s\n", rec.Kind))
	sb.WriteString(fmt.Sprintf("Alternatives: %d\n", len(rec.Alternatives)))
	sb.WriteString(fmt.Sprintf("Summaries:    %d", len(rec.Summaries)))

	p.printBox(fmt.Sprintf("RECORD %d", index), sb.String())
}

// PrintItems outputs the leading parsed candidate items for a record.
func (p *Printer) PrintItems(title string, items []string) {
	if len(items) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", items[i]))
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintTokenSummary outputs the per-record and run-wide token usage.
func (p *Printer) PrintTokenSummary(recordTokens, runTokens int) {
	content := fmt.Sprintf("Record tokens: %d\nRun tokens:    %d", recordTokens, runTokens)
	p.printBox("TOKEN USAGE", content)
}
