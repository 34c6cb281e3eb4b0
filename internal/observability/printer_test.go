package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/rune-augmenter/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestPrintRecord(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.PrintRecord(3, &store.RuneDefinition{
		RuneName:     "RUNA FEHU",
		Description:  "riqueza",
		Kind:         store.KindInvert,
		Alternatives: []string{"a1", "a2"},
	})

	got := out.String()
	assert.Contains(t, got, "RECORD 3")
	assert.Contains(t, got, "Name:  FEHU")
	assert.Contains(t, got, "Kind:  invert")
	assert.Contains(t, got, "Alternatives: 2")
	assert.Contains(t, got, "Summaries:    0")
}

func TestPrintRecord_NilRecord(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.PrintRecord(0, nil)

	assert.Empty(t, out.String())
}

func TestPrintItems_TruncatesLongLists(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)

	items := []string{"uno", "dos", "tres", "cuatro", "cinco", "seis", "siete"}
	printer.PrintItems("ALTERNATIVES", items)

	got := out.String()
	assert.Contains(t, got, "ALTERNATIVES")
	assert.Contains(t, got, "• uno")
	assert.Contains(t, got, "• cinco")
	assert.Contains(t, got, "... and 2 more")
	assert.NotContains(t, got, "• seis")
}

func TestPrintItems_EmptyList(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.PrintItems("ALTERNATIVES", nil)

	assert.Empty(t, out.String())
}

func TestPrintTokenSummary(t *testing.T) {
	var out bytes.Buffer
	printer := NewPrinter(&out)

	printer.PrintTokenSummary(25, 140)

	got := out.String()
	assert.Contains(t, got, "TOKEN USAGE")
	assert.Contains(t, got, "Record tokens: 25")
	assert.Contains(t, got, "Run tokens:    140")
}
