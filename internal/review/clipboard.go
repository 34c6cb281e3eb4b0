package review

import (
	"strings"

	"github.com/atotto/clipboard"
)

// Clipboard is the export target for accepted lists.
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard writes through the OS clipboard.
type SystemClipboard struct{}

// WriteAll copies text to the system clipboard.
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// FormatClipboard renders items for export: each item double-quoted on its
// own line, with a comma after every item except the last. Items are wrapped
// verbatim, without escaping.
func FormatClipboard(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(`"` + item + `"`)
		if i < len(items)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
