// Package parsing converts free-text completions into discrete candidate strings.
package parsing

import (
	"regexp"
	"strings"
)

// itemMarker matches a leading enumeration marker like "3." at the start of a line.
var itemMarker = regexp.MustCompile(`^\d+\.`)

// ParseItems splits a completion into an ordered list of candidate strings.
// Lines that are empty after trimming are discarded; a leading enumeration
// marker is stripped from the rest. The contract is lossy: it assumes the
// completion produces one candidate per line, so a multi-line item collapses
// into multiple spurious items.
func ParseItems(text string) []string {
	lines := strings.Split(text, "\n")
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		line = itemMarker.ReplaceAllString(strings.TrimSpace(line), "")
		items = append(items, strings.TrimSpace(line))
	}
	return items
}
