package dataset

import (
	"strings"
	"time"
)

// Layouts tried in order. Kaggle exports of the IPL results use ISO dates;
// the day-first forms turn up in hand-edited copies of the same data.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
	"2006/01/02",
}

// ParseDate parses a CSV date cell and truncates it to midnight UTC so
// equal calendar days compare equal regardless of source formatting.
// ok is false when no layout matches; callers drop the row.
func ParseDate(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cell)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
