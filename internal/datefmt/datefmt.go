// Package datefmt normalizes the two invoice date fields (issue and due)
// between their storage form (YYYY-MM-DD) and the long en-US display form
// shown on the rendered invoice.
package datefmt

import (
	"strings"
	"time"
)

const (
	storageLayout = "2006-01-02"
	displayLayout = "January 2, 2006"
)

// acceptedLayouts are tried in order when parsing raw input. The form UI
// hands over either a bare date or a full RFC 3339 timestamp from a date
// picker.
var acceptedLayouts = []string{
	storageLayout,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	displayLayout,
}

// Parse resolves a raw date value to a calendar date. The second return is
// false when the input is empty or matches none of the accepted layouts.
func Parse(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range acceptedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ToDisplay renders a raw date value as a long-form human string, e.g.
// "April 18, 2025". Empty or unparseable input returns an empty string
// rather than an error, keeping the preview renderable mid-edit.
func ToDisplay(raw string) string {
	t, ok := Parse(raw)
	if !ok {
		return ""
	}
	return t.Format(displayLayout)
}

// ToStorage returns the canonical YYYY-MM-DD form.
func ToStorage(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(storageLayout)
}
