package datefmt

import (
	"testing"
	"time"
)

func TestToDisplayFromStorageForm(t *testing.T) {
	if got := ToDisplay("2025-04-18"); got != "April 18, 2025" {
		t.Fatalf("expected long form, got %q", got)
	}
}

func TestToDisplayFromTimestamp(t *testing.T) {
	if got := ToDisplay("2025-04-18T09:30:00Z"); got != "April 18, 2025" {
		t.Fatalf("expected long form, got %q", got)
	}
}

func TestToDisplayEmpty(t *testing.T) {
	if got := ToDisplay(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
	if got := ToDisplay("not a date"); got != "" {
		t.Fatalf("expected empty string for garbage input, got %q", got)
	}
}

func TestToStorage(t *testing.T) {
	d := time.Date(2025, time.April, 18, 14, 5, 0, 0, time.UTC)
	if got := ToStorage(d); got != "2025-04-18" {
		t.Fatalf("expected 2025-04-18, got %q", got)
	}
	if got := ToStorage(time.Time{}); got != "" {
		t.Fatalf("expected empty string for zero time, got %q", got)
	}
}

func TestStorageDisplayRoundTrip(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
	}
	for _, d := range dates {
		stored := ToStorage(d)
		display := ToDisplay(stored)
		parsed, ok := Parse(display)
		if !ok {
			t.Fatalf("display form %q did not parse back", display)
		}
		if ToStorage(parsed) != stored {
			t.Fatalf("round trip drifted: %q vs %q", ToStorage(parsed), stored)
		}
	}
}
