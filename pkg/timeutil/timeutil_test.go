package timeutil

import (
	"testing"
	"time"
)

func TestMinuteMathRoundTrips(t *testing.T) {
	if got := ToMinutes("09:30"); got != 570 {
		t.Fatalf("expected 570 minutes, got %d", got)
	}
	if got := FromMinutes(570); got != "09:30" {
		t.Fatalf("expected 09:30, got %q", got)
	}
	if got := AddMinutes("23:50", 25); got != "24:15" {
		t.Fatalf("expected 24:15 past-midnight carry, got %q", got)
	}
	if got := ToMinutes("bogus"); got != 0 {
		t.Fatalf("malformed input should yield 0, got %d", got)
	}
}

func TestFormatSeconds(t *testing.T) {
	if got := FormatSeconds(125); got != "02:05" {
		t.Fatalf("expected 02:05, got %q", got)
	}
	if got := FormatSeconds(0); got != "00:00" {
		t.Fatalf("expected 00:00, got %q", got)
	}
}

func TestFormatTaskDuration(t *testing.T) {
	tests := []struct {
		minutes float64
		long    bool
		want    string
	}{
		{minutes: 10.0 / 60.0, long: false, want: "10s"},
		{minutes: 10.0 / 60.0, long: true, want: "10 seconds"},
		{minutes: 1.0 / 60.0, long: true, want: "1 second"},
		{minutes: 3, long: false, want: "3m"},
		{minutes: 5, long: true, want: "5 min"},
	}
	for _, tt := range tests {
		if got := FormatTaskDuration(tt.minutes, tt.long); got != tt.want {
			t.Fatalf("FormatTaskDuration(%v, %v) = %q, want %q", tt.minutes, tt.long, got, tt.want)
		}
	}
}

func TestParseFormattedDate(t *testing.T) {
	now := time.Date(2026, time.November, 1, 12, 0, 0, 0, time.UTC)

	if got := ParseFormattedDate("2026-11-18", "", now); got != "2026-11-18" {
		t.Fatalf("ISO input should pass through, got %q", got)
	}
	if got := ParseFormattedDate("Wed, Nov 18", "", now); got != "2026-11-18" {
		t.Fatalf("expected 2026-11-18, got %q", got)
	}
	// A January date seen in November belongs to next year.
	if got := ParseFormattedDate("Thu, Jan 15", "", now); got != "2027-01-15" {
		t.Fatalf("expected next-year inference, got %q", got)
	}
	if got := ParseFormattedDate("not a date", "2026-01-01", now); got != "2026-01-01" {
		t.Fatalf("expected default on parse failure, got %q", got)
	}
	if got := ParseFormattedDate("", "2026-01-01", now); got != "2026-01-01" {
		t.Fatalf("expected default on empty input, got %q", got)
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "09:30", want: "09:30"},
		{in: "9:30 AM", want: "09:30"},
		{in: "9:30AM", want: "09:30"},
		{in: "12:15 AM", want: "00:15"},
		{in: "12:15 PM", want: "12:15"},
		{in: "7:45 pm", want: "19:45"},
		{in: "19:30", want: "19:30"},
		{in: "9:30", want: "09:30"},
		{in: "25:00", want: ""},
		{in: "", want: ""},
		{in: "noonish", want: ""},
	}
	for _, tt := range tests {
		if got := ParseClock(tt.in); got != tt.want {
			t.Fatalf("ParseClock(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseClockRange(t *testing.T) {
	got := ParseClockRange("9:30 AM - 11:00 AM")
	if got.Start != "09:30" || got.End != "11:00" {
		t.Fatalf("unexpected range %+v", got)
	}

	single := ParseClockRange("19:30")
	if single.Start != "19:30" || single.End != "" {
		t.Fatalf("unexpected single %+v", single)
	}

	empty := ParseClockRange("")
	if empty.Start != "" || empty.End != "" {
		t.Fatalf("unexpected empty %+v", empty)
	}
}
