package model

import "testing"

func TestParseDate(t *testing.T) {
	valid := []string{"2025-06-01", "2026-12-31", "2024-02-29"}
	for _, s := range valid {
		if _, err := ParseDate(s); err != nil {
			t.Errorf("ParseDate(%q) = %v", s, err)
		}
	}
	invalid := []string{"", "2025-6-1", "2025/06/01", "2025-06-32", "2025-13-01", "2025-02-30", "today", "2025-06-01T00:00"}
	for _, s := range invalid {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) expected error", s)
		}
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"09:30", 9*60 + 30, true},
		{"23:00", 23 * 60, true},
		{"13:00:00", 13 * 60, true}, // stored with seconds
		{"", 0, false},
		{"noon", 0, false},
		{"25:00", 0, false},
		{"12:75", 0, false},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseClock(%q) = %d, %v; want %d", tt.in, got, err, tt.want)
		}
		if !tt.ok && err == nil {
			t.Errorf("ParseClock(%q) expected error", tt.in)
		}
	}
}

func TestFormatClock(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "14:30", "23:00"} {
		minutes, err := ParseClock(s)
		if err != nil {
			t.Fatal(err)
		}
		if got := FormatClock(minutes); got != s {
			t.Errorf("FormatClock(ParseClock(%q)) = %q", s, got)
		}
	}
}
