package schedule

import (
	"testing"

	"stagedoor/internal/model"
)

func TestNewEventIndex(t *testing.T) {
	events := []model.Event{
		ev("s1", "2025-06-03", "18:00", "21:00", 0),
		ev("s1", "2025-06-03", "13:00", "16:00", 0),
		ev("s1", "2025-06-04", "13:00", "16:00", 0),
		ev("s2", "2025-06-03", "13:00", "16:00", 0),
		{ID: "c", StoreID: "s1", Date: "2025-06-03", StartTime: "10:00", EndTime: "12:00", IsCanceled: true},
		{ID: "b1", StoreID: "s1", Date: "June 3", StartTime: "10:00", EndTime: "12:00"},
		{ID: "b2", StoreID: "s1", Date: "2025-06-03", StartTime: "10am", EndTime: "12:00"},
	}

	ix := NewEventIndex(events)
	if ix.Len() != 4 {
		t.Fatalf("Len = %d, want 4 (cancelled and malformed dropped)", ix.Len())
	}

	day := ix.Lookup("s1", "2025-06-03")
	if len(day) != 2 {
		t.Fatalf("s1 2025-06-03 has %d events, want 2", len(day))
	}
	if day[0].start != 13*60 || day[1].start != 18*60 {
		t.Errorf("events not sorted by start: %d, %d", day[0].start, day[1].start)
	}

	if got := ix.Lookup("s3", "2025-06-03"); got != nil {
		t.Errorf("unknown store lookup = %v, want nil", got)
	}
	if got := ix.Lookup("s1", "2025-06-05"); got != nil {
		t.Errorf("empty date lookup = %v, want nil", got)
	}
}
