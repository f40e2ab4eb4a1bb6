package schedule

import (
	"testing"

	"stagedoor/internal/model"
)

func TestStaffConflicts(t *testing.T) {
	assigned := []model.Event{
		{ID: "e1", StoreID: "s1", Date: "2025-06-01", StartTime: "18:00", EndTime: "21:00"},
		{ID: "e2", StoreID: "s1", Date: "2025-06-02", StartTime: "10:00", EndTime: "13:00"},
		{ID: "e3", StoreID: "s1", Date: "2025-06-01", StartTime: "13:00", EndTime: "16:00", IsCanceled: true},
	}

	candidates := []model.Candidate{
		{Order: 1, Date: "2025-06-01", TimeSlot: "夜", StartTime: "19:00", EndTime: "22:00"},
		{Order: 2, Date: "2025-06-01", TimeSlot: "夜", StartTime: "21:30", EndTime: "23:00"},
		{Order: 3, Date: "2025-06-01", TimeSlot: "昼", StartTime: "14:00", EndTime: "17:00"},
		{Order: 4, Date: "2025-06-03", TimeSlot: "夜", StartTime: "19:00", EndTime: "22:00"},
		{Order: 5, Date: "2025-06-01", TimeSlot: "夜", StartTime: "16:00", EndTime: "18:00"},
	}

	got := NewStaffConflictChecker().Conflicts(assigned, candidates)

	want := map[int]bool{
		1: true,  // overlaps 18:00-21:00
		2: false, // back-to-back is not an overlap
		3: false, // cancelled assignment does not count
		4: false, // different date
		5: false, // ends exactly at the assignment's start
	}
	for order, expected := range want {
		if got[order] != expected {
			t.Errorf("order %d: conflict = %v, want %v", order, got[order], expected)
		}
	}
	if len(got) != len(candidates) {
		t.Errorf("result covers %d candidates, want %d", len(got), len(candidates))
	}
}

func TestStaffConflictsIgnoresMalformedInput(t *testing.T) {
	assigned := []model.Event{
		{ID: "e1", Date: "2025-06-01", StartTime: "18:00", EndTime: "21:00"},
		{ID: "bad", Date: "2025-06-01", StartTime: "soon", EndTime: "later"},
	}
	candidates := []model.Candidate{
		{Order: 1, Date: "not-a-date", StartTime: "19:00", EndTime: "22:00"},
		{Order: 2, Date: "2025-06-01", StartTime: "19:00", EndTime: ""},
		{Order: 3, Date: "2025-06-01", StartTime: "12:00", EndTime: "14:00"},
	}

	got := NewStaffConflictChecker().Conflicts(assigned, candidates)
	for order := 1; order <= 3; order++ {
		if got[order] {
			t.Errorf("order %d: malformed or non-overlapping input must not flag", order)
		}
	}
}

func TestStaffConflictsEmpty(t *testing.T) {
	got := NewStaffConflictChecker().Conflicts(nil, nil)
	if len(got) != 0 {
		t.Errorf("no candidates yields an empty map, got %v", got)
	}
}
