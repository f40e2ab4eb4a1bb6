package schedule

import (
	"stagedoor/internal/model"
)

// StaffConflictChecker flags booking candidates that overlap a staff
// member's already-assigned events. Unlike AvailabilityChecker this is
// advisory: results surface as warnings, never as a hard gate, and no
// shifting is attempted.
type StaffConflictChecker struct{}

// NewStaffConflictChecker returns the checker.
func NewStaffConflictChecker() *StaffConflictChecker {
	return &StaffConflictChecker{}
}

// Conflicts maps each candidate's order to whether it overlaps any of the
// staff member's non-cancelled assigned events on the same date. The test
// is a plain half-open interval overlap in minutes since midnight.
// Candidates or events with malformed dates or times are ignored.
func (c *StaffConflictChecker) Conflicts(assigned []model.Event, candidates []model.Candidate) map[int]bool {
	out := make(map[int]bool, len(candidates))
	for _, cand := range candidates {
		out[cand.Order] = false

		if _, err := model.ParseDate(cand.Date); err != nil {
			continue
		}
		candStart, err := model.ParseClock(cand.StartTime)
		if err != nil {
			continue
		}
		candEnd, err := model.ParseClock(cand.EndTime)
		if err != nil {
			continue
		}

		for _, ev := range assigned {
			if ev.IsCanceled || ev.Date != cand.Date {
				continue
			}
			evStart, err := model.ParseClock(ev.StartTime)
			if err != nil {
				continue
			}
			evEnd, err := model.ParseClock(ev.EndTime)
			if err != nil {
				continue
			}
			if candStart < evEnd && candEnd > evStart {
				out[cand.Order] = true
				break
			}
		}
	}
	return out
}
