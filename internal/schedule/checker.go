package schedule

import (
	"stagedoor/internal/metrics"
	"stagedoor/internal/model"
)

// AvailabilityChecker is the hard booking gate. It answers whether an exact
// (date, slot) candidate is bookable at one or more of the requested
// stores, strictly against one immutable snapshot. Unknown state never
// reads as available: with a store filter in effect and no loaded event
// data the answer is false.
//
// The checker is pure over its snapshot and safe for concurrent use.
type AvailabilityChecker struct {
	snap *Snapshot
}

// NewAvailabilityChecker binds a checker to a snapshot.
func NewAvailabilityChecker(snap *Snapshot) *AvailabilityChecker {
	return &AvailabilityChecker{snap: snap}
}

// IsAvailable reports whether the candidate slot can host a booking with
// the given requirement at any store in storeIDs (logical OR; an exclusive
// booking requester may accept any of several stores).
//
// With an empty storeIDs the answer is resolved against the first
// configured business-hours setting, or the default policy, without the
// per-store OR.
func (a *AvailabilityChecker) IsAvailable(date string, kind model.SlotKind, req model.ScenarioRequirement, storeIDs []string) bool {
	ok := a.isAvailable(date, kind, req, storeIDs)
	if ok {
		metrics.IncAvailabilityCheck("available")
	} else {
		metrics.IncAvailabilityCheck("unavailable")
	}
	return ok
}

func (a *AvailabilityChecker) isAvailable(date string, kind model.SlotKind, req model.ScenarioRequirement, storeIDs []string) bool {
	if a.snap == nil {
		return false
	}
	if _, err := model.ParseDate(date); err != nil {
		return false
	}

	if len(storeIDs) > 0 {
		if !a.snap.EventsLoaded {
			return false
		}
		for _, id := range storeIDs {
			if _, ok := a.snap.computer.ComputeStart(id, date, kind, req); ok {
				return true
			}
		}
		return false
	}

	// No store preference yet: only the operating rule can answer.
	storeID := a.snap.hours.FirstSetting(a.snap.StoreOrder())
	day, err := a.snap.hours.Resolve(storeID, date)
	if err != nil {
		return false
	}
	return day.Allows(kind)
}
