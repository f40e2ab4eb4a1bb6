package schedule

import (
	"stagedoor/internal/model"
)

// WindowComputer computes the feasible start time of a new booking inside a
// time-of-day slot, shifting past already-booked events when a naive
// conflict exists. The pipeline is: resolve hours, gather conflicts,
// compute the candidate start, validate against the day ceiling, then the
// optional spillover check against the next event.
type WindowComputer struct {
	policy *Policy
	hours  *HoursResolver
	index  *EventIndex
}

// NewWindowComputer wires the computer over resolved hours and an event
// index built from the same fetch window.
func NewWindowComputer(policy *Policy, hours *HoursResolver, index *EventIndex) *WindowComputer {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &WindowComputer{policy: policy, hours: hours, index: index}
}

// ComputeStart returns the start time (minutes since midnight) at which a
// booking with the given requirement can begin in the slot, or ok=false
// when the slot cannot host it that day.
//
// The buffer is asymmetric on purpose: the distance to a preceding event is
// the fixed interval plus that event's own extra preparation time, while
// the distance to a following event is the fixed interval plus the new
// booking's extra preparation time.
func (c *WindowComputer) ComputeStart(storeID, date string, kind model.SlotKind, req model.ScenarioRequirement) (int, bool) {
	day, err := c.hours.Resolve(storeID, date)
	if err != nil || !day.Allows(kind) {
		return 0, false
	}

	slotStart := day.Start(kind)
	endLimit := day.EndLimit(kind)
	interval := c.policy.IntervalMinutes

	events := c.index.Lookup(storeID, date)

	// Events whose occupied interval, buffer included, reaches into the
	// slot window.
	start := slotStart
	inSlot := false
	for _, ev := range events {
		if ev.start < endLimit && ev.end+interval > slotStart {
			inSlot = true
			freeAt := ev.end + interval + ev.event.ExtraPrepMinutes
			if freeAt > start {
				start = freeAt
			}
		}
	}
	if inSlot {
		if start >= endLimit {
			return 0, false // no room left inside the slot
		}
	} else {
		// No direct conflict, but an event in an earlier slot may still
		// push the start past the slot's default.
		for _, ev := range events {
			if ev.start < slotStart && ev.end+interval > start {
				start = ev.end + interval
			}
		}
	}

	end := start + req.DurationMinutes
	if end > c.policy.DayCeiling {
		return 0, false
	}
	if end <= endLimit {
		return start, true
	}

	// Spill past the slot boundary only when the next event leaves room.
	ceiling := c.policy.DayCeiling - req.ExtraPrepMinutes
	for _, ev := range events {
		if ev.start > start {
			ceiling = ev.start - (c.policy.IntervalMinutes + req.ExtraPrepMinutes)
			break
		}
	}
	if end > ceiling {
		return 0, false
	}
	return start, true
}
