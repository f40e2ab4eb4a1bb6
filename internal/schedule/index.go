package schedule

import (
	"sort"

	"stagedoor/internal/model"
)

// indexedEvent is an event with its times pre-parsed to minutes since
// midnight, so conflict checks never re-parse strings.
type indexedEvent struct {
	event model.Event
	start int
	end   int
}

// EventIndex groups non-cancelled events by store and date, ordered by
// start time ascending. It is built once per fetch window and never
// patched; a changed window means a full rebuild.
type EventIndex struct {
	byStoreDate map[string]map[string][]indexedEvent
	count       int
}

// NewEventIndex indexes a bulk event fetch. Cancelled events and events
// with malformed dates or times are dropped rather than propagated into
// time arithmetic.
func NewEventIndex(events []model.Event) *EventIndex {
	ix := &EventIndex{byStoreDate: make(map[string]map[string][]indexedEvent)}
	for _, ev := range events {
		if ev.IsCanceled {
			continue
		}
		if _, err := model.ParseDate(ev.Date); err != nil {
			continue
		}
		start, err := model.ParseClock(ev.StartTime)
		if err != nil {
			continue
		}
		end, err := model.ParseClock(ev.EndTime)
		if err != nil {
			continue
		}

		dates := ix.byStoreDate[ev.StoreID]
		if dates == nil {
			dates = make(map[string][]indexedEvent)
			ix.byStoreDate[ev.StoreID] = dates
		}
		dates[ev.Date] = append(dates[ev.Date], indexedEvent{event: ev, start: start, end: end})
		ix.count++
	}

	for _, dates := range ix.byStoreDate {
		for _, evs := range dates {
			sort.Slice(evs, func(i, j int) bool { return evs[i].start < evs[j].start })
		}
	}
	return ix
}

// Lookup returns the store's events on the date, ordered by start time.
// The returned slice must not be mutated.
func (ix *EventIndex) Lookup(storeID, date string) []indexedEvent {
	dates := ix.byStoreDate[storeID]
	if dates == nil {
		return nil
	}
	return dates[date]
}

// Len returns the number of indexed events.
func (ix *EventIndex) Len() int { return ix.count }
