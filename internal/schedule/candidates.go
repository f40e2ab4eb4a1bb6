package schedule

import (
	"time"

	"stagedoor/internal/model"
)

// SlotOffer is one offerable slot for a date under the current store
// filter, in the shape the booking UI consumes.
type SlotOffer struct {
	Label     model.SlotKind `json:"label"`
	StartTime string         `json:"startTime"`
	EndTime   string         `json:"endTime"`
}

// CandidateSetBuilder assembles the calendar dates of a requested month and
// the offerable slots per date. Slot detail is computed lazily per date;
// the cap on total selected candidates is the consumer's concern.
type CandidateSetBuilder struct {
	snap *Snapshot
	now  func() time.Time
}

// NewCandidateSetBuilder builds over a snapshot. now is the clock used for
// the at-or-after-today cut; nil means time.Now.
func NewCandidateSetBuilder(snap *Snapshot, now func() time.Time) *CandidateSetBuilder {
	if now == nil {
		now = time.Now
	}
	return &CandidateSetBuilder{snap: snap, now: now}
}

// MonthDates returns every date of the month at or after today, as
// YYYY-MM-DD strings.
func (b *CandidateSetBuilder) MonthDates(year int, month time.Month) []string {
	today := b.now().Format("2006-01-02")
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	var dates []string
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		s := d.Format("2006-01-02")
		if s >= today {
			dates = append(dates, s)
		}
	}
	return dates
}

// SlotsForDate returns the offerable slots for the date under the store
// filter: a slot is offered when the availability gate passes for at least
// one store, and its times come from the first store that accepts it.
func (b *CandidateSetBuilder) SlotsForDate(date string, storeIDs []string, req model.ScenarioRequirement) []SlotOffer {
	if b.snap == nil {
		return nil
	}
	if len(storeIDs) == 0 {
		storeIDs = b.snap.StoreOrder()
	}

	var offers []SlotOffer
	for _, kind := range model.AllSlotKinds {
		for _, storeID := range storeIDs {
			start, ok := b.snap.computer.ComputeStart(storeID, date, kind, req)
			if !ok {
				continue
			}
			offers = append(offers, SlotOffer{
				Label:     kind,
				StartTime: model.FormatClock(start),
				EndTime:   model.FormatClock(start + req.DurationMinutes),
			})
			break
		}
	}
	return offers
}
