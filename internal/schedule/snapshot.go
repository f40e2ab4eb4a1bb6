package schedule

import (
	"time"

	"stagedoor/internal/model"
)

// Snapshot is one immutable view of the booking world: stores, business
// hours and the event index for a fetch window, all built in one pass.
// Readers never observe a half-updated cache; a rebuild produces a new
// Snapshot and swaps it in whole.
type Snapshot struct {
	BuildID uint64
	BuiltAt time.Time

	// EventsLoaded is false when any event fetch in the window failed.
	// The availability gate fails closed on such snapshots whenever a
	// store filter is in effect.
	EventsLoaded bool

	stores     []model.Store
	storeOrder []string

	hours    *HoursResolver
	index    *EventIndex
	computer *WindowComputer
}

// NewSnapshot assembles a snapshot from fetched data. Only bookable stores
// (active, non-office) are retained.
func NewSnapshot(buildID uint64, policy *Policy, stores []model.Store, settings map[string]*model.BusinessHoursSetting, events []model.Event, eventsLoaded bool) *Snapshot {
	bookable := make([]model.Store, 0, len(stores))
	order := make([]string, 0, len(stores))
	for _, s := range stores {
		if s.Bookable() {
			bookable = append(bookable, s)
			order = append(order, s.ID)
		}
	}

	hours := NewHoursResolver(policy, settings)
	index := NewEventIndex(events)
	return &Snapshot{
		BuildID:      buildID,
		BuiltAt:      time.Now(),
		EventsLoaded: eventsLoaded,
		stores:       bookable,
		storeOrder:   order,
		hours:        hours,
		index:        index,
		computer:     NewWindowComputer(policy, hours, index),
	}
}

// Stores returns the bookable stores in fetch order.
func (s *Snapshot) Stores() []model.Store { return s.stores }

// StoreOrder returns the bookable store ids in fetch order.
func (s *Snapshot) StoreOrder() []string { return s.storeOrder }

// Hours exposes the business-hours resolver.
func (s *Snapshot) Hours() *HoursResolver { return s.hours }

// Events exposes the event index.
func (s *Snapshot) Events() *EventIndex { return s.index }

// ComputeStart runs the slot window computation against this snapshot.
func (s *Snapshot) ComputeStart(storeID, date string, kind model.SlotKind, req model.ScenarioRequirement) (int, bool) {
	return s.computer.ComputeStart(storeID, date, kind, req)
}
