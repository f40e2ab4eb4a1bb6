package schedule

import (
	"stagedoor/internal/model"
)

// DayHours is the resolved operating rule for one store on one date:
// which slots may be offered, each slot's start time and each slot's
// latest-allowed boundary.
type DayHours struct {
	allowed  [3]bool
	start    [3]int
	endLimit [3]int
}

// Allows reports whether the slot kind may be offered that day.
func (d DayHours) Allows(kind model.SlotKind) bool { return d.allowed[kind] }

// Start returns the slot's start time in minutes since midnight.
func (d DayHours) Start(kind model.SlotKind) int { return d.start[kind] }

// EndLimit returns the slot's latest-allowed boundary.
func (d DayHours) EndLimit(kind model.SlotKind) int { return d.endLimit[kind] }

// AllowedSlots returns the allowed kinds in day order.
func (d DayHours) AllowedSlots() []model.SlotKind {
	out := make([]model.SlotKind, 0, 3)
	for _, kind := range model.AllSlotKinds {
		if d.allowed[kind] {
			out = append(out, kind)
		}
	}
	return out
}

// Closed reports whether no slot is offered at all.
func (d DayHours) Closed() bool {
	return !d.allowed[model.SlotMorning] && !d.allowed[model.SlotAfternoon] && !d.allowed[model.SlotEvening]
}

// openTime qualifies as an afternoon start only within a plausible mid-day
// range.
const (
	openTimeMin = 9 * 60
	openTimeMax = 16 * 60
)

// HoursResolver resolves the applicable operating rule for a store and
// date. Precedence is strict: special-closed beats special-open beats the
// weekday rule; a store with no setting record degrades to the default
// policy without failing.
type HoursResolver struct {
	policy   *Policy
	settings map[string]*model.BusinessHoursSetting
}

// NewHoursResolver builds a resolver over per-store settings. Missing
// settings are a valid state, not an error.
func NewHoursResolver(policy *Policy, settings map[string]*model.BusinessHoursSetting) *HoursResolver {
	if policy == nil {
		policy = DefaultPolicy()
	}
	return &HoursResolver{policy: policy, settings: settings}
}

// Resolve returns the operating rule for the store on the date. The date
// string must be a valid calendar date.
func (r *HoursResolver) Resolve(storeID, date string) (DayHours, error) {
	day, err := model.ParseDate(date)
	if err != nil {
		return DayHours{}, err
	}
	weekend := r.policy.IsWeekendOrHoliday(day, date)

	setting := r.settings[storeID]
	if setting == nil {
		return r.defaults(weekend), nil
	}

	// Closed overrides win regardless of anything else.
	if setting.IsSpecialClosed(date) {
		return DayHours{}, nil
	}

	if setting.IsSpecialOpen(date) {
		// All three slots, default times; the weekday rule is bypassed.
		return r.defaults(weekend), nil
	}

	rule := setting.Weekdays[int(day.Weekday())]
	if rule == nil {
		return r.defaults(weekend), nil
	}
	if !rule.IsOpen {
		return DayHours{}, nil
	}

	var d DayHours
	slots := rule.AvailableSlots
	if len(slots) == 0 {
		slots = r.policy.DefaultSlots(weekend)
	}
	for _, kind := range slots {
		d.allowed[kind] = true
	}

	for _, kind := range model.AllSlotKinds {
		d.start[kind] = r.slotStart(rule, kind, weekend)
		d.endLimit[kind] = r.policy.EndLimit(kind)
	}

	// The configured close time caps only the evening slot.
	if rule.CloseTime != "" {
		if closeAt, err := model.ParseClock(rule.CloseTime); err == nil {
			d.endLimit[model.SlotEvening] = closeAt
		}
	}
	return d, nil
}

func (r *HoursResolver) slotStart(rule *model.WeekdayRule, kind model.SlotKind, weekend bool) int {
	if configured := rule.SlotStartTimes.For(kind); configured != "" {
		if at, err := model.ParseClock(configured); err == nil {
			return at
		}
	}
	// A bare open_time in the mid-day range stands in for the afternoon
	// slot's start.
	if kind == model.SlotAfternoon && rule.OpenTime != "" {
		if at, err := model.ParseClock(rule.OpenTime); err == nil && at >= openTimeMin && at <= openTimeMax {
			return at
		}
	}
	return r.policy.DefaultStart(kind, weekend)
}

// FirstSetting returns the first configured setting in the given store
// order, for availability queries made before any store is selected.
func (r *HoursResolver) FirstSetting(storeOrder []string) string {
	for _, id := range storeOrder {
		if r.settings[id] != nil {
			return id
		}
	}
	return ""
}

func (r *HoursResolver) defaults(weekend bool) DayHours {
	var d DayHours
	for _, kind := range r.policy.DefaultSlots(weekend) {
		d.allowed[kind] = true
	}
	for _, kind := range model.AllSlotKinds {
		d.start[kind] = r.policy.DefaultStart(kind, weekend)
		d.endLimit[kind] = r.policy.EndLimit(kind)
	}
	return d
}
