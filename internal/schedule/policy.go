package schedule

import (
	"time"

	"stagedoor/internal/config"
	"stagedoor/internal/model"
)

// Policy is the resolved slot policy: the hard-coded operating defaults the
// engine falls back to when a store carries no business-hours configuration,
// plus the fixed interval buffer and day ceiling. All times are minutes
// since midnight.
type Policy struct {
	weekdayStarts [3]int
	weekendStarts [3]int
	endLimits     [3]int

	// IntervalMinutes is the fixed buffer required between two sessions at
	// the same store, on top of each side's extra preparation time.
	IntervalMinutes int

	// DayCeiling is the hard boundary no session may run past.
	DayCeiling int

	holidays map[string]bool
}

// PolicyFromConfig resolves a slots.yaml config into a Policy. Unparseable
// times fall back to the compiled-in defaults.
func PolicyFromConfig(cfg *config.SlotsConfig) *Policy {
	if cfg == nil {
		cfg = config.DefaultSlotsConfig()
	}
	def := config.DefaultSlotsConfig()

	p := &Policy{holidays: make(map[string]bool, len(cfg.Holidays))}
	p.weekdayStarts = resolveTimes(cfg.WeekdayStarts, def.WeekdayStarts)
	p.weekendStarts = resolveTimes(cfg.WeekendStarts, def.WeekendStarts)
	p.endLimits = resolveTimes(cfg.EndLimits, def.EndLimits)

	p.IntervalMinutes = cfg.IntervalMin
	if p.IntervalMinutes <= 0 {
		p.IntervalMinutes = def.IntervalMin
	}
	if ceil, err := model.ParseClock(cfg.DayCeiling); err == nil {
		p.DayCeiling = ceil
	} else {
		p.DayCeiling, _ = model.ParseClock(def.DayCeiling)
	}

	for _, d := range cfg.Holidays {
		p.holidays[d] = true
	}
	return p
}

// DefaultPolicy returns the compiled-in policy.
func DefaultPolicy() *Policy {
	return PolicyFromConfig(config.DefaultSlotsConfig())
}

func resolveTimes(cfg, def config.SlotTimesConfig) [3]int {
	var out [3]int
	for _, kind := range model.AllSlotKinds {
		v, err := model.ParseClock(pick(cfg, kind))
		if err != nil {
			v, _ = model.ParseClock(pick(def, kind))
		}
		out[kind] = v
	}
	return out
}

func pick(t config.SlotTimesConfig, kind model.SlotKind) string {
	switch kind {
	case model.SlotMorning:
		return t.Morning
	case model.SlotAfternoon:
		return t.Afternoon
	default:
		return t.Evening
	}
}

// IsWeekendOrHoliday reports whether the default weekend policy applies to
// the date: Saturdays, Sundays and listed national holidays.
func (p *Policy) IsWeekendOrHoliday(date time.Time, dateStr string) bool {
	wd := date.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return true
	}
	return p.holidays[dateStr]
}

// DefaultStart returns the default start time for a slot kind.
func (p *Policy) DefaultStart(kind model.SlotKind, weekend bool) int {
	if weekend {
		return p.weekendStarts[kind]
	}
	return p.weekdayStarts[kind]
}

// EndLimit returns the fixed latest-allowed boundary for a slot kind.
func (p *Policy) EndLimit(kind model.SlotKind) int {
	return p.endLimits[kind]
}

// DefaultSlots returns the default allowed slot set: all three on weekends
// and holidays, afternoon and evening on weekdays.
func (p *Policy) DefaultSlots(weekend bool) []model.SlotKind {
	if weekend {
		return []model.SlotKind{model.SlotMorning, model.SlotAfternoon, model.SlotEvening}
	}
	return []model.SlotKind{model.SlotAfternoon, model.SlotEvening}
}
