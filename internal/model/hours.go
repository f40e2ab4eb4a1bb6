package model

// WeekdayRule is the configured operating rule for one weekday.
// Zero-value fields mean "not configured"; the engine falls back to the
// default slot policy for anything missing.
type WeekdayRule struct {
	IsOpen         bool       `json:"is_open"`
	AvailableSlots []SlotKind `json:"available_slots,omitempty"`
	SlotStartTimes SlotTimes  `json:"slot_start_times,omitempty"`
	OpenTime       string     `json:"open_time,omitempty"`  // HH:MM
	CloseTime      string     `json:"close_time,omitempty"` // HH:MM
}

// SlotTimes carries an optional HH:MM value per slot kind.
type SlotTimes struct {
	Morning   string `json:"morning,omitempty"`
	Afternoon string `json:"afternoon,omitempty"`
	Evening   string `json:"evening,omitempty"`
}

// For returns the configured time for a slot kind, empty when unset.
func (t SlotTimes) For(kind SlotKind) string {
	switch kind {
	case SlotMorning:
		return t.Morning
	case SlotAfternoon:
		return t.Afternoon
	default:
		return t.Evening
	}
}

// SpecialDay is a dated override entry (special open or special closed).
type SpecialDay struct {
	Date string `json:"date"` // YYYY-MM-DD
	Note string `json:"note,omitempty"`
}

// BusinessHoursSetting is a store's full operating configuration: one rule
// per weekday (index 0 = Sunday, matching time.Weekday) plus the special-day
// override lists. Closed overrides win over open overrides, which win over
// the weekday rule.
type BusinessHoursSetting struct {
	StoreID           string          `json:"store_id"`
	Weekdays          [7]*WeekdayRule `json:"weekdays"`
	SpecialOpenDays   []SpecialDay    `json:"special_open_days,omitempty"`
	SpecialClosedDays []SpecialDay    `json:"special_closed_days,omitempty"`
}

// IsSpecialClosed reports whether date is in the special-closed list.
func (s *BusinessHoursSetting) IsSpecialClosed(date string) bool {
	for _, d := range s.SpecialClosedDays {
		if d.Date == date {
			return true
		}
	}
	return false
}

// IsSpecialOpen reports whether date is in the special-open list.
func (s *BusinessHoursSetting) IsSpecialOpen(date string) bool {
	for _, d := range s.SpecialOpenDays {
		if d.Date == date {
			return true
		}
	}
	return false
}
