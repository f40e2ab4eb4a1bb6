package model

import (
	"encoding/json"
	"fmt"
)

// SlotKind identifies one of the three bookable parts of a day.
type SlotKind int

const (
	SlotMorning SlotKind = iota
	SlotAfternoon
	SlotEvening
)

// AllSlotKinds lists slot kinds in day order.
var AllSlotKinds = []SlotKind{SlotMorning, SlotAfternoon, SlotEvening}

func (k SlotKind) String() string {
	switch k {
	case SlotMorning:
		return "morning"
	case SlotAfternoon:
		return "afternoon"
	case SlotEvening:
		return "evening"
	}
	return fmt.Sprintf("slotkind(%d)", int(k))
}

// Label returns the human-readable label used in stored candidate lists.
func (k SlotKind) Label() string {
	switch k {
	case SlotMorning:
		return "朝"
	case SlotAfternoon:
		return "昼"
	default:
		return "夜"
	}
}

// ParseSlotKind accepts both the internal name and the stored label.
func ParseSlotKind(s string) (SlotKind, error) {
	switch s {
	case "morning", "朝":
		return SlotMorning, nil
	case "afternoon", "昼":
		return SlotAfternoon, nil
	case "evening", "夜":
		return SlotEvening, nil
	}
	return 0, fmt.Errorf("unknown slot kind %q", s)
}

// SlotKindForStart infers the slot from an event's start time when the event
// carries no slot tag: before 12:00 is morning, before 17:00 afternoon,
// everything later evening.
func SlotKindForStart(startMinutes int) SlotKind {
	switch {
	case startMinutes < 12*60:
		return SlotMorning
	case startMinutes < 17*60:
		return SlotAfternoon
	default:
		return SlotEvening
	}
}

func (k SlotKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *SlotKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseSlotKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
