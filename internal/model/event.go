package model

// Event is an already-scheduled session at a store. The engine only reads
// events to determine conflicts; it never mutates them.
type Event struct {
	ID         string `json:"id"`
	StoreID    string `json:"store_id"`
	Date       string `json:"date"`       // YYYY-MM-DD
	StartTime  string `json:"start_time"` // HH:MM
	EndTime    string `json:"end_time"`   // HH:MM
	Category   string `json:"category,omitempty"`
	IsCanceled bool   `json:"is_cancelled"`
	ScenarioID string `json:"scenario_id,omitempty"`

	// ExtraPrepMinutes is the scenario's extra preparation time, joined in
	// by the data store. Added after the event's end before computing the
	// buffer to the next event.
	ExtraPrepMinutes int `json:"extra_preparation_time,omitempty"`
}

// ScenarioRequirement is what a proposed booking needs from the timetable.
type ScenarioRequirement struct {
	DurationMinutes  int `json:"duration"`
	ExtraPrepMinutes int `json:"extra_preparation_time"`
}
