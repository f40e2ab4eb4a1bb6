package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SlotTimesConfig holds default HH:MM start times per slot kind.
type SlotTimesConfig struct {
	Morning   string `yaml:"morning"`
	Afternoon string `yaml:"afternoon"`
	Evening   string `yaml:"evening"`
}

// SlotsConfig is the root configuration for slots.yaml: the slot policy the
// engine falls back to when a store has no business-hours record, plus the
// national-holiday table (holidays use the weekend defaults).
type SlotsConfig struct {
	WeekdayStarts SlotTimesConfig `yaml:"weekday_starts"`
	WeekendStarts SlotTimesConfig `yaml:"weekend_starts"`
	EndLimits     SlotTimesConfig `yaml:"end_limits"`
	IntervalMin   int             `yaml:"interval_minutes"`
	DayCeiling    string          `yaml:"day_ceiling"`
	Holidays      []string        `yaml:"holidays"` // YYYY-MM-DD
}

// DefaultSlotsConfig returns the compiled-in policy used when slots.yaml is
// absent or incomplete.
func DefaultSlotsConfig() *SlotsConfig {
	return &SlotsConfig{
		WeekdayStarts: SlotTimesConfig{Morning: "10:00", Afternoon: "13:00", Evening: "18:00"},
		WeekendStarts: SlotTimesConfig{Morning: "10:00", Afternoon: "14:00", Evening: "18:00"},
		EndLimits:     SlotTimesConfig{Morning: "13:00", Afternoon: "18:00", Evening: "23:00"},
		IntervalMin:   60,
		DayCeiling:    "23:00",
		Holidays:      defaultHolidays,
	}
}

// Japanese national holidays; needs a yearly refresh when slots.yaml does
// not override the table.
var defaultHolidays = []string{
	"2025-01-01", "2025-01-13", "2025-02-11", "2025-02-23", "2025-02-24",
	"2025-03-20", "2025-04-29", "2025-05-03", "2025-05-04", "2025-05-05",
	"2025-05-06", "2025-07-21", "2025-08-11", "2025-09-15", "2025-09-23",
	"2025-10-13", "2025-11-03", "2025-11-23", "2025-11-24", "2025-12-23",
	"2026-01-01", "2026-01-12", "2026-02-11", "2026-02-23",
	"2026-03-20", "2026-04-29", "2026-05-03", "2026-05-04", "2026-05-05",
	"2026-05-06", "2026-07-20", "2026-08-11", "2026-09-21", "2026-09-22",
	"2026-09-23", "2026-10-12", "2026-11-03", "2026-11-23", "2026-12-23",
}

// LoadSlotsConfig loads the slot policy from YAML, filling any missing
// fields from the defaults.
func LoadSlotsConfig(path string) (*SlotsConfig, error) {
	if path == "" {
		path = "configs/slots.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read slots config: %w", err)
	}

	cfg := DefaultSlotsConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse slots config: %w", err)
	}

	def := DefaultSlotsConfig()
	fillSlotTimes(&cfg.WeekdayStarts, def.WeekdayStarts)
	fillSlotTimes(&cfg.WeekendStarts, def.WeekendStarts)
	fillSlotTimes(&cfg.EndLimits, def.EndLimits)
	if cfg.IntervalMin <= 0 {
		cfg.IntervalMin = def.IntervalMin
	}
	if cfg.DayCeiling == "" {
		cfg.DayCeiling = def.DayCeiling
	}
	if len(cfg.Holidays) == 0 {
		cfg.Holidays = def.Holidays
	}
	return cfg, nil
}

func fillSlotTimes(dst *SlotTimesConfig, def SlotTimesConfig) {
	if dst.Morning == "" {
		dst.Morning = def.Morning
	}
	if dst.Afternoon == "" {
		dst.Afternoon = def.Afternoon
	}
	if dst.Evening == "" {
		dst.Evening = def.Evening
	}
}
