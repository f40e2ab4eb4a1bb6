package schedule

import (
	"testing"

	"stagedoor/internal/model"
)

func ruleOpen(slots ...model.SlotKind) *model.WeekdayRule {
	return &model.WeekdayRule{IsOpen: true, AvailableSlots: slots}
}

func TestResolveDefaultPolicy(t *testing.T) {
	r := NewHoursResolver(DefaultPolicy(), nil)

	tests := []struct {
		name     string
		date     string
		expected []model.SlotKind
	}{
		{
			name:     "weekday offers afternoon and evening",
			date:     "2025-06-03", // Tuesday
			expected: []model.SlotKind{model.SlotAfternoon, model.SlotEvening},
		},
		{
			name:     "saturday offers all three",
			date:     "2025-06-07",
			expected: []model.SlotKind{model.SlotMorning, model.SlotAfternoon, model.SlotEvening},
		},
		{
			name:     "sunday offers all three",
			date:     "2025-06-01",
			expected: []model.SlotKind{model.SlotMorning, model.SlotAfternoon, model.SlotEvening},
		},
		{
			name:     "national holiday uses weekend set",
			date:     "2025-07-21", // Monday, Marine Day
			expected: []model.SlotKind{model.SlotMorning, model.SlotAfternoon, model.SlotEvening},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := r.Resolve("store-without-setting", tt.date)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			got := day.AllowedSlots()
			if len(got) != len(tt.expected) {
				t.Fatalf("allowed slots = %v, want %v", got, tt.expected)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("allowed slots = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestResolveDefaultStartTimes(t *testing.T) {
	r := NewHoursResolver(DefaultPolicy(), nil)

	// Weekday afternoon starts 13:00, weekend afternoon 14:00.
	weekday, err := r.Resolve("s1", "2025-06-03")
	if err != nil {
		t.Fatal(err)
	}
	if got := weekday.Start(model.SlotAfternoon); got != 13*60 {
		t.Errorf("weekday afternoon start = %s, want 13:00", model.FormatClock(got))
	}
	weekend, err := r.Resolve("s1", "2025-06-07")
	if err != nil {
		t.Fatal(err)
	}
	if got := weekend.Start(model.SlotAfternoon); got != 14*60 {
		t.Errorf("weekend afternoon start = %s, want 14:00", model.FormatClock(got))
	}
	if got := weekend.EndLimit(model.SlotEvening); got != 23*60 {
		t.Errorf("evening end limit = %s, want 23:00", model.FormatClock(got))
	}
}

func TestResolveSpecialDayPrecedence(t *testing.T) {
	setting := &model.BusinessHoursSetting{
		StoreID:           "s1",
		SpecialOpenDays:   []model.SpecialDay{{Date: "2025-06-03"}},
		SpecialClosedDays: []model.SpecialDay{{Date: "2025-06-03"}},
	}
	// Tuesday rule would allow evening only; both overrides name the date.
	setting.Weekdays[2] = ruleOpen(model.SlotEvening)

	r := NewHoursResolver(DefaultPolicy(), map[string]*model.BusinessHoursSetting{"s1": setting})

	day, err := r.Resolve("s1", "2025-06-03")
	if err != nil {
		t.Fatal(err)
	}
	if !day.Closed() {
		t.Error("closed override must always win over open override")
	}
}

func TestResolveSpecialOpenBypassesWeekdayRule(t *testing.T) {
	setting := &model.BusinessHoursSetting{
		StoreID:         "s1",
		SpecialOpenDays: []model.SpecialDay{{Date: "2025-06-03"}},
	}
	setting.Weekdays[2] = &model.WeekdayRule{IsOpen: false}

	r := NewHoursResolver(DefaultPolicy(), map[string]*model.BusinessHoursSetting{"s1": setting})

	day, err := r.Resolve("s1", "2025-06-03")
	if err != nil {
		t.Fatal(err)
	}
	if got := len(day.AllowedSlots()); got != 3 {
		t.Errorf("special-open day must offer all three slots, got %d", got)
	}
}

func TestResolveWeekdayRule(t *testing.T) {
	tests := []struct {
		name        string
		rule        *model.WeekdayRule
		wantClosed  bool
		wantSlots   int
		wantPMStart int
		wantEvEnd   int
	}{
		{
			name:       "closed weekday",
			rule:       &model.WeekdayRule{IsOpen: false},
			wantClosed: true,
		},
		{
			name:        "configured slots and explicit starts",
			rule:        &model.WeekdayRule{IsOpen: true, AvailableSlots: []model.SlotKind{model.SlotAfternoon}, SlotStartTimes: model.SlotTimes{Afternoon: "12:30"}},
			wantSlots:   1,
			wantPMStart: 12*60 + 30,
			wantEvEnd:   23 * 60,
		},
		{
			name:        "mid-day open_time stands in for afternoon start",
			rule:        &model.WeekdayRule{IsOpen: true, OpenTime: "11:00"},
			wantSlots:   2, // default weekday set
			wantPMStart: 11 * 60,
			wantEvEnd:   23 * 60,
		},
		{
			name:        "early open_time is ignored",
			rule:        &model.WeekdayRule{IsOpen: true, OpenTime: "08:00"},
			wantSlots:   2,
			wantPMStart: 13 * 60,
			wantEvEnd:   23 * 60,
		},
		{
			name:        "close_time caps the evening slot",
			rule:        &model.WeekdayRule{IsOpen: true, CloseTime: "22:00"},
			wantSlots:   2,
			wantPMStart: 13 * 60,
			wantEvEnd:   22 * 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setting := &model.BusinessHoursSetting{StoreID: "s1"}
			setting.Weekdays[2] = tt.rule // Tuesday
			r := NewHoursResolver(DefaultPolicy(), map[string]*model.BusinessHoursSetting{"s1": setting})

			day, err := r.Resolve("s1", "2025-06-03")
			if err != nil {
				t.Fatal(err)
			}
			if tt.wantClosed {
				if !day.Closed() {
					t.Error("expected closed day")
				}
				return
			}
			if got := len(day.AllowedSlots()); got != tt.wantSlots {
				t.Errorf("allowed slots = %d, want %d", got, tt.wantSlots)
			}
			if got := day.Start(model.SlotAfternoon); got != tt.wantPMStart {
				t.Errorf("afternoon start = %s, want %s", model.FormatClock(got), model.FormatClock(tt.wantPMStart))
			}
			if got := day.EndLimit(model.SlotEvening); got != tt.wantEvEnd {
				t.Errorf("evening end limit = %s, want %s", model.FormatClock(got), model.FormatClock(tt.wantEvEnd))
			}
		})
	}
}

func TestResolveRejectsBadDate(t *testing.T) {
	r := NewHoursResolver(DefaultPolicy(), nil)
	for _, bad := range []string{"", "afternoon", "2025/06/03", "2025-13-40"} {
		if _, err := r.Resolve("s1", bad); err == nil {
			t.Errorf("Resolve(%q) expected error", bad)
		}
	}
}
