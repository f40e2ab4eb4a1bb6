package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"stagedoor/internal/model"
	"stagedoor/internal/schedule"
)

func TestMonthlyGrid(t *testing.T) {
	stores := []model.Store{
		{ID: "s1", Name: "Shibuya", ShortName: "SBY", Category: "normal", IsActive: true},
		{ID: "s2", Name: "Shinjuku", Category: "normal", IsActive: true},
		{ID: "hq", Name: "Head Office", Category: "office", IsActive: true},
	}
	events := []model.Event{
		{ID: "e1", StoreID: "s1", Date: "2030-06-04", StartTime: "13:00", EndTime: "17:30"},
	}
	snap := schedule.NewSnapshot(1, schedule.DefaultPolicy(), stores, nil, events, true)

	var buf bytes.Buffer
	req := model.ScenarioRequirement{DurationMinutes: 120}
	require.NoError(t, MonthlyGrid(&buf, snap, 2030, time.June, req))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	// One sheet per bookable store; the office store gets none.
	assert.ElementsMatch(t, []string{"SBY", "Shinjuku"}, f.GetSheetList())

	rows, err := f.GetRows("SBY")
	require.NoError(t, err)
	require.NotEmpty(t, rows)
	assert.Equal(t, []string{"Date", "Morning", "Afternoon", "Evening"}, rows[0])
	// 30 dates in June plus the header.
	assert.Len(t, rows, 31)

	// 2030-06-04 is a Tuesday with a booked afternoon: no morning, no
	// afternoon fit, evening shifted past the booking.
	for _, row := range rows[1:] {
		if row[0] != "2030-06-04" {
			continue
		}
		assert.Equal(t, "-", row[1])
		assert.Equal(t, "-", row[2])
		assert.Equal(t, "18:30", row[3])
	}
}

func TestMonthlyGridNilSnapshot(t *testing.T) {
	var buf bytes.Buffer
	err := MonthlyGrid(&buf, nil, 2030, time.June, model.ScenarioRequirement{DurationMinutes: 60})
	assert.Error(t, err)
}
