package report

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"stagedoor/internal/model"
	"stagedoor/internal/schedule"
)

// MonthlyGrid writes the month's availability grid to wr as an xlsx
// workbook: one sheet per bookable store, one row per offerable date, the
// computed start time per slot or "-" when the slot cannot host the
// booking.
func MonthlyGrid(wr io.Writer, snap *schedule.Snapshot, year int, month time.Month, req model.ScenarioRequirement) error {
	if snap == nil {
		return fmt.Errorf("no snapshot loaded")
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	builder := schedule.NewCandidateSetBuilder(snap, nil)
	dates := builder.MonthDates(year, month)

	for i, store := range snap.Stores() {
		sheet := sheetName(store)
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		header := []any{"Date", "Morning", "Afternoon", "Evening"}
		if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", "D1", headerStyle); err != nil {
			return err
		}

		row := 2
		for _, date := range dates {
			values := []any{date}
			for _, kind := range model.AllSlotKinds {
				if start, ok := snap.ComputeStart(store.ID, date, kind, req); ok {
					values = append(values, model.FormatClock(start))
				} else {
					values = append(values, "-")
				}
			}
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	return f.Write(wr)
}

func sheetName(store model.Store) string {
	name := store.Name
	if store.ShortName != "" {
		name = store.ShortName
	}
	// Excel caps sheet names at 31 chars.
	if len(name) > 31 {
		name = name[:31]
	}
	return name
}
