package api

import (
	"fmt"
	"net/http"
	"time"

	"stagedoor/internal/metrics"
	"stagedoor/internal/report"
)

// handleAvailabilityReport streams the month's availability grid as an
// xlsx workbook, one sheet per store.
// GET /api/v1/reports/availability?month=YYYY-MM&duration=180&extra_prep=0
func (s *Server) handleAvailabilityReport(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability_report")
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	monthParam := r.URL.Query().Get("month")
	month, err := time.Parse("2006-01", monthParam)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid month; expected YYYY-MM")
		return
	}
	req, err := requirementFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	snap := s.builder.Current()
	if snap == nil {
		writeError(w, http.StatusServiceUnavailable, "schedule data not loaded yet")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=availability-%s.xlsx", monthParam))
	if err := report.MonthlyGrid(w, snap, month.Year(), month.Month(), req); err != nil {
		s.logger.Error().Err(err).Msg("availability report failed")
	}
}
