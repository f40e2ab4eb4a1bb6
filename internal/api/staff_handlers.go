package api

import (
	"encoding/json"
	"net/http"
	"sort"

	"stagedoor/internal/metrics"
	"stagedoor/internal/model"
	"stagedoor/internal/schedule"
)

// StaffConflictsRequest asks which candidates overlap a staff member's own
// assigned events.
type StaffConflictsRequest struct {
	StaffID    string            `json:"staff_id"`
	Candidates []model.Candidate `json:"candidates"`
}

// StaffConflictsResponse maps candidate order to a conflict flag. The
// flags are advisory; the caller surfaces them as warnings.
type StaffConflictsResponse struct {
	Conflicts map[int]bool `json:"conflicts"`
}

// handleStaffConflicts runs the advisory staff schedule check.
// POST /api/v1/staff/conflicts
func (s *Server) handleStaffConflicts(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("staff_conflicts")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req StaffConflictsRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.StaffID == "" {
		writeError(w, http.StatusBadRequest, "staff_id is required")
		return
	}
	if len(req.Candidates) == 0 {
		writeJSON(w, http.StatusOK, StaffConflictsResponse{Conflicts: map[int]bool{}})
		return
	}

	from, to, err := candidateDateRange(req.Candidates)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	// One batched fetch over the whole candidate date range.
	assigned, err := s.staffSource.StaffAssignedEvents(r.Context(), req.StaffID, from, to)
	if err != nil {
		s.logger.Error().Err(err).Str("staff_id", req.StaffID).Msg("staff events fetch failed")
		// Advisory check: degrade to no known events rather than failing
		// the caller.
		assigned = nil
	}

	metrics.IncStaffConflictCheck()
	checker := schedule.NewStaffConflictChecker()
	writeJSON(w, http.StatusOK, StaffConflictsResponse{Conflicts: checker.Conflicts(assigned, req.Candidates)})
}

func candidateDateRange(candidates []model.Candidate) (string, string, error) {
	dates := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if _, err := model.ParseDate(c.Date); err != nil {
			return "", "", err
		}
		dates = append(dates, c.Date)
	}
	sort.Strings(dates)
	return dates[0], dates[len(dates)-1], nil
}
