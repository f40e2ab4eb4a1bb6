package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"stagedoor/internal/metrics"
	"stagedoor/internal/model"
)

// ValidateCandidatesResponse echoes the normalized candidate list exactly
// as it will be persisted into the booking request.
type ValidateCandidatesResponse struct {
	Valid bool                `json:"valid"`
	List  model.CandidateList `json:"candidate_datetimes"`
}

// handleValidateCandidates validates and normalizes a finalized candidate
// list before it is persisted. The wire shape is consumed downstream by
// the GM response workflow and confirmation emails and must round-trip
// unchanged.
// POST /api/v1/candidates/validate
func (s *Server) handleValidateCandidates(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("candidates_validate")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var list model.CandidateList
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&list); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := s.validateCandidateList(&list); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, ValidateCandidatesResponse{Valid: true, List: list})
}

func (s *Server) validateCandidateList(list *model.CandidateList) error {
	if len(list.Candidates) == 0 {
		return fmt.Errorf("at least one candidate is required")
	}
	if s.maxCandidates > 0 && len(list.Candidates) > s.maxCandidates {
		return fmt.Errorf("at most %d candidates may be selected", s.maxCandidates)
	}

	seen := make(map[int]bool, len(list.Candidates))
	for i := range list.Candidates {
		c := &list.Candidates[i]
		if c.Order <= 0 {
			return fmt.Errorf("candidate order must be 1-based")
		}
		if seen[c.Order] {
			return fmt.Errorf("duplicate candidate order %d", c.Order)
		}
		seen[c.Order] = true

		if _, err := model.ParseDate(c.Date); err != nil {
			return err
		}
		if _, err := c.Kind(); err != nil {
			return err
		}
		start, err := model.ParseClock(c.StartTime)
		if err != nil {
			return err
		}
		end, err := model.ParseClock(c.EndTime)
		if err != nil {
			return err
		}
		if end <= start {
			return fmt.Errorf("candidate %d: end time must follow start time", c.Order)
		}
		if c.Status == "" {
			c.Status = model.CandidateStatusPending
		}
	}
	return nil
}
