package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"stagedoor/internal/metrics"
	"stagedoor/internal/model"
	"stagedoor/internal/schedule"
)

// SlotsResponse is the candidate grid for one month under a store filter.
type SlotsResponse struct {
	Month  string      `json:"month"`
	Stores []string    `json:"stores,omitempty"`
	Dates  []DateSlots `json:"dates"`
}

// DateSlots lists the offerable slots for one date.
type DateSlots struct {
	Date  string               `json:"date"`
	Slots []schedule.SlotOffer `json:"slots"`
}

// handleSlots returns the candidate grid for a month.
// GET /api/v1/slots?month=YYYY-MM&stores=a,b&duration=180&extra_prep=0
func (s *Server) handleSlots(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("slots")
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

	storeIDs := splitList(r.URL.Query().Get("stores"))
	builder := schedule.NewCandidateSetBuilder(snap, nil)

	resp := SlotsResponse{Month: monthParam, Stores: storeIDs, Dates: []DateSlots{}}
	for _, date := range builder.MonthDates(month.Year(), month.Month()) {
		offers := builder.SlotsForDate(date, storeIDs, req)
		if len(offers) == 0 {
			continue
		}
		resp.Dates = append(resp.Dates, DateSlots{Date: date, Slots: offers})
	}
	writeJSON(w, http.StatusOK, resp)
}

// AvailabilityRequest asks whether one exact candidate is bookable.
type AvailabilityRequest struct {
	Date             string   `json:"date"`
	Slot             string   `json:"slot"`
	StoreIDs         []string `json:"store_ids,omitempty"`
	DurationMinutes  int      `json:"duration"`
	ExtraPrepMinutes int      `json:"extra_preparation_time,omitempty"`
}

// AvailabilityResponse is the gate's answer.
type AvailabilityResponse struct {
	Available bool `json:"available"`
}

// handleAvailability answers the hard booking gate for one candidate.
// POST /api/v1/availability
func (s *Server) handleAvailability(w http.ResponseWriter, r *http.Request) {
	metrics.IncHTTP("availability")
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed; use POST")
		return
	}

	var req AvailabilityRequest
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if _, err := model.ParseDate(req.Date); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	kind, err := model.ParseSlotKind(req.Slot)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.DurationMinutes <= 0 {
		writeError(w, http.StatusBadRequest, "duration must be positive")
		return
	}

	// A nil snapshot means nothing is known yet; the gate fails closed.
	checker := schedule.NewAvailabilityChecker(s.builder.Current())
	available := checker.IsAvailable(req.Date, kind, model.ScenarioRequirement{
		DurationMinutes:  req.DurationMinutes,
		ExtraPrepMinutes: req.ExtraPrepMinutes,
	}, req.StoreIDs)

	writeJSON(w, http.StatusOK, AvailabilityResponse{Available: available})
}

func requirementFromQuery(r *http.Request) (model.ScenarioRequirement, error) {
	var req model.ScenarioRequirement
	if _, err := fmt.Sscanf(r.URL.Query().Get("duration"), "%d", &req.DurationMinutes); err != nil || req.DurationMinutes <= 0 {
		return req, fmt.Errorf("duration must be a positive number of minutes")
	}
	if v := r.URL.Query().Get("extra_prep"); v != "" {
		if _, err := fmt.Sscanf(v, "%d", &req.ExtraPrepMinutes); err != nil {
			return req, fmt.Errorf("invalid extra_prep")
		}
	}
	return req, nil
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
