package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"stagedoor/internal/model"
	"stagedoor/internal/schedule"
)

// StaffEventSource fetches a staff member's assigned events for the
// advisory conflict check.
type StaffEventSource interface {
	StaffAssignedEvents(ctx context.Context, staffID, from, to string) ([]model.Event, error)
}

// Server serves the availability engine over HTTP.
type Server struct {
	builder       *schedule.Builder
	staffSource   StaffEventSource
	maxCandidates int
	logger        *zerolog.Logger
	server        *http.Server
}

// NewServer wires routes over the snapshot builder.
func NewServer(port int, builder *schedule.Builder, staffSource StaffEventSource, maxCandidates int, logger *zerolog.Logger) *Server {
	s := &Server{
		builder:       builder,
		staffSource:   staffSource,
		maxCandidates: maxCandidates,
		logger:        logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/slots", s.handleSlots)
	mux.HandleFunc("/api/v1/availability", s.handleAvailability)
	mux.HandleFunc("/api/v1/staff/conflicts", s.handleStaffConflicts)
	mux.HandleFunc("/api/v1/candidates/validate", s.handleValidateCandidates)
	mux.HandleFunc("/api/v1/reports/availability", s.handleAvailabilityReport)
	mux.HandleFunc("/healthz", s.handleHealth)

	s.server = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Start serves until the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = s.server.Shutdown(ctxShutdown)
	}()
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Handler exposes the mux for tests.
func (s *Server) Handler() http.Handler { return s.server.Handler }

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
