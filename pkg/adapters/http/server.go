package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/pricewalk"
	"github.com/aretw0/pricewalk/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// Engine defines the subset of the pricewalk engine served over HTTP.
type Engine interface {
	Simulate(ctx context.Context, req domain.SimulationRequest) (*domain.Simulation, error)
	Get(ctx context.Context, id string) (*domain.Simulation, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, id string) error
	Roll(ctx context.Context, sides []int, rolls int, seed *uint64) (*domain.DiceRoll, error)
}

var _ Engine = (*pricewalk.Engine)(nil)

// Server exposes an Engine as a JSON API.
type Server struct {
	Engine Engine
}

// RollRequest is the body of POST /dice/roll.
type RollRequest struct {
	Sides []int   `json:"sides"`
	Rolls int     `json:"rolls"`
	Seed  *uint64 `json:"seed,omitempty"`
}

// SimulationList is the body of GET /simulations.
type SimulationList struct {
	IDs []string `json:"ids"`
}

// SummaryResponse is the body of GET /simulations/{id}/summary.
type SummaryResponse struct {
	ID    string               `json:"id"`
	Steps []domain.StepSummary `json:"steps"`
}

// ErrorResponse is returned with every non-2xx status.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewHandler creates a new HTTP handler for the engine.
func NewHandler(engine Engine) http.Handler {
	server := &Server{Engine: engine}
	r := chi.NewRouter()

	r.Get("/health", server.GetHealth)
	r.Route("/simulations", func(r chi.Router) {
		r.Post("/", server.CreateSimulation)
		r.Get("/", server.ListSimulations)
		r.Get("/{id}", server.GetSimulation)
		r.Get("/{id}/summary", server.GetSummary)
		r.Delete("/{id}", server.DeleteSimulation)
	})
	r.Post("/dice/roll", server.RollDice)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CreateSimulation handles POST /simulations.
func (s *Server) CreateSimulation(w http.ResponseWriter, r *http.Request) {
	var body domain.SimulationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		slog.Warn("CreateSimulation: invalid request body", "error", err)
		return
	}

	sim, err := s.Engine.Simulate(r.Context(), body)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	w.Header().Set("Location", "/simulations/"+sim.ID)
	writeJSON(w, http.StatusCreated, sim)
}

// ListSimulations handles GET /simulations.
func (s *Server) ListSimulations(w http.ResponseWriter, r *http.Request) {
	ids, err := s.Engine.List(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	if ids == nil {
		ids = []string{}
	}
	writeJSON(w, http.StatusOK, SimulationList{IDs: ids})
}

// GetSimulation handles GET /simulations/{id}.
func (s *Server) GetSimulation(w http.ResponseWriter, r *http.Request) {
	sim, err := s.Engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sim)
}

// GetSummary handles GET /simulations/{id}/summary.
func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	sim, err := s.Engine.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, SummaryResponse{ID: sim.ID, Steps: sim.Table.Summarize()})
}

// DeleteSimulation handles DELETE /simulations/{id}.
func (s *Server) DeleteSimulation(w http.ResponseWriter, r *http.Request) {
	if err := s.Engine.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RollDice handles POST /dice/roll.
func (s *Server) RollDice(w http.ResponseWriter, r *http.Request) {
	var body RollRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		slog.Warn("RollDice: invalid request body", "error", err)
		return
	}
	if body.Rolls == 0 {
		body.Rolls = 1
	}

	roll, err := s.Engine.Roll(r.Context(), body.Sides, body.Rolls, body.Seed)
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, roll)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": pricewalk.Version,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeDomainError maps domain errors to HTTP status codes.
func writeDomainError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("Request failed", "error", err)
	}
	writeError(w, status, err.Error())
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrSimulationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidArgument),
		errors.Is(err, domain.ErrInvalidProbability),
		errors.Is(err, domain.ErrUnknownProcess):
		return http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
