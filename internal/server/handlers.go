package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/adveng/tata-car-advisor/apimodels"
	"github.com/adveng/tata-car-advisor/internal/advisor"
	"github.com/adveng/tata-car-advisor/internal/catalog"
)

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req apimodels.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	defer r.Body.Close()

	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		writeError(w, http.StatusBadRequest, "query is required")
		return
	}

	resp, err := s.advisor.Advise(r.Context(), req)
	if err != nil {
		slog.Error("chat request failed", "error", err)
		if errors.Is(err, advisor.ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "assistant temporarily unavailable, please try again later")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	var req apimodels.FilterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	defer r.Body.Close()

	if req.BudgetMax <= 0 {
		req.BudgetMax = 100
	}
	if req.MinSeats <= 0 {
		req.MinSeats = 4
	}
	if req.Fuel == "" {
		req.Fuel = "any"
	}

	cars := catalog.FilterCars(req.BudgetMin, req.BudgetMax, req.Fuel, req.MinSeats)
	writeJSON(w, http.StatusOK, apimodels.FilterResponse{
		TotalMatches: len(cars),
		Cars:         cars,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, apimodels.StatusResponse{
		Status:    "ok",
		Providers: s.providers,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, apimodels.ErrorResponse{Error: msg})
}
