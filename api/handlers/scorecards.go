package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	gameservice "github.com/the-tour-club/skins/app/modules/game/application"
)

// ScorecardHandler exposes the scorecard archive over HTTP.
type ScorecardHandler struct {
	service gameservice.Service
	logger  *slog.Logger
}

// NewScorecardHandler creates a new ScorecardHandler.
func NewScorecardHandler(service gameservice.Service, logger *slog.Logger) *ScorecardHandler {
	return &ScorecardHandler{service: service, logger: logger}
}

// Routes returns the scorecard sub-router.
func (h *ScorecardHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.List)
	r.Delete("/{scorecardID}", h.Delete)
	r.Get("/export", h.Export)
	r.Post("/import", h.Import)
	return r
}

func (h *ScorecardHandler) List(w http.ResponseWriter, r *http.Request) {
	scorecards, err := h.service.ListScorecards(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, scorecards)
}

func (h *ScorecardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteScorecard(r.Context(), chi.URLParam(r, "scorecardID")); err != nil {
		writeGameError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScorecardHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.service.ExportScorecards(r.Context())
	if err != nil {
		writeGameError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="scorecards.json"`)
	if err := json.NewEncoder(w).Encode(export); err != nil {
		http.Error(w, fmt.Sprintf("Failed to encode response: %v", err), http.StatusInternalServerError)
	}
}

const maxImportSize = 10 << 20

func (h *ScorecardHandler) Import(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		http.Error(w, fmt.Sprintf("Failed to read request body: %v", err), http.StatusBadRequest)
		return
	}

	summary, err := h.service.ImportScorecards(r.Context(), raw)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
