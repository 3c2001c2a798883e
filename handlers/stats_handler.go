package handlers

import (
	"net/http"
	"strconv"

	"github.com/seguro-calcio/team-manager/matchlog"
	"github.com/seguro-calcio/team-manager/services"
)

type StatsHandler struct {
	statsService services.StatsService
}

func NewStatsHandler(statsService services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

func (h *StatsHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.statsService.PlayerStats(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	// JSON object keys must be strings.
	encoded := make(map[string]matchlog.PlayerStats, len(stats))
	for id, st := range stats {
		encoded[strconv.Itoa(id)] = st
	}
	if err := writeJSON(w, http.StatusOK, encoded, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *StatsHandler) Apply(w http.ResponseWriter, r *http.Request) {
	if err := h.statsService.ApplyPlayerStats(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *StatsHandler) Summaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.statsService.PlayerSummaries(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, summaries, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
