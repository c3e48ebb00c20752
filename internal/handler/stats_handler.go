package handler

import (
	"context"
	"net/http"

	"movie-service/internal/models"
	"movie-service/internal/service"
)

type Coverage interface {
	Coverage(ctx context.Context) (*models.ImportCoverage, error)
	Pending(ctx context.Context, limit int64) (*models.PendingDetails, error)
}

// StatsHandler exposes import coverage reports.
type StatsHandler struct {
	svc Coverage
}

func NewStatsHandler(svc Coverage) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// @Summary Import coverage
// @Description Counts of movies with and without episodes, plus genres and countries.
// @Tags stats
// @Produce json
// @Success 200 {object} APIResponse{data=models.ImportCoverage}
// @Failure 500 {object} APIResponse
// @Router /api/stats/coverage [get]
// GET /api/stats/coverage
func (h *StatsHandler) GetCoverage(w http.ResponseWriter, r *http.Request) {
	summary, err := h.svc.Coverage(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, summary)
}

// @Summary Movies pending detail import
// @Description Lists movies imported from a listing that still have no episodes.
// @Tags stats
// @Produce json
// @Param limit query int false "max movies (default 50, max 500)"
// @Success 200 {object} APIResponse{data=models.PendingDetails}
// @Failure 500 {object} APIResponse
// @Router /api/stats/pending [get]
// GET /api/stats/pending
func (h *StatsHandler) GetPending(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", service.DefaultPendingLimit)

	resp, err := h.svc.Pending(r.Context(), int64(limit))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeData(w, resp)
}
