package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type dashboardStore interface {
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}

// DashboardHandler serves the aggregated stats behind the staff
// dashboard widgets.
type DashboardHandler struct {
	log   *slog.Logger
	store dashboardStore
}

func NewDashboardHandler(log *slog.Logger, store dashboardStore) *DashboardHandler {
	return &DashboardHandler{log: log, store: store}
}

// Stats handles GET /api/dashboard/stats. Staff only.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	stats, err := h.store.GetDashboardStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
