package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type altDetectStore interface {
	CreateAltAccount(ctx context.Context, p domain.AltAccountParams) (*domain.AltAccount, error)
	GetAltAccounts(ctx context.Context, userID string) ([]*domain.AltAccount, error)
	CreateAltDetectionReport(ctx context.Context, p domain.AltDetectionReportParams) (*domain.AltDetectionReport, error)
	GetAltDetectionReports(ctx context.Context) ([]*domain.AltDetectionReport, error)
	UpdateAltDetectionReport(ctx context.Context, id string, p domain.AltDetectionReportParams) (*domain.AltDetectionReport, error)
}

// AltDetectHandler serves alt-account relations and detection reports.
// Everything here is staff-facing.
type AltDetectHandler struct {
	log   *slog.Logger
	store altDetectStore
}

func NewAltDetectHandler(log *slog.Logger, store altDetectStore) *AltDetectHandler {
	return &AltDetectHandler{log: log, store: store}
}

// CreateAccount handles POST /api/alt-accounts.
func (h *AltDetectHandler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AltAccountParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.PrimaryUserID == nil || *p.PrimaryUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("primaryUserId", "required"))
		return
	}
	if p.AltUserID == nil || *p.AltUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("altUserId", "required"))
		return
	}

	a, err := h.store.CreateAltAccount(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

// ListAccounts handles GET /api/users/{id}/alt-accounts. Relations are
// matched from either endpoint.
func (h *AltDetectHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	as, err := h.store.GetAltAccounts(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, as)
}

// CreateReport handles POST /api/alt-detection-reports.
func (h *AltDetectHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AltDetectionReportParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.SuspectedAltUserID == nil || *p.SuspectedAltUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("suspectedAltUserId", "required"))
		return
	}
	if p.ReportedBy == nil {
		p.ReportedBy = &callerID
	}

	rep, err := h.store.CreateAltDetectionReport(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rep)
}

// ListReports handles GET /api/alt-detection-reports.
func (h *AltDetectHandler) ListReports(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	reps, err := h.store.GetAltDetectionReports(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, reps)
}

// UpdateReport handles PATCH /api/alt-detection-reports/{id}. Reviews
// stamp the reviewer when a status change omits one.
func (h *AltDetectHandler) UpdateReport(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AltDetectionReportParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Status != nil && p.ReviewedBy == nil {
		p.ReviewedBy = &callerID
	}

	rep, err := h.store.UpdateAltDetectionReport(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rep)
}
