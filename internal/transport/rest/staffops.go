package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type staffOpsStore interface {
	CreateStaffAssignment(ctx context.Context, p domain.StaffAssignmentParams) (*domain.StaffAssignment, error)
	GetStaffAssignments(ctx context.Context) ([]*domain.StaffAssignment, error)
	UpdateStaffAssignment(ctx context.Context, id string, p domain.StaffAssignmentParams) (*domain.StaffAssignment, error)
	CreateStaffPermission(ctx context.Context, p domain.StaffPermissionParams) (*domain.StaffPermission, error)
	GetStaffPermissions(ctx context.Context, userID string) ([]*domain.StaffPermission, error)
	CreateStaffPerformance(ctx context.Context, p domain.StaffPerformanceParams) (*domain.StaffPerformance, error)
	GetStaffPerformance(ctx context.Context, staffID string) ([]*domain.StaffPerformance, error)
	CreateTribunalProceeding(ctx context.Context, p domain.TribunalProceedingParams) (*domain.TribunalProceeding, error)
	GetTribunalProceedings(ctx context.Context) ([]*domain.TribunalProceeding, error)
	UpdateTribunalProceeding(ctx context.Context, id string, p domain.TribunalProceedingParams) (*domain.TribunalProceeding, error)
}

// StaffOpsHandler serves assignments, permissions, performance reviews
// and tribunal proceedings.
type StaffOpsHandler struct {
	log   *slog.Logger
	store staffOpsStore
}

func NewStaffOpsHandler(log *slog.Logger, store staffOpsStore) *StaffOpsHandler {
	return &StaffOpsHandler{log: log, store: store}
}

// CreateAssignment handles POST /api/staff-assignments. The assigner
// defaults to the caller.
func (h *StaffOpsHandler) CreateAssignment(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.StaffAssignmentParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.StaffUserID == nil || *p.StaffUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("staffUserId", "required"))
		return
	}
	if p.AssignedBy == nil {
		p.AssignedBy = &callerID
	}

	a, err := h.store.CreateStaffAssignment(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, a)
}

// ListAssignments handles GET /api/staff-assignments.
func (h *StaffOpsHandler) ListAssignments(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	as, err := h.store.GetStaffAssignments(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, as)
}

// UpdateAssignment handles PATCH /api/staff-assignments/{id}.
func (h *StaffOpsHandler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.StaffAssignmentParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	a, err := h.store.UpdateStaffAssignment(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, a)
}

// CreatePermission handles POST /api/staff-permissions. Admin only;
// the grantor defaults to the caller.
func (h *StaffOpsHandler) CreatePermission(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireAdmin(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.StaffPermissionParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.UserID == nil || *p.UserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("userId", "required"))
		return
	}
	if p.Permission == nil || *p.Permission == "" {
		handleError(h.log, w, r, domain.NewValidationError("permission", "required"))
		return
	}
	if p.GrantedBy == nil {
		p.GrantedBy = &callerID
	}

	perm, err := h.store.CreateStaffPermission(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, perm)
}

// ListPermissions handles GET /api/staff-permissions with an optional
// userId query parameter.
func (h *StaffOpsHandler) ListPermissions(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	perms, err := h.store.GetStaffPermissions(r.Context(), r.URL.Query().Get("userId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, perms)
}

// CreatePerformance handles POST /api/staff-performance. Admin only.
func (h *StaffOpsHandler) CreatePerformance(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.StaffPerformanceParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.StaffID == nil || *p.StaffID == "" {
		handleError(h.log, w, r, domain.NewValidationError("staffId", "required"))
		return
	}

	perf, err := h.store.CreateStaffPerformance(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, perf)
}

// ListPerformance handles GET /api/staff-performance with an optional
// staffId query parameter.
func (h *StaffOpsHandler) ListPerformance(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	perfs, err := h.store.GetStaffPerformance(r.Context(), r.URL.Query().Get("staffId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, perfs)
}

// CreateProceeding handles POST /api/tribunal-proceedings.
func (h *StaffOpsHandler) CreateProceeding(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.TribunalProceedingParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.CaseID == nil || *p.CaseID == "" {
		handleError(h.log, w, r, domain.NewValidationError("caseId", "required"))
		return
	}

	tp, err := h.store.CreateTribunalProceeding(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tp)
}

// ListProceedings handles GET /api/tribunal-proceedings.
func (h *StaffOpsHandler) ListProceedings(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tps, err := h.store.GetTribunalProceedings(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tps)
}

// UpdateProceeding handles PATCH /api/tribunal-proceedings/{id}.
func (h *StaffOpsHandler) UpdateProceeding(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.TribunalProceedingParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tp, err := h.store.UpdateTribunalProceeding(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tp)
}
