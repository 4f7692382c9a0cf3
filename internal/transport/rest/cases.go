package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type caseStore interface {
	CreateCase(ctx context.Context, p domain.CaseParams) (*domain.Case, error)
	GetCase(ctx context.Context, id string) (*domain.Case, error)
	GetCases(ctx context.Context, f domain.CaseFilter) ([]*domain.Case, error)
	CountCases(ctx context.Context, f domain.CaseFilter) (int, error)
	UpdateCase(ctx context.Context, id string, p domain.CaseParams) (*domain.Case, error)

	CreateEvidence(ctx context.Context, p domain.EvidenceParams) (*domain.Evidence, error)
	GetEvidenceByCase(ctx context.Context, caseID string) ([]*domain.Evidence, error)
	CreateAppeal(ctx context.Context, p domain.AppealParams) (*domain.Appeal, error)
	GetAppealsByCase(ctx context.Context, caseID string) ([]*domain.Appeal, error)
	CreateCaseUpdate(ctx context.Context, p domain.CaseUpdateParams) (*domain.CaseUpdate, error)
	GetCaseUpdates(ctx context.Context, caseID string) ([]*domain.CaseUpdate, error)
}

// CaseHandler serves the case pipeline: cases plus their evidence,
// appeals and update history.
type CaseHandler struct {
	log   *slog.Logger
	store caseStore
}

func NewCaseHandler(log *slog.Logger, store caseStore) *CaseHandler {
	return &CaseHandler{log: log, store: store}
}

type caseListResponse struct {
	Cases []*domain.Case `json:"cases"`
	Total int            `json:"total"`
}

// Create handles POST /api/cases. The reporter defaults to the caller.
func (h *CaseHandler) Create(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CaseParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}
	if p.ReportedUserID == nil || *p.ReportedUserID == "" {
		handleError(h.log, w, r, domain.NewValidationError("reportedUserId", "required"))
		return
	}
	if p.ReporterUserID == nil {
		p.ReporterUserID = &callerID
	}

	c, err := h.store.CreateCase(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, c)
}

// List handles GET /api/cases with status, type, search, limit and
// offset query parameters. The response carries the total match count
// alongside the page.
func (h *CaseHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	f := domain.CaseFilter{
		Status: queryString(r, "status"),
		Type:   queryString(r, "type"),
		Search: queryString(r, "search"),
		Limit:  queryInt(r, "limit", 0),
		Offset: queryInt(r, "offset", 0),
	}

	cases, err := h.store.GetCases(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	total, err := h.store.CountCases(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, caseListResponse{Cases: cases, Total: total})
}

// Get handles GET /api/cases/{id}.
func (h *CaseHandler) Get(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.store.GetCase(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// Update handles PATCH /api/cases/{id}.
func (h *CaseHandler) Update(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CaseParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.store.UpdateCase(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, c)
}

// CreateEvidence handles POST /api/cases/{id}/evidence. The case id
// comes from the path, the uploader defaults to the caller.
func (h *CaseHandler) CreateEvidence(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.EvidenceParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	caseID := r.PathValue("id")
	p.CaseID = &caseID
	if p.URL == nil || *p.URL == "" {
		handleError(h.log, w, r, domain.NewValidationError("url", "required"))
		return
	}
	if p.UploadedBy == nil {
		p.UploadedBy = &callerID
	}

	ev, err := h.store.CreateEvidence(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ev)
}

// ListEvidence handles GET /api/cases/{id}/evidence.
func (h *CaseHandler) ListEvidence(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	evs, err := h.store.GetEvidenceByCase(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, evs)
}

// CreateAppeal handles POST /api/cases/{id}/appeals. Any authenticated
// user may appeal; the appellant defaults to the caller.
func (h *CaseHandler) CreateAppeal(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AppealParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	caseID := r.PathValue("id")
	p.CaseID = &caseID
	if p.Reason == nil || *p.Reason == "" {
		handleError(h.log, w, r, domain.NewValidationError("reason", "required"))
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}

	ap, err := h.store.CreateAppeal(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, ap)
}

// ListAppeals handles GET /api/cases/{id}/appeals.
func (h *CaseHandler) ListAppeals(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	aps, err := h.store.GetAppealsByCase(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, aps)
}

// CreateUpdate handles POST /api/cases/{id}/updates.
func (h *CaseHandler) CreateUpdate(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.CaseUpdateParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	caseID := r.PathValue("id")
	p.CaseID = &caseID
	if p.UserID == nil {
		p.UserID = &callerID
	}

	upd, err := h.store.CreateCaseUpdate(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, upd)
}

// ListUpdates handles GET /api/cases/{id}/updates.
func (h *CaseHandler) ListUpdates(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	upds, err := h.store.GetCaseUpdates(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, upds)
}
