package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type utilityStore interface {
	CreateUtilityCategory(ctx context.Context, p domain.UtilityCategoryParams) (*domain.UtilityCategory, error)
	GetUtilityCategories(ctx context.Context) ([]*domain.UtilityCategory, error)
	CreateUtilityDocument(ctx context.Context, p domain.UtilityDocumentParams) (*domain.UtilityDocument, error)
	GetUtilityDocuments(ctx context.Context, categoryID string) ([]*domain.UtilityDocument, error)
	UpdateUtilityDocument(ctx context.Context, id string, p domain.UtilityDocumentParams) (*domain.UtilityDocument, error)
	CreateDocumentRating(ctx context.Context, p domain.DocumentRatingParams) (*domain.DocumentRating, error)
}

// UtilityHandler serves the knowledge base: categories, documents and
// document ratings.
type UtilityHandler struct {
	log   *slog.Logger
	store utilityStore
}

func NewUtilityHandler(log *slog.Logger, store utilityStore) *UtilityHandler {
	return &UtilityHandler{log: log, store: store}
}

// CreateCategory handles POST /api/utility-categories. Staff only.
func (h *UtilityHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.UtilityCategoryParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Name == nil || *p.Name == "" {
		handleError(h.log, w, r, domain.NewValidationError("name", "required"))
		return
	}

	cat, err := h.store.CreateUtilityCategory(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cat)
}

// ListCategories handles GET /api/utility-categories.
func (h *UtilityHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cats, err := h.store.GetUtilityCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

// CreateDocument handles POST /api/utility-documents. Staff only; the
// author defaults to the caller.
func (h *UtilityHandler) CreateDocument(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.UtilityDocumentParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Title == nil || *p.Title == "" {
		handleError(h.log, w, r, domain.NewValidationError("title", "required"))
		return
	}
	if p.CategoryID == nil || *p.CategoryID == "" {
		handleError(h.log, w, r, domain.NewValidationError("categoryId", "required"))
		return
	}
	if p.AuthorID == nil {
		p.AuthorID = &callerID
	}

	doc, err := h.store.CreateUtilityDocument(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, doc)
}

// ListDocuments handles GET /api/utility-documents with an optional
// categoryId query parameter.
func (h *UtilityHandler) ListDocuments(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	docs, err := h.store.GetUtilityDocuments(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// UpdateDocument handles PATCH /api/utility-documents/{id}. Staff only;
// the edit is attributed to the caller when no editor is given.
func (h *UtilityHandler) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireStaff(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.UtilityDocumentParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.LastEditedBy == nil {
		p.LastEditedBy = &callerID
	}

	doc, err := h.store.UpdateUtilityDocument(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// CreateRating handles POST /api/utility-documents/{id}/ratings. The
// rater defaults to the caller; the document id comes from the path.
func (h *UtilityHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.DocumentRatingParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	docID := r.PathValue("id")
	p.DocumentID = &docID
	if p.Rating == nil {
		handleError(h.log, w, r, domain.NewValidationError("rating", "required"))
		return
	}
	if *p.Rating < 1 || *p.Rating > 5 {
		handleError(h.log, w, r, domain.NewValidationError("rating", "must be between 1 and 5"))
		return
	}
	if p.UserID == nil {
		p.UserID = &callerID
	}

	rating, err := h.store.CreateDocumentRating(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}
