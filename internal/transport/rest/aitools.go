package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type aiToolStore interface {
	CreateAiToolCategory(ctx context.Context, p domain.AiToolCategoryParams) (*domain.AiToolCategory, error)
	GetAiToolCategories(ctx context.Context) ([]*domain.AiToolCategory, error)
	CreateAiTool(ctx context.Context, p domain.AiToolParams) (*domain.AiTool, error)
	GetAiTools(ctx context.Context, categoryID string) ([]*domain.AiTool, error)
	GetAiTool(ctx context.Context, id string) (*domain.AiTool, error)
	CreateAiToolUsage(ctx context.Context, p domain.AiToolUsageParams) (*domain.AiToolUsage, error)
	UpdateAiToolUsage(ctx context.Context, id string, p domain.AiToolUsageParams) (*domain.AiToolUsage, error)
	CreateAiToolRating(ctx context.Context, p domain.AiToolRatingParams) (*domain.AiToolRating, error)
}

// AiToolHandler serves the AI assistant catalog, usage records and
// tool ratings.
type AiToolHandler struct {
	log   *slog.Logger
	store aiToolStore
}

func NewAiToolHandler(log *slog.Logger, store aiToolStore) *AiToolHandler {
	return &AiToolHandler{log: log, store: store}
}

// CreateCategory handles POST /api/ai-tool-categories. Admin only.
func (h *AiToolHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AiToolCategoryParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Name == nil || *p.Name == "" {
		handleError(h.log, w, r, domain.NewValidationError("name", "required"))
		return
	}

	cat, err := h.store.CreateAiToolCategory(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cat)
}

// ListCategories handles GET /api/ai-tool-categories.
func (h *AiToolHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	cats, err := h.store.GetAiToolCategories(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, cats)
}

// CreateTool handles POST /api/ai-tools. Admin only.
func (h *AiToolHandler) CreateTool(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AiToolParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if p.Name == nil || *p.Name == "" {
		handleError(h.log, w, r, domain.NewValidationError("name", "required"))
		return
	}
	if p.CategoryID == nil || *p.CategoryID == "" {
		handleError(h.log, w, r, domain.NewValidationError("categoryId", "required"))
		return
	}

	tool, err := h.store.CreateAiTool(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tool)
}

// ListTools handles GET /api/ai-tools with an optional categoryId
// query parameter. Only active tools are returned.
func (h *AiToolHandler) ListTools(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tools, err := h.store.GetAiTools(r.Context(), r.URL.Query().Get("categoryId"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tools)
}

// GetTool handles GET /api/ai-tools/{id}.
func (h *AiToolHandler) GetTool(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	tool, err := h.store.GetAiTool(r.Context(), r.PathValue("id"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tool)
}

// CreateUsage handles POST /api/ai-tools/{id}/usage. The invoking user
// defaults to the caller; the tool id comes from the path.
func (h *AiToolHandler) CreateUsage(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AiToolUsageParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	toolID := r.PathValue("id")
	p.ToolID = &toolID
	if p.UserID == nil {
		p.UserID = &callerID
	}

	usage, err := h.store.CreateAiToolUsage(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, usage)
}

// UpdateUsage handles PATCH /api/ai-tool-usage/{id}. Completion status
// stamps the completion time.
func (h *AiToolHandler) UpdateUsage(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireUser(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AiToolUsageParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	usage, err := h.store.UpdateAiToolUsage(r.Context(), r.PathValue("id"), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usage)
}

// CreateRating handles POST /api/ai-tools/{id}/ratings.
func (h *AiToolHandler) CreateRating(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var p domain.AiToolRatingParams
	if err := decodeJSON(r, &p); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	toolID := r.PathValue("id")
	p.ToolID = &toolID
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

	rating, err := h.store.CreateAiToolRating(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, rating)
}
