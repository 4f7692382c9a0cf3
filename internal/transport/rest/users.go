package rest

import (
	"context"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
	"github.com/ownersalliance/trustportal/pkg/ctxutil"
)

type userStore interface {
	CreateUser(ctx context.Context, p domain.UserParams) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	GetAllUsers(ctx context.Context) ([]*domain.User, error)
	GetStaffMembers(ctx context.Context) ([]*domain.User, error)
	UpdateUser(ctx context.Context, id string, p domain.UserParams) (*domain.User, error)
}

// UserHandler serves account management endpoints.
type UserHandler struct {
	log        *slog.Logger
	store      userStore
	bcryptCost int
}

func NewUserHandler(log *slog.Logger, store userStore, bcryptCost int) *UserHandler {
	return &UserHandler{log: log, store: store, bcryptCost: bcryptCost}
}

// userRequest extends the user params with a plaintext password field.
// The hash never crosses the API boundary in either direction.
type userRequest struct {
	domain.UserParams
	Password *string `json:"password"`
}

func (req *userRequest) params(cost int) (domain.UserParams, error) {
	p := req.UserParams
	p.PasswordHash = nil
	if req.Password != nil {
		if *req.Password == "" {
			return p, domain.NewValidationError("password", "must not be empty")
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), cost)
		if err != nil {
			return p, err
		}
		hashed := string(hash)
		p.PasswordHash = &hashed
	}
	return p, nil
}

// Create handles POST /api/users. Admin only.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Username == nil || *req.Username == "" {
		handleError(h.log, w, r, domain.NewValidationError("username", "required"))
		return
	}
	if req.Email == nil || *req.Email == "" {
		handleError(h.log, w, r, domain.NewValidationError("email", "required"))
		return
	}

	p, err := req.params(h.bcryptCost)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := h.store.CreateUser(r.Context(), p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// List handles GET /api/users. Admin only.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	users, err := h.store.GetAllUsers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// ListStaff handles GET /api/staff. Staff only.
func (h *UserHandler) ListStaff(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.RequireStaff(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	staff, err := h.store.GetStaffMembers(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, staff)
}

// Get handles GET /api/users/{id}. Users may read their own record,
// staff may read anyone's.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id := r.PathValue("id")
	if id != callerID {
		if _, err := middleware.RequireStaff(r.Context()); err != nil {
			handleError(h.log, w, r, err)
			return
		}
	}

	user, err := h.store.GetUser(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// Update handles PATCH /api/users/{id}. Users may update their own
// profile; only admins may touch other accounts or change roles.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	callerID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id := r.PathValue("id")
	isAdmin := domain.UserRole(ctxutil.UserRoleFromCtx(r.Context())) == domain.RoleAdmin
	if id != callerID && !isAdmin {
		handleError(h.log, w, r, domain.ErrForbidden)
		return
	}

	var req userRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if !isAdmin && (req.Role != nil || req.IsActive != nil) {
		handleError(h.log, w, r, domain.ErrForbidden)
		return
	}

	p, err := req.params(h.bcryptCost)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := h.store.UpdateUser(r.Context(), id, p)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}
