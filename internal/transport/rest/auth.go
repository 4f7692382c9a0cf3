package rest

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/ownersalliance/trustportal/internal/domain"
	authsvc "github.com/ownersalliance/trustportal/internal/service/auth"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type authService interface {
	LoginWithPassword(ctx context.Context, input authsvc.LoginPasswordInput, meta authsvc.RequestMeta) (*authsvc.AuthResult, error)
	LoginWithDiscord(ctx context.Context, input authsvc.LoginDiscordInput, meta authsvc.RequestMeta) (*authsvc.AuthResult, error)
}

type userGetter interface {
	GetUser(ctx context.Context, id string) (*domain.User, error)
}

// AuthHandler serves login and current-user endpoints.
type AuthHandler struct {
	log   *slog.Logger
	auth  authService
	users userGetter
}

func NewAuthHandler(log *slog.Logger, auth authService, users userGetter) *AuthHandler {
	return &AuthHandler{log: log, auth: auth, users: users}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type discordLoginRequest struct {
	Code string `json:"code"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.auth.LoginWithPassword(r.Context(), authsvc.LoginPasswordInput{
		Username: req.Username,
		Password: req.Password,
	}, requestMeta(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.AccessToken, User: result.User})
}

// LoginDiscord handles POST /api/auth/discord. The body carries the
// OAuth authorization code obtained by the frontend redirect flow.
func (h *AuthHandler) LoginDiscord(w http.ResponseWriter, r *http.Request) {
	var req discordLoginRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.auth.LoginWithDiscord(r.Context(), authsvc.LoginDiscordInput{
		Code: req.Code,
	}, requestMeta(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{Token: result.AccessToken, User: result.User})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.RequireUser(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	user, err := h.users.GetUser(r.Context(), userID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func requestMeta(r *http.Request) authsvc.RequestMeta {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}
	return authsvc.RequestMeta{
		IPAddress: ip,
		UserAgent: r.UserAgent(),
	}
}
