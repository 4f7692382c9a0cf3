package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ownersalliance/trustportal/internal/config"
	"github.com/ownersalliance/trustportal/internal/domain"
	"github.com/ownersalliance/trustportal/pkg/ctxutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChainOrder(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mw("first"), mw("second"))(okHandler())
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, []string{"first", "second"}, order)
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	var got string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ctxutil.RequestIDFromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NotEmpty(t, got)
	require.Equal(t, got, rec.Header().Get("X-Request-Id"))

	// An inbound id is reused verbatim.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-Id", "upstream-id")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, "upstream-id", got)
}

func TestRecovery(t *testing.T) {
	h := Recovery(discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

type fakeValidator struct {
	userID string
	role   string
	err    error
}

func (f fakeValidator) ValidateAccessToken(string) (string, string, error) {
	return f.userID, f.role, f.err
}

func TestAuthAnonymousPassThrough(t *testing.T) {
	var sawUser bool
	h := Auth(fakeValidator{err: errors.New("should not be called")})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, sawUser = ctxutil.UserIDFromCtx(r.Context())
		}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, sawUser)
}

func TestAuthValidToken(t *testing.T) {
	var userID, role string
	h := Auth(fakeValidator{userID: "u1", role: "staff"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, _ = ctxutil.UserIDFromCtx(r.Context())
			role = ctxutil.UserRoleFromCtx(r.Context())
		}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, "u1", userID)
	require.Equal(t, "staff", role)
}

func TestAuthInvalidToken(t *testing.T) {
	h := Auth(fakeValidator{err: errors.New("bad token")})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	cfg := config.CORSConfig{
		AllowedOrigins:   "https://portal.example.com",
		AllowedMethods:   "GET,POST,PATCH,OPTIONS",
		AllowedHeaders:   "Authorization,Content-Type",
		AllowCredentials: true,
		MaxAge:           600,
	}
	h := CORS(cfg)(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/cases", nil)
	req.Header.Set("Origin", "https://portal.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "https://portal.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	require.Equal(t, "GET,POST,PATCH,OPTIONS", rec.Header().Get("Access-Control-Allow-Methods"))
}

func TestCORSDisallowedOrigin(t *testing.T) {
	h := CORS(config.CORSConfig{AllowedOrigins: "https://portal.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(time.Minute)
	defer rl.Stop()

	h := rl.Limit(2)(okHandler())

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
	require.NotEmpty(t, rec.Header().Get("Retry-After"))

	// Other clients are unaffected.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.2:1234"
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	// A new source port on a throttled IP shares that IP's bucket.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:9999"
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRequireUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := RequireUser(req.Context())
	require.ErrorIs(t, err, domain.ErrUnauthorized)

	ctx := ctxutil.WithUserID(req.Context(), "u1")
	userID, err := RequireUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
}

func TestRequireStaff(t *testing.T) {
	ctx := ctxutil.WithUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "u1")

	ctxUser := ctxutil.WithUserRole(ctx, domain.RoleUser.String())
	_, err := RequireStaff(ctxUser)
	require.ErrorIs(t, err, domain.ErrForbidden)

	ctxStaff := ctxutil.WithUserRole(ctx, domain.RoleStaff.String())
	userID, err := RequireStaff(ctxStaff)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
}

func TestRequireAdmin(t *testing.T) {
	ctx := ctxutil.WithUserID(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "u1")

	ctxStaff := ctxutil.WithUserRole(ctx, domain.RoleStaff.String())
	_, err := RequireAdmin(ctxStaff)
	require.ErrorIs(t, err, domain.ErrForbidden)

	ctxAdmin := ctxutil.WithUserRole(ctx, domain.RoleAdmin.String())
	userID, err := RequireAdmin(ctxAdmin)
	require.NoError(t, err)
	require.Equal(t, "u1", userID)
}
