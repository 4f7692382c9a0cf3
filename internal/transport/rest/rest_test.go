package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ownersalliance/trustportal/internal/auth"
	"github.com/ownersalliance/trustportal/internal/config"
	"github.com/ownersalliance/trustportal/internal/domain"
	authsvc "github.com/ownersalliance/trustportal/internal/service/auth"
	"github.com/ownersalliance/trustportal/internal/store/memory"
	"github.com/ownersalliance/trustportal/internal/transport/middleware"
)

type testEnv struct {
	store   *memory.Store
	jwt     *auth.JWTManager
	handler http.Handler
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.New(logger)
	jwtManager := auth.NewJWTManager("0123456789abcdef0123456789abcdef", "trustportal", time.Hour)
	svc := authsvc.NewService(logger, store, nil, jwtManager, config.AuthConfig{})

	mux := NewRouter(logger, store, svc, bcrypt.MinCost, "test")
	handler := middleware.Auth(jwtManager)(mux)

	return &testEnv{store: store, jwt: jwtManager, handler: handler}
}

// createUser provisions an account with the given role and returns it
// with a valid bearer token.
func (e *testEnv) createUser(t *testing.T, username string, role domain.UserRole) (*domain.User, string) {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)
	hashed := string(hash)
	u, err := e.store.CreateUser(context.Background(), domain.UserParams{
		Username:     &username,
		Email:        ptrOf(username + "@example.com"),
		PasswordHash: &hashed,
		Role:         &role,
	})
	require.NoError(t, err)

	token, err := e.jwt.GenerateAccessToken(u.ID, u.Role.String())
	require.NoError(t, err)
	return u, token
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func ptrOf[T any](v T) *T { return &v }

func TestLoginEndpoint(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[map[string]json.RawMessage](t, rec)
	require.Contains(t, resp, "token")
	require.Contains(t, resp, "user")
	// The hash must never appear in a response.
	require.NotContains(t, rec.Body.String(), "passwordHash")

	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeEndpoint(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.User](t, rec)
	require.Equal(t, u.ID, got.ID)

	rec = env.do(t, http.MethodGet, "/api/auth/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCaseEndpointsRequireStaff(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.createUser(t, "bob", domain.RoleUser)

	body := map[string]string{"title": "scam report", "reportedUserId": "someone"}

	rec := env.do(t, http.MethodPost, "/api/cases", "", body)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/cases", userToken, body)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCaseLifecycle(t *testing.T) {
	env := newTestEnv(t)
	staff, token := env.createUser(t, "mod", domain.RoleStaff)

	rec := env.do(t, http.MethodPost, "/api/cases", token, map[string]any{
		"title":          "chargeback scam",
		"reportedUserId": "bob",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Case](t, rec)
	require.Equal(t, domain.CaseStatusPending, created.Status)
	// The reporter defaults to the caller.
	require.Equal(t, staff.ID, created.ReporterUserID)

	rec = env.do(t, http.MethodGet, "/api/cases/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/cases/"+created.ID, token, map[string]string{
		"status": domain.CaseStatusResolved,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.Case](t, rec)
	require.Equal(t, domain.CaseStatusResolved, updated.Status)
	require.Equal(t, "chargeback scam", updated.Title)

	rec = env.do(t, http.MethodGet, "/api/cases?status=resolved", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[caseListResponse](t, rec)
	require.Equal(t, 1, list.Total)
	require.Len(t, list.Cases, 1)

	rec = env.do(t, http.MethodGet, "/api/cases/missing", token, nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCaseEvidenceUsesPathCaseID(t *testing.T) {
	env := newTestEnv(t)
	staff, token := env.createUser(t, "mod", domain.RoleStaff)

	rec := env.do(t, http.MethodPost, "/api/cases", token, map[string]string{
		"title": "case", "reportedUserId": "bob",
	})
	created := decodeBody[domain.Case](t, rec)

	rec = env.do(t, http.MethodPost, "/api/cases/"+created.ID+"/evidence", token, map[string]string{
		"url":    "https://cdn.example.com/proof.png",
		"caseId": "spoofed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	ev := decodeBody[domain.Evidence](t, rec)
	require.Equal(t, created.ID, ev.CaseID)
	require.Equal(t, staff.ID, ev.UploadedBy)
}

func TestCreateCaseValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.createUser(t, "mod", domain.RoleStaff)

	rec := env.do(t, http.MethodPost, "/api/cases", token, map[string]string{
		"reportedUserId": "bob",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/cases", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserAdminEndpoints(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.createUser(t, "root", domain.RoleAdmin)
	_, staffToken := env.createUser(t, "mod", domain.RoleStaff)

	rec := env.do(t, http.MethodPost, "/api/users", staffToken, map[string]string{
		"username": "newbie", "email": "n@example.com",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/users", adminToken, map[string]string{
		"username": "newbie", "email": "n@example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.User](t, rec)
	require.Equal(t, "newbie", created.Username)
	require.NotContains(t, rec.Body.String(), "passwordHash")

	// The plaintext password was hashed into a usable credential.
	rec = env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "newbie", "password": "secret123",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/users", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	users := decodeBody[[]domain.User](t, rec)
	require.Len(t, users, 3)
}

func TestUserSelfUpdate(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)
	other, _ := env.createUser(t, "bob", domain.RoleUser)

	rec := env.do(t, http.MethodPatch, "/api/users/"+u.ID, token, map[string]string{
		"firstName": "Alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	// Role escalation is admin-only.
	rec = env.do(t, http.MethodPatch, "/api/users/"+u.ID, token, map[string]string{
		"role": "admin",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/users/"+other.ID, token, map[string]string{
		"firstName": "Hacked",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestContactFormIsPublic(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/contact", "", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "help",
		"message": "I was scammed",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/contact", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	_, staffToken := env.createUser(t, "mod", domain.RoleStaff)
	rec = env.do(t, http.MethodGet, "/api/contact", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := decodeBody[[]domain.ContactMessage](t, rec)
	require.Len(t, msgs, 1)
}

func TestVouchSelfRejected(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/vouches", token, map[string]string{
		"targetUserId": u.ID,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPost, "/api/vouches", token, map[string]string{
		"targetUserId": "someone-else",
		"type":         "vouch",
		"reason":       "good trader",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.Vouch](t, rec)
	require.Equal(t, u.ID, v.VoucherUserID)
	require.Equal(t, 1, v.Weight)
}

func TestDisputeVoteUsesPathDispute(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/disputes", token, map[string]string{
		"title": "refund disagreement",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	d := decodeBody[domain.DisputeResolution](t, rec)
	require.Equal(t, u.ID, d.InitiatorUserID)

	rec = env.do(t, http.MethodPost, "/api/disputes/"+d.ID+"/votes", token, map[string]string{
		"vote": "guilty",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeBody[domain.DisputeVote](t, rec)
	require.Equal(t, d.ID, v.DisputeID)
	require.Equal(t, u.ID, v.VoterUserID)

	rec = env.do(t, http.MethodGet, "/api/disputes/active", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	active := decodeBody[[]domain.DisputeResolution](t, rec)
	require.Len(t, active, 1)
}

func TestDashboardStatsEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.createUser(t, "bob", domain.RoleUser)
	_, staffToken := env.createUser(t, "mod", domain.RoleStaff)

	rec := env.do(t, http.MethodGet, "/api/dashboard/stats", userToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/dashboard/stats", staffToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stats := decodeBody[domain.DashboardStats](t, rec)
	require.Equal(t, 2, stats.TotalUsers)
}

func TestAuditLogEndpoints(t *testing.T) {
	env := newTestEnv(t)
	staff, staffToken := env.createUser(t, "mod", domain.RoleStaff)
	_, adminToken := env.createUser(t, "root", domain.RoleAdmin)

	rec := env.do(t, http.MethodPost, "/api/audit-logs", staffToken, map[string]any{
		"action":     "case_resolved",
		"entityType": "case",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	entry := decodeBody[domain.AuditLog](t, rec)
	require.Equal(t, staff.ID, entry.UserID)

	rec = env.do(t, http.MethodGet, "/api/audit-logs", staffToken, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/audit-logs", adminToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	entries := decodeBody[[]domain.AuditLog](t, rec)
	require.Len(t, entries, 1)
}

func TestFreelancerProfileFlow(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/freelancer-profiles", token, map[string]any{
		"title":  "Security auditor",
		"bio":    "ten years of fraud review",
		"skills": []string{"audits", "go"},
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	prof := decodeBody[domain.FreelancerProfile](t, rec)
	require.Equal(t, u.ID, prof.UserID)
	require.Equal(t, "USD", prof.Currency)

	rec = env.do(t, http.MethodGet, "/api/freelancer-profiles?skills=audits", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profs := decodeBody[[]domain.FreelancerProfile](t, rec)
	require.Len(t, profs, 1)

	rec = env.do(t, http.MethodGet, "/api/freelancer-profiles/"+u.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPatch, "/api/freelancer-profiles/"+u.ID, token, map[string]string{
		"availability": "busy",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	updated := decodeBody[domain.FreelancerProfile](t, rec)
	require.Equal(t, "busy", updated.Availability)
}

func TestCollaborationFlow(t *testing.T) {
	env := newTestEnv(t)
	u, token := env.createUser(t, "alice", domain.RoleUser)

	rec := env.do(t, http.MethodPost, "/api/collaboration-spaces", token, map[string]string{
		"name": "fraud review group",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	sp := decodeBody[domain.CollaborationSpace](t, rec)
	require.Equal(t, u.ID, sp.OwnerID)

	rec = env.do(t, http.MethodPost, "/api/collaboration-spaces/"+sp.ID+"/tasks", token, map[string]string{
		"title": "review backlog",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	task := decodeBody[domain.CollaborationTask](t, rec)
	require.Equal(t, sp.ID, task.SpaceID)
	require.Equal(t, "todo", task.Status)

	rec = env.do(t, http.MethodPost, "/api/collaboration-spaces/"+sp.ID+"/messages", token, map[string]string{
		"content": "starting the review",
		"taskId":  task.ID,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/collaboration-spaces/"+sp.ID+"/messages?taskId="+task.ID, token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	msgs := decodeBody[[]domain.CollaborationMessage](t, rec)
	require.Len(t, msgs, 1)

	rec = env.do(t, http.MethodGet, "/api/collaboration-spaces", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	spaces := decodeBody[[]domain.CollaborationSpace](t, rec)
	require.Len(t, spaces, 1)
}

func TestHealthEndpoints(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		rec := env.do(t, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, rec.Code, path)
	}
}
