package discord

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestVerifier(t *testing.T, tokenHandler, userHandler http.HandlerFunc) *Verifier {
	t.Helper()

	tokenSrv := httptest.NewServer(tokenHandler)
	t.Cleanup(tokenSrv.Close)
	userSrv := httptest.NewServer(userHandler)
	t.Cleanup(userSrv.Close)

	origToken, origUser := tokenURL, userURL
	tokenURL, userURL = tokenSrv.URL, userSrv.URL
	t.Cleanup(func() { tokenURL, userURL = origToken, origUser })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewVerifier("client-id", "client-secret", "https://portal.example.com/callback", logger)
}

func TestVerifyCode(t *testing.T) {
	var gotCode string
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			gotCode = r.PostForm.Get("code")
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, "client-id", r.PostForm.Get("client_id"))
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok", "token_type": "Bearer"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
			json.NewEncoder(w).Encode(map[string]any{
				"id":            "111222333",
				"username":      "gamer",
				"discriminator": "0",
				"email":         "gamer@example.com",
			})
		},
	)

	identity, err := v.VerifyCode(context.Background(), "auth-code")
	require.NoError(t, err)
	require.Equal(t, "auth-code", gotCode)
	require.Equal(t, "111222333", identity.ProviderID)
	require.Equal(t, "gamer", identity.Username)
	require.NotNil(t, identity.Email)
	require.Equal(t, "gamer@example.com", *identity.Email)
	// "0" means no legacy discriminator.
	require.Nil(t, identity.Discriminator)
}

func TestVerifyCodeInvalidCode(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid_grant"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("user endpoint should not be reached")
		},
	)

	_, err := v.VerifyCode(context.Background(), "expired")
	require.ErrorContains(t, err, "invalid or expired code")
}

func TestVerifyCodeRetriesTokenExchange(t *testing.T) {
	var calls int
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			require.NoError(t, r.ParseForm())
			// The replayed body must still carry the form fields.
			require.Equal(t, "auth-code", r.PostForm.Get("code"))
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"id": "1", "username": "u"})
		},
	)

	identity, err := v.VerifyCode(context.Background(), "auth-code")
	require.NoError(t, err)
	require.Equal(t, 2, calls)
	require.Equal(t, "1", identity.ProviderID)
}

func TestVerifyCodeUserFetchFailure(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		},
	)

	_, err := v.VerifyCode(context.Background(), "auth-code")
	require.ErrorContains(t, err, "failed to fetch user info")
}

func TestVerifyCodeMissingUserFields(t *testing.T) {
	v := newTestVerifier(t,
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"access_token": "tok"})
		},
		func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"id": ""})
		},
	)

	_, err := v.VerifyCode(context.Background(), "auth-code")
	require.ErrorContains(t, err, "invalid user response")
}
