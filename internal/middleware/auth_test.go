package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/auth"
)

type stubVerifier struct {
	claims *auth.Claims
	err    error
	seen   string
}

func (s *stubVerifier) Verify(raw string) (*auth.Claims, error) {
	s.seen = raw
	return s.claims, s.err
}

func TestRequireAuthPassesIdentityThrough(t *testing.T) {
	verifier := &stubVerifier{claims: &auth.Claims{}}
	verifier.claims.Subject = "alice"

	m := NewAuthMiddleware(verifier)
	var gotIdentity string
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotIdentity, _ = IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "alice", gotIdentity)
	require.Equal(t, "some-token", verifier.seen)
}

func TestRequireAuthRejectsMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{})
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, header := range []string{"", "Basic abc", "Bearer ", "token-without-scheme"} {
		req := httptest.NewRequest(http.MethodGet, "/verify", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	m := NewAuthMiddleware(&stubVerifier{err: errors.New("token expired")})
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	req.Header.Set("Authorization", "Bearer stale")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.JSONEq(t, `{"message":"invalid or expired token"}`, rec.Body.String())
}

func TestBearerTokenExtraction(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/refresh", nil)
	req.Header.Set("Authorization", "bearer lower-scheme")

	token, ok := BearerToken(req)
	require.True(t, ok)
	require.Equal(t, "lower-scheme", token)
}
