package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/auth"
)

type tokenVerifier interface {
	Verify(raw string) (*auth.Claims, error)
}

type contextKey string

const identityContextKey contextKey = "identity"

// AuthMiddleware is the request-authorization layer: every protected
// endpoint goes through RequireAuth, which validates the bearer access token
// and puts the authenticated identity on the request context.
type AuthMiddleware struct {
	verifier tokenVerifier
}

func NewAuthMiddleware(verifier tokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := BearerToken(r)
		if !ok {
			writeAuthFailure(w, "missing or invalid authorization header")
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			// Malformed, tampered, expired and wrong-class all collapse
			// to the same response on purpose.
			writeAuthFailure(w, "invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityContextKey, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// BearerToken extracts the credential from a "Bearer <token>" authorization
// header.
func BearerToken(r *http.Request) (string, bool) {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return "", false
	}

	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func IdentityFromContext(ctx context.Context) (string, bool) {
	identity, ok := ctx.Value(identityContextKey).(string)
	return identity, ok
}

func writeAuthFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = jsonEncode(w, map[string]string{"message": message})
}
