package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/auth"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/middleware"
	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
	"github.com/GuglielmoCerri/Backoffice-WebApp/pkg/apierror"
)

type sessionAuthority interface {
	Register(ctx context.Context, username string, password string) error
	Login(ctx context.Context, username string, password string) (auth.TokenPair, error)
	Refresh(raw string) (string, error)
}

// AuthHandler exposes the session-token subsystem over HTTP: register,
// login, verify, refresh. Token transport is a bearer authorization header.
type AuthHandler struct {
	authority sessionAuthority
}

func NewAuthHandler(authority sessionAuthority) *AuthHandler {
	return &AuthHandler{authority: authority}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if err := h.authority.Register(r.Context(), payload.Username, payload.Password); err != nil {
		writeError(w, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	pair, err := h.authority.Login(r.Context(), payload.Username, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

// Verify runs behind RequireAuth, so reaching it means the access token
// already checked out; it just echoes the authenticated identity.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"logged_in_as": identity})
}

// Refresh takes the refresh token from the authorization header, not the
// body. The codec enforces the refresh class, so access tokens presented
// here are rejected.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	token, ok := middleware.BearerToken(r)
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "missing or invalid authorization header")
		return
	}

	access, err := h.authority.Refresh(token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": access})
}
