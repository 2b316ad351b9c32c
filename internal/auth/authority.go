package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

// CredentialStore is the persistence collaborator the authority depends on.
// Lookups are exact and case-sensitive: "Alice" and "alice" are distinct
// accounts. Create must fail with model.ErrDuplicateUsername when the
// username is already taken, so a lost registration race surfaces as a
// typed rejection instead of a server error.
type CredentialStore interface {
	FindByUsername(ctx context.Context, username string) (model.User, error)
	Create(ctx context.Context, username string, passwordHash string) error
}

// Config carries everything the authority needs at construction time. There
// is no process-wide state: the secret and TTLs live here and nowhere else.
type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Authority is the façade the rest of the service talks to: registration,
// login, access-token verification and refresh. Sessions are stateless —
// there is no revocation and no server-side token table, so a leaked token
// stays valid until it expires.
type Authority struct {
	store  CredentialStore
	hasher *PasswordHasher
	codec  *Codec
	issuer *Issuer
}

func NewAuthority(cfg Config, store CredentialStore) (*Authority, error) {
	if strings.TrimSpace(cfg.Secret) == "" {
		return nil, fmt.Errorf("signing secret is required")
	}
	if cfg.AccessTTL <= 0 {
		return nil, fmt.Errorf("access TTL must be positive")
	}
	if cfg.RefreshTTL <= cfg.AccessTTL {
		return nil, fmt.Errorf("refresh TTL must exceed access TTL")
	}
	if store == nil {
		return nil, fmt.Errorf("credential store is required")
	}

	codec := NewCodec([]byte(cfg.Secret))
	return &Authority{
		store:  store,
		hasher: NewPasswordHasher(),
		codec:  codec,
		issuer: NewIssuer(codec, cfg.AccessTTL, cfg.RefreshTTL),
	}, nil
}

// Register hashes the password and stores the credential record. Both fields
// are required; a duplicate username is a typed rejection, and nothing
// partial persists when the insert fails.
func (a *Authority) Register(ctx context.Context, username string, password string) error {
	if strings.TrimSpace(username) == "" || password == "" {
		return model.ErrMissingField
	}

	digest, err := a.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return a.store.Create(ctx, username, digest)
}

// Login authenticates the credentials and mints a session pair. Unknown
// users and wrong passwords both come back as ErrInvalidCredentials so the
// response never confirms whether a username exists.
func (a *Authority) Login(ctx context.Context, username string, password string) (TokenPair, error) {
	user, err := a.store.FindByUsername(ctx, username)
	if errors.Is(err, model.ErrUserNotFound) {
		return TokenPair{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return TokenPair{}, fmt.Errorf("lookup credentials: %w", err)
	}

	if !a.hasher.Verify(password, user.PasswordHash) {
		return TokenPair{}, model.ErrInvalidCredentials
	}

	return a.issuer.IssuePair(user.Username)
}

// Verify validates an access token and returns its claims. Freshness is not
// required here; callers that need a just-authenticated session check
// Claims.Fresh themselves.
func (a *Authority) Verify(raw string) (*Claims, error) {
	return a.codec.DecodeAndVerify(raw, ClassAccess)
}

// Refresh exchanges a valid refresh token for a new non-fresh access token.
// No rotation: the refresh token stays valid until its own expiry and can be
// reused for further renewals.
func (a *Authority) Refresh(raw string) (string, error) {
	claims, err := a.codec.DecodeAndVerify(raw, ClassRefresh)
	if err != nil {
		return "", err
	}

	return a.issuer.IssueFromRefresh(claims.Subject)
}
