package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/GuglielmoCerri/Backoffice-WebApp/internal/model"
)

// TokenClass separates access tokens from refresh tokens. The class is a
// security boundary: a refresh token is only usable at the refresh endpoint
// and an access token is never accepted there.
type TokenClass string

const (
	ClassAccess  TokenClass = "access"
	ClassRefresh TokenClass = "refresh"
)

// Claims is the signed content of every token. Fresh is meaningful only for
// access tokens: true when minted straight from a password login, false when
// minted via refresh.
type Claims struct {
	Class string `json:"typ"`
	Fresh bool   `json:"fresh"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a single shared secret.
// Validity is computed purely from the token's own signed content, so no
// server-side state is consulted. now is injectable for expiry tests.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func NewCodec(secret []byte) *Codec {
	return &Codec{secret: secret, now: time.Now}
}

func (c *Codec) sign(subject string, class TokenClass, fresh bool, ttl time.Duration) (string, error) {
	issued := c.now().UTC()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Class: string(class),
		Fresh: fresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issued),
			ExpiresAt: jwt.NewNumericDate(issued.Add(ttl)),
		},
	})

	return token.SignedString(c.secret)
}

// DecodeAndVerify parses raw, checks the signature and expiry, and enforces
// the required class. Failures map to distinct sentinel errors so callers can
// log the real cause while the HTTP layer collapses them all to 401.
func (c *Codec) DecodeAndVerify(raw string, required TokenClass) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(func() time.Time {
		return c.now()
	}))

	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, model.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, model.ErrBadSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, model.ErrTokenExpired
	case err != nil || !parsed.Valid:
		return nil, model.ErrTokenMalformed
	}

	if claims.Class != string(required) {
		return nil, model.ErrWrongClass
	}
	if claims.Subject == "" {
		return nil, model.ErrTokenMalformed
	}

	return claims, nil
}

// TokenPair is what a successful login returns: a fresh short-lived access
// token bound to a longer-lived refresh token.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Issuer mints signed tokens for already-verified identities. TTLs come from
// configuration; the refresh TTL always exceeds the access TTL.
type Issuer struct {
	codec      *Codec
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewIssuer(codec *Codec, accessTTL time.Duration, refreshTTL time.Duration) *Issuer {
	return &Issuer{codec: codec, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

func (i *Issuer) IssuePair(identity string) (TokenPair, error) {
	access, err := i.codec.sign(identity, ClassAccess, true, i.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := i.codec.sign(identity, ClassRefresh, false, i.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (i *Issuer) IssueFromRefresh(identity string) (string, error) {
	return i.codec.sign(identity, ClassAccess, false, i.accessTTL)
}
