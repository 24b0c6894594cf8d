package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"parts_office/internal/model"
)

var (
	// ErrInvalidTokenFormat means the Authorization value is not of the
	// form "Bearer <token>".
	ErrInvalidTokenFormat = errors.New("invalid token format")
	// ErrInvalidToken means the token failed verification or expired.
	ErrInvalidToken = errors.New("invalid token")
)

// Actor is the verified identity of the admin behind a request. It is
// resolved once at the HTTP boundary and passed by value into services,
// so business code never touches the raw credential.
type Actor struct {
	ID    string
	Super bool
}

type claims struct {
	Super bool `json:"super"`
	jwt.RegisteredClaims
}

// Tokens signs and verifies the bearer tokens admins authenticate with.
type Tokens struct {
	secret []byte
	ttl    time.Duration
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return &Tokens{secret: []byte(secret), ttl: ttl}
}

// Sign issues a token carrying the admin id and the super flag.
func (t *Tokens) Sign(admin *model.Admin) (string, error) {
	now := time.Now()
	c := claims{
		Super: admin.Super,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(t.secret)
}

// Verify checks an Authorization header value and returns the actor
// embedded in the token payload. Verification is pure: no lookups.
func (t *Tokens) Verify(header string) (Actor, error) {
	scheme, raw, ok := strings.Cut(header, " ")
	if !ok || scheme != "Bearer" || raw == "" {
		return Actor{}, ErrInvalidTokenFormat
	}

	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid || c.Subject == "" {
		return Actor{}, ErrInvalidToken
	}
	return Actor{ID: c.Subject, Super: c.Super}, nil
}
