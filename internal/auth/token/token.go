// Package token issues and validates the signed credentials used by
// the authentication flow: short-lived HS256 access tokens and random
// refresh secrets.
package token

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned when a token cannot be parsed, its
// signature does not verify, or it was signed with an unexpected
// algorithm.
var ErrInvalidToken = errors.New("invalid token")

type Config struct {
	Secret          string
	Issuer          string
	Audience        string
	AccessTokenTTL  time.Duration // default 3h
	RefreshTokenTTL time.Duration // default 7 days
}

// Claims carried by an access token: the username, a unique jti and
// the user's roles.
type Claims struct {
	Name  string   `json:"name"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

type RefreshToken struct {
	Secret    string
	ExpiresAt time.Time
}

type Manager struct {
	cfg Config
}

func NewManager(cfg Config) *Manager {
	if cfg.AccessTokenTTL == 0 {
		cfg.AccessTokenTTL = 3 * time.Hour
	}
	if cfg.RefreshTokenTTL == 0 {
		cfg.RefreshTokenTTL = 7 * 24 * time.Hour
	}
	return &Manager{cfg: cfg}
}

// NewClaims builds a fresh claim set with a unique jti.
func NewClaims(username string, roles []string) *Claims {
	return &Claims{
		Name:  username,
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ID: uuid.New().String(),
		},
	}
}

// IssueAccessToken signs an access token from claims. The name, roles
// and jti are taken as-is so a refresh can re-issue from extracted
// claims; issuer, audience and validity window are always overwritten
// from the configuration.
func (m *Manager) IssueAccessToken(claims *Claims) (*AccessToken, error) {
	now := time.Now()
	expiresAt := now.Add(m.cfg.AccessTokenTTL)

	claims.Issuer = m.cfg.Issuer
	claims.Audience = jwt.ClaimStrings{m.cfg.Audience}
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(expiresAt)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(m.cfg.Secret))
	if err != nil {
		return nil, err
	}
	return &AccessToken{Token: signed, ExpiresAt: expiresAt}, nil
}

// IssueRefreshToken returns a cryptographically random refresh secret
// (64 bytes, base64) and its expiry.
func (m *Manager) IssueRefreshToken() (*RefreshToken, error) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return &RefreshToken{
		Secret:    base64.StdEncoding.EncodeToString(buf),
		ExpiresAt: time.Now().Add(m.cfg.RefreshTokenTTL),
	}, nil
}

// ParseExpiredToken extracts claims from a possibly expired access
// token. Signature and signing algorithm are validated; issuer,
// audience and lifetime are intentionally not, so the refresh flow can
// recover the principal after the token has expired.
func (m *Manager) ParseExpiredToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation())
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyAccessToken fully validates an access token: signature,
// algorithm, issuer, audience and lifetime.
func (m *Manager) VerifyAccessToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, m.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.cfg.Issuer),
		jwt.WithAudience(m.cfg.Audience))
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (m *Manager) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, ErrInvalidToken
	}
	return []byte(m.cfg.Secret), nil
}
