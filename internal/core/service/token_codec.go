package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/anylist/anylist-api/internal/core/domain"
)

const defaultTokenTTL = 4 * time.Hour

// JWTCodec issues and verifies HS256 tokens whose subject is the principal
// id. The signing secret is process-wide configuration loaded once at
// startup; verification is side-effect free and safe to run concurrently.
type JWTCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTCodec(secret, issuer string, ttl time.Duration) *JWTCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &JWTCodec{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue produces a signed, time-bounded token for the given principal id.
func (c *JWTCodec) Issue(principalID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   principalID,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify returns the principal id embedded in the token. Malformed,
// tampered, and expired tokens all fail with domain.ErrInvalidToken; the
// caller cannot tell which check rejected the token.
func (c *JWTCodec) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer))
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
