package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cuppaapp/cuppa-server/internal/domain"
	"github.com/cuppaapp/cuppa-server/internal/id"
)

const (
	tokenIssuer = "cuppa-server"

	// Anything shorter is too easy to brute-force offline with HS256.
	minSecretLength = 32
)

// ErrTokenInvalid is the single opaque error surfaced for any token
// verification failure. The underlying cause (malformed, bad signature,
// expired) stays wrapped for internal logging via FailureReason, but
// callers must not expose that distinction to end users.
var ErrTokenInvalid = errors.New("invalid token")

// Claims is the payload embedded in an access token.
// Tokens are signed, not encrypted: every claim here is readable by any
// holder of the token, so nothing sensitive goes in.
type Claims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec issues and parses HS256-signed access tokens.
// The secret and lifetime are process-wide configuration, loaded once at
// startup and never rotated at runtime.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration

	// now is swappable for tests.
	now func() time.Time
}

// NewTokenCodec creates a token codec with the given symmetric secret and
// token lifetime. Both are required; there are no defaults.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("token secret must be at least %d bytes, got %d", minSecretLength, len(secret))
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive, got %s", ttl)
	}

	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue builds a claim set for the subject and produces a compact signed
// token string. Expiry is now + TTL.
func (c *TokenCodec) Issue(subjectID string, role domain.Role, now time.Time) (string, error) {
	jti, err := id.Generate("token")
	if err != nil {
		return "", fmt.Errorf("generate token ID: %w", err)
	}

	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			ID:        jti,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of a token and returns its claims.
// Any failure returns an error wrapping ErrTokenInvalid.
func (c *TokenCodec) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}
	return claims, nil
}

// TTL returns the configured token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// FailureReason classifies a Parse error for structured logging.
// The classification is for logs only; API responses always report the
// same opaque invalid-token condition.
func FailureReason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, jwt.ErrTokenExpired):
		return "expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "signature_invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "malformed"
	default:
		return "invalid"
	}
}
