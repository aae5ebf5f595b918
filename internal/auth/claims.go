package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// defaultTokenTTL is the access token lifetime when the configured TTL is unset.
const defaultTokenTTL = 900 * time.Second

// Claims extends JWT registered claims with the scope grant.
type Claims struct {
	jwt.RegisteredClaims
	Scope string `json:"scope"`
}

// HasScope reports whether the space-separated scope claim contains the
// given scope name as an exact token.
func (c *Claims) HasScope(scope string) bool {
	for _, s := range strings.Fields(c.Scope) {
		if s == scope {
			return true
		}
	}
	return false
}

// IssueAccessToken creates a signed RS256 JWT for an already-validated user.
//
// The caller guarantees the credentials were checked; this function only
// builds and signs claims. Every token carries the fixed GrantedScopes
// string. A ttl of zero falls back to 900 seconds.
//
// Returns the compact token string and the effective lifetime.
func IssueAccessToken(username string, keys *KeyPair, issuer string, ttl time.Duration) (string, time.Duration, error) {
	if ttl == 0 {
		ttl = defaultTokenTTL
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		Scope: GrantedScopes,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(keys.Private)
	if err != nil {
		return "", 0, fmt.Errorf("signing access token: %w", err)
	}
	return signed, ttl, nil
}

// ParseAccessToken validates and parses a JWT access token.
//
// It checks the RS256 signature against the public key and rejects expired
// or not-yet-valid tokens. Malformed tokens, wrong signing methods and bad
// signatures all surface as ErrTokenInvalid.
func ParseAccessToken(tokenString string, keys *KeyPair) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(_ *jwt.Token) (any, error) {
		return keys.Public, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrTokenInvalid)
	}

	return claims, nil
}
