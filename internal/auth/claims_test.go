package auth

import (
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	testKeysOnce sync.Once
	testKeysPair *KeyPair
)

// testKeys returns a shared RSA key pair; generation is slow enough to be
// worth doing once per package run.
func testKeys(t *testing.T) *KeyPair {
	t.Helper()
	testKeysOnce.Do(func() {
		keys, err := GenerateKeyPair()
		if err != nil {
			t.Fatalf("GenerateKeyPair() error = %v", err)
		}
		testKeysPair = keys
	})
	return testKeysPair
}

func TestIssueAndParseAccessToken(t *testing.T) {
	keys := testKeys(t)

	token, ttl, err := IssueAccessToken("student", keys, "blueprints-core", 900*time.Second)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("IssueAccessToken() returned empty token")
	}
	if ttl != 900*time.Second {
		t.Errorf("ttl = %v, want %v", ttl, 900*time.Second)
	}

	claims, err := ParseAccessToken(token, keys)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}

	if claims.Subject != "student" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "student")
	}
	if claims.Issuer != "blueprints-core" {
		t.Errorf("Issuer = %q, want %q", claims.Issuer, "blueprints-core")
	}
	if claims.ID == "" {
		t.Error("JTI (ID) should not be empty")
	}
	if !claims.HasScope(ScopeRead) {
		t.Errorf("scope %q missing from %q", ScopeRead, claims.Scope)
	}
	if !claims.HasScope(ScopeWrite) {
		t.Errorf("scope %q missing from %q", ScopeWrite, claims.Scope)
	}
}

func TestIssueAccessToken_DefaultTTL(t *testing.T) {
	keys := testKeys(t)

	// TTL of 0 should default to 900 seconds
	token, ttl, err := IssueAccessToken("student", keys, "blueprints-core", 0)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}
	if ttl != 900*time.Second {
		t.Errorf("default ttl = %v, want %v", ttl, 900*time.Second)
	}

	claims, err := ParseAccessToken(token, keys)
	if err != nil {
		t.Fatalf("ParseAccessToken() error = %v", err)
	}

	expectedExpiry := time.Now().Add(900 * time.Second)
	diff := claims.ExpiresAt.Time.Sub(expectedExpiry)
	if diff < -time.Minute || diff > time.Minute {
		t.Errorf("default TTL should be ~900s, got expiry diff of %v", diff)
	}
}

func TestParseAccessToken_WrongKey(t *testing.T) {
	keys := testKeys(t)

	otherKeys, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	token, _, err := IssueAccessToken("student", keys, "blueprints-core", 0)
	if err != nil {
		t.Fatalf("IssueAccessToken() error = %v", err)
	}

	if _, err := ParseAccessToken(token, otherKeys); err == nil {
		t.Error("ParseAccessToken() should fail with a different public key")
	}
}

func TestParseAccessToken_Expired(t *testing.T) {
	keys := testKeys(t)

	// Sign claims with an expiry in the past using the same key — the
	// signature is valid, only the validity window has closed.
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "student",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
		Scope: GrantedScopes,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(keys.Private)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := ParseAccessToken(signed, keys); err == nil {
		t.Error("ParseAccessToken() should reject an expired token regardless of signature")
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	keys := testKeys(t)

	for _, token := range []string{"", "abc.def", "not-a-valid-jwt"} {
		if _, err := ParseAccessToken(token, keys); err == nil {
			t.Errorf("ParseAccessToken(%q) should fail", token)
		}
	}
}

func TestParseAccessToken_WrongSigningMethod(t *testing.T) {
	keys := testKeys(t)

	// HS256 token signed with an arbitrary secret must be rejected even
	// before signature comparison — only RS256 is accepted.
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "student",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scope: GrantedScopes,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("some-secret"))
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := ParseAccessToken(signed, keys); err == nil {
		t.Error("ParseAccessToken() should reject non-RS256 tokens")
	}
}

func TestParseAccessToken_MissingSubject(t *testing.T) {
	keys := testKeys(t)

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scope: GrantedScopes,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(keys.Private)
	if err != nil {
		t.Fatalf("SignedString() error = %v", err)
	}

	if _, err := ParseAccessToken(signed, keys); err == nil {
		t.Error("ParseAccessToken() should reject tokens without a subject")
	}
}

func TestClaims_HasScope(t *testing.T) {
	claims := &Claims{Scope: "blueprints.read blueprints.write"}

	if !claims.HasScope("blueprints.read") {
		t.Error("expected blueprints.read to be granted")
	}
	if !claims.HasScope("blueprints.write") {
		t.Error("expected blueprints.write to be granted")
	}
	if claims.HasScope("blueprints") {
		t.Error("scope matching must be exact, not prefix")
	}
	if claims.HasScope("blueprints.admin") {
		t.Error("unexpected scope granted")
	}

	empty := &Claims{}
	if empty.HasScope("blueprints.read") {
		t.Error("empty scope claim should grant nothing")
	}
}
