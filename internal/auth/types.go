package auth

import "errors"

// Scope names recognised by the API. Read gates retrieval endpoints,
// write gates mutation endpoints.
const (
	ScopeRead  = "blueprints.read"
	ScopeWrite = "blueprints.write"
)

// GrantedScopes is the scope string embedded in every issued token,
// regardless of which user logged in. The credential store tracks usernames
// but issuance deliberately ignores them for scoping.
const GrantedScopes = ScopeRead + " " + ScopeWrite

// User is a username/password pair from the fixed credential set.
type User struct {
	Username string
	Password string
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrInsufficientScope  = errors.New("insufficient scope")
)
