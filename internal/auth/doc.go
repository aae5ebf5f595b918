// Package auth provides authentication and authorisation for Blueprints Core.
//
// It implements the login flow the rest of the service hangs off:
//   - A fixed credential store loaded from configuration (plain-text
//     comparison, kept for compatibility with the system this service
//     replaces — a documented weakness, not a recommendation)
//   - RS256-signed JWT access tokens carrying a space-separated scope claim
//   - Token parsing and scope checks used by the API middleware
//
// Every authenticated user receives the same scope grant
// ("blueprints.read blueprints.write"); the username only ends up in the
// token subject. There are no refresh tokens and no revocation: a token is
// valid until its expiry instant and never again after it.
package auth
