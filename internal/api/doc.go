// Package api provides the HTTP REST API server for Blueprints Core.
//
// It exposes the login endpoint and the JWT-protected blueprint CRUD
// surface. The server follows the same lifecycle pattern as the rest of
// the application:
//
//	server, err := api.New(deps)
//	server.Start(ctx)
//	defer server.Close()
//
// Authorisation is a middleware pipeline rather than per-handler checks:
// a bearer-token stage verifies the RS256 signature and expiry and stores
// the claims in the request context, then a per-route-group scope stage
// compares the token's scope claim against the operation's declared
// requirement (read for GETs, write for mutations).
//
// Thread Safety: All methods are safe for concurrent use from multiple goroutines.
package api
