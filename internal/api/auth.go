package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/arsw-lab/blueprints-core/internal/auth"
)

// loginRequest is the request body for POST /auth/login.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// loginResponse is the response body for POST /auth/login.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// handleLogin authenticates a user and returns a signed access token.
//
// Failure is always 401 with the exact body {"error":"invalid_credentials"}
// — clients of the original service match on that shape.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return
	}

	if !s.credentials.Validate(req.Username, req.Password) {
		s.logger.Info("login rejected", "username", req.Username)
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error": "invalid_credentials",
		})
		return
	}

	token, ttl, err := auth.IssueAccessToken(req.Username, s.keys, s.secCfg.JWT.Issuer, s.tokenTTL())
	if err != nil {
		s.logger.Error("token issuance failed", "error", err)
		writeInternalError(w, "failed to generate token")
		return
	}

	s.logger.Info("login succeeded", "username", req.Username)
	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}

// tokenTTL returns the configured token lifetime. Zero is passed through;
// auth.IssueAccessToken applies the 900-second default.
func (s *Server) tokenTTL() time.Duration {
	return time.Duration(s.secCfg.JWT.TokenTTLSeconds) * time.Second
}
