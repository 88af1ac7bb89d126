// Package model provides domain models and DTOs for auth module.
package model

// SessionRequest represents the request to exchange an auth token for a session.
type SessionRequest struct {
	Email     string `json:"email" binding:"required"`
	AuthToken string `json:"auth_token" binding:"required"`
}

// SessionResponse represents an issued session token.
type SessionResponse struct {
	Token     string `json:"token"`
	ExpiresAt string `json:"expires_at"`
}
