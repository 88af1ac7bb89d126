// Package model provides DTOs for volunteer module.
package model

// BindRequest represents the request to bind the session to a secret code.
type BindRequest struct {
	SecretCode string `json:"secret_code" binding:"required"`
}

// BindResponse confirms the active binding.
type BindResponse struct {
	Bound bool `json:"bound"`
}

// AssignRequest represents the request to redeem the bound item for a participant.
type AssignRequest struct {
	ParticipantEmail string `json:"participant_email" binding:"required"`
}

// AssignResponse represents a successful assignment.
type AssignResponse struct {
	LogisticsID string `json:"logistics_id"`
	Name        string `json:"name"`
	Remaining   int    `json:"remaining"`
}
