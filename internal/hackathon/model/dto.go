// Package model provides domain models and DTOs for hackathon module.
package model

// CreateHackathonRequest represents the request to create a hackathon.
type CreateHackathonRequest struct {
	Name string `json:"name" binding:"required"`
}

// HackathonResponse represents a hackathon in API responses.
type HackathonResponse struct {
	HackathonID    string `json:"hackathon_id"`
	Name           string `json:"name"`
	OrganizerEmail string `json:"organizer_email"`
}

// RegisterRequest represents the request to register for a hackathon.
type RegisterRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
}

// RegisterResponse represents the result of a registration.
type RegisterResponse struct {
	HackathonID string `json:"hackathon_id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
}
