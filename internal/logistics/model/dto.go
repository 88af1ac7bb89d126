// Package model provides domain models and DTOs for logistics module.
package model

// AddItemRequest represents the request to create a logistics item.
type AddItemRequest struct {
	HackathonID   string `json:"hackathon_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	TotalQuantity int    `json:"total_quantity" binding:"required"`
}

// ItemResponse represents a logistics item with counters and recipients.
// SecretCode is only ever serialized for the organizer who listed the item.
type ItemResponse struct {
	LogisticsID   string   `json:"logistics_id"`
	HackathonID   string   `json:"hackathon_id"`
	Name          string   `json:"name"`
	TotalQuantity int      `json:"total_quantity"`
	GivenAway     int      `json:"given_away"`
	Remaining     int      `json:"remaining"`
	SecretCode    string   `json:"secret_code"`
	Recipients    []string `json:"recipients"`
}

// ListItemsResponse represents all logistics items of a hackathon.
type ListItemsResponse struct {
	HackathonID string         `json:"hackathon_id"`
	Items       []ItemResponse `json:"items"`
}

// RedeemRequest represents a redemption attempt.
type RedeemRequest struct {
	SecretCode       string `json:"secret_code" binding:"required"`
	ParticipantEmail string `json:"participant_email" binding:"required"`
}

// RedeemResponse represents a successful redemption.
type RedeemResponse struct {
	LogisticsID string `json:"logistics_id"`
	Name        string `json:"name"`
	Remaining   int    `json:"remaining"`
}
