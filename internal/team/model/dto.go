// Package model provides domain models and DTOs for team module.
package model

// MemberResponse represents a team member in API responses.
type MemberResponse struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// CreateTeamRequest represents the request to create a team.
type CreateTeamRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	TeamName    string `json:"team_name" binding:"required"`
}

// JoinTeamRequest represents the request to join a team by code.
type JoinTeamRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	TeamCode    string `json:"team_code" binding:"required"`
}

// SubmitTeamRequest represents the request to submit a team.
type SubmitTeamRequest struct {
	HackathonID string `json:"hackathon_id" binding:"required"`
	TeamCode    string `json:"team_code" binding:"required"`
}

// TeamResponse represents a team with its roster, leader first.
type TeamResponse struct {
	HackathonID string           `json:"hackathon_id"`
	TeamID      string           `json:"team_id"`
	TeamName    string           `json:"team_name"`
	LeaderEmail string           `json:"leader_email"`
	Submitted   bool             `json:"submitted"`
	Members     []MemberResponse `json:"members"`
}

// PresenceResponse represents the caller's team membership state.
type PresenceResponse struct {
	InTeam   bool          `json:"in_team"`
	IsLeader bool          `json:"is_leader"`
	Team     *TeamResponse `json:"team,omitempty"`
}
