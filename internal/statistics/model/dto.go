// Package model provides data transfer objects for statistics module.
package model

import "errors"

// ErrHackathonNotFound indicates that the requested hackathon does not exist.
var ErrHackathonNotFound = errors.New("hackathon not found")

// ErrNotOrganizer indicates that the caller does not organize the hackathon.
var ErrNotOrganizer = errors.New("caller is not an organizer of the hackathon")

// TeamStatistics represents team counters for a hackathon.
type TeamStatistics struct {
	TotalTeams     int `json:"total_teams"`
	SubmittedTeams int `json:"submitted_teams"`
	TotalMembers   int `json:"total_members"`
}

// ItemStatistics represents counters for one logistics item.
type ItemStatistics struct {
	LogisticsID   string `json:"logistics_id"`
	Name          string `json:"name"`
	TotalQuantity int    `json:"total_quantity"`
	GivenAway     int    `json:"given_away"`
	Remaining     int    `json:"remaining"`
}

// HackathonStatisticsResponse represents the organizer dashboard counters.
type HackathonStatisticsResponse struct {
	HackathonID  string           `json:"hackathon_id"`
	Participants int              `json:"participants"`
	Teams        TeamStatistics   `json:"teams"`
	Logistics    []ItemStatistics `json:"logistics"`
}
