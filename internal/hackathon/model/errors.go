package model

import "errors"

var (
	// ErrHackathonNotFound indicates that the requested hackathon does not exist.
	ErrHackathonNotFound = errors.New("hackathon not found")
	// ErrInvalidName indicates that the hackathon or participant name is invalid.
	ErrInvalidName = errors.New("invalid name")
	// ErrAlreadyRegistered indicates that the email is already registered for the hackathon.
	ErrAlreadyRegistered = errors.New("already registered for hackathon")
	// ErrParticipantNotFound indicates that the email is not registered for the hackathon.
	ErrParticipantNotFound = errors.New("participant not registered for hackathon")
)
