package model

import "errors"

var (
	// ErrInvalidTeamName indicates that the team name is outside 3-50 characters.
	ErrInvalidTeamName = errors.New("invalid team name")
	// ErrInvalidTeamCode indicates that the team code is malformed.
	ErrInvalidTeamCode = errors.New("invalid team code")
	// ErrNotRegistered indicates that the participant is not registered for the hackathon.
	ErrNotRegistered = errors.New("participant not registered for hackathon")
	// ErrAlreadyInTeam indicates that the participant already belongs to a team in this hackathon.
	ErrAlreadyInTeam = errors.New("participant already belongs to a team")
	// ErrTeamNameTaken indicates that the team name is already used in this hackathon.
	ErrTeamNameTaken = errors.New("team name already taken")
	// ErrTeamNotFound indicates that no team matches the given code.
	ErrTeamNotFound = errors.New("team not found")
	// ErrTeamSubmitted indicates that the team is submitted and closed to joins.
	ErrTeamSubmitted = errors.New("team already submitted")
	// ErrNotLeader indicates that only the team leader may perform the operation.
	ErrNotLeader = errors.New("requester is not the team leader")
	// ErrAlreadySubmitted indicates that the team has already been submitted.
	ErrAlreadySubmitted = errors.New("team has already been submitted")
	// ErrRosterTooSmall indicates that the team needs at least 2 members to submit.
	ErrRosterTooSmall = errors.New("team needs at least 2 members to submit")
	// ErrDuplicateTeam indicates a teams table key collision on insert.
	ErrDuplicateTeam = errors.New("duplicate team key")
)
