// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	teamModel "github.com/hackdesk/hackdesk/internal/team/model"
	"github.com/hackdesk/hackdesk/internal/team/repository"
)

// teamCodeAlphabet holds the characters used in join codes. Codes are stored
// uppercase and compared case-insensitively.
const teamCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// teamCodeLength is the fixed length of a join code.
const teamCodeLength = 6

// maxCodeAttempts bounds retries when a generated code collides.
const maxCodeAttempts = 5

// Service defines the interface for team business logic operations.
type Service interface {
	// CreateTeam creates a team with the caller as leader and sole member.
	CreateTeam(ctx context.Context, email string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// JoinTeam appends the caller to the team identified by the join code.
	JoinTeam(ctx context.Context, email string, req *teamModel.JoinTeamRequest) (*teamModel.TeamResponse, error)

	// SubmitTeam irrevocably submits the team. Leader only.
	SubmitTeam(ctx context.Context, email string, req *teamModel.SubmitTeamRequest) (*teamModel.TeamResponse, error)

	// CheckPresence reports whether the caller belongs to a team in the hackathon.
	CheckPresence(ctx context.Context, email, hackathonID string) (*teamModel.PresenceResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateTeam creates a team with the caller as leader and sole member.
func (s *service) CreateTeam(
	ctx context.Context,
	email string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	teamName := strings.TrimSpace(req.TeamName)
	if len(teamName) < 3 || len(teamName) > 50 {
		return nil, teamModel.ErrInvalidTeamName
	}

	// All checks and the insert run in one transaction so that two
	// concurrent creates cannot both pass the membership and name checks.
	var result *teamModel.TeamResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		leaderName, txErr := txRepo.GetParticipantName(ctx, req.HackathonID, email)
		if txErr != nil {
			return txErr
		}

		membership, txErr := txRepo.GetMembership(ctx, req.HackathonID, email)
		if txErr != nil {
			return txErr
		}
		if membership != nil {
			return teamModel.ErrAlreadyInTeam
		}

		_, txErr = txRepo.GetByName(ctx, req.HackathonID, teamName)
		if txErr == nil {
			return teamModel.ErrTeamNameTaken
		}
		if !errors.Is(txErr, teamModel.ErrTeamNotFound) {
			return txErr
		}

		team, txErr := s.createWithFreshCode(ctx, txRepo, req.HackathonID, teamName, email)
		if txErr != nil {
			return txErr
		}

		leader := &teamModel.TeamMember{
			HackathonID: req.HackathonID,
			Email:       email,
			TeamID:      team.TeamID,
			Name:        leaderName,
		}
		if txErr = txRepo.AddMember(ctx, leader); txErr != nil {
			return txErr
		}

		result = buildTeamResponse(team, []teamModel.TeamMember{*leader})
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// createWithFreshCode inserts the team row, regenerating the join code on
// the rare key collision. A name conflict from a concurrent create with
// the same team_name surfaces as ErrTeamNameTaken and is never retried,
// since no fresh code can resolve it.
func (s *service) createWithFreshCode(
	ctx context.Context,
	txRepo repository.Repository,
	hackathonID, teamName, leaderEmail string,
) (*teamModel.Team, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		team := &teamModel.Team{
			HackathonID: hackathonID,
			TeamID:      newTeamCode(),
			TeamName:    teamName,
			LeaderEmail: leaderEmail,
		}

		err := txRepo.Create(ctx, team)
		if err == nil {
			return team, nil
		}
		if !errors.Is(err, teamModel.ErrDuplicateTeam) {
			return nil, err
		}
		s.logger.Debugw("team code collision, regenerating",
			"hackathon_id", hackathonID, "attempt", attempt+1)
	}

	return nil, teamModel.ErrDuplicateTeam
}

// JoinTeam appends the caller to the team identified by the join code.
func (s *service) JoinTeam(
	ctx context.Context,
	email string,
	req *teamModel.JoinTeamRequest,
) (*teamModel.TeamResponse, error) {
	code, err := normalizeTeamCode(req.TeamCode)
	if err != nil {
		return nil, err
	}

	// The team row is locked for the whole check-append sequence so that
	// concurrent joins and submits serialize per team.
	var result *teamModel.TeamResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, txErr := txRepo.GetByCodeForUpdate(ctx, req.HackathonID, code)
		if txErr != nil {
			return txErr
		}
		if team.Submitted {
			return teamModel.ErrTeamSubmitted
		}

		memberName, txErr := txRepo.GetParticipantName(ctx, req.HackathonID, email)
		if txErr != nil {
			return txErr
		}

		membership, txErr := txRepo.GetMembership(ctx, req.HackathonID, email)
		if txErr != nil {
			return txErr
		}
		if membership != nil {
			return teamModel.ErrAlreadyInTeam
		}

		member := &teamModel.TeamMember{
			HackathonID: req.HackathonID,
			Email:       email,
			TeamID:      team.TeamID,
			Name:        memberName,
		}
		if txErr = txRepo.AddMember(ctx, member); txErr != nil {
			return txErr
		}

		members, txErr := txRepo.ListMembers(ctx, req.HackathonID, team.TeamID)
		if txErr != nil {
			return txErr
		}

		result = buildTeamResponse(team, members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// SubmitTeam irrevocably submits the team. Leader only.
func (s *service) SubmitTeam(
	ctx context.Context,
	email string,
	req *teamModel.SubmitTeamRequest,
) (*teamModel.TeamResponse, error) {
	code, err := normalizeTeamCode(req.TeamCode)
	if err != nil {
		return nil, err
	}

	var result *teamModel.TeamResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		team, txErr := txRepo.GetByCodeForUpdate(ctx, req.HackathonID, code)
		if txErr != nil {
			return txErr
		}
		if team.LeaderEmail != email {
			return teamModel.ErrNotLeader
		}
		if team.Submitted {
			return teamModel.ErrAlreadySubmitted
		}

		members, txErr := txRepo.ListMembers(ctx, req.HackathonID, team.TeamID)
		if txErr != nil {
			return txErr
		}
		if len(members) < 2 {
			return teamModel.ErrRosterTooSmall
		}

		if txErr = txRepo.MarkSubmitted(ctx, req.HackathonID, team.TeamID); txErr != nil {
			return txErr
		}

		team.Submitted = true
		result = buildTeamResponse(team, members)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// CheckPresence reports whether the caller belongs to a team in the hackathon.
func (s *service) CheckPresence(
	ctx context.Context,
	email, hackathonID string,
) (*teamModel.PresenceResponse, error) {
	membership, err := s.repo.GetMembership(ctx, hackathonID, email)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return &teamModel.PresenceResponse{InTeam: false}, nil
	}

	team, err := s.repo.GetByCode(ctx, hackathonID, membership.TeamID)
	if err != nil {
		return nil, err
	}

	members, err := s.repo.ListMembers(ctx, hackathonID, team.TeamID)
	if err != nil {
		return nil, err
	}

	return &teamModel.PresenceResponse{
		InTeam:   true,
		IsLeader: email == team.LeaderEmail,
		Team:     buildTeamResponse(team, members),
	}, nil
}

// buildTeamResponse assembles the roster with the leader first.
func buildTeamResponse(team *teamModel.Team, members []teamModel.TeamMember) *teamModel.TeamResponse {
	roster := make([]teamModel.MemberResponse, 0, len(members))
	for _, m := range members {
		if m.Email == team.LeaderEmail {
			roster = append([]teamModel.MemberResponse{{Email: m.Email, Name: m.Name}}, roster...)
			continue
		}
		roster = append(roster, teamModel.MemberResponse{Email: m.Email, Name: m.Name})
	}

	return &teamModel.TeamResponse{
		HackathonID: team.HackathonID,
		TeamID:      team.TeamID,
		TeamName:    team.TeamName,
		LeaderEmail: team.LeaderEmail,
		Submitted:   team.Submitted,
		Members:     roster,
	}
}

// normalizeTeamCode uppercases the code and checks its fixed format.
func normalizeTeamCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != teamCodeLength {
		return "", teamModel.ErrInvalidTeamCode
	}
	for _, c := range code {
		if !strings.ContainsRune(teamCodeAlphabet, c) {
			return "", teamModel.ErrInvalidTeamCode
		}
	}
	return code, nil
}

// newTeamCode generates a fresh 6-character join code.
//
//nolint:gosec // G404: math/rand is sufficient for join codes, they are not secrets
func newTeamCode() string {
	b := make([]byte, teamCodeLength)
	for i := range b {
		b[i] = teamCodeAlphabet[rand.Intn(len(teamCodeAlphabet))]
	}
	return string(b)
}
