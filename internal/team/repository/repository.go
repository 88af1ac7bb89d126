// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
	teamModel "github.com/hackdesk/hackdesk/internal/team/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a new team row.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByCode finds a team by its join code.
	GetByCode(ctx context.Context, hackathonID, teamID string) (*teamModel.Team, error)

	// GetByCodeForUpdate finds a team by code and locks the row for the
	// duration of the surrounding transaction.
	GetByCodeForUpdate(ctx context.Context, hackathonID, teamID string) (*teamModel.Team, error)

	// GetByName finds a team by name within a hackathon.
	GetByName(ctx context.Context, hackathonID, teamName string) (*teamModel.Team, error)

	// GetMembership returns the caller's membership row, if any.
	GetMembership(ctx context.Context, hackathonID, email string) (*teamModel.TeamMember, error)

	// AddMember appends a member to a team.
	AddMember(ctx context.Context, member *teamModel.TeamMember) error

	// ListMembers returns all members of a team in join order.
	ListMembers(ctx context.Context, hackathonID, teamID string) ([]teamModel.TeamMember, error)

	// MarkSubmitted flips the submitted flag for a team.
	MarkSubmitted(ctx context.Context, hackathonID, teamID string) error

	// GetParticipantName returns the registered display name for an email.
	GetParticipantName(ctx context.Context, hackathonID, email string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create inserts a new team row. A collision on the unique
// (hackathon_id, team_name) index surfaces as ErrTeamNameTaken, a join
// code key collision as ErrDuplicateTeam.
func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Create(team).Error
	if err != nil {
		if isDuplicateError(err) {
			if isNameConflict(err) {
				return teamModel.ErrTeamNameTaken
			}
			return teamModel.ErrDuplicateTeam
		}
		return err
	}
	return nil
}

// GetByCode finds a team by its join code.
func (r *repository) GetByCode(ctx context.Context, hackathonID, teamID string) (*teamModel.Team, error) {
	return r.getByCode(ctx, r.db, hackathonID, teamID)
}

// GetByCodeForUpdate finds a team by code and locks the row for the
// duration of the surrounding transaction.
func (r *repository) GetByCodeForUpdate(
	ctx context.Context,
	hackathonID, teamID string,
) (*teamModel.Team, error) {
	return r.getByCode(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), hackathonID, teamID)
}

func (r *repository) getByCode(
	ctx context.Context,
	db *gorm.DB,
	hackathonID, teamID string,
) (*teamModel.Team, error) {
	var team teamModel.Team
	err := db.WithContext(ctx).
		Where("hackathon_id = ? AND team_id = ?", hackathonID, teamID).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetByName finds a team by name within a hackathon.
func (r *repository) GetByName(ctx context.Context, hackathonID, teamName string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND team_name = ?", hackathonID, teamName).
		First(&team).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}

	return &team, nil
}

// GetMembership returns the caller's membership row, if any.
func (r *repository) GetMembership(
	ctx context.Context,
	hackathonID, email string,
) (*teamModel.TeamMember, error) {
	var member teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND email = ?", hackathonID, email).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// AddMember appends a member to a team.
func (r *repository) AddMember(ctx context.Context, member *teamModel.TeamMember) error {
	err := r.db.WithContext(ctx).Create(member).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrAlreadyInTeam
		}
		return err
	}
	return nil
}

// ListMembers returns all members of a team in join order.
func (r *repository) ListMembers(
	ctx context.Context,
	hackathonID, teamID string,
) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND team_id = ?", hackathonID, teamID).
		Order("joined_at ASC").
		Find(&members).Error

	if err != nil {
		return nil, err
	}

	return members, nil
}

// MarkSubmitted flips the submitted flag for a team.
func (r *repository) MarkSubmitted(ctx context.Context, hackathonID, teamID string) error {
	result := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("hackathon_id = ? AND team_id = ?", hackathonID, teamID).
		Update("submitted", true)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

// GetParticipantName returns the registered display name for an email.
func (r *repository) GetParticipantName(ctx context.Context, hackathonID, email string) (string, error) {
	var participant hackathonModel.Participant
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND email = ?", hackathonID, email).
		First(&participant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", teamModel.ErrNotRegistered
		}
		return "", err
	}

	return participant.Name, nil
}

// isNameConflict reports whether a duplicate error names the unique
// (hackathon_id, team_name) index rather than the join code key.
// Postgres reports the index name, SQLite the column list.
func isNameConflict(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "idx_teams_hackathon_name") ||
		strings.Contains(msg, "teams.team_name")
}

// isDuplicateError checks if error is a duplicate key error.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint")
}
