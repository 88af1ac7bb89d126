// Package repository provides data access layer for statistics module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
	"github.com/hackdesk/hackdesk/internal/statistics/model"
)

// Repository defines the interface for statistics data access operations.
type Repository interface {
	// GetHackathonOrganizer returns the organizer email of a hackathon.
	GetHackathonOrganizer(ctx context.Context, hackathonID string) (string, error)

	// CountParticipants returns how many emails are registered for a hackathon.
	CountParticipants(ctx context.Context, hackathonID string) (int, error)

	// GetTeamStatistics returns team counters for a hackathon.
	GetTeamStatistics(ctx context.Context, hackathonID string) (*model.TeamStatistics, error)

	// GetItemStatistics returns per-item counters for a hackathon.
	GetItemStatistics(ctx context.Context, hackathonID string) ([]model.ItemStatistics, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new statistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{
		db:     db,
		logger: logger,
	}
}

// GetHackathonOrganizer returns the organizer email of a hackathon.
func (r *repository) GetHackathonOrganizer(ctx context.Context, hackathonID string) (string, error) {
	var hackathon hackathonModel.Hackathon
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		First(&hackathon).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", model.ErrHackathonNotFound
		}
		return "", err
	}

	return hackathon.OrganizerEmail, nil
}

// CountParticipants returns how many emails are registered for a hackathon.
func (r *repository) CountParticipants(ctx context.Context, hackathonID string) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("hackathon_participants").
		Where("hackathon_id = ?", hackathonID).
		Count(&count).Error

	if err != nil {
		return 0, err
	}

	return int(count), nil
}

// GetTeamStatistics returns team counters for a hackathon.
func (r *repository) GetTeamStatistics(
	ctx context.Context,
	hackathonID string,
) (*model.TeamStatistics, error) {
	var stats model.TeamStatistics

	var totalTeams int64
	err := r.db.WithContext(ctx).
		Table("teams").
		Where("hackathon_id = ?", hackathonID).
		Count(&totalTeams).Error
	if err != nil {
		return nil, err
	}

	var submittedTeams int64
	err = r.db.WithContext(ctx).
		Table("teams").
		Where("hackathon_id = ? AND submitted = ?", hackathonID, true).
		Count(&submittedTeams).Error
	if err != nil {
		return nil, err
	}

	var totalMembers int64
	err = r.db.WithContext(ctx).
		Table("team_members").
		Where("hackathon_id = ?", hackathonID).
		Count(&totalMembers).Error
	if err != nil {
		return nil, err
	}

	stats.TotalTeams = int(totalTeams)
	stats.SubmittedTeams = int(submittedTeams)
	stats.TotalMembers = int(totalMembers)
	return &stats, nil
}

// GetItemStatistics returns per-item counters for a hackathon.
func (r *repository) GetItemStatistics(
	ctx context.Context,
	hackathonID string,
) ([]model.ItemStatistics, error) {
	var items []model.ItemStatistics

	err := r.db.WithContext(ctx).
		Table("logistics_items").
		Select("logistics_id, name, total_quantity, given_away, total_quantity - given_away AS remaining").
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Scan(&items).Error

	if err != nil {
		return nil, err
	}

	if items == nil {
		return []model.ItemStatistics{}, nil
	}

	return items, nil
}
