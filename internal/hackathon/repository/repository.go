// Package repository provides data access layer for hackathon module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
)

// Repository defines the interface for hackathon data access operations.
type Repository interface {
	// Create creates a new hackathon.
	Create(ctx context.Context, hackathon *hackathonModel.Hackathon) error

	// GetByID finds a hackathon by id.
	GetByID(ctx context.Context, hackathonID string) (*hackathonModel.Hackathon, error)

	// AddParticipant registers an email for a hackathon.
	AddParticipant(ctx context.Context, participant *hackathonModel.Participant) error

	// GetParticipant returns the registration record for an email.
	GetParticipant(ctx context.Context, hackathonID, email string) (*hackathonModel.Participant, error)

	// IsOrganizer reports whether the email organizes the hackathon.
	IsOrganizer(ctx context.Context, hackathonID, email string) (bool, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new hackathon repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// Create creates a new hackathon.
func (r *repository) Create(ctx context.Context, hackathon *hackathonModel.Hackathon) error {
	return r.db.WithContext(ctx).Create(hackathon).Error
}

// GetByID finds a hackathon by id.
func (r *repository) GetByID(ctx context.Context, hackathonID string) (*hackathonModel.Hackathon, error) {
	var hackathon hackathonModel.Hackathon
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		First(&hackathon).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hackathonModel.ErrHackathonNotFound
		}
		return nil, err
	}

	return &hackathon, nil
}

// AddParticipant registers an email for a hackathon.
func (r *repository) AddParticipant(ctx context.Context, participant *hackathonModel.Participant) error {
	err := r.db.WithContext(ctx).Create(participant).Error
	if err != nil {
		if isDuplicateError(err) {
			return hackathonModel.ErrAlreadyRegistered
		}
		return err
	}
	return nil
}

// GetParticipant returns the registration record for an email.
func (r *repository) GetParticipant(
	ctx context.Context,
	hackathonID, email string,
) (*hackathonModel.Participant, error) {
	var participant hackathonModel.Participant
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ? AND email = ?", hackathonID, email).
		First(&participant).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, hackathonModel.ErrParticipantNotFound
		}
		return nil, err
	}

	return &participant, nil
}

// IsOrganizer reports whether the email organizes the hackathon.
func (r *repository) IsOrganizer(ctx context.Context, hackathonID, email string) (bool, error) {
	hackathon, err := r.GetByID(ctx, hackathonID)
	if err != nil {
		return false, err
	}
	return hackathon.OrganizerEmail == email, nil
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
