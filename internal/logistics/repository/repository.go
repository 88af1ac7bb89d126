// Package repository provides data access layer for logistics module.
package repository

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
)

// Repository defines the interface for logistics data access operations.
type Repository interface {
	// CreateItem inserts a new logistics item.
	CreateItem(ctx context.Context, item *logisticsModel.LogisticsItem) error

	// GetBySecretCode resolves a secret code to its item.
	GetBySecretCode(ctx context.Context, secretCode string) (*logisticsModel.LogisticsItem, error)

	// GetBySecretCodeForUpdate resolves a secret code and locks the item row
	// for the duration of the surrounding transaction.
	GetBySecretCodeForUpdate(ctx context.Context, secretCode string) (*logisticsModel.LogisticsItem, error)

	// ListByHackathon returns all items of a hackathon in creation order.
	ListByHackathon(ctx context.Context, hackathonID string) ([]logisticsModel.LogisticsItem, error)

	// ListRecipients returns the emails that redeemed an item, in redemption order.
	ListRecipients(ctx context.Context, logisticsID string) ([]string, error)

	// HasRedemption reports whether the participant already redeemed the item.
	HasRedemption(ctx context.Context, logisticsID, email string) (bool, error)

	// CreateRedemption appends a redemption record.
	CreateRedemption(ctx context.Context, redemption *logisticsModel.Redemption) error

	// IncrementGivenAway bumps the given-away counter of an item by one.
	IncrementGivenAway(ctx context.Context, logisticsID string) error

	// GetHackathonOrganizer returns the organizer email of a hackathon.
	GetHackathonOrganizer(ctx context.Context, hackathonID string) (string, error)
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new logistics repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// CreateItem inserts a new logistics item.
func (r *repository) CreateItem(ctx context.Context, item *logisticsModel.LogisticsItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// GetBySecretCode resolves a secret code to its item.
func (r *repository) GetBySecretCode(
	ctx context.Context,
	secretCode string,
) (*logisticsModel.LogisticsItem, error) {
	return r.getBySecretCode(ctx, r.db, secretCode)
}

// GetBySecretCodeForUpdate resolves a secret code and locks the item row
// for the duration of the surrounding transaction.
func (r *repository) GetBySecretCodeForUpdate(
	ctx context.Context,
	secretCode string,
) (*logisticsModel.LogisticsItem, error) {
	return r.getBySecretCode(ctx, r.db.Clauses(clause.Locking{Strength: "UPDATE"}), secretCode)
}

func (r *repository) getBySecretCode(
	ctx context.Context,
	db *gorm.DB,
	secretCode string,
) (*logisticsModel.LogisticsItem, error) {
	var item logisticsModel.LogisticsItem
	err := db.WithContext(ctx).
		Where("secret_code = ?", secretCode).
		First(&item).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, logisticsModel.ErrItemNotFound
		}
		return nil, err
	}

	return &item, nil
}

// ListByHackathon returns all items of a hackathon in creation order.
func (r *repository) ListByHackathon(
	ctx context.Context,
	hackathonID string,
) ([]logisticsModel.LogisticsItem, error) {
	var items []logisticsModel.LogisticsItem
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		Order("created_at ASC").
		Find(&items).Error

	if err != nil {
		return nil, err
	}

	return items, nil
}

// ListRecipients returns the emails that redeemed an item, in redemption order.
func (r *repository) ListRecipients(ctx context.Context, logisticsID string) ([]string, error) {
	var recipients []string
	err := r.db.WithContext(ctx).
		Table("redemptions").
		Select("participant_email").
		Where("logistics_id = ?", logisticsID).
		Order("created_at ASC").
		Scan(&recipients).Error

	if err != nil {
		return nil, err
	}

	if recipients == nil {
		return []string{}, nil
	}

	return recipients, nil
}

// HasRedemption reports whether the participant already redeemed the item.
func (r *repository) HasRedemption(ctx context.Context, logisticsID, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&logisticsModel.Redemption{}).
		Where("logistics_id = ? AND participant_email = ?", logisticsID, email).
		Count(&count).Error

	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// CreateRedemption appends a redemption record.
func (r *repository) CreateRedemption(ctx context.Context, redemption *logisticsModel.Redemption) error {
	err := r.db.WithContext(ctx).Create(redemption).Error
	if err != nil {
		if isDuplicateError(err) {
			return logisticsModel.ErrAlreadyRedeemed
		}
		return err
	}
	return nil
}

// IncrementGivenAway bumps the given-away counter of an item by one.
func (r *repository) IncrementGivenAway(ctx context.Context, logisticsID string) error {
	result := r.db.WithContext(ctx).
		Model(&logisticsModel.LogisticsItem{}).
		Where("logistics_id = ?", logisticsID).
		UpdateColumn("given_away", gorm.Expr("given_away + 1"))

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return logisticsModel.ErrItemNotFound
	}
	return nil
}

// GetHackathonOrganizer returns the organizer email of a hackathon.
func (r *repository) GetHackathonOrganizer(ctx context.Context, hackathonID string) (string, error) {
	var hackathon hackathonModel.Hackathon
	err := r.db.WithContext(ctx).
		Where("hackathon_id = ?", hackathonID).
		First(&hackathon).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", logisticsModel.ErrHackathonNotFound
		}
		return "", err
	}

	return hackathon.OrganizerEmail, nil
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
