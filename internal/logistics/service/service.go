// Package service provides business logic layer for logistics module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
	"github.com/hackdesk/hackdesk/internal/logistics/repository"
)

const (
	minQuantity = 1
	maxQuantity = 10000
)

// Service defines the interface for logistics business logic operations.
type Service interface {
	// AddItem creates a logistics item with a fresh secret code. Organizer only.
	AddItem(ctx context.Context, email string, req *logisticsModel.AddItemRequest) (*logisticsModel.ItemResponse, error)

	// ListItems returns all items with counters and recipients. Organizer only.
	ListItems(ctx context.Context, email, hackathonID string) (*logisticsModel.ListItemsResponse, error)

	// Redeem grants one unit of the item behind the secret code to the
	// participant, exactly once per (item, participant) pair.
	Redeem(ctx context.Context, req *logisticsModel.RedeemRequest) (*logisticsModel.RedeemResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new logistics service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// AddItem creates a logistics item with a fresh secret code. Organizer only.
func (s *service) AddItem(
	ctx context.Context,
	email string,
	req *logisticsModel.AddItemRequest,
) (*logisticsModel.ItemResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 || len(name) > 100 {
		return nil, logisticsModel.ErrInvalidItemName
	}
	if req.TotalQuantity < minQuantity || req.TotalQuantity > maxQuantity {
		return nil, logisticsModel.ErrInvalidQuantity
	}

	if err := s.requireOrganizer(ctx, req.HackathonID, email); err != nil {
		return nil, err
	}

	item := &logisticsModel.LogisticsItem{
		LogisticsID:   uuid.NewString(),
		HackathonID:   req.HackathonID,
		Name:          name,
		TotalQuantity: req.TotalQuantity,
		GivenAway:     0,
		SecretCode:    uuid.NewString(),
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	return &logisticsModel.ItemResponse{
		LogisticsID:   item.LogisticsID,
		HackathonID:   item.HackathonID,
		Name:          item.Name,
		TotalQuantity: item.TotalQuantity,
		GivenAway:     0,
		Remaining:     item.TotalQuantity,
		SecretCode:    item.SecretCode,
		Recipients:    []string{},
	}, nil
}

// ListItems returns all items with counters and recipients. Organizer only.
func (s *service) ListItems(
	ctx context.Context,
	email, hackathonID string,
) (*logisticsModel.ListItemsResponse, error) {
	if err := s.requireOrganizer(ctx, hackathonID, email); err != nil {
		return nil, err
	}

	items, err := s.repo.ListByHackathon(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	resp := &logisticsModel.ListItemsResponse{
		HackathonID: hackathonID,
		Items:       make([]logisticsModel.ItemResponse, 0, len(items)),
	}

	for _, item := range items {
		recipients, err := s.repo.ListRecipients(ctx, item.LogisticsID)
		if err != nil {
			return nil, err
		}

		resp.Items = append(resp.Items, logisticsModel.ItemResponse{
			LogisticsID:   item.LogisticsID,
			HackathonID:   item.HackathonID,
			Name:          item.Name,
			TotalQuantity: item.TotalQuantity,
			GivenAway:     item.GivenAway,
			Remaining:     item.TotalQuantity - item.GivenAway,
			SecretCode:    item.SecretCode,
			Recipients:    recipients,
		})
	}

	return resp, nil
}

// Redeem grants one unit of the item behind the secret code to the
// participant, exactly once per (item, participant) pair.
func (s *service) Redeem(
	ctx context.Context,
	req *logisticsModel.RedeemRequest,
) (*logisticsModel.RedeemResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.ParticipantEmail))
	if email == "" || !strings.Contains(email, "@") {
		return nil, logisticsModel.ErrInvalidEmail
	}

	// The item row stays locked across the duplicate check, the stock check,
	// the append, and the counter bump, so concurrent redemptions for the
	// same item serialize and given_away always equals the recipient count.
	var result *logisticsModel.RedeemResponse
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx, s.logger)

		item, txErr := txRepo.GetBySecretCodeForUpdate(ctx, req.SecretCode)
		if txErr != nil {
			return txErr
		}

		redeemed, txErr := txRepo.HasRedemption(ctx, item.LogisticsID, email)
		if txErr != nil {
			return txErr
		}
		if redeemed {
			return logisticsModel.ErrAlreadyRedeemed
		}

		if item.GivenAway >= item.TotalQuantity {
			return logisticsModel.ErrExhausted
		}

		redemption := &logisticsModel.Redemption{
			LogisticsID:      item.LogisticsID,
			ParticipantEmail: email,
		}
		if txErr = txRepo.CreateRedemption(ctx, redemption); txErr != nil {
			return txErr
		}

		if txErr = txRepo.IncrementGivenAway(ctx, item.LogisticsID); txErr != nil {
			return txErr
		}

		result = &logisticsModel.RedeemResponse{
			LogisticsID: item.LogisticsID,
			Name:        item.Name,
			Remaining:   item.TotalQuantity - item.GivenAway - 1,
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// requireOrganizer fails unless the email organizes the hackathon.
func (s *service) requireOrganizer(ctx context.Context, hackathonID, email string) error {
	organizer, err := s.repo.GetHackathonOrganizer(ctx, hackathonID)
	if err != nil {
		return err
	}
	if organizer != email {
		return logisticsModel.ErrNotOrganizer
	}
	return nil
}
