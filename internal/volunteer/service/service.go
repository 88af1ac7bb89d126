// Package service provides the volunteer duty binding logic.
package service

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
	logisticsService "github.com/hackdesk/hackdesk/internal/logistics/service"
	volunteerModel "github.com/hackdesk/hackdesk/internal/volunteer/model"
)

// Service defines the interface for volunteer duty binding operations.
//
// A binding associates one authenticated volunteer with one secret code so
// repeated redemptions don't need to resupply it. Bindings live only in
// process memory; they carry no authority beyond redemption calls and are
// validated lazily, on the first redemption.
type Service interface {
	// Bind stores the secret code for the volunteer, replacing any previous one.
	Bind(ctx context.Context, volunteerEmail, secretCode string) error

	// Unbind clears the volunteer's binding. No-op when nothing is bound.
	Unbind(ctx context.Context, volunteerEmail string)

	// AssignToParticipant redeems the bound item for the participant.
	AssignToParticipant(
		ctx context.Context,
		volunteerEmail, participantEmail string,
	) (*volunteerModel.AssignResponse, error)
}

type service struct {
	logistics logisticsService.Service
	logger    *zap.SugaredLogger

	mu       sync.RWMutex
	bindings map[string]string
}

// New creates a new volunteer service instance.
func New(logistics logisticsService.Service, logger *zap.SugaredLogger) Service {
	return &service{
		logistics: logistics,
		logger:    logger,
		bindings:  make(map[string]string),
	}
}

// Bind stores the secret code for the volunteer, replacing any previous one.
func (s *service) Bind(_ context.Context, volunteerEmail, secretCode string) error {
	secretCode = strings.TrimSpace(secretCode)
	if secretCode == "" {
		return volunteerModel.ErrEmptyCode
	}

	s.mu.Lock()
	s.bindings[volunteerEmail] = secretCode
	s.mu.Unlock()

	return nil
}

// Unbind clears the volunteer's binding. No-op when nothing is bound.
func (s *service) Unbind(_ context.Context, volunteerEmail string) {
	s.mu.Lock()
	delete(s.bindings, volunteerEmail)
	s.mu.Unlock()
}

// AssignToParticipant redeems the bound item for the participant.
func (s *service) AssignToParticipant(
	ctx context.Context,
	volunteerEmail, participantEmail string,
) (*volunteerModel.AssignResponse, error) {
	s.mu.RLock()
	secretCode, ok := s.bindings[volunteerEmail]
	s.mu.RUnlock()

	if !ok {
		return nil, volunteerModel.ErrNoBinding
	}

	resp, err := s.logistics.Redeem(ctx, &logisticsModel.RedeemRequest{
		SecretCode:       secretCode,
		ParticipantEmail: participantEmail,
	})
	if err != nil {
		return nil, err
	}

	return &volunteerModel.AssignResponse{
		LogisticsID: resp.LogisticsID,
		Name:        resp.Name,
		Remaining:   resp.Remaining,
	}, nil
}
