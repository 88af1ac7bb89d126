// Package service provides business logic layer for statistics module.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/hackdesk/hackdesk/internal/statistics/model"
	"github.com/hackdesk/hackdesk/internal/statistics/repository"
)

// Service defines the interface for statistics business logic operations.
type Service interface {
	// GetHackathonStatistics returns the organizer dashboard counters.
	GetHackathonStatistics(
		ctx context.Context,
		requesterEmail, hackathonID string,
	) (*model.HackathonStatisticsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new statistics service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// GetHackathonStatistics returns the organizer dashboard counters.
func (s *service) GetHackathonStatistics(
	ctx context.Context,
	requesterEmail, hackathonID string,
) (*model.HackathonStatisticsResponse, error) {
	organizer, err := s.repo.GetHackathonOrganizer(ctx, hackathonID)
	if err != nil {
		return nil, err
	}
	if organizer != requesterEmail {
		return nil, model.ErrNotOrganizer
	}

	participants, err := s.repo.CountParticipants(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	teams, err := s.repo.GetTeamStatistics(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	items, err := s.repo.GetItemStatistics(ctx, hackathonID)
	if err != nil {
		return nil, err
	}

	return &model.HackathonStatisticsResponse{
		HackathonID:  hackathonID,
		Participants: participants,
		Teams:        *teams,
		Logistics:    items,
	}, nil
}
