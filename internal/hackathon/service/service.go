// Package service provides business logic layer for hackathon module.
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	hackathonModel "github.com/hackdesk/hackdesk/internal/hackathon/model"
	"github.com/hackdesk/hackdesk/internal/hackathon/repository"
)

// Service defines the interface for hackathon business logic operations.
type Service interface {
	// CreateHackathon creates a new hackathon owned by the caller.
	CreateHackathon(
		ctx context.Context,
		organizerEmail string,
		req *hackathonModel.CreateHackathonRequest,
	) (*hackathonModel.HackathonResponse, error)

	// Register registers the caller for a hackathon.
	Register(
		ctx context.Context,
		email string,
		req *hackathonModel.RegisterRequest,
	) (*hackathonModel.RegisterResponse, error)
}

type service struct {
	repo   repository.Repository
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new hackathon service instance.
func New(repo repository.Repository, db *gorm.DB, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		db:     db,
		logger: logger,
	}
}

// CreateHackathon creates a new hackathon owned by the caller.
func (s *service) CreateHackathon(
	ctx context.Context,
	organizerEmail string,
	req *hackathonModel.CreateHackathonRequest,
) (*hackathonModel.HackathonResponse, error) {
	name := strings.TrimSpace(req.Name)
	if len(name) < 3 || len(name) > 100 {
		return nil, hackathonModel.ErrInvalidName
	}

	hackathon := &hackathonModel.Hackathon{
		HackathonID:    uuid.NewString(),
		Name:           name,
		OrganizerEmail: organizerEmail,
	}

	if err := s.repo.Create(ctx, hackathon); err != nil {
		return nil, err
	}

	return &hackathonModel.HackathonResponse{
		HackathonID:    hackathon.HackathonID,
		Name:           hackathon.Name,
		OrganizerEmail: hackathon.OrganizerEmail,
	}, nil
}

// Register registers the caller for a hackathon.
func (s *service) Register(
	ctx context.Context,
	email string,
	req *hackathonModel.RegisterRequest,
) (*hackathonModel.RegisterResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, hackathonModel.ErrInvalidName
	}

	// Hackathon must exist before anyone can register for it.
	if _, err := s.repo.GetByID(ctx, req.HackathonID); err != nil {
		return nil, err
	}

	participant := &hackathonModel.Participant{
		HackathonID: req.HackathonID,
		Email:       email,
		Name:        name,
	}

	if err := s.repo.AddParticipant(ctx, participant); err != nil {
		return nil, err
	}

	return &hackathonModel.RegisterResponse{
		HackathonID: participant.HackathonID,
		Email:       participant.Email,
		Name:        participant.Name,
	}, nil
}
