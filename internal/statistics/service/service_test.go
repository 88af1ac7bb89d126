package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hackdesk/hackdesk/internal/statistics/model"
	"github.com/hackdesk/hackdesk/internal/statistics/repository"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) GetHackathonOrganizer(ctx context.Context, hackathonID string) (string, error) {
	args := m.Called(ctx, hackathonID)
	return args.String(0), args.Error(1)
}

func (m *mockRepository) CountParticipants(ctx context.Context, hackathonID string) (int, error) {
	args := m.Called(ctx, hackathonID)
	return args.Int(0), args.Error(1)
}

func (m *mockRepository) GetTeamStatistics(
	ctx context.Context,
	hackathonID string,
) (*model.TeamStatistics, error) {
	args := m.Called(ctx, hackathonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TeamStatistics), args.Error(1)
}

func (m *mockRepository) GetItemStatistics(
	ctx context.Context,
	hackathonID string,
) ([]model.ItemStatistics, error) {
	args := m.Called(ctx, hackathonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ItemStatistics), args.Error(1)
}

var _ repository.Repository = (*mockRepository)(nil)

func TestService_GetHackathonStatistics(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetHackathonOrganizer", ctx, "hack-1").Return("org@x.com", nil)
		mockRepo.On("CountParticipants", ctx, "hack-1").Return(42, nil)
		mockRepo.On("GetTeamStatistics", ctx, "hack-1").Return(&model.TeamStatistics{
			TotalTeams:     10,
			SubmittedTeams: 4,
			TotalMembers:   31,
		}, nil)
		mockRepo.On("GetItemStatistics", ctx, "hack-1").Return([]model.ItemStatistics{
			{LogisticsID: "item-1", Name: "T-Shirt L", TotalQuantity: 50, GivenAway: 12, Remaining: 38},
		}, nil)

		resp, err := svc.GetHackathonStatistics(ctx, "org@x.com", "hack-1")

		require.NoError(t, err)
		assert.Equal(t, "hack-1", resp.HackathonID)
		assert.Equal(t, 42, resp.Participants)
		assert.Equal(t, 10, resp.Teams.TotalTeams)
		assert.Equal(t, 4, resp.Teams.SubmittedTeams)
		require.Len(t, resp.Logistics, 1)
		assert.Equal(t, 38, resp.Logistics[0].Remaining)
		mockRepo.AssertExpectations(t)
	})

	t.Run("non-organizer rejected", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetHackathonOrganizer", ctx, "hack-1").Return("org@x.com", nil)

		resp, err := svc.GetHackathonStatistics(ctx, "mallory@x.com", "hack-1")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrNotOrganizer)
		mockRepo.AssertNotCalled(t, "CountParticipants")
	})

	t.Run("unknown hackathon", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		mockRepo.On("GetHackathonOrganizer", ctx, "nope").
			Return("", model.ErrHackathonNotFound)

		resp, err := svc.GetHackathonStatistics(ctx, "org@x.com", "nope")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, model.ErrHackathonNotFound)
	})

	t.Run("repository error surfaces", func(t *testing.T) {
		mockRepo := new(mockRepository)
		svc := New(mockRepo, zap.NewNop().Sugar())

		dbError := errors.New("database error")
		mockRepo.On("GetHackathonOrganizer", ctx, "hack-1").Return("org@x.com", nil)
		mockRepo.On("CountParticipants", ctx, "hack-1").Return(0, dbError)

		resp, err := svc.GetHackathonStatistics(ctx, "org@x.com", "hack-1")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, dbError)
	})
}
