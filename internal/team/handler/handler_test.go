package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	teamModel "github.com/hackdesk/hackdesk/internal/team/model"
	"github.com/hackdesk/hackdesk/internal/team/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) CreateTeam(
	ctx context.Context,
	email string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) JoinTeam(
	ctx context.Context,
	email string,
	req *teamModel.JoinTeamRequest,
) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) SubmitTeam(
	ctx context.Context,
	email string,
	req *teamModel.SubmitTeamRequest,
) (*teamModel.TeamResponse, error) {
	args := m.Called(ctx, email, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.TeamResponse), args.Error(1)
}

func (m *mockService) CheckPresence(
	ctx context.Context,
	email, hackathonID string,
) (*teamModel.PresenceResponse, error) {
	args := m.Called(ctx, email, hackathonID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*teamModel.PresenceResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// asPrincipal injects the authenticated email the way the auth middleware does.
func asPrincipal(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal_email", email)
		c.Next()
	}
}

func TestHandler_CreateTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/create", asPrincipal("alice@x.com"), handler.CreateTeam)

		req := &teamModel.CreateTeamRequest{HackathonID: "hack-1", TeamName: "rocket"}
		resp := &teamModel.TeamResponse{
			HackathonID: "hack-1",
			TeamID:      "AB12CD",
			TeamName:    "rocket",
			LeaderEmail: "alice@x.com",
			Members: []teamModel.MemberResponse{
				{Email: "alice@x.com", Name: "Alice"},
			},
		}

		mockSvc.On("CreateTeam", mock.Anything, "alice@x.com", req).Return(resp, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/create", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusCreated, w.Code)
		var response map[string]teamModel.TeamResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "AB12CD", response["team"].TeamID)
		assert.Len(t, response["team"].Members, 1)
		mockSvc.AssertExpectations(t)
	})

	t.Run("invalid request body", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/create", asPrincipal("alice@x.com"), handler.CreateTeam)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/create", bytes.NewBufferString("{not json"))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "INVALID_REQUEST", response.Error.Code)
		mockSvc.AssertNotCalled(t, "CreateTeam")
	})

	t.Run("name taken maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/create", asPrincipal("alice@x.com"), handler.CreateTeam)

		req := &teamModel.CreateTeamRequest{HackathonID: "hack-1", TeamName: "rocket"}
		mockSvc.On("CreateTeam", mock.Anything, "alice@x.com", req).
			Return(nil, teamModel.ErrTeamNameTaken)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/create", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "CONFLICT", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("exhausted code retries map to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/create", asPrincipal("alice@x.com"), handler.CreateTeam)

		req := &teamModel.CreateTeamRequest{HackathonID: "hack-1", TeamName: "rocket"}
		mockSvc.On("CreateTeam", mock.Anything, "alice@x.com", req).
			Return(nil, teamModel.ErrDuplicateTeam)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/create", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "CONFLICT", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("not registered maps to forbidden", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/create", asPrincipal("ghost@x.com"), handler.CreateTeam)

		req := &teamModel.CreateTeamRequest{HackathonID: "hack-1", TeamName: "rocket"}
		mockSvc.On("CreateTeam", mock.Anything, "ghost@x.com", req).
			Return(nil, teamModel.ErrNotRegistered)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/create", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "PERMISSION_DENIED", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_JoinTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/join", asPrincipal("bob@x.com"), handler.JoinTeam)

		req := &teamModel.JoinTeamRequest{HackathonID: "hack-1", TeamCode: "AB12CD"}
		resp := &teamModel.TeamResponse{
			HackathonID: "hack-1",
			TeamID:      "AB12CD",
			TeamName:    "rocket",
			LeaderEmail: "alice@x.com",
			Members: []teamModel.MemberResponse{
				{Email: "alice@x.com", Name: "Alice"},
				{Email: "bob@x.com", Name: "Bob"},
			},
		}

		mockSvc.On("JoinTeam", mock.Anything, "bob@x.com", req).Return(resp, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/join", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]teamModel.TeamResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Len(t, response["team"].Members, 2)
		mockSvc.AssertExpectations(t)
	})

	t.Run("unknown code maps to not found", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/join", asPrincipal("bob@x.com"), handler.JoinTeam)

		req := &teamModel.JoinTeamRequest{HackathonID: "hack-1", TeamCode: "ZZZZZZ"}
		mockSvc.On("JoinTeam", mock.Anything, "bob@x.com", req).
			Return(nil, teamModel.ErrTeamNotFound)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/join", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNotFound, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "NOT_FOUND", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("submitted team maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/join", asPrincipal("bob@x.com"), handler.JoinTeam)

		req := &teamModel.JoinTeamRequest{HackathonID: "hack-1", TeamCode: "AB12CD"}
		mockSvc.On("JoinTeam", mock.Anything, "bob@x.com", req).
			Return(nil, teamModel.ErrTeamSubmitted)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/join", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "CONFLICT", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_SubmitTeam(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/submit", asPrincipal("alice@x.com"), handler.SubmitTeam)

		req := &teamModel.SubmitTeamRequest{HackathonID: "hack-1", TeamCode: "AB12CD"}
		resp := &teamModel.TeamResponse{
			HackathonID: "hack-1",
			TeamID:      "AB12CD",
			TeamName:    "rocket",
			LeaderEmail: "alice@x.com",
			Submitted:   true,
			Members: []teamModel.MemberResponse{
				{Email: "alice@x.com", Name: "Alice"},
				{Email: "bob@x.com", Name: "Bob"},
			},
		}

		mockSvc.On("SubmitTeam", mock.Anything, "alice@x.com", req).Return(resp, nil)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/submit", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response map[string]teamModel.TeamResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.True(t, response["team"].Submitted)
		mockSvc.AssertExpectations(t)
	})

	t.Run("non-leader maps to forbidden", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/submit", asPrincipal("bob@x.com"), handler.SubmitTeam)

		req := &teamModel.SubmitTeamRequest{HackathonID: "hack-1", TeamCode: "AB12CD"}
		mockSvc.On("SubmitTeam", mock.Anything, "bob@x.com", req).
			Return(nil, teamModel.ErrNotLeader)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/submit", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusForbidden, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "PERMISSION_DENIED", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("small roster maps to precondition failed", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/team/submit", asPrincipal("alice@x.com"), handler.SubmitTeam)

		req := &teamModel.SubmitTeamRequest{HackathonID: "hack-1", TeamCode: "AB12CD"}
		mockSvc.On("SubmitTeam", mock.Anything, "alice@x.com", req).
			Return(nil, teamModel.ErrRosterTooSmall)

		body, _ := json.Marshal(req)
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/team/submit", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "PRECONDITION_FAILED", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_Presence(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/team/presence", asPrincipal("alice@x.com"), handler.Presence)

		resp := &teamModel.PresenceResponse{
			InTeam:   true,
			IsLeader: true,
			Team: &teamModel.TeamResponse{
				HackathonID: "hack-1",
				TeamID:      "AB12CD",
				TeamName:    "rocket",
				LeaderEmail: "alice@x.com",
			},
		}

		mockSvc.On("CheckPresence", mock.Anything, "alice@x.com", "hack-1").Return(resp, nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/presence?hackathon_id=hack-1", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response teamModel.PresenceResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.True(t, response.InTeam)
		assert.True(t, response.IsLeader)
		require.NotNil(t, response.Team)
		assert.Equal(t, "AB12CD", response.Team.TeamID)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing hackathon_id", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/team/presence", asPrincipal("alice@x.com"), handler.Presence)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/presence", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "CheckPresence")
	})

	t.Run("not in a team", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/team/presence", asPrincipal("carol@x.com"), handler.Presence)

		mockSvc.On("CheckPresence", mock.Anything, "carol@x.com", "hack-1").
			Return(&teamModel.PresenceResponse{InTeam: false}, nil)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("GET", "/team/presence?hackathon_id=hack-1", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response teamModel.PresenceResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.False(t, response.InTeam)
		assert.Nil(t, response.Team)
		mockSvc.AssertExpectations(t)
	})
}
