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

	logisticsModel "github.com/hackdesk/hackdesk/internal/logistics/model"
	volunteerModel "github.com/hackdesk/hackdesk/internal/volunteer/model"
	"github.com/hackdesk/hackdesk/internal/volunteer/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Bind(ctx context.Context, volunteerEmail, secretCode string) error {
	args := m.Called(ctx, volunteerEmail, secretCode)
	return args.Error(0)
}

func (m *mockService) Unbind(ctx context.Context, volunteerEmail string) {
	m.Called(ctx, volunteerEmail)
}

func (m *mockService) AssignToParticipant(
	ctx context.Context,
	volunteerEmail, participantEmail string,
) (*volunteerModel.AssignResponse, error) {
	args := m.Called(ctx, volunteerEmail, participantEmail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*volunteerModel.AssignResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func asPrincipal(email string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("principal_email", email)
		c.Next()
	}
}

func TestHandler_Bind(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/bind", asPrincipal("vol@x.com"), handler.Bind)

		mockSvc.On("Bind", mock.Anything, "vol@x.com", "code-1").Return(nil)

		body, _ := json.Marshal(volunteerModel.BindRequest{SecretCode: "code-1"})
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/bind", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response volunteerModel.BindResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.True(t, response.Bound)
		mockSvc.AssertExpectations(t)
	})

	t.Run("missing code", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/bind", asPrincipal("vol@x.com"), handler.Bind)

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/bind", bytes.NewBufferString(`{}`))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockSvc.AssertNotCalled(t, "Bind")
	})
}

func TestHandler_Unbind(t *testing.T) {
	t.Run("always no content", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.DELETE("/volunteer/bind", asPrincipal("vol@x.com"), handler.Unbind)

		mockSvc.On("Unbind", mock.Anything, "vol@x.com").Return()

		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("DELETE", "/volunteer/bind", nil)
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
		mockSvc.AssertExpectations(t)
	})
}

func TestHandler_Assign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/assign", asPrincipal("vol@x.com"), handler.Assign)

		resp := &volunteerModel.AssignResponse{
			LogisticsID: "item-1",
			Name:        "T-Shirt L",
			Remaining:   49,
		}
		mockSvc.On("AssignToParticipant", mock.Anything, "vol@x.com", "alice@x.com").
			Return(resp, nil)

		body, _ := json.Marshal(volunteerModel.AssignRequest{ParticipantEmail: "alice@x.com"})
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/assign", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusOK, w.Code)
		var response volunteerModel.AssignResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, 49, response.Remaining)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no binding maps to precondition failed", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/assign", asPrincipal("vol@x.com"), handler.Assign)

		mockSvc.On("AssignToParticipant", mock.Anything, "vol@x.com", "alice@x.com").
			Return(nil, volunteerModel.ErrNoBinding)

		body, _ := json.Marshal(volunteerModel.AssignRequest{ParticipantEmail: "alice@x.com"})
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/assign", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "PRECONDITION_FAILED", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("forwarded duplicate maps to conflict", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/assign", asPrincipal("vol@x.com"), handler.Assign)

		mockSvc.On("AssignToParticipant", mock.Anything, "vol@x.com", "alice@x.com").
			Return(nil, logisticsModel.ErrAlreadyRedeemed)

		body, _ := json.Marshal(volunteerModel.AssignRequest{ParticipantEmail: "alice@x.com"})
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/assign", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "CONFLICT", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("forwarded exhaustion keeps its code", func(t *testing.T) {
		mockSvc := new(mockService)
		handler := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.POST("/volunteer/assign", asPrincipal("vol@x.com"), handler.Assign)

		mockSvc.On("AssignToParticipant", mock.Anything, "vol@x.com", "late@x.com").
			Return(nil, logisticsModel.ErrExhausted)

		body, _ := json.Marshal(volunteerModel.AssignRequest{ParticipantEmail: "late@x.com"})
		w := httptest.NewRecorder()
		httpReq, _ := http.NewRequest("POST", "/volunteer/assign", bytes.NewBuffer(body))
		httpReq.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, httpReq)

		assert.Equal(t, http.StatusConflict, w.Code)
		var response ErrorResponse
		err := json.Unmarshal(w.Body.Bytes(), &response)
		require.NoError(t, err)
		assert.Equal(t, "EXHAUSTED", response.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}
