//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"fleetsync/internal/handler/api"
	resdto "fleetsync/internal/handler/dto/response"
	"fleetsync/internal/pkg/errs"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"
	"fleetsync/tests/common/httptest"
	commandsmock "fleetsync/tests/mock/commands"
	queriesmock "fleetsync/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AlertHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAlertCommands
	mockQueries  *queriesmock.MockAlertQueries
	handler      *api.AlertHandler
}

func (s *AlertHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAlertCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAlertQueries(s.mockCtrl)
	s.handler = api.NewAlertHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/alerts", s.handler.ListOpen)
	s.router.GET("/alerts/unread-count", s.handler.UnreadCount)
	s.router.POST("/alerts/sweep", s.handler.Sweep)
	s.router.PATCH("/alerts/:id/read", s.handler.MarkRead)
	s.router.PATCH("/alerts/:id/dismiss", s.handler.Dismiss)
}

func (s *AlertHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAlertHandlerSuite(t *testing.T) {
	suite.Run(t, new(AlertHandlerTestSuite))
}

// ================================================================================
// TestListOpen
// ================================================================================

func (s *AlertHandlerTestSuite) TestListOpen() {
	views := []*queries.NotificationView{
		{
			ID:         uuid.New(),
			Kind:       "maintenance_overdue",
			Severity:   "critical",
			SubjectKey: "AC-010 · Engrase",
			Ficha:      "AC-010",
			Message:    "Engrase overdue by 50 units",
			CreatedAt:  time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.New(),
			Kind:       "low_stock",
			Severity:   "warning",
			SubjectKey: "FIL-001",
			Message:    "Oil Filter stock 3 at or below minimum 4",
			CreatedAt:  time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
	}

	s.Run("success: returns open notifications", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 0).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts", nil)

		var body []*resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(views[0].ID, body[0].ID)
		s.Equal("maintenance_overdue", body[0].Kind)
		s.Equal("AC-010 · Engrase", body[0].SubjectKey)
		s.Equal("AC-010", body[0].Ficha)
	})

	s.Run("success: passes limit query through", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 5).Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts?limit=5", nil)

		var body []*resdto.NotificationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: empty store yields empty array, not null", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 0).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().ListOpen(gomock.Any(), 0).Return(nil, errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestUnreadCount
// ================================================================================

func (s *AlertHandlerTestSuite) TestUnreadCount() {
	s.Run("success: returns count", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any()).Return(int64(7), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts/unread-count", nil)

		var body resdto.UnreadCountResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(7), body.Count)
	})

	s.Run("error: 500 on store failure", func() {
		s.mockQueries.EXPECT().UnreadCount(gomock.Any()).Return(int64(0), errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/alerts/unread-count", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestSweep
// ================================================================================

func (s *AlertHandlerTestSuite) TestSweep() {
	s.Run("success: returns sweep summary", func() {
		result := &commands.SweepResult{Proposed: 3, Created: 2, Warnings: []string{"publish failed for maintenance_overdue|AC-010 · Engrase"}}
		s.mockCommands.EXPECT().Sweep(gomock.Any()).Return(result, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/sweep", nil)

		var body resdto.SweepResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.Proposed)
		s.Equal(2, body.Created)
		s.Len(body.Warnings, 1)
	})

	s.Run("success: quiet sweep serializes warnings as empty array", func() {
		s.mockCommands.EXPECT().Sweep(gomock.Any()).Return(&commands.SweepResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/sweep", nil)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq(`{"proposed":0,"created":0,"warnings":[]}`, rec.Body.String())
	})

	s.Run("error: 500 on sweep failure", func() {
		s.mockCommands.EXPECT().Sweep(gomock.Any()).Return(nil, errs.New("config unreadable")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/alerts/sweep", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

// ================================================================================
// TestMarkRead / TestDismiss
// ================================================================================

func (s *AlertHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/"+id.String()+"/read", nil)

		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/not-a-uuid/read", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid notification ID format")
	})

	s.Run("error: 404 when notification does not exist", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), id).Return(errs.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/"+id.String()+"/read", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})

	s.Run("error: 500 on store failure", func() {
		s.mockCommands.EXPECT().MarkRead(gomock.Any(), id).Return(errs.New("db down")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/"+id.String()+"/read", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AlertHandlerTestSuite) TestDismiss() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Dismiss(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/"+id.String()+"/dismiss", nil)

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when notification does not exist", func() {
		s.mockCommands.EXPECT().Dismiss(gomock.Any(), id).Return(errs.ErrNotificationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/alerts/"+id.String()+"/dismiss", nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Notification not found")
	})
}
