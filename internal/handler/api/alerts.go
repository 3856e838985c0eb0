package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	resdto "fleetsync/internal/handler/dto/response"
	"fleetsync/internal/handler/httperr"
	"fleetsync/internal/pkg/errs"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AlertHandler struct {
	alertCommands commands.AlertCommands
	alertQueries  queries.AlertQueries
}

func NewAlertHandler(alertCommands commands.AlertCommands, alertQueries queries.AlertQueries) *AlertHandler {
	return &AlertHandler{
		alertCommands: alertCommands,
		alertQueries:  alertQueries,
	}
}

// @Summary List open alerts
// @Description List notifications that are neither read nor dismissed
// @Tags alerts
// @Produce json
// @Param limit query int false "Page size"
// @Success 200 {array} resdto.NotificationResponse
// @Router /alerts [get]
func (h *AlertHandler) ListOpen(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	views, err := h.alertQueries.ListOpen(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromNotificationViews(views))
}

// @Summary Unread alert count
// @Tags alerts
// @Produce json
// @Success 200 {object} resdto.UnreadCountResponse
// @Router /alerts/unread-count [get]
func (h *AlertHandler) UnreadCount(c *gin.Context) {
	count, err := h.alertQueries.UnreadCount(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.UnreadCountResponse{Count: count})
}

// @Summary Run alert sweep
// @Description Derive notification intents from live state and persist new ones
// @Tags alerts
// @Produce json
// @Success 200 {object} resdto.SweepResponse
// @Router /alerts/sweep [post]
func (h *AlertHandler) Sweep(c *gin.Context) {
	result, err := h.alertCommands.Sweep(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromSweepResult(result))
}

// @Summary Mark alert read
// @Tags alerts
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /alerts/{id}/read [patch]
func (h *AlertHandler) MarkRead(c *gin.Context) {
	h.mutate(c, h.alertCommands.MarkRead)
}

// @Summary Dismiss alert
// @Tags alerts
// @Param id path string true "Notification ID"
// @Success 204
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /alerts/{id}/dismiss [patch]
func (h *AlertHandler) Dismiss(c *gin.Context) {
	h.mutate(c, h.alertCommands.Dismiss)
}

func (h *AlertHandler) mutate(c *gin.Context, fn func(ctx context.Context, id uuid.UUID) error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid notification ID format", nil)
		return
	}

	if err := fn(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrNotificationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Notification not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
