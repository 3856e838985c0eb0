package api

import (
	"net/http"

	reqdto "fleetsync/internal/handler/dto/request"
	resdto "fleetsync/internal/handler/dto/response"
	"fleetsync/internal/handler/httperr"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	configCommands commands.ConfigCommands
	fleetQueries   queries.FleetQueries
}

func NewConfigHandler(configCommands commands.ConfigCommands, fleetQueries queries.FleetQueries) *ConfigHandler {
	return &ConfigHandler{
		configCommands: configCommands,
		fleetQueries:   fleetQueries,
	}
}

// @Summary Get alert thresholds
// @Tags config
// @Produce json
// @Success 200 {object} resdto.ThresholdsResponse
// @Router /config/thresholds [get]
func (h *ConfigHandler) GetThresholds(c *gin.Context) {
	policy, err := h.fleetQueries.Thresholds(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPolicy(policy, nil))
}

// @Summary Update alert thresholds
// @Description Store a new threshold pair; out-of-range values are normalized with warnings
// @Tags config
// @Accept json
// @Produce json
// @Param request body reqdto.UpdateThresholdsRequest true "Threshold pair"
// @Success 200 {object} resdto.ThresholdsResponse
// @Failure 400 {object} httperr.Response
// @Router /config/thresholds [put]
func (h *ConfigHandler) UpdateThresholds(c *gin.Context) {
	var req reqdto.UpdateThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.configCommands.UpdateThresholds(c.Request.Context(), commands.ThresholdUpdate{
		Critical:   *req.Critical,
		Preventive: *req.Preventive,
	})
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromPolicy(result.Policy, result.Warnings))
}
