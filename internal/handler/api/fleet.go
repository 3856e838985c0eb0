package api

import (
	"net/http"

	resdto "fleetsync/internal/handler/dto/response"
	"fleetsync/internal/handler/httperr"
	"fleetsync/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type FleetHandler struct {
	fleetQueries queries.FleetQueries
}

func NewFleetHandler(fleetQueries queries.FleetQueries) *FleetHandler {
	return &FleetHandler{fleetQueries: fleetQueries}
}

// @Summary List equipment
// @Description List the fleet with maintenance windows and status per schedule
// @Tags fleet
// @Produce json
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *FleetHandler) ListEquipment(c *gin.Context) {
	views, err := h.fleetQueries.ListEquipment(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromEquipmentViews(views))
}

// @Summary List maintenance schedules
// @Description List every maintenance window flat, most urgent first
// @Tags fleet
// @Produce json
// @Success 200 {array} resdto.MaintenanceResponse
// @Router /maintenance [get]
func (h *FleetHandler) ListMaintenance(c *gin.Context) {
	views, err := h.fleetQueries.ListMaintenance(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromMaintenanceViews(views))
}

// @Summary List inventory
// @Description List inventory items with low-stock flags
// @Tags fleet
// @Produce json
// @Success 200 {array} resdto.InventoryItemResponse
// @Router /inventory [get]
func (h *FleetHandler) ListInventory(c *gin.Context) {
	views, err := h.fleetQueries.ListInventory(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventoryViews(views))
}
