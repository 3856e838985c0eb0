package api

import (
	"errors"
	"net/http"

	resdto "fleetsync/internal/handler/dto/response"
	"fleetsync/internal/handler/httperr"
	"fleetsync/internal/infra/snapshot"
	"fleetsync/internal/usecase/commands"
	"fleetsync/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncUseCase commands.SyncCommands
}

func NewSyncHandler(syncUseCase commands.SyncCommands) *SyncHandler {
	return &SyncHandler{syncUseCase: syncUseCase}
}

// @Summary Import snapshot
// @Description Reconcile an external snapshot against the live fleet state
// @Tags sync
// @Accept json
// @Produce json
// @Param format query string false "Snapshot format: json (default) or xlsx"
// @Success 200 {object} resdto.SyncSummaryResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /sync [post]
func (h *SyncHandler) ImportSnapshot(c *gin.Context) {
	source, err := h.sourceFor(c)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unsupported snapshot format", nil)
		return
	}

	summary, err := h.syncUseCase.ImportSnapshot(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, commands.ErrSnapshotRead) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Snapshot could not be decoded", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSummary(summary))
}

func (h *SyncHandler) sourceFor(c *gin.Context) (shared.SnapshotSource, error) {
	switch c.DefaultQuery("format", "json") {
	case "json":
		return snapshot.NewJSONSource(c.Request.Body), nil
	case "xlsx":
		return snapshot.NewExcelSource(c.Request.Body), nil
	default:
		return nil, errors.New("unknown snapshot format")
	}
}
