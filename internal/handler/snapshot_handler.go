package handler

import (
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// SnapshotHandler serves the bulk roster load.
type SnapshotHandler struct {
	snapshotSvc service.SnapshotService
}

// NewSnapshotHandler creates the snapshot handler.
func NewSnapshotHandler(snapshotSvc service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotSvc: snapshotSvc}
}

// Load returns the complete snapshot: campaigns with members, forces
// with recomputed supply usage, units.
// GET /snapshot/load
func (h *SnapshotHandler) Load(c *gin.Context) {
	data, err := h.snapshotSvc.Load(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
