package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ForceHandler serves crusade force endpoints.
type ForceHandler struct {
	forceSvc service.ForceService
}

// NewForceHandler creates the force handler.
func NewForceHandler(forceSvc service.ForceService) *ForceHandler {
	return &ForceHandler{forceSvc: forceSvc}
}

// SaveForce inserts or updates the complete staged record.
// POST /force/saveForce
func (h *ForceHandler) SaveForce(c *gin.Context) {
	var req request.SaveForceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forceSvc.SaveForce(currentUserID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteForce removes a force and, by cascade, its units.
// POST /force/deleteForce
func (h *ForceHandler) DeleteForce(c *gin.Context) {
	var req request.DeleteForceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.forceSvc.DeleteForce(currentUserID(c), req.ForceId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetForceList lists one campaign's forces.
// GET /force/getForceList?campaign_id=...
func (h *ForceHandler) GetForceList(c *gin.Context) {
	var req request.GetForceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.forceSvc.GetForceList(req.CampaignId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
