package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// UnitHandler serves roster unit endpoints.
type UnitHandler struct {
	unitSvc service.UnitService
}

// NewUnitHandler creates the unit handler.
func NewUnitHandler(unitSvc service.UnitService) *UnitHandler {
	return &UnitHandler{unitSvc: unitSvc}
}

// SaveUnit inserts or updates the complete staged record.
// POST /unit/saveUnit
func (h *UnitHandler) SaveUnit(c *gin.Context) {
	var req request.SaveUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.unitSvc.SaveUnit(currentUserID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteUnit removes one unit.
// POST /unit/deleteUnit
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	var req request.DeleteUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.unitSvc.DeleteUnit(currentUserID(c), req.UnitId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetUnitList lists one force's units.
// GET /unit/getUnitList?crusade_force_id=...
func (h *UnitHandler) GetUnitList(c *gin.Context) {
	var req request.GetUnitListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.unitSvc.GetUnitList(req.CrusadeForceId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
