package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// ViewHandler serves the per-user view state.
type ViewHandler struct {
	viewSvc service.ViewService
}

// NewViewHandler creates the view handler.
func NewViewHandler(viewSvc service.ViewService) *ViewHandler {
	return &ViewHandler{viewSvc: viewSvc}
}

// GetViewState returns the caller's current screen and modal flags.
// GET /view/getViewState
func (h *ViewHandler) GetViewState(c *gin.Context) {
	data, err := h.viewSvc.GetViewState(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// SelectView switches screens.
// POST /view/selectView
func (h *ViewHandler) SelectView(c *gin.Context) {
	var req request.SelectViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.viewSvc.SelectView(currentUserID(c), req.View)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// EnterCampaign opens the campaign screen, members only.
// POST /view/enterCampaign
func (h *ViewHandler) EnterCampaign(c *gin.Context) {
	var req request.EnterCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.viewSvc.EnterCampaign(currentUserID(c), req.CampaignId)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// OpenModal raises one modal flag.
// POST /view/openModal
func (h *ViewHandler) OpenModal(c *gin.Context) {
	var req request.ModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.viewSvc.OpenModal(currentUserID(c), req.Modal)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// CloseModal clears one modal flag.
// POST /view/closeModal
func (h *ViewHandler) CloseModal(c *gin.Context) {
	var req request.ModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.viewSvc.CloseModal(currentUserID(c), req.Modal)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}
