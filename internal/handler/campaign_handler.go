package handler

import (
	"crusade_campaign_server/internal/dto/request"
	"crusade_campaign_server/internal/service"

	"github.com/gin-gonic/gin"
)

// CampaignHandler serves campaign and membership endpoints.
type CampaignHandler struct {
	campaignSvc service.CampaignService
}

// NewCampaignHandler creates the campaign handler.
func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

// CreateCampaign creates a campaign with the caller as first member.
// POST /campaign/createCampaign
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	var req request.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.campaignSvc.CreateCampaign(currentUserID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// JoinCampaign enrolls the caller.
// POST /campaign/joinCampaign
func (h *CampaignHandler) JoinCampaign(c *gin.Context) {
	var req request.JoinCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.campaignSvc.JoinCampaign(currentUserID(c), req); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// DeleteCampaign removes a campaign and everything under it.
// POST /campaign/deleteCampaign
func (h *CampaignHandler) DeleteCampaign(c *gin.Context) {
	var req request.DeleteCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	if err := h.campaignSvc.DeleteCampaign(currentUserID(c), req.CampaignId); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// GetCampaignList lists every campaign with members.
// GET /campaign/getCampaignList
func (h *CampaignHandler) GetCampaignList(c *gin.Context) {
	data, err := h.campaignSvc.GetCampaignList()
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetFactionList returns the faction catalog.
// GET /campaign/getFactionList
func (h *CampaignHandler) GetFactionList(c *gin.Context) {
	HandleSuccess(c, h.campaignSvc.GetFactionList())
}
