package request

// GetForceListRequest lists the forces of one campaign.
type GetForceListRequest struct {
	CampaignId string `form:"campaign_id" binding:"required"`
}
