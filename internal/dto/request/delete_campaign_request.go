package request

// DeleteCampaignRequest deletes a campaign by id.
type DeleteCampaignRequest struct {
	CampaignId string `json:"campaign_id" binding:"required"`
}
