package request

// EnterCampaignRequest opens the campaign screen for one campaign.
type EnterCampaignRequest struct {
	CampaignId string `json:"campaign_id" binding:"required"`
}
