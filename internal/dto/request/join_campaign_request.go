package request

// JoinCampaignRequest adds the caller to a campaign with a chosen
// faction. The faction must come from the shipped catalog.
type JoinCampaignRequest struct {
	CampaignId string `json:"campaign_id" binding:"required"`
	Faction    string `json:"faction" binding:"required"`
}
