package request

// CreateCampaignRequest is the campaign creation payload.
type CreateCampaignRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
}
