package respond

// CampaignMemberRespond is one member row, in the order the store
// returned it.
type CampaignMemberRespond struct {
	UserId   string `json:"user_id"`
	Faction  string `json:"faction"`
	Username string `json:"username"`
}

// CampaignRespond is a campaign with its member list embedded.
type CampaignRespond struct {
	Uuid        string                  `json:"uuid"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	AdminId     string                  `json:"admin_id"`
	Members     []CampaignMemberRespond `json:"members"`
}
