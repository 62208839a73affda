package respond

// ViewStateRespond is the caller's current screen and modal flags.
type ViewStateRespond struct {
	View             string          `json:"view"`
	SelectedCampaign string          `json:"selected_campaign,omitempty"`
	Modals           map[string]bool `json:"modals,omitempty"`
}
