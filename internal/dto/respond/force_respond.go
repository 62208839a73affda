package respond

// ForceRespond is a crusade force. SupplyUsed is the sum of points_cost
// over the force's units, recomputed on every read and never stored.
type ForceRespond struct {
	Uuid         string `json:"uuid"`
	CampaignId   string `json:"campaign_id"`
	UserId       string `json:"user_id"`
	Name         string `json:"name"`
	Faction      string `json:"faction"`

	SupplyLimit       int    `json:"supply_limit"`
	SupplyUsed        int    `json:"supply_used"`
	BattleTally       int    `json:"battle_tally"`
	Victories         int    `json:"victories"`
	RequisitionPoints int    `json:"requisition_points"`
	Achievements      string `json:"achievements"`
}
