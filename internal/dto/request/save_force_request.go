package request

// SaveForceRequest carries the complete staged force record. An empty
// Uuid means insert; the service merges in the campaign and owner ids.
// Numeric fields are typed, so malformed numeric text fails binding
// instead of reaching the store.
type SaveForceRequest struct {
	Uuid       string `json:"uuid"`
	CampaignId string `json:"campaign_id"`
	Name       string `json:"name" binding:"required"`
	Faction    string `json:"faction" binding:"required"`

	SupplyLimit       int    `json:"supply_limit"`
	BattleTally       int    `json:"battle_tally"`
	Victories         int    `json:"victories"`
	RequisitionPoints int    `json:"requisition_points"`
	Achievements      string `json:"achievements"`
}
