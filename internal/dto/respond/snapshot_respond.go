package respond

// SnapshotRespond is the bulk load: campaigns with embedded members,
// all forces and all units, replacing the client's collections
// wholesale. It is produced whole or not at all.
type SnapshotRespond struct {
	Campaigns []CampaignRespond `json:"campaigns"`
	Forces    []ForceRespond    `json:"forces"`
	Units     []UnitRespond     `json:"units"`
}
