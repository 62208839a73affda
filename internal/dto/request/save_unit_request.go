package request

// SaveUnitRequest carries the complete staged unit record. An empty
// Uuid means insert; the service merges in the owning force id.
type SaveUnitRequest struct {
	Uuid           string `json:"uuid"`
	CrusadeForceId string `json:"crusade_force_id"`
	Name           string `json:"name" binding:"required"`
	Type           string `json:"type"`
	SubFaction     string `json:"sub_faction"`

	PointsCost    int `json:"points_cost"`
	CrusadePoints int `json:"crusade_points"`

	Equipment    string `json:"equipment"`
	Enhancements string `json:"enhancements"`

	BattlesPlayed    int `json:"battles_played"`
	BattlesSurvived  int `json:"battles_survived"`
	EnemiesDestroyed int `json:"enemies_destroyed"`

	BattleHonours string `json:"battle_honours"`
	BattleScars   string `json:"battle_scars"`
}
