package respond

// UnitRespond is a single roster entry.
type UnitRespond struct {
	Uuid           string `json:"uuid"`
	CrusadeForceId string `json:"crusade_force_id"`
	Name           string `json:"name"`
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
