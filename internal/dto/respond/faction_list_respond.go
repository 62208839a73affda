package respond

// FactionGroupRespond is one allegiance with its factions in display
// order.
type FactionGroupRespond struct {
	Allegiance string   `json:"allegiance"`
	Factions   []string `json:"factions"`
}
