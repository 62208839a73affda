// Package factions ships the faction catalog used to validate campaign
// joins and force creation.
package factions

// Allegiance groups factions the way the join picker presents them.
type Allegiance string

const (
	Imperium Allegiance = "Imperium"
	Chaos    Allegiance = "Chaos"
	Xenos    Allegiance = "Xenos"
)

// Allegiances lists the groups in display order; map iteration over
// Catalog would shuffle the picker.
var Allegiances = []Allegiance{Imperium, Chaos, Xenos}

// Catalog maps each allegiance to its factions. Order matters for
// display, so slices rather than sets.
var Catalog = map[Allegiance][]string{
	Imperium: {
		"Adeptus Custodes",
		"Adeptus Mechanicus",
		"Astra Militarum",
		"Deathwatch",
		"Grey Knights",
		"Imperial Knights",
		"Sisters of Battle",
		"Space Marines",
	},
	Chaos: {
		"Chaos Daemons",
		"Chaos Space Marines",
		"Death Guard",
		"Thousand Sons",
	},
	Xenos: {
		"Aeldari",
		"Drukhari",
		"Harlequins",
		"Necrons",
		"Orks",
		"Tau Empire",
		"Tyranids",
	},
}

// DefaultFaction is assigned to a campaign creator's automatic
// membership row.
const DefaultFaction = "Space Marines"

// IsValid reports whether name appears anywhere in the catalog.
func IsValid(name string) bool {
	for _, group := range Catalog {
		for _, faction := range group {
			if faction == name {
				return true
			}
		}
	}
	return false
}
