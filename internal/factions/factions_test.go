package factions

import "testing"

func TestIsValid(t *testing.T) {
	for _, name := range []string{"Space Marines", "Death Guard", "Necrons"} {
		if !IsValid(name) {
			t.Errorf("%q should be a catalog faction", name)
		}
	}
	for _, name := range []string{"", "space marines", "Squats"} {
		if IsValid(name) {
			t.Errorf("%q should not be a catalog faction", name)
		}
	}
}

func TestDefaultFactionIsInCatalog(t *testing.T) {
	if !IsValid(DefaultFaction) {
		t.Fatalf("default faction %q missing from catalog", DefaultFaction)
	}
}

func TestAllegiancesCoverCatalog(t *testing.T) {
	if len(Allegiances) != len(Catalog) {
		t.Fatalf("display order lists %d groups, catalog has %d", len(Allegiances), len(Catalog))
	}
	for _, a := range Allegiances {
		if len(Catalog[a]) == 0 {
			t.Errorf("allegiance %s has no factions", a)
		}
	}
}
