package model

import "testing"

func TestItemEqual(t *testing.T) {
	a := Item{
		ID: 95, Name: "onix", Weight: 2100, Height: 88,
		Sprites: Sprites{FrontDefault: "http://sprites/95.png"},
		Stats:   []Stat{{BaseValue: 35, Stat: StatName{Name: "hp"}}},
	}
	b := a
	b.Stats = []Stat{{BaseValue: 35, Stat: StatName{Name: "hp"}}}

	if !a.Equal(b) {
		t.Error("identical items reported unequal")
	}

	c := b
	c.Stats = []Stat{{BaseValue: 36, Stat: StatName{Name: "hp"}}}
	if a.Equal(c) {
		t.Error("items with differing stats reported equal")
	}

	d := a
	d.Stats = nil
	if a.Equal(d) {
		t.Error("items with differing stat counts reported equal")
	}
}

func TestCategories(t *testing.T) {
	cats := Categories()
	if len(cats) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(cats))
	}
	if cats[0].ID != 9 || cats[0].Name != "Steel" {
		t.Errorf("default category must be Steel (9), got %+v", cats[0])
	}
}
