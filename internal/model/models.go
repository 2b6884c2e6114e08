package model

// Category is a named grouping of catalog items. Categories are static
// reference data held in memory; they are never persisted.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// CategoryPage is the wire shape of the type/{id} endpoint: the category name
// plus its ordered member list.
type CategoryPage struct {
	Name    string       `json:"name"`
	Members []MemberSlot `json:"pokemon"`
}

// MemberSlot wraps a member reference together with its slot number, matching
// the nesting of the remote response.
type MemberSlot struct {
	Member MemberRef `json:"pokemon"`
	Slot   int       `json:"slot"`
}

// MemberRef pairs a display name with the URL used to fetch the full item
// record lazily. The URL is opaque and passed through verbatim.
type MemberRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Item is the full record of a single catalog entry. A subset of items is
// durably persisted when the user marks them favorite.
type Item struct {
	ID      int     `json:"id" db:"id"`
	Name    string  `json:"name" db:"name"`
	Weight  int     `json:"weight" db:"weight"`
	Height  int     `json:"height" db:"height"`
	Sprites Sprites `json:"sprites" db:"-"`
	Stats   []Stat  `json:"stats" db:"-"`
}

// Sprites holds the item's image URLs.
type Sprites struct {
	FrontDefault string `json:"front_default"`
}

// Stat is one named base-stat value.
type Stat struct {
	BaseValue int      `json:"base_stat"`
	Effort    int      `json:"effort"`
	Stat      StatName `json:"stat"`
}

type StatName struct {
	Name string `json:"name"`
}

// Equal reports full structural equality, stats included. Favorite membership
// is keyed by ID alone; structural equality is for list diffing.
func (i Item) Equal(other Item) bool {
	if i.ID != other.ID || i.Name != other.Name || i.Weight != other.Weight ||
		i.Height != other.Height || i.Sprites != other.Sprites {
		return false
	}
	if len(i.Stats) != len(other.Stats) {
		return false
	}
	for n, s := range i.Stats {
		if s != other.Stats[n] {
			return false
		}
	}
	return true
}

// Categories returns the fixed set of known categories in display order.
// The first entry is the default selection at startup.
func Categories() []Category {
	return []Category{
		{ID: 9, Name: "Steel"},
		{ID: 10, Name: "Fire"},
		{ID: 11, Name: "Water"},
		{ID: 12, Name: "Grass"},
		{ID: 13, Name: "Electric"},
		{ID: 14, Name: "Psychic"},
		{ID: 16, Name: "Dragon"},
		{ID: 17, Name: "Dark"},
		{ID: 18, Name: "Fairy"},
	}
}
