// Package dataset parses the three XML documents of a card dataset and
// assembles them into an in-memory model ready for rendering.
package dataset

// Type kinds as they appear in the type attribute of cards.xml. Any
// other value marks a subtype.
const (
	TypeKindSuper = "super"
	TypeKindCard  = "card"
)

// Rule is a single line of rule text. Number groups instances of the
// same keyword ability that must be merged when rendering; Reminder is
// the parenthetical explanatory text. Empty strings mean the attribute
// was absent.
type Rule struct {
	Number   string
	Text     string
	Reminder string
}

// TypeEntry is one entry of a card's type line, in printed order.
type TypeEntry struct {
	Name string
	Kind string
}

// Card is a single card face. Optional fields are empty when the
// dataset omits them.
type Card struct {
	Name      string
	Cost      string
	Color     string
	Power     string
	Toughness string
	Types     []TypeEntry
	Rules     []Rule
	// SecondFace is set for split and double-faced cards. A second face
	// never carries a further face of its own.
	SecondFace *Card
}

// SetInfo describes one expansion set.
type SetInfo struct {
	Code        string
	Name        string
	ReleaseDate string
	// Order is the zero-based rank of the set after sorting all sets by
	// release date. It is the only ordering key used when displaying a
	// card's print history.
	Order int
}

// PrintInstance is one appearance of a card in a set. A card can
// appear several times in the same set.
type PrintInstance struct {
	SetName string
	Rarity  string
}

// MetaEntry holds the print instances of one card, keyed by card name.
type MetaEntry struct {
	CardName  string
	Instances []PrintInstance
}

// Model is the fully assembled dataset. It is built once per run and
// read-only afterwards.
type Model struct {
	// Cards sorted by transliterated name.
	Cards []*Card
	// SetInfoByName indexes sets by their (transliterated) name.
	SetInfoByName map[string]SetInfo
	// InstancesByCardName groups print instances by card name.
	InstancesByCardName map[string][]PrintInstance
}
