package domain

// Item represents an importable content entry that can be ranked
type Item struct {
	ID       string            `json:"id" yaml:"id" toml:"id"`
	Name     string            `json:"name" yaml:"name" toml:"name"`
	Image    string            `json:"image,omitempty" yaml:"image,omitempty" toml:"image,omitempty"`
	Category string            `json:"category,omitempty" yaml:"category,omitempty" toml:"category,omitempty"`
	Meta     map[string]string `json:"meta,omitempty" yaml:"meta,omitempty" toml:"meta,omitempty"`
}

// DisplayName returns the name shown in the UI, falling back to the id
func (i Item) DisplayName() string {
	if i.Name != "" {
		return i.Name
	}
	return i.ID
}

// Tier represents a rank bucket and the items placed in it
type Tier struct {
	ID        string
	Label     string
	Color     string // gradient descriptor, e.g. "from-red-600 to-red-700"
	TextColor string // e.g. "text-white"
	Items     []Item
}

// ContentState is the universe of imported items plus the current selection
type ContentState struct {
	Items         []Item
	SelectedItems []Item
}

// ThemeState holds the active theme and its categories
type ThemeState struct {
	CurrentTheme string
	Categories   []string
}

// DefaultTiers returns a fresh copy of the six default tiers.
// Callers may modify the result freely.
func DefaultTiers() []Tier {
	return []Tier{
		{ID: "S", Label: "S", Color: "from-red-600 to-red-700", TextColor: "text-white", Items: []Item{}},
		{ID: "A", Label: "A", Color: "from-orange-500 to-orange-600", TextColor: "text-white", Items: []Item{}},
		{ID: "B", Label: "B", Color: "from-yellow-400 to-yellow-500", TextColor: "text-black", Items: []Item{}},
		{ID: "C", Label: "C", Color: "from-green-500 to-green-600", TextColor: "text-white", Items: []Item{}},
		{ID: "D", Label: "D", Color: "from-blue-500 to-blue-600", TextColor: "text-white", Items: []Item{}},
		{ID: "F", Label: "F", Color: "from-purple-600 to-purple-700", TextColor: "text-white", Items: []Item{}},
	}
}

// CloneItems copies a slice of items. A nil input yields an empty, non-nil slice.
func CloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// CloneTier copies a tier including its item list
func CloneTier(t Tier) Tier {
	t.Items = CloneItems(t.Items)
	return t
}

// CloneTiers copies a tier list and every tier's item list
func CloneTiers(tiers []Tier) []Tier {
	out := make([]Tier, len(tiers))
	for i, t := range tiers {
		out[i] = CloneTier(t)
	}
	return out
}

// IsZero reports whether the item carries no data at all
func (i Item) IsZero() bool {
	return i.ID == "" && i.Name == "" && i.Image == "" && i.Category == "" && len(i.Meta) == 0
}
