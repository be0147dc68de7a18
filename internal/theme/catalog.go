package theme

import (
	"fmt"
	"sort"

	"tiermaker/internal/domain"
)

// Catalog maps theme names to their category lists
type Catalog map[string][]string

// DefaultCatalog is used when the configuration defines no themes
func DefaultCatalog() Catalog {
	return Catalog{
		"games":  {"action", "rpg", "strategy", "puzzle"},
		"food":   {"breakfast", "lunch", "dinner", "snacks"},
		"movies": {"drama", "comedy", "horror", "sci-fi"},
	}
}

// Names returns the theme names in sorted order
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the theme after current in sorted order, wrapping around.
// An unknown or empty current yields the first theme.
func (c Catalog) Next(current string) string {
	names := c.Names()
	if len(names) == 0 {
		return ""
	}
	for i, name := range names {
		if name == current {
			return names[(i+1)%len(names)]
		}
	}
	return names[0]
}

// Apply sets the named theme on s and then loads its categories
func (c Catalog) Apply(s *Store, name string) error {
	cats, ok := c[name]
	if !ok {
		return fmt.Errorf("unknown theme %q: %w", name, domain.ErrInvalidArgument)
	}
	s.SetTheme(name)
	s.UpdateCategories(cats)
	return nil
}
