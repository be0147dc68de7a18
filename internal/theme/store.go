// Package theme holds the active theme and its category list.
package theme

import (
	"tiermaker/internal/domain"
	"tiermaker/internal/logging"
	"tiermaker/internal/store"
)

// Store is the theme store
type Store struct {
	w *store.Writable[domain.ThemeState]
}

// NewStore creates a store with no theme and no categories
func NewStore() *Store {
	return &Store{w: store.New(domain.ThemeState{Categories: []string{}})}
}

// Get returns the current snapshot. The category slice must not be modified.
func (s *Store) Get() domain.ThemeState {
	return s.w.Get()
}

// Subscribe registers fn and calls it immediately with the current snapshot
func (s *Store) Subscribe(fn func(domain.ThemeState)) store.Unsubscribe {
	return s.w.Subscribe(fn)
}

// SetTheme switches to theme and clears the categories in the same step
func (s *Store) SetTheme(theme string) {
	s.w.Set(domain.ThemeState{CurrentTheme: theme, Categories: []string{}})
	logging.NewLogger("theme").WithField("theme", theme).Debug("theme set")
}

// UpdateCategories replaces the category list and keeps the current theme.
// Categories are not merged with the previous list.
func (s *Store) UpdateCategories(categories []string) {
	cats := make([]string, len(categories))
	copy(cats, categories)
	s.w.Update(func(st domain.ThemeState) domain.ThemeState {
		st.Categories = cats
		return st
	})
}
