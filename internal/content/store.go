// Package content holds the universe of importable items and the current selection.
package content

import (
	"fmt"

	"tiermaker/internal/domain"
	"tiermaker/internal/logging"
	"tiermaker/internal/store"
)

// Store is the content store. Duplicate imports and duplicate selections are
// kept as-is.
type Store struct {
	w *store.Writable[domain.ContentState]
}

// NewStore creates an empty content store
func NewStore() *Store {
	return &Store{w: store.New(emptyState())}
}

func emptyState() domain.ContentState {
	return domain.ContentState{Items: []domain.Item{}, SelectedItems: []domain.Item{}}
}

// Get returns the current snapshot. The slices must not be modified.
func (s *Store) Get() domain.ContentState {
	return s.w.Get()
}

// Subscribe registers fn and calls it immediately with the current snapshot
func (s *Store) Subscribe(fn func(domain.ContentState)) store.Unsubscribe {
	return s.w.Subscribe(fn)
}

// ImportList appends list to the items. An empty list still notifies.
func (s *Store) ImportList(list []domain.Item) {
	s.w.Update(func(st domain.ContentState) domain.ContentState {
		items := make([]domain.Item, 0, len(st.Items)+len(list))
		items = append(items, st.Items...)
		items = append(items, list...)
		st.Items = items
		return st
	})
	logging.NewLogger("content").WithField("count", len(list)).Debug("imported items")
}

// UpdateContent replaces the items wholesale; the selection is kept
func (s *Store) UpdateContent(content []domain.Item) {
	s.w.Update(func(st domain.ContentState) domain.ContentState {
		st.Items = domain.CloneItems(content)
		return st
	})
	logging.NewLogger("content").WithField("count", len(content)).Debug("replaced items")
}

// SelectItem appends item to the selection
func (s *Store) SelectItem(item domain.Item) error {
	if item.IsZero() {
		return fmt.Errorf("select item: %w", domain.ErrInvalidArgument)
	}
	s.w.Update(func(st domain.ContentState) domain.ContentState {
		selected := make([]domain.Item, 0, len(st.SelectedItems)+1)
		selected = append(selected, st.SelectedItems...)
		st.SelectedItems = append(selected, item)
		return st
	})
	return nil
}

// Reset empties both items and selection
func (s *Store) Reset() {
	s.w.Set(emptyState())
}
