// Package tiers holds the ordered list of rank tiers and the items in each.
package tiers

import (
	"fmt"

	"tiermaker/internal/domain"
	"tiermaker/internal/logging"
	"tiermaker/internal/store"
)

// Store is the tier store, seeded with the default tiers.
// Tier ids are unique: inserts with an id already present are rejected.
type Store struct {
	w *store.Writable[[]domain.Tier]
}

// NewStore creates a store holding the default tiers
func NewStore() *Store {
	return &Store{w: store.New(domain.DefaultTiers())}
}

// Get returns the current snapshot. It must not be modified.
func (s *Store) Get() []domain.Tier {
	return s.w.Get()
}

// Subscribe registers fn and calls it immediately with the current snapshot
func (s *Store) Subscribe(fn func([]domain.Tier)) store.Unsubscribe {
	return s.w.Subscribe(fn)
}

// Set replaces the whole list
func (s *Store) Set(tiers []domain.Tier) error {
	if err := validate(tiers); err != nil {
		return err
	}
	s.w.Set(domain.CloneTiers(tiers))
	return nil
}

// AddTier appends tier to the end of the list. The list is left unchanged
// when the id is empty or already taken.
func (s *Store) AddTier(tier domain.Tier) error {
	if tier.ID == "" {
		return fmt.Errorf("add tier: empty id: %w", domain.ErrInvalidArgument)
	}

	added := s.w.TryUpdate(func(tiers []domain.Tier) ([]domain.Tier, bool) {
		if indexOf(tiers, tier.ID) >= 0 {
			return tiers, false
		}
		out := make([]domain.Tier, 0, len(tiers)+1)
		out = append(out, tiers...)
		return append(out, domain.CloneTier(tier)), true
	})
	if !added {
		logging.NewLogger("tiers").WithField("tier", tier.ID).Warn("rejected duplicate tier")
		return fmt.Errorf("add tier %q: %w", tier.ID, domain.ErrDuplicateTier)
	}
	return nil
}

// RemoveTier removes the tier with the given id. Unknown ids are a no-op.
func (s *Store) RemoveTier(tierID string) {
	s.w.Update(func(tiers []domain.Tier) []domain.Tier {
		out := make([]domain.Tier, 0, len(tiers))
		for _, t := range tiers {
			if t.ID != tierID {
				out = append(out, t)
			}
		}
		return out
	})
}

// UpdateTierItems replaces the items of the matching tier
func (s *Store) UpdateTierItems(tierID string, items []domain.Item) {
	items = domain.CloneItems(items)
	s.modify(tierID, func(t *domain.Tier) { t.Items = items })
}

// UpdateTierLabel replaces the label of the matching tier
func (s *Store) UpdateTierLabel(tierID, label string) {
	s.modify(tierID, func(t *domain.Tier) { t.Label = label })
}

// UpdateTierColor replaces both the gradient and the text color of the matching tier
func (s *Store) UpdateTierColor(tierID, gradient, textColor string) {
	s.modify(tierID, func(t *domain.Tier) {
		t.Color = gradient
		t.TextColor = textColor
	})
}

// Reset restores the six default tiers
func (s *Store) Reset() {
	s.w.Set(domain.DefaultTiers())
	logging.NewLogger("tiers").Debug("tiers reset to defaults")
}

// modify copies the list, applies fn to the tier with the given id and
// stores the copy. Other tiers are shared with the previous snapshot.
func (s *Store) modify(tierID string, fn func(*domain.Tier)) {
	s.w.Update(func(tiers []domain.Tier) []domain.Tier {
		out := make([]domain.Tier, len(tiers))
		copy(out, tiers)
		if i := indexOf(out, tierID); i >= 0 {
			fn(&out[i])
		}
		return out
	})
}

func indexOf(tiers []domain.Tier, id string) int {
	for i, t := range tiers {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func validate(tiers []domain.Tier) error {
	seen := make(map[string]bool, len(tiers))
	for _, t := range tiers {
		if t.ID == "" {
			return fmt.Errorf("set tiers: empty id: %w", domain.ErrInvalidArgument)
		}
		if seen[t.ID] {
			return fmt.Errorf("set tiers: %q: %w", t.ID, domain.ErrDuplicateTier)
		}
		seen[t.ID] = true
	}
	return nil
}
