package tiers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiermaker/internal/domain"
)

func ids(tiers []domain.Tier) []string {
	out := make([]string, len(tiers))
	for i, t := range tiers {
		out[i] = t.ID
	}
	return out
}

func TestNewStoreHasDefaultTiers(t *testing.T) {
	s := NewStore()
	got := s.Get()

	require.Equal(t, []string{"S", "A", "B", "C", "D", "F"}, ids(got))
	assert.Equal(t, domain.DefaultTiers(), got)
	assert.Equal(t, "from-yellow-400 to-yellow-500", got[2].Color)
	assert.Equal(t, "text-black", got[2].TextColor)
	for _, tier := range got {
		assert.Empty(t, tier.Items)
	}
}

func TestAddThenRemoveRestoresOriginal(t *testing.T) {
	s := NewStore()
	original := s.Get()

	require.NoError(t, s.AddTier(domain.Tier{ID: "X", Label: "X", Color: "g", TextColor: "t", Items: []domain.Item{}}))
	got := s.Get()
	require.Len(t, got, 7)
	assert.Equal(t, "X", got[6].ID)

	s.RemoveTier("X")
	assert.Equal(t, original, s.Get())
}

func TestAddTierRejectsDuplicateID(t *testing.T) {
	s := NewStore()
	calls := 0
	s.Subscribe(func([]domain.Tier) { calls++ })

	err := s.AddTier(domain.Tier{ID: "S", Label: "again"})

	require.ErrorIs(t, err, domain.ErrDuplicateTier)
	assert.Len(t, s.Get(), 6)
	assert.Equal(t, "S", s.Get()[0].Label)
	assert.Equal(t, 1, calls)
}

func TestAddTierRejectsEmptyID(t *testing.T) {
	s := NewStore()
	err := s.AddTier(domain.Tier{Label: "nameless"})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Len(t, s.Get(), 6)
}

func TestRemoveTierIsIdempotent(t *testing.T) {
	s := NewStore()
	s.RemoveTier("B")
	once := s.Get()
	s.RemoveTier("B")

	assert.Equal(t, once, s.Get())
	assert.Equal(t, []string{"S", "A", "C", "D", "F"}, ids(s.Get()))
}

func TestRemoveUnknownTierIsNoop(t *testing.T) {
	s := NewStore()
	s.RemoveTier("nope")
	assert.Equal(t, domain.DefaultTiers(), s.Get())
}

func TestUpdateTierItemsTouchesOnlyTarget(t *testing.T) {
	s := NewStore()
	items := []domain.Item{{ID: "1"}, {ID: "2"}}

	s.UpdateTierItems("A", items)
	once := s.Get()
	s.UpdateTierItems("A", items)
	got := s.Get()

	assert.Equal(t, once, got)
	assert.Equal(t, items, got[1].Items)
	defaults := domain.DefaultTiers()
	for i, tier := range got {
		if tier.ID == "A" {
			continue
		}
		assert.Equal(t, defaults[i], tier)
	}
}

func TestUpdateTierItemsDoesNotAliasCaller(t *testing.T) {
	s := NewStore()
	items := []domain.Item{{ID: "1"}}
	s.UpdateTierItems("S", items)
	items[0].ID = "mutated"

	assert.Equal(t, "1", s.Get()[0].Items[0].ID)
}

func TestUpdateTierLabel(t *testing.T) {
	s := NewStore()
	s.UpdateTierLabel("C", "Meh")

	got := s.Get()
	assert.Equal(t, "Meh", got[3].Label)
	assert.Equal(t, "C", got[3].ID)
	assert.Equal(t, "S", got[0].Label)
}

func TestUpdateTierColorSetsBoth(t *testing.T) {
	s := NewStore()
	s.UpdateTierColor("F", "from-pink-500 to-pink-600", "text-black")

	got := s.Get()[5]
	assert.Equal(t, "from-pink-500 to-pink-600", got.Color)
	assert.Equal(t, "text-black", got.TextColor)
}

func TestUpdateUnknownTierIsNoop(t *testing.T) {
	s := NewStore()
	s.UpdateTierItems("nope", []domain.Item{{ID: "1"}})
	s.UpdateTierLabel("nope", "x")
	s.UpdateTierColor("nope", "x", "y")

	assert.Equal(t, domain.DefaultTiers(), s.Get())
}

func TestPreviousSnapshotUnchangedByUpdates(t *testing.T) {
	s := NewStore()
	before := s.Get()

	s.UpdateTierLabel("S", "Top")
	s.UpdateTierItems("S", []domain.Item{{ID: "1"}})

	assert.Equal(t, "S", before[0].Label)
	assert.Empty(t, before[0].Items)
}

func TestResetRestoresDefaults(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddTier(domain.Tier{ID: "X"}))
	s.RemoveTier("S")
	s.UpdateTierItems("A", []domain.Item{{ID: "1"}})
	s.UpdateTierLabel("B", "bee")

	s.Reset()
	assert.Equal(t, domain.DefaultTiers(), s.Get())
	s.Reset()
	assert.Equal(t, domain.DefaultTiers(), s.Get())
}

func TestResetIsNotEmptyList(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Set(nil))
	assert.Empty(t, s.Get())

	s.Reset()
	assert.Len(t, s.Get(), 6)
}

func TestSetValidatesIDs(t *testing.T) {
	s := NewStore()

	err := s.Set([]domain.Tier{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, domain.ErrDuplicateTier)

	err = s.Set([]domain.Tier{{ID: ""}})
	require.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Equal(t, domain.DefaultTiers(), s.Get())

	require.NoError(t, s.Set([]domain.Tier{{ID: "only"}}))
	assert.Equal(t, []string{"only"}, ids(s.Get()))
}

func TestSubscribersNotifiedOnEveryMutation(t *testing.T) {
	s := NewStore()
	var lengths []int
	unsub := s.Subscribe(func(tiers []domain.Tier) { lengths = append(lengths, len(tiers)) })

	require.NoError(t, s.AddTier(domain.Tier{ID: "X"}))
	s.RemoveTier("X")
	s.RemoveTier("X")
	unsub()
	s.Reset()

	assert.Equal(t, []int{6, 7, 6, 6}, lengths)
}
