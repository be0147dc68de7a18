package tiers

import (
	"fmt"

	"tiermaker/internal/domain"
)

// Find returns the tier with the given id
func Find(tiers []domain.Tier, id string) (domain.Tier, error) {
	if i := indexOf(tiers, id); i >= 0 {
		return tiers[i], nil
	}
	return domain.Tier{}, fmt.Errorf("%q: %w", id, domain.ErrTierNotFound)
}

// Placed maps every ranked item id to the id of the tier holding it
func Placed(tiers []domain.Tier) map[string]string {
	placed := make(map[string]string)
	for _, t := range tiers {
		for _, item := range t.Items {
			placed[item.ID] = t.ID
		}
	}
	return placed
}

// Unranked returns the items that are not placed in any tier, in input order
func Unranked(items []domain.Item, tiers []domain.Tier) []domain.Item {
	placed := Placed(tiers)
	var out []domain.Item
	for _, item := range items {
		if _, ok := placed[item.ID]; !ok {
			out = append(out, item)
		}
	}
	return out
}
