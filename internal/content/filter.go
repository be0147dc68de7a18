package content

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"tiermaker/internal/domain"
)

// Filter returns the items whose name or category matches pattern.
// Matching is case-insensitive; a pattern without glob syntax matches as a
// substring. An empty pattern returns items unchanged.
func Filter(items []domain.Item, pattern string) ([]domain.Item, error) {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return items, nil
	}

	g, err := compile(pattern)
	if err != nil {
		return nil, err
	}

	var out []domain.Item
	for _, item := range items {
		if g.Match(strings.ToLower(item.DisplayName())) || g.Match(strings.ToLower(item.Category)) {
			out = append(out, item)
		}
	}
	return out, nil
}

func compile(pattern string) (glob.Glob, error) {
	p := strings.ToLower(pattern)
	if !strings.ContainsAny(p, "*?[{") {
		p = "*" + glob.QuoteMeta(p) + "*"
	}
	g, err := glob.Compile(p)
	if err != nil {
		return nil, fmt.Errorf("invalid filter %q: %w", pattern, err)
	}
	return g, nil
}
