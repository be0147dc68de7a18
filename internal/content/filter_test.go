package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tiermaker/internal/domain"
)

func TestFilter(t *testing.T) {
	items := []domain.Item{
		{ID: "1", Name: "Pikachu", Category: "electric"},
		{ID: "2", Name: "Charmander", Category: "fire"},
		{ID: "3", Name: "Raichu", Category: "electric"},
		{ID: "4", Category: "water"},
	}

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"empty pattern keeps all", "", []string{"1", "2", "3", "4"}},
		{"substring", "chu", []string{"1", "3"}},
		{"case insensitive", "CHAR", []string{"2"}},
		{"category", "fire", []string{"2"}},
		{"glob", "r*chu", []string{"3"}},
		{"falls back to id", "4", []string{"4"}},
		{"no match", "mew", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(items, tt.pattern)
			require.NoError(t, err)

			var ids []string
			for _, it := range got {
				ids = append(ids, it.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestFilterInvalidPattern(t *testing.T) {
	_, err := Filter([]domain.Item{{ID: "1"}}, "[a-")
	assert.Error(t, err)
}
