package views

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"tiermaker/internal/domain"
)

func TestGradientColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#dc2626"), GradientColor("from-red-600 to-red-700"))
	assert.Equal(t, lipgloss.Color("#facc15"), GradientColor("to-blue-500 from-yellow-400"))
	assert.Equal(t, lipgloss.Color("#6b7280"), GradientColor("g"))
}

func TestTextColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#ffffff"), TextColor("text-white"))
	assert.Equal(t, lipgloss.Color("#000000"), TextColor("text-black"))
	assert.Equal(t, lipgloss.Color("#6b7280"), TextColor("t"))
}

func TestNextGradientWraps(t *testing.T) {
	color, text := NextGradient("from-red-600 to-red-700")
	assert.Equal(t, "from-orange-500 to-orange-600", color)
	assert.Equal(t, "text-white", text)

	last := Gradients[len(Gradients)-1]
	color, _ = NextGradient(last.Color)
	assert.Equal(t, Gradients[0].Color, color)

	color, _ = NextGradient("custom")
	assert.Equal(t, Gradients[0].Color, color)
}

func TestPlainText(t *testing.T) {
	tiers := domain.DefaultTiers()[:2]
	tiers[0].Items = []domain.Item{{ID: "1", Name: "One"}, {ID: "2"}}

	out := PlainText("games", tiers, []domain.Item{{ID: "3", Name: "Three"}})

	assert.Equal(t, "Theme: games\n\nS      | One, 2\nA      | \n\nUnranked: Three\n", out)
}

func TestRenderTierRowShowsItems(t *testing.T) {
	r := NewRenderer(NewStyles())
	tier := domain.DefaultTiers()[0]
	tier.Items = []domain.Item{{ID: "1", Name: "Pizza"}}

	out := r.RenderTierRow(tier, true, 0, nil, 0)
	assert.Contains(t, out, "Pizza")
	assert.Contains(t, out, "S")

	empty := r.RenderTierRow(domain.DefaultTiers()[1], false, -1, nil, 0)
	assert.Contains(t, empty, "(empty)")
}

func TestRenderPool(t *testing.T) {
	r := NewRenderer(NewStyles())
	out := r.RenderPool([]domain.Item{{ID: "1", Name: "Pizza", Category: "food"}}, 0, true, map[string]bool{"1": true}, "piz")

	assert.Contains(t, out, "Unranked (1)")
	assert.Contains(t, out, "filter: piz")
	assert.Contains(t, out, "Pizza")
	assert.Contains(t, out, "food")
}
