package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tiermaker/internal/domain"
)

// Renderer renders the tier board and the unranked pool
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Styles returns the renderer's styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// RenderTierRow renders one tier: a colored label cell followed by its items.
// itemCursor is the highlighted item index, or -1 for none.
func (r *Renderer) RenderTierRow(tier domain.Tier, isCurrent bool, itemCursor int, selected map[string]bool, width int) string {
	label := r.styles.TierLabel.
		Background(GradientColor(tier.Color)).
		Foreground(TextColor(tier.TextColor)).
		Render(tier.Label)

	marker := "  "
	if isCurrent {
		marker = r.styles.Highlight.Render("▶ ")
	}

	var cells []string
	for i, item := range tier.Items {
		cells = append(cells, r.renderItem(item, isCurrent && i == itemCursor, selected[item.ID]))
	}
	body := strings.Join(cells, " ")
	if body == "" {
		body = r.styles.Dim.Render("(empty)")
	}

	line := marker + label + " " + body
	if width > 0 {
		line = lipgloss.NewStyle().MaxWidth(width).Render(line)
	}
	return line
}

// RenderPool renders the unranked items as a vertical list
func (r *Renderer) RenderPool(items []domain.Item, cursor int, focused bool, selected map[string]bool, filter string) string {
	var b strings.Builder

	title := fmt.Sprintf("Unranked (%d)", len(items))
	if filter != "" {
		title += " " + r.styles.Filter.Render("filter: "+filter)
	}
	b.WriteString(r.styles.Subtitle.Render(title))
	b.WriteString("\n")

	if len(items) == 0 {
		b.WriteString(r.styles.Dim.Render("nothing to rank, press i to import a list"))
	}
	for i, item := range items {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.renderItem(item, focused && i == cursor, selected[item.ID]))
		if item.Category != "" {
			b.WriteString(r.styles.Dim.Render(" " + item.Category))
		}
	}

	style := r.styles.Pane
	if focused {
		style = r.styles.PaneFocused
	}
	return style.Render(b.String())
}

func (r *Renderer) renderItem(item domain.Item, isCursor, isSelected bool) string {
	name := item.DisplayName()
	if isSelected {
		name = r.styles.Selected.Render("✓ " + name)
	}
	if isCursor {
		return r.styles.ItemCursor.Render(name)
	}
	return r.styles.Item.Render(name)
}

// PlainText renders the board without styling, one tier per line
func PlainText(theme string, tiers []domain.Tier, unranked []domain.Item) string {
	var b strings.Builder
	if theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n\n", theme)
	}
	for _, t := range tiers {
		names := make([]string, len(t.Items))
		for i, item := range t.Items {
			names[i] = item.DisplayName()
		}
		fmt.Fprintf(&b, "%-6s | %s\n", t.Label, strings.Join(names, ", "))
	}
	if len(unranked) > 0 {
		names := make([]string, len(unranked))
		for i, item := range unranked {
			names[i] = item.DisplayName()
		}
		fmt.Fprintf(&b, "\nUnranked: %s\n", strings.Join(names, ", "))
	}
	return b.String()
}
