package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tiermaker/internal/tiers"
	"tiermaker/internal/ui/views"
)

// View implements tea.Model
func (m *Model) View() string {
	styles := m.renderer.Styles()
	_, list, th := m.snapshot()
	selected := m.selectedIDs()

	var b strings.Builder

	// Header
	b.WriteString(styles.Title.Render("tiermaker"))
	if th.CurrentTheme != "" {
		b.WriteString(styles.Subtitle.Render("  theme: " + th.CurrentTheme))
		if m.config.UISettings.ShowCategories && len(th.Categories) > 0 {
			b.WriteString(styles.Dim.Render(" · " + strings.Join(th.Categories, ", ")))
		}
	}
	b.WriteString("\n\n")

	// Tiers
	var rows []string
	for i, tier := range list {
		isCurrent := m.focus == tierPane && i == m.tierCursor
		cursor := -1
		if isCurrent {
			cursor = m.itemCursor
		}
		rows = append(rows, m.renderer.RenderTierRow(tier, isCurrent, cursor, selected, m.width-8))
	}
	if len(rows) == 0 {
		rows = append(rows, styles.Dim.Render("no tiers, press N to add one or R to reset"))
	}
	tierStyle := styles.Pane
	if m.focus == tierPane {
		tierStyle = styles.PaneFocused
	}
	b.WriteString(tierStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)))
	b.WriteString("\n")

	// Pool
	b.WriteString(m.renderer.RenderPool(m.pool(), m.poolCursor, m.focus == poolPane, selected, m.filter))
	b.WriteString("\n")

	// Prompt or status
	switch m.mode {
	case modeNormal:
		if m.status != "" {
			if m.statusErr {
				b.WriteString(styles.StatusError.Render(m.status))
			} else {
				b.WriteString(styles.Status.Render(m.status))
			}
			b.WriteString("\n")
		}
	case modeConfirmReset:
		b.WriteString(styles.Confirm.Render("Reset all tiers to the defaults? (y/N)"))
		b.WriteString("\n")
	default:
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	b.WriteString(styles.Help.Render(m.help.View(m.keys)))

	return styles.Main.Render(b.String())
}

// PlainText renders the current board without styling
func (m *Model) PlainText() string {
	c, list, th := m.snapshot()
	return views.PlainText(th.CurrentTheme, list, tiers.Unranked(c.Items, list))
}
