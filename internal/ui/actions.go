package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"tiermaker/internal/content"
	"tiermaker/internal/domain"
	"tiermaker/internal/importer"
	"tiermaker/internal/logging"
	"tiermaker/internal/tiers"
	"tiermaker/internal/ui/views"
)

func log() *logrus.Entry {
	return logging.NewLogger("ui")
}

// handleKey processes keys in normal mode
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status, m.statusErr = "", false

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.Close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.SwitchPane):
		if m.focus == poolPane {
			m.focus = tierPane
		} else {
			m.focus = poolPane
		}
		m.clampCursors()

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)

	case key.Matches(msg, m.keys.Left):
		if m.focus == tierPane {
			m.itemCursor--
			m.clampCursors()
		}

	case key.Matches(msg, m.keys.Right):
		if m.focus == tierPane {
			m.itemCursor++
			m.clampCursors()
		}

	case key.Matches(msg, m.keys.Place):
		n, _ := strconv.Atoi(msg.String())
		m.placeCurrent(n - 1)

	case key.Matches(msg, m.keys.Unrank):
		m.unrankCurrent()

	case key.Matches(msg, m.keys.Select):
		if item, ok := m.currentItem(); ok {
			if err := m.content.SelectItem(item); err != nil {
				m.setError(err)
			} else {
				m.setStatus(fmt.Sprintf("Selected %s", item.DisplayName()))
			}
		}

	case key.Matches(msg, m.keys.Filter):
		return m, m.enterMode(modeFilter, "filter: ", m.filter)

	case key.Matches(msg, m.keys.Import):
		return m, m.enterMode(modeImport, "import file: ", m.config.ImportPath)

	case key.Matches(msg, m.keys.EditLabel):
		if tier, ok := m.currentTier(); ok {
			m.editTier = tier.ID
			return m, m.enterMode(modeEditLabel, "label: ", tier.Label)
		}

	case key.Matches(msg, m.keys.AddTier):
		return m, m.enterMode(modeNewTier, "new tier: ", "")

	case key.Matches(msg, m.keys.Recolor):
		if tier, ok := m.currentTier(); ok {
			gradient, text := views.NextGradient(tier.Color)
			m.tiers.UpdateTierColor(tier.ID, gradient, text)
		}

	case key.Matches(msg, m.keys.DelTier):
		if tier, ok := m.currentTier(); ok {
			m.tiers.RemoveTier(tier.ID)
			m.clampCursors()
			m.setStatus(fmt.Sprintf("Deleted tier %s", tier.Label))
		}

	case key.Matches(msg, m.keys.Theme):
		_, _, th := m.snapshot()
		next := m.catalog.Next(th.CurrentTheme)
		if next == "" {
			m.setStatus("No themes configured")
		} else if err := m.catalog.Apply(m.theme, next); err != nil {
			m.setError(err)
		}

	case key.Matches(msg, m.keys.Reset):
		if m.config.UISettings.ConfirmReset {
			m.mode = modeConfirmReset
		} else {
			m.resetTiers()
		}

	case key.Matches(msg, m.keys.Clear):
		m.content.Reset()
		m.filter = ""
		m.clampCursors()
		m.setStatus("Content cleared")

	case key.Matches(msg, m.keys.Pager):
		return m, m.openPager()
	}

	return m, nil
}

// handleInputKey processes keys while a prompt is active
func (m *Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeConfirmReset {
		m.mode = modeNormal
		if msg.String() == "y" || msg.String() == "Y" {
			m.resetTiers()
		} else {
			m.setStatus("Reset cancelled")
		}
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEsc:
		m.exitMode()
		return m, nil
	case tea.KeyEnter:
		mode, value := m.mode, strings.TrimSpace(m.input.Value())
		m.exitMode()
		m.commit(mode, value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) enterMode(mode inputMode, prompt, value string) tea.Cmd {
	m.mode = mode
	m.input.Prompt = prompt
	m.input.SetValue(value)
	m.input.CursorEnd()
	return m.input.Focus()
}

func (m *Model) exitMode() {
	m.mode = modeNormal
	m.input.Blur()
	m.input.SetValue("")
}

// commit applies the value entered at a prompt
func (m *Model) commit(mode inputMode, value string) {
	switch mode {
	case modeFilter:
		if _, err := content.Filter(nil, value); err != nil {
			m.setError(err)
			return
		}
		m.filter = value
		m.poolCursor = 0
		m.focus = poolPane

	case modeImport:
		m.importFile(value)

	case modeEditLabel:
		_, list, _ := m.snapshot()
		tier, err := tiers.Find(list, m.editTier)
		if err != nil {
			m.setError(fmt.Errorf("tier label: %w", err))
			return
		}
		if value == "" {
			m.setError(fmt.Errorf("tier label: %w", domain.ErrInvalidArgument))
			return
		}
		m.tiers.UpdateTierLabel(tier.ID, value)

	case modeNewTier:
		m.addTier(value)
	}
	m.clampCursors()
}

func (m *Model) importFile(path string) {
	if path == "" {
		m.setError(fmt.Errorf("import: no file given: %w", domain.ErrInvalidArgument))
		return
	}
	items, err := importer.Load(path)
	if err != nil {
		log().WithError(err).Warn("import failed")
		m.setError(err)
		return
	}
	m.content.ImportList(items)
	m.setStatus(fmt.Sprintf("Imported %d items from %s", len(items), path))
}

func (m *Model) addTier(label string) {
	if label == "" {
		m.setError(fmt.Errorf("new tier: %w", domain.ErrInvalidArgument))
		return
	}
	_, list, _ := m.snapshot()
	preset := views.Gradients[len(list)%len(views.Gradients)]
	err := m.tiers.AddTier(domain.Tier{
		ID:        label,
		Label:     label,
		Color:     preset.Color,
		TextColor: preset.TextColor,
		Items:     []domain.Item{},
	})
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus(fmt.Sprintf("Added tier %s", label))
}

func (m *Model) resetTiers() {
	m.tiers.Reset()
	m.clampCursors()
	m.setStatus("Tiers reset")
}

func (m *Model) moveCursor(delta int) {
	if m.focus == poolPane {
		m.poolCursor += delta
	} else {
		m.tierCursor += delta
		m.itemCursor = 0
	}
	m.clampCursors()
}

// placeCurrent moves the item under the cursor into the tier at index target
func (m *Model) placeCurrent(target int) {
	item, ok := m.currentItem()
	if !ok {
		return
	}
	_, list, _ := m.snapshot()
	if target < 0 || target >= len(list) {
		m.setError(fmt.Errorf("no tier %d", target+1))
		return
	}

	dest := list[target]
	for _, t := range list {
		if t.ID == dest.ID {
			continue
		}
		if rest, removed := without(t.Items, item.ID); removed {
			m.tiers.UpdateTierItems(t.ID, rest)
		}
	}
	items, _ := without(dest.Items, item.ID)
	next := make([]domain.Item, 0, len(items)+1)
	next = append(append(next, items...), item)
	m.tiers.UpdateTierItems(dest.ID, next)

	m.clampCursors()
	m.setStatus(fmt.Sprintf("%s → %s", item.DisplayName(), dest.Label))
}

// unrankCurrent sends the tier item under the cursor back to the pool
func (m *Model) unrankCurrent() {
	if m.focus != tierPane {
		return
	}
	tier, ok := m.currentTier()
	if !ok {
		return
	}
	item, ok := m.currentItem()
	if !ok {
		return
	}
	rest, _ := without(tier.Items, item.ID)
	m.tiers.UpdateTierItems(tier.ID, rest)
	m.clampCursors()
	m.setStatus(fmt.Sprintf("%s unranked", item.DisplayName()))
}

// without returns items minus the first item with the given id
func without(items []domain.Item, id string) ([]domain.Item, bool) {
	for i, item := range items {
		if item.ID == id {
			out := make([]domain.Item, 0, len(items)-1)
			out = append(out, items[:i]...)
			return append(out, items[i+1:]...), true
		}
	}
	return items, false
}
