// Package ui is the terminal front end composing the content, tier and theme stores.
package ui

import (
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tiermaker/internal/config"
	"tiermaker/internal/content"
	"tiermaker/internal/domain"
	"tiermaker/internal/store"
	"tiermaker/internal/theme"
	"tiermaker/internal/tiers"
	"tiermaker/internal/ui/views"
)

type pane int

const (
	poolPane pane = iota
	tierPane
)

type inputMode int

const (
	modeNormal inputMode = iota
	modeFilter
	modeImport
	modeEditLabel
	modeNewTier
	modeConfirmReset
)

// Model represents the UI state
type Model struct {
	config  *config.Config
	content *content.Store
	tiers   *tiers.Store
	theme   *theme.Store
	catalog theme.Catalog

	// Snapshots are written by store subscribers, which may run on any goroutine.
	mu          sync.Mutex
	contentSnap domain.ContentState
	tierSnap    []domain.Tier
	themeSnap   domain.ThemeState
	unsubs      []store.Unsubscribe
	changes     chan struct{}

	width  int
	height int
	focus  pane

	poolCursor int
	tierCursor int
	itemCursor int

	mode      inputMode
	input     textinput.Model
	editTier  string // id of the tier whose label is being edited
	filter    string
	status    string
	statusErr bool

	help     help.Model
	keys     keyMap
	renderer *views.Renderer
	pager    *Pager
}

// NewModel creates a new UI model and subscribes it to the stores
func NewModel(cfg *config.Config, c *content.Store, t *tiers.Store, th *theme.Store) *Model {
	ti := textinput.New()
	ti.CharLimit = 256

	m := &Model{
		config:   cfg,
		content:  c,
		tiers:    t,
		theme:    th,
		catalog:  theme.Catalog(cfg.Themes),
		changes:  make(chan struct{}, 1),
		input:    ti,
		help:     help.New(),
		keys:     newKeyMap(),
		renderer: views.NewRenderer(views.NewStyles()),
		pager:    NewPager(nil),
	}

	m.unsubs = append(m.unsubs,
		c.Subscribe(func(st domain.ContentState) {
			m.mu.Lock()
			m.contentSnap = st
			m.mu.Unlock()
			m.notify()
		}),
		t.Subscribe(func(list []domain.Tier) {
			m.mu.Lock()
			m.tierSnap = list
			m.mu.Unlock()
			m.notify()
		}),
		th.Subscribe(func(st domain.ThemeState) {
			m.mu.Lock()
			m.themeSnap = st
			m.mu.Unlock()
			m.notify()
		}),
	)

	return m
}

// SetProgram gives the model access to the running program, needed to hand
// the terminal over to the pager
func (m *Model) SetProgram(p *tea.Program) {
	m.pager = NewPager(p)
}

// Changes delivers a signal whenever a store publishes a snapshot. Signals
// coalesce: one pending signal stands for any number of changes.
func (m *Model) Changes() <-chan struct{} {
	return m.changes
}

// Close unsubscribes the model from all stores
func (m *Model) Close() {
	for _, unsub := range m.unsubs {
		unsub()
	}
	m.unsubs = nil
}

// ChangedMsg is the message the program should receive for each Changes signal
func ChangedMsg() tea.Msg {
	return storeChangedMsg{}
}

func (m *Model) notify() {
	select {
	case m.changes <- struct{}{}:
	default:
	}
}

// snapshot returns the latest state of all three stores
func (m *Model) snapshot() (domain.ContentState, []domain.Tier, domain.ThemeState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.contentSnap, m.tierSnap, m.themeSnap
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	if m.config.Theme != "" {
		if err := m.catalog.Apply(m.theme, m.config.Theme); err != nil {
			m.setError(err)
		}
	}
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case storeChangedMsg:
		m.clampCursors()
		return m, nil

	case pagerDoneMsg:
		if msg.err != nil {
			log().WithError(msg.err).Warn("pager failed")
			m.setError(msg.err)
		}
		return m, nil

	case tea.KeyMsg:
		if m.mode != modeNormal {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}

	if m.mode != modeNormal {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// pool returns the unranked items after applying the filter
func (m *Model) pool() []domain.Item {
	c, t, _ := m.snapshot()
	unranked := tiers.Unranked(c.Items, t)
	filtered, err := content.Filter(unranked, m.filter)
	if err != nil {
		return unranked
	}
	return filtered
}

// selectedIDs returns the ids of the selected items
func (m *Model) selectedIDs() map[string]bool {
	c, _, _ := m.snapshot()
	ids := make(map[string]bool, len(c.SelectedItems))
	for _, item := range c.SelectedItems {
		ids[item.ID] = true
	}
	return ids
}

// currentTier returns the tier under the cursor
func (m *Model) currentTier() (domain.Tier, bool) {
	_, t, _ := m.snapshot()
	if m.tierCursor < 0 || m.tierCursor >= len(t) {
		return domain.Tier{}, false
	}
	return t[m.tierCursor], true
}

// currentItem returns the item under the cursor in the focused pane
func (m *Model) currentItem() (domain.Item, bool) {
	if m.focus == poolPane {
		pool := m.pool()
		if m.poolCursor < 0 || m.poolCursor >= len(pool) {
			return domain.Item{}, false
		}
		return pool[m.poolCursor], true
	}
	tier, ok := m.currentTier()
	if !ok || m.itemCursor < 0 || m.itemCursor >= len(tier.Items) {
		return domain.Item{}, false
	}
	return tier.Items[m.itemCursor], true
}

func (m *Model) clampCursors() {
	_, t, _ := m.snapshot()
	m.poolCursor = clamp(m.poolCursor, len(m.pool()))
	m.tierCursor = clamp(m.tierCursor, len(t))
	if tier, ok := m.currentTier(); ok {
		m.itemCursor = clamp(m.itemCursor, len(tier.Items))
	} else {
		m.itemCursor = 0
	}
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}
