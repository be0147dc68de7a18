package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the normal-mode key bindings
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	SwitchPane key.Binding
	Place      key.Binding
	Unrank     key.Binding
	Select     key.Binding
	Filter     key.Binding
	Import     key.Binding
	EditLabel  key.Binding
	Recolor    key.Binding
	AddTier    key.Binding
	DelTier    key.Binding
	Theme      key.Binding
	Reset      key.Binding
	Clear      key.Binding
	Pager      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev item")),
		Right:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next item")),
		SwitchPane: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch pane")),
		Place:      key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "place in tier")),
		Unrank:     key.NewBinding(key.WithKeys("x", "backspace"), key.WithHelp("x", "unrank item")),
		Select:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Import:     key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "import list")),
		EditLabel:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit label")),
		Recolor:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "recolor tier")),
		AddTier:    key.NewBinding(key.WithKeys("N"), key.WithHelp("N", "new tier")),
		DelTier:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete tier")),
		Theme:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "next theme")),
		Reset:      key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset tiers")),
		Clear:      key.NewBinding(key.WithKeys("C"), key.WithHelp("C", "clear content")),
		Pager:      key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view as text")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SwitchPane, k.Place, k.Unrank, k.Filter, k.Import, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.SwitchPane},
		{k.Place, k.Unrank, k.Select, k.Filter, k.Import},
		{k.EditLabel, k.Recolor, k.AddTier, k.DelTier},
		{k.Theme, k.Reset, k.Clear, k.Pager, k.Help, k.Quit},
	}
}
