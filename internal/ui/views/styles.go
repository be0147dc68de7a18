package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Dim         lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Filter      lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Pane        lipgloss.Style
	PaneFocused lipgloss.Style
	TierLabel   lipgloss.Style
	Item        lipgloss.Style
	ItemCursor  lipgloss.Style
	Selected    lipgloss.Style
	Highlight   lipgloss.Style
	Confirm     lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Subtitle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Dim:         lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Filter:      lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		Help:        lipgloss.NewStyle().Faint(true),
		Main:        lipgloss.NewStyle().Padding(1, 2),
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		PaneFocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		TierLabel: lipgloss.NewStyle().
			Bold(true).
			Width(7).
			Align(lipgloss.Center),
		Item:       lipgloss.NewStyle().Padding(0, 1),
		ItemCursor: lipgloss.NewStyle().Padding(0, 1).Background(lipgloss.Color("238")).Bold(true),
		Selected:   lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Confirm:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
	}
}
