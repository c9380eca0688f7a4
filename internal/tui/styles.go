package tui

import "github.com/charmbracelet/lipgloss"

// Seat tiles are CellWidth x CellHeight terminal cells.
const (
	CellWidth  = 6
	CellHeight = 3
	headerRows = 3
)

// Styles holds the lipgloss styles for every seat state.
type Styles struct {
	Title       lipgloss.Style
	Podium      lipgloss.Style
	Seat        lipgloss.Style
	Dragging    lipgloss.Style
	DragOver    lipgloss.Style
	Swapped     lipgloss.Style
	Placeholder lipgloss.Style
	Help        lipgloss.Style
}

// DefaultStyles returns the stock palette.
func DefaultStyles() Styles {
	tile := lipgloss.NewStyle().
		Width(CellWidth).
		Height(CellHeight).
		Align(lipgloss.Center, lipgloss.Center).
		Bold(true)

	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Podium:      lipgloss.NewStyle().Faint(true),
		Seat:        tile.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("63")),
		Dragging:    tile.Foreground(lipgloss.Color("250")).Background(lipgloss.Color("238")).Faint(true),
		DragOver:    tile.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214")),
		Swapped:     tile.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("42")),
		Placeholder: lipgloss.NewStyle().Width(CellWidth).Height(CellHeight),
		Help:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
