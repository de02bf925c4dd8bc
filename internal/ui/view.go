package ui

import "github.com/samdwyer/dungeonfighters/internal/world"

// FogGlyph is drawn for cells the hero has not uncovered.
const FogGlyph = '.'

// View is everything a frame shows.
type View struct {
	Room   string
	Grid   world.Grid
	HUD    string // Hero stat block, may span lines
	Status string // Outcome of the last action
}

// Glyph returns the rune drawn for a cell.
func Glyph(t world.Tile) rune {
	if !t.Visible {
		return FogGlyph
	}
	return t.Symbol()
}
