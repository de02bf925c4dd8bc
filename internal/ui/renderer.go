package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen  *Screen
	palette *gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette *gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// Render draws the room, the hero stats, and the status line.
func (r *Renderer) Render(v View) {
	r.screen.Clear()

	r.RenderMessage(v.Room, 0, tcell.StyleDefault.Bold(true))

	// Grid sits one row below the title
	for row := 0; row < world.Rows; row++ {
		for col := 0; col < world.Cols; col++ {
			tile := v.Grid[row][col]
			r.screen.SetContent(col, row+1, Glyph(tile), r.tileStyle(tile))
		}
	}

	y := world.Rows + 2
	for _, line := range strings.Split(v.HUD, "\n") {
		r.RenderMessage(line, y, tcell.StyleDefault.Foreground(tcell.ColorWhite))
		y++
	}
	r.RenderMessage(v.Status, y+1, tcell.StyleDefault.Foreground(tcell.ColorYellow))

	r.screen.Show()
}

func (r *Renderer) tileStyle(tile world.Tile) tcell.Style {
	if !tile.Visible {
		return tcell.StyleDefault.Foreground(r.palette.FogColor())
	}
	style := tcell.StyleDefault.Foreground(r.palette.Color(tile.Kind.String()))
	if tile.Kind == world.KindPlayer {
		style = style.Bold(true)
	}
	return style
}

// RenderMessage writes msg on row y starting at column 0.
func (r *Renderer) RenderMessage(msg string, y int, style tcell.Style) {
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}
