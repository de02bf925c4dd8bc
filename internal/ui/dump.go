package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

// Dump writes v as plain text: the room name, one line per grid row, the
// HUD, and the status line when set. A nil palette disables color.
func Dump(w io.Writer, v View, palette *gamedata.Palette) error {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s]\n", v.Room)
	for row := 0; row < world.Rows; row++ {
		for col := 0; col < world.Cols; col++ {
			b.WriteString(cell(v.Grid[row][col], palette))
		}
		b.WriteByte('\n')
	}
	if v.HUD != "" {
		b.WriteString(v.HUD)
		b.WriteByte('\n')
	}
	if v.Status != "" {
		b.WriteString(v.Status)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cell(t world.Tile, palette *gamedata.Palette) string {
	glyph := string(Glyph(t))
	if palette == nil {
		return glyph
	}
	hex := palette.Fog
	if t.Visible {
		hex = palette.Hex(t.Kind.String())
	}
	return color.HEX(hex).Sprint(glyph)
}
