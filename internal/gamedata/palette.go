package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Palette maps tile kind names to hex colors.
type Palette struct {
	Fog   string            `json:"fog"`   // Color for cells not yet uncovered
	Tiles map[string]string `json:"tiles"` // Kind name (e.g. "wall") to hex color
}

// LoadPalette loads the tile palette from the embedded palette.json file
// and checks that every color parses.
func LoadPalette() (*Palette, error) {
	p, err := Load[Palette]("palette.json")
	if err != nil {
		return nil, err
	}
	if _, err := ParseHexColor(p.Fog); err != nil {
		return nil, fmt.Errorf("palette fog: %w", err)
	}
	for kind, hex := range p.Tiles {
		if _, err := ParseHexColor(hex); err != nil {
			return nil, fmt.Errorf("palette %s: %w", kind, err)
		}
	}
	return &p, nil
}

// MustLoadPalette loads the palette, panicking on error.
func MustLoadPalette() *Palette {
	p, err := LoadPalette()
	if err != nil {
		panic(err)
	}
	return p
}

// Hex returns the hex color for a tile kind, or the fog color if the
// kind has no entry.
func (p *Palette) Hex(kind string) string {
	if hex, ok := p.Tiles[kind]; ok {
		return hex
	}
	return p.Fog
}

// Color returns the tcell color for a tile kind.
func (p *Palette) Color(kind string) tcell.Color {
	c, err := ParseHexColor(p.Hex(kind))
	if err != nil {
		return tcell.ColorWhite
	}
	return c
}

// FogColor returns the tcell color for hidden cells.
func (p *Palette) FogColor() tcell.Color {
	c, err := ParseHexColor(p.Fog)
	if err != nil {
		return tcell.ColorBlack
	}
	return c
}

// ParseHexColor converts "#RRGGBB" or "RRGGBB" to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: want 6 digits", hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}
