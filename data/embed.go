// Package data provides the bundled dungeon maps.
package data

import (
	"embed"
	"io/fs"
)

// mapsFS embeds the .map and .links files at build time.
//
//go:embed maps
var mapsFS embed.FS

// Maps returns the bundled maps with names relative to the maps directory.
func Maps() fs.FS {
	sub, err := fs.Sub(mapsFS, "maps")
	if err != nil {
		panic(err)
	}
	return sub
}
