// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS embeds the hero class table and the tile palette.
//
//go:embed *.json
var dataFS embed.FS
