// Package main is the entry point for Dungeon Fighters.
package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/samdwyer/dungeonfighters/data"
	"github.com/samdwyer/dungeonfighters/internal/config"
	"github.com/samdwyer/dungeonfighters/internal/entity"
	"github.com/samdwyer/dungeonfighters/internal/game"
	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/telemetry"
	"github.com/samdwyer/dungeonfighters/internal/ui"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

func main() {
	// Load .env file for local development
	// This makes HONEYCOMB_DUNGEONFIGHTERS_API_KEY available
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	mapName := flag.String("map", cfg.Dungeon.MapName, "name of the starting map")
	mapDir := flag.String("maps-dir", cfg.Dungeon.MapDir, "directory of .map and .links files (bundled maps when empty)")
	class := flag.String("class", cfg.Dungeon.HeroClass, "hero class")
	rule := flag.String("rule", cfg.Dungeon.FightRule.String(), "fight rule: standard or legacy")
	colorOut := flag.Bool("color", false, "color the plain-text output")
	flag.Parse()

	fightRule, err := config.ParseRule(*rule)
	if err != nil {
		log.Fatalf("Invalid -rule: %v", err)
	}

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	switch {
	case errors.Is(err, telemetry.ErrNoAPIKey):
		// Tracing stays on the no-op provider
	case err != nil:
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Game will run without observability")
	default:
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	var maps fs.FS = data.Maps()
	if *mapDir != "" {
		maps = os.DirFS(*mapDir)
	}
	w, err := world.NewLoader(maps).Load(ctx, *mapName)
	if err != nil {
		log.Fatalf("Failed to load dungeon: %v", err)
	}

	def, err := gamedata.MustLoadClassRegistry().Get(*class)
	if err != nil {
		log.Fatalf("Invalid -class: %v", err)
	}
	hero := entity.NewHero(def, entity.WithRule(fightRule))

	var opts []game.Option
	if *colorOut {
		opts = append(opts, game.WithPalette(gamedata.MustLoadPalette()))
	}
	g := game.New(w, hero, opts...)

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		if err := g.RunScript(ctx, os.Stdin, os.Stdout); err != nil {
			log.Fatalf("Game error: %v", err)
		}
		return
	}

	screen, err := ui.NewScreen()
	if err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	err = g.Run(ctx, screen)
	screen.Close()
	if err != nil {
		log.Fatalf("Game error: %v", err)
	}
}
