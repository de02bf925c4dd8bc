// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/samdwyer/dungeonfighters/internal/combat"
	"github.com/samdwyer/dungeonfighters/internal/telemetry"
)

// DefaultMap is the room the hero starts in.
const DefaultMap = "entry"

// Config holds all configuration for the application
type Config struct {
	Dungeon   DungeonConfig
	Telemetry telemetry.Config
}

// DungeonConfig selects the world and the hero.
type DungeonConfig struct {
	MapName   string
	MapDir    string // Empty means the bundled maps
	HeroClass string // Empty means the default class
	FightRule combat.Rule
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Dungeon: DungeonConfig{
			MapName:   getEnvOrDefault("DUNGEON_MAP", DefaultMap),
			MapDir:    os.Getenv("DUNGEON_MAP_DIR"),
			HeroClass: os.Getenv("DUNGEON_CLASS"),
		},
		Telemetry: telemetry.Config{
			Endpoint: os.Getenv("HONEYCOMB_ENDPOINT"),
			APIKey:   os.Getenv("HONEYCOMB_DUNGEONFIGHTERS_API_KEY"),
			Dataset:  getEnvOrDefault("HONEYCOMB_DUNGEONFIGHTERS_DATASET", "dungeonfighters"),
		},
	}

	rule, err := ParseRule(os.Getenv("DUNGEON_FIGHT_RULE"))
	if err != nil {
		return nil, err
	}
	cfg.Dungeon.FightRule = rule

	return cfg, nil
}

// ParseRule resolves a fight rule name, reporting unknown names as errors.
func ParseRule(name string) (combat.Rule, error) {
	rule, ok := combat.ParseRule(name)
	if !ok {
		return rule, fmt.Errorf("unknown fight rule %q (want %q or %q)",
			name, combat.RuleStandard, combat.RuleLegacy)
	}
	return rule, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
