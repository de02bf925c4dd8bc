// Package entity provides the hero that explores the dungeon.
package entity

import (
	"fmt"

	"github.com/samdwyer/dungeonfighters/internal/combat"
	"github.com/samdwyer/dungeonfighters/internal/gamedata"
	"github.com/samdwyer/dungeonfighters/internal/world"
)

// Hero is the player-controlled adventurer.
type Hero struct {
	Name     string   // Class display name (e.g., "Rogue")
	Class    string   // Class id (e.g., "rogue")
	HP       int      // Current hit points
	Strength int      // Damage dealt per strike
	Radius   int      // Vision radius
	Items    []string // Names of items picked up, in order

	rule combat.Rule
}

// Option configures a Hero.
type Option func(*Hero)

// WithRule sets the fight formula the hero uses.
func WithRule(rule combat.Rule) Option {
	return func(h *Hero) { h.rule = rule }
}

// NewHero creates a hero with the starting stats of def.
func NewHero(def *gamedata.ClassDef, opts ...Option) *Hero {
	h := &Hero{
		Name:     def.Name,
		Class:    def.ID,
		HP:       def.HP,
		Strength: def.Strength,
		Radius:   def.Radius,
		Items:    []string{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// String returns the hero's name and stat line.
func (h *Hero) String() string {
	return fmt.Sprintf("%s\nHP:%2d STR:%2d RAD:%2d", h.Name, h.HP, h.Strength, h.Radius)
}

// Take records item and applies its bonuses.
func (h *Hero) Take(item *world.Item) {
	h.Items = append(h.Items, item.Name)
	h.HP += item.HP
	h.Strength += item.Strength
	h.Radius += item.Radius
}

// Fight duels monster and returns the outcome text.
func (h *Hero) Fight(monster *world.Monster) string {
	return combat.Duel(h, monster, h.rule).Message
}

// VisionRadius returns the current reveal radius.
func (h *Hero) VisionRadius() int { return h.Radius }

// HitPoints returns current hit points.
func (h *Hero) HitPoints() int { return h.HP }

// IsAlive returns true if the hero has hit points left.
func (h *Hero) IsAlive() bool { return h.HP > 0 }

// =============================================================================
// Combatant interface implementation
// =============================================================================

// GetName returns the hero's name.
func (h *Hero) GetName() string { return h.Name }

// GetHP returns current hit points.
func (h *Hero) GetHP() int { return h.HP }

// GetStrength returns strength.
func (h *Hero) GetStrength() int { return h.Strength }

// TakeDamage reduces HP. HP may go below zero.
func (h *Hero) TakeDamage(amount int) { h.HP -= amount }

var (
	_ combat.Combatant = (*Hero)(nil)
	_ combat.Combatant = (*world.Monster)(nil)
	_ world.Adventurer = (*Hero)(nil)
)
