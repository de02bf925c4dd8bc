// Package combat provides the fight formula used when the hero walks
// into a monster.
package combat

// MaxRounds bounds a single duel.
const MaxRounds = 1000

// Combatant is anything that can take part in a duel. Both the hero and
// monsters implement this interface.
type Combatant interface {
	GetName() string
	GetHP() int
	GetStrength() int
	// TakeDamage subtracts amount from HP without clamping at zero.
	TakeDamage(amount int)
}

// Rule selects the duel termination formula.
type Rule int

const (
	// RuleStandard ends the duel as soon as either side drops to zero HP.
	RuleStandard Rule = iota
	// RuleLegacy reproduces the classic formula: both sides strike every
	// round, the duel ends when the foe's HP falls to the hero's strength
	// or below, and the hero only counts as killed below zero HP.
	RuleLegacy
)

// String returns the rule name.
func (r Rule) String() string {
	switch r {
	case RuleStandard:
		return "standard"
	case RuleLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// ParseRule returns the rule with the given name.
func ParseRule(name string) (Rule, bool) {
	switch name {
	case "", "standard":
		return RuleStandard, true
	case "legacy":
		return RuleLegacy, true
	default:
		return RuleStandard, false
	}
}

// Result describes how a duel ended.
type Result struct {
	Rounds  int
	HeroWon bool
	Message string
}

// Duel fights hero against foe. The foe strikes first, then the two
// alternate dealing damage equal to their strength.
func Duel(hero, foe Combatant, rule Rule) Result {
	if hero.GetStrength() <= 0 && foe.GetStrength() <= 0 {
		return Result{Message: "Stalemate with " + foe.GetName()}
	}

	if rule == RuleLegacy {
		return legacyDuel(hero, foe)
	}

	rounds := 0
	for rounds < MaxRounds {
		rounds++
		hero.TakeDamage(foe.GetStrength())
		if hero.GetHP() <= 0 {
			return Result{Rounds: rounds, Message: "Killed by " + foe.GetName()}
		}
		foe.TakeDamage(hero.GetStrength())
		if foe.GetHP() <= 0 {
			break
		}
	}
	if foe.GetHP() > 0 {
		return Result{Rounds: rounds, Message: "Stalemate with " + foe.GetName()}
	}
	return Result{Rounds: rounds, HeroWon: true, Message: "Defeated " + foe.GetName()}
}

func legacyDuel(hero, foe Combatant) Result {
	rounds := 0
	for rounds < MaxRounds {
		rounds++
		hero.TakeDamage(foe.GetStrength())
		done := hero.GetHP() <= 0
		foe.TakeDamage(hero.GetStrength())
		if foe.GetHP() <= hero.GetStrength() {
			done = true
		}
		if done {
			break
		}
	}
	if hero.GetHP() < 0 {
		return Result{Rounds: rounds, Message: "Killed by " + foe.GetName()}
	}
	return Result{Rounds: rounds, HeroWon: true, Message: "Defeated " + foe.GetName()}
}
