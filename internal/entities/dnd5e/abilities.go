package dnd5e

import (
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Ability identifies one of the six ability scores
type Ability int

// Abilities in sheet order
const (
	Strength Ability = iota
	Dexterity
	Constitution
	Intelligence
	Wisdom
	Charisma
)

// AllAbilities lists the abilities in sheet order
var AllAbilities = []Ability{Strength, Dexterity, Constitution, Intelligence, Wisdom, Charisma}

// Ability score bounds
const (
	MinAbilityScore = 1
	MaxAbilityScore = 30
)

const (
	minAbilityModifier = -5
	maxAbilityModifier = 10
)

var abilityLabels = [...]string{"Str", "Dex", "Con", "Int", "Wis", "Cha"}

var abilityNames = [...]string{"strength", "dexterity", "constitution", "intelligence", "wisdom", "charisma"}

// Label is the short sheet label, e.g. "Str"
func (a Ability) Label() string {
	if a < Strength || a > Charisma {
		return "Unknown"
	}
	return abilityLabels[a]
}

// String is the lowercase ability name, e.g. "strength"
func (a Ability) String() string {
	if a < Strength || a > Charisma {
		return "unknown"
	}
	return abilityNames[a]
}

// AbilityScores is an immutable, validated set of the six ability scores
type AbilityScores struct {
	scores [6]int
}

// NewAbilityScores validates each score against [1, 30].
// The error names the first failing ability by its label.
func NewAbilityScores(str, dex, con, intl, wis, cha int) (AbilityScores, error) {
	scores := [6]int{str, dex, con, intl, wis, cha}
	for i, score := range scores {
		if err := validateAbilityScore(Ability(i), score); err != nil {
			return AbilityScores{}, err
		}
	}
	return AbilityScores{scores: scores}, nil
}

func validateAbilityScore(ability Ability, score int) error {
	if score < MinAbilityScore || score > MaxAbilityScore {
		return errors.RangeErrorf(ability.Label(), "%s must be between %d and %d, got %d",
			ability.Label(), MinAbilityScore, MaxAbilityScore, score)
	}
	return nil
}

// AbilityModifier is clamp(score/2 - 5, -5, 10)
func AbilityModifier(score int) int {
	return min(max(score/2-5, minAbilityModifier), maxAbilityModifier)
}

// Get returns the score for ability
func (a AbilityScores) Get(ability Ability) int {
	if ability < Strength || ability > Charisma {
		return 0
	}
	return a.scores[ability]
}

// Modifier returns the modifier for ability
func (a AbilityScores) Modifier(ability Ability) int {
	return AbilityModifier(a.Get(ability))
}

// With returns a new validated set with one score replaced; a is unchanged
func (a AbilityScores) With(ability Ability, value int) (AbilityScores, error) {
	if ability < Strength || ability > Charisma {
		return AbilityScores{}, errors.InvalidArgumentf("unknown ability %d", int(ability))
	}
	if err := validateAbilityScore(ability, value); err != nil {
		return AbilityScores{}, err
	}
	next := a
	next.scores[ability] = value
	return next, nil
}

// IsZero reports whether a was never constructed
func (a AbilityScores) IsZero() bool {
	return a.scores == [6]int{}
}

// Strength score
func (a AbilityScores) Strength() int { return a.scores[Strength] }

// Dexterity score
func (a AbilityScores) Dexterity() int { return a.scores[Dexterity] }

// Constitution score
func (a AbilityScores) Constitution() int { return a.scores[Constitution] }

// Intelligence score
func (a AbilityScores) Intelligence() int { return a.scores[Intelligence] }

// Wisdom score
func (a AbilityScores) Wisdom() int { return a.scores[Wisdom] }

// Charisma score
func (a AbilityScores) Charisma() int { return a.scores[Charisma] }
