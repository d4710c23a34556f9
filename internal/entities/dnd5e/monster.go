package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// EntityTypeMonster is the rpg-toolkit entity type for monsters
const EntityTypeMonster = "monster"

// MonsterFields is the raw, unvalidated input for a monster
type MonsterFields struct {
	ID               string
	OwnerID          string
	Name             string
	RawDescription   string
	Size             CreatureSize
	ArmorClass       int
	HitDiceCount     int
	Speed            int
	AbilityScores    AbilityScores
	ChallengeRating  ChallengeRating
	ImageRef         string
	ImageDescription string
	Tags             []string
	Information      []InformationEntry
}

// Monster is a validated, immutable monster record. Edits produce a new
// Monster through NewMonster(m.Fields()).
type Monster struct {
	fields      MonsterFields
	information InformationList
}

var _ core.Entity = (*Monster)(nil)

// NewMonster validates fields and builds a Monster. Checks run in a fixed
// order and the first violation is returned.
func NewMonster(fields MonsterFields) (*Monster, error) {
	if err := validateMonsterFields(&fields); err != nil {
		return nil, err
	}

	fields.Tags = append([]string(nil), fields.Tags...)
	information := NewInformationList(fields.Information...)
	fields.Information = information.Entries()

	return &Monster{
		fields:      fields,
		information: information,
	}, nil
}

func validateMonsterFields(f *MonsterFields) error {
	if f.Name == "" {
		return errors.StructuralErrorf("name", "Name must not be blank")
	}
	if strings.TrimSpace(f.Name) != f.Name {
		return errors.StructuralErrorf("name", "Name must not have leading or trailing whitespace")
	}
	if f.ArmorClass < 0 {
		return errors.StructuralErrorf("armor_class", "Armor class must be non-negative")
	}
	if f.HitDiceCount < 1 {
		return errors.StructuralErrorf("hit_dice_count", "Hit dice count must be at least 1")
	}
	if f.Speed < 0 || f.Speed%5 != 0 {
		return errors.StructuralErrorf("speed", "Speed must be a non-negative multiple of 5")
	}
	if !f.ChallengeRating.Valid() {
		return errors.RangeErrorf("challenge_rating",
			"Challenge rating must be 0, 1/8, 1/4, 1/2 or a whole number from 1 to 30")
	}
	if f.ImageRef == "" && f.ImageDescription != "" {
		return errors.StructuralErrorf("image_description", "Image description requires an image")
	}
	if !f.Size.Valid() {
		return errors.RangeErrorf("size", "unknown creature size %q", string(f.Size))
	}
	if f.AbilityScores.IsZero() {
		return errors.StructuralErrorf("ability_scores", "Ability scores are required")
	}
	return nil
}

// Fields returns a copy of the monster's fields for editing
func (m *Monster) Fields() MonsterFields {
	f := m.fields
	f.Tags = append([]string(nil), m.fields.Tags...)
	f.Information = m.information.Entries()
	return f
}

// GetID returns the monster's storage id
func (m *Monster) GetID() string { return m.fields.ID }

// GetType returns the rpg-toolkit entity type
func (m *Monster) GetType() string { return EntityTypeMonster }

// ID is the storage id
func (m *Monster) ID() string { return m.fields.ID }

// OwnerID is the creating user, empty for shared records
func (m *Monster) OwnerID() string { return m.fields.OwnerID }

// Name is the identity of the monster
func (m *Monster) Name() string { return m.fields.Name }

// RawDescription is the free-text description
func (m *Monster) RawDescription() string { return m.fields.RawDescription }

// Size is the size category
func (m *Monster) Size() CreatureSize { return m.fields.Size }

// ArmorClass is the armor class
func (m *Monster) ArmorClass() int { return m.fields.ArmorClass }

// HitDiceCount is the number of hit dice
func (m *Monster) HitDiceCount() int { return m.fields.HitDiceCount }

// Speed is the walking speed in feet
func (m *Monster) Speed() int { return m.fields.Speed }

// AbilityScores are the monster's ability scores
func (m *Monster) AbilityScores() AbilityScores { return m.fields.AbilityScores }

// ChallengeRating is the monster's challenge rating
func (m *Monster) ChallengeRating() ChallengeRating { return m.fields.ChallengeRating }

// ImageRef is an opaque image reference, empty when there is no image
func (m *Monster) ImageRef() string { return m.fields.ImageRef }

// ImageDescription is the alt text for ImageRef
func (m *Monster) ImageDescription() string { return m.fields.ImageDescription }

// Tags returns a copy of the monster's tags
func (m *Monster) Tags() []string { return append([]string(nil), m.fields.Tags...) }

// Information is the normalized information list
func (m *Monster) Information() InformationList { return m.information }

// HitDice is hitDiceCount dice of the size's hit die
func (m *Monster) HitDice() DiceExpression {
	return DiceExpression{count: m.fields.HitDiceCount, sides: HitDieSides(m.fields.Size)}
}

// AverageHitPoints is the hit dice average plus the constitution modifier
// per hit die. There is no per-die minimum, so very low constitution can
// produce an average below the hit dice count or even below zero.
func (m *Monster) AverageHitPoints() float64 {
	conModifier := m.fields.AbilityScores.Modifier(Constitution)
	return m.HitDice().Average() + float64(conModifier*m.fields.HitDiceCount)
}

// ProficiencyBonus derives from the challenge rating
func (m *Monster) ProficiencyBonus() int {
	return m.fields.ChallengeRating.ProficiencyBonus()
}

// ExperiencePoints derives from the challenge rating
func (m *Monster) ExperiencePoints() int {
	return m.fields.ChallengeRating.ExperiencePoints()
}

// SameEntity reports whether m and other name the same monster.
// Names compare exactly; this is not the search normalization.
func (m *Monster) SameEntity(other *Monster) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.fields.Name == other.fields.Name
}
