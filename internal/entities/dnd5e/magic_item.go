package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// EntityTypeMagicItem is the rpg-toolkit entity type for magic items
const EntityTypeMagicItem = "magic_item"

// Rarity of a magic item
type Rarity string

// Rarities
const (
	RarityCommon    Rarity = "COMMON"
	RarityUncommon  Rarity = "UNCOMMON"
	RarityRare      Rarity = "RARE"
	RarityVeryRare  Rarity = "VERY_RARE"
	RarityLegendary Rarity = "LEGENDARY"
	RarityArtifact  Rarity = "ARTIFACT"
	RarityVaries    Rarity = "VARIES"
)

// Title is the display form, e.g. "Very rare"
func (r Rarity) Title() string {
	if r == "" {
		return ""
	}
	lower := strings.ToLower(strings.ReplaceAll(string(r), "_", " "))
	return strings.ToUpper(lower[:1]) + lower[1:]
}

var rarities = map[Rarity]bool{
	RarityCommon: true, RarityUncommon: true, RarityRare: true, RarityVeryRare: true,
	RarityLegendary: true, RarityArtifact: true, RarityVaries: true,
}

// ParseRarity accepts a rarity in any case with spaces or underscores,
// e.g. "very rare"; blank means COMMON
func ParseRarity(s string) (Rarity, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return RarityCommon, nil
	}
	r := Rarity(strings.ToUpper(strings.Join(strings.Fields(trimmed), "_")))
	if !rarities[r] {
		return "", errors.RangeErrorf("rarity", "unknown rarity %q", s)
	}
	return r, nil
}

// DamageType of a damaging magic item
type DamageType string

// Damage types
const (
	DamageTypeNone        DamageType = "NONE"
	DamageTypeAcid        DamageType = "ACID"
	DamageTypeBludgeoning DamageType = "BLUDGEONING"
	DamageTypeCold        DamageType = "COLD"
	DamageTypeFire        DamageType = "FIRE"
	DamageTypeForce       DamageType = "FORCE"
	DamageTypeLightning   DamageType = "LIGHTNING"
	DamageTypeNecrotic    DamageType = "NECROTIC"
	DamageTypePiercing    DamageType = "PIERCING"
	DamageTypePoison      DamageType = "POISON"
	DamageTypePsychic     DamageType = "PSYCHIC"
	DamageTypeRadiant     DamageType = "RADIANT"
	DamageTypeSlashing    DamageType = "SLASHING"
	DamageTypeThunder     DamageType = "THUNDER"
)

var damageTypes = map[DamageType]bool{
	DamageTypeNone: true, DamageTypeAcid: true, DamageTypeBludgeoning: true, DamageTypeCold: true,
	DamageTypeFire: true, DamageTypeForce: true, DamageTypeLightning: true, DamageTypeNecrotic: true,
	DamageTypePiercing: true, DamageTypePoison: true, DamageTypePsychic: true, DamageTypeRadiant: true,
	DamageTypeSlashing: true, DamageTypeThunder: true,
}

// ParseDamageType accepts a damage type name in any case; blank means NONE
func ParseDamageType(s string) (DamageType, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return DamageTypeNone, nil
	}
	dt := DamageType(strings.ToUpper(trimmed))
	if !damageTypes[dt] {
		return "", errors.RangeErrorf("damage_type", "unknown damage type %q", s)
	}
	return dt, nil
}

// MagicItemFields is the input for a magic item
type MagicItemFields struct {
	ID          string
	OwnerID     string
	Name        string
	SourceBook  string
	Rarity      Rarity
	Description string
	ImageRef    string
	DamageDice  *DiceExpression
	DamageType  DamageType
}

// MagicItem is an immutable magic item record
type MagicItem struct {
	fields MagicItemFields
}

var _ core.Entity = (*MagicItem)(nil)

// NewMagicItem builds a magic item, filling defaults for rarity and
// damage type. A zero DamageDice is treated as absent.
func NewMagicItem(fields MagicItemFields) *MagicItem {
	if fields.Rarity == "" {
		fields.Rarity = RarityCommon
	}
	if fields.DamageType == "" {
		fields.DamageType = DamageTypeNone
	}
	if fields.DamageDice != nil {
		if fields.DamageDice.IsZero() {
			fields.DamageDice = nil
		} else {
			d := *fields.DamageDice
			fields.DamageDice = &d
		}
	}
	return &MagicItem{fields: fields}
}

// ParseMagicItemDamage parses optional damage notation; blank means no damage
func ParseMagicItemDamage(notation string) (*DiceExpression, error) {
	if strings.TrimSpace(notation) == "" {
		return nil, nil
	}
	d, err := ParseDice(notation, StandardDieSides...)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Fields returns a copy of the item's fields
func (m *MagicItem) Fields() MagicItemFields {
	f := m.fields
	if f.DamageDice != nil {
		d := *f.DamageDice
		f.DamageDice = &d
	}
	return f
}

// GetID returns the item's storage id
func (m *MagicItem) GetID() string { return m.fields.ID }

// GetType returns the rpg-toolkit entity type
func (m *MagicItem) GetType() string { return EntityTypeMagicItem }

// ID is the storage id
func (m *MagicItem) ID() string { return m.fields.ID }

// OwnerID is the creating user, empty for shared records
func (m *MagicItem) OwnerID() string { return m.fields.OwnerID }

// Name of the item
func (m *MagicItem) Name() string { return m.fields.Name }

// SourceBook the item is published in
func (m *MagicItem) SourceBook() string { return m.fields.SourceBook }

// Rarity of the item
func (m *MagicItem) Rarity() Rarity { return m.fields.Rarity }

// Description text
func (m *MagicItem) Description() string { return m.fields.Description }

// ImageRef is an opaque image reference
func (m *MagicItem) ImageRef() string { return m.fields.ImageRef }

// DamageDice returns the damage dice and whether the item deals damage
func (m *MagicItem) DamageDice() (DiceExpression, bool) {
	if m.fields.DamageDice == nil {
		return DiceExpression{}, false
	}
	return *m.fields.DamageDice, true
}

// DamageType of the damage dice
func (m *MagicItem) DamageType() DamageType { return m.fields.DamageType }

// Describe renders the item as text. The damage line only appears when
// the item has damage dice.
func (m *MagicItem) Describe() string {
	var b strings.Builder
	b.WriteString(m.fields.Name)
	b.WriteString("\n")
	b.WriteString(m.fields.Rarity.Title())
	if m.fields.SourceBook != "" {
		b.WriteString(" (")
		b.WriteString(m.fields.SourceBook)
		b.WriteString(")")
	}
	if d, ok := m.DamageDice(); ok {
		b.WriteString("\nDamage: ")
		b.WriteString(d.String())
		if m.fields.DamageType != DamageTypeNone {
			b.WriteString(" ")
			b.WriteString(strings.ToLower(string(m.fields.DamageType)))
		}
	}
	if m.fields.Description != "" {
		b.WriteString("\n")
		b.WriteString(m.fields.Description)
	}
	return b.String()
}
