package external

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// SRDSourceBook is the source book recorded on imported items
const SRDSourceBook = "SRD"

// WeaponData represents weapon information from external source
type WeaponData struct {
	Key            string
	Name           string
	Category       string
	WeaponCategory string
	WeaponRange    string
	Cost           string
	DamageDice     string
	DamageType     string
	Properties     []string
}

// ToMagicItemFields converts the weapon into magic item template fields.
// Damage dice must use standard die sides.
func (w *WeaponData) ToMagicItemFields(ownerID string) (dnd5e.MagicItemFields, error) {
	if w == nil {
		return dnd5e.MagicItemFields{}, errors.InvalidArgument("weapon is required")
	}

	damage, err := dnd5e.ParseMagicItemDamage(w.DamageDice)
	if err != nil {
		return dnd5e.MagicItemFields{}, errors.Wrapf(err, "weapon %s has invalid damage", w.Key)
	}
	damageType, err := dnd5e.ParseDamageType(w.DamageType)
	if err != nil {
		return dnd5e.MagicItemFields{}, errors.Wrapf(err, "weapon %s has invalid damage type", w.Key)
	}
	if damage == nil {
		damageType = dnd5e.DamageTypeNone
	}

	return dnd5e.MagicItemFields{
		OwnerID:     ownerID,
		Name:        w.Name,
		SourceBook:  SRDSourceBook,
		Rarity:      dnd5e.RarityCommon,
		Description: w.describe(),
		DamageDice:  damage,
		DamageType:  damageType,
	}, nil
}

func (w *WeaponData) describe() string {
	var parts []string
	if w.WeaponCategory != "" || w.WeaponRange != "" {
		parts = append(parts, strings.TrimSpace(w.WeaponCategory+" "+strings.ToLower(w.WeaponRange))+" weapon.")
	}
	if len(w.Properties) > 0 {
		parts = append(parts, "Properties: "+strings.Join(w.Properties, ", ")+".")
	}
	if w.Cost != "" {
		parts = append(parts, "Cost: "+w.Cost+".")
	}
	return strings.Join(parts, " ")
}
