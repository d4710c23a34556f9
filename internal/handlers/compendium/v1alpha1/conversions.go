package v1alpha1

import (
	"fmt"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
)

// MonsterFieldsFromMessage parses the wire monster into unvalidated fields.
// Size, challenge rating and ability scores are parsed here; everything
// else is checked by dnd5e.NewMonster.
func MonsterFieldsFromMessage(m *Monster) (dnd5e.MonsterFields, error) {
	if m == nil {
		return dnd5e.MonsterFields{}, errors.InvalidArgument("monster is required")
	}

	size, err := dnd5e.ParseCreatureSize(m.Size)
	if err != nil {
		return dnd5e.MonsterFields{}, err
	}
	cr, err := dnd5e.ParseChallengeRating(m.ChallengeRating)
	if err != nil {
		return dnd5e.MonsterFields{}, err
	}
	a := m.AbilityScores
	scores, err := dnd5e.NewAbilityScores(a.Strength, a.Dexterity, a.Constitution, a.Intelligence, a.Wisdom, a.Charisma)
	if err != nil {
		return dnd5e.MonsterFields{}, err
	}

	information := make([]dnd5e.InformationEntry, 0, len(m.Information))
	for i, entry := range m.Information {
		switch entry.Kind {
		case InformationKindHeader:
			information = append(information, dnd5e.HeaderEntry{Text: entry.Text})
		case InformationKindDescription:
			information = append(information, dnd5e.DescriptionEntry{Title: entry.Title, Text: entry.Text})
		case InformationKindSeparator:
			information = append(information, dnd5e.SeparatorEntry{})
		default:
			return dnd5e.MonsterFields{}, errors.FormatErrorf("information",
				"information entry %d has unknown kind %q", i, entry.Kind)
		}
	}

	return dnd5e.MonsterFields{
		ID:               m.ID,
		OwnerID:          m.OwnerID,
		Name:             m.Name,
		RawDescription:   m.RawDescription,
		Size:             size,
		ArmorClass:       m.ArmorClass,
		HitDiceCount:     m.HitDiceCount,
		Speed:            m.Speed,
		AbilityScores:    scores,
		ChallengeRating:  cr,
		ImageRef:         m.ImageRef,
		ImageDescription: m.ImageDescription,
		Tags:             m.Tags,
		Information:      information,
	}, nil
}

// MonsterToMessage converts a monster record to the wire form
func MonsterToMessage(m *dnd5e.Monster) *Monster {
	if m == nil {
		return nil
	}

	scores := m.AbilityScores()
	entries := m.Information().Entries()
	information := make([]InformationEntry, 0, len(entries))
	for _, entry := range entries {
		switch e := entry.(type) {
		case dnd5e.HeaderEntry:
			information = append(information, InformationEntry{Kind: InformationKindHeader, Text: e.Text})
		case dnd5e.DescriptionEntry:
			information = append(information, InformationEntry{Kind: InformationKindDescription, Title: e.Title, Text: e.Text})
		case dnd5e.SeparatorEntry:
			information = append(information, InformationEntry{Kind: InformationKindSeparator})
		default:
			// information lists only hold the three value types
			panic(fmt.Sprintf("compendium: unsupported information entry %T", entry))
		}
	}

	return &Monster{
		ID:             m.ID(),
		OwnerID:        m.OwnerID(),
		Name:           m.Name(),
		RawDescription: m.RawDescription(),
		Size:           string(m.Size()),
		ArmorClass:     m.ArmorClass(),
		HitDiceCount:   m.HitDiceCount(),
		Speed:          m.Speed(),
		AbilityScores: AbilityScores{
			Strength:     scores.Strength(),
			Dexterity:    scores.Dexterity(),
			Constitution: scores.Constitution(),
			Intelligence: scores.Intelligence(),
			Wisdom:       scores.Wisdom(),
			Charisma:     scores.Charisma(),
		},
		ChallengeRating:  dnd5e.PrettyChallengeRating(m.ChallengeRating()),
		ImageRef:         m.ImageRef(),
		ImageDescription: m.ImageDescription(),
		Tags:             m.Tags(),
		Information:      information,
	}
}

func monstersToMessages(monsters []*dnd5e.Monster) []*Monster {
	out := make([]*Monster, 0, len(monsters))
	for _, m := range monsters {
		out = append(out, MonsterToMessage(m))
	}
	return out
}

// MagicItemFieldsFromMessage parses the wire item into fields
func MagicItemFieldsFromMessage(item *MagicItem) (dnd5e.MagicItemFields, error) {
	if item == nil {
		return dnd5e.MagicItemFields{}, errors.InvalidArgument("magic item is required")
	}

	rarity, err := dnd5e.ParseRarity(item.Rarity)
	if err != nil {
		return dnd5e.MagicItemFields{}, err
	}
	damage, err := dnd5e.ParseMagicItemDamage(item.DamageDice)
	if err != nil {
		return dnd5e.MagicItemFields{}, err
	}
	damageType, err := dnd5e.ParseDamageType(item.DamageType)
	if err != nil {
		return dnd5e.MagicItemFields{}, err
	}

	return dnd5e.MagicItemFields{
		ID:          item.ID,
		OwnerID:     item.OwnerID,
		Name:        item.Name,
		SourceBook:  item.SourceBook,
		Rarity:      rarity,
		Description: item.Description,
		ImageRef:    item.ImageRef,
		DamageDice:  damage,
		DamageType:  damageType,
	}, nil
}

// MagicItemToMessage converts a magic item to the wire form
func MagicItemToMessage(item *dnd5e.MagicItem) *MagicItem {
	if item == nil {
		return nil
	}

	out := &MagicItem{
		ID:          item.ID(),
		OwnerID:     item.OwnerID(),
		Name:        item.Name(),
		SourceBook:  item.SourceBook(),
		Rarity:      string(item.Rarity()),
		Description: item.Description(),
		ImageRef:    item.ImageRef(),
		DamageType:  string(item.DamageType()),
		Summary:     item.Describe(),
	}
	if dmg, ok := item.DamageDice(); ok {
		out.DamageDice = dmg.String()
	}
	return out
}

func magicItemsToMessages(items []*dnd5e.MagicItem) []*MagicItem {
	out := make([]*MagicItem, 0, len(items))
	for _, item := range items {
		out = append(out, MagicItemToMessage(item))
	}
	return out
}

func statsToMessage(stats *compendium.MonsterStats) *MonsterStats {
	if stats == nil {
		return nil
	}

	abilities := make([]AbilityStat, 0, len(stats.Abilities))
	for _, a := range stats.Abilities {
		abilities = append(abilities, AbilityStat{
			Ability:  a.Ability.String(),
			Score:    a.Score,
			Modifier: a.Modifier,
		})
	}

	return &MonsterStats{
		Name:             stats.Name,
		HitDice:          stats.HitDice,
		AverageHitPoints: stats.AverageHitPoints,
		ProficiencyBonus: stats.ProficiencyBonus,
		ExperiencePoints: stats.ExperiencePoints,
		ChallengeRating:  stats.ChallengeRating,
		Abilities:        abilities,
	}
}

func profileToMessage(p *entities.Profile) *Profile {
	if p == nil {
		return nil
	}
	return &Profile{
		UserID:           p.UserID,
		DisplayName:      p.DisplayName,
		FavoriteMonsters: p.FavoriteMonsters,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func preferenceToMessage(p *entities.Preference) *Preference {
	if p == nil {
		return nil
	}
	return &Preference{
		Key:       p.Key,
		Value:     p.Value,
		UpdatedAt: p.UpdatedAt,
	}
}
