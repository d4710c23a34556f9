package testutils

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
)

// Fixture names
const (
	TestOwnerID   = "user_test123"
	TestGnollName = "Gnoll"
	TestWolfName  = "Wolf"
)

// TestAbilityScores returns the gnoll stat block scores
func TestAbilityScores() dnd5e.AbilityScores {
	scores, err := dnd5e.NewAbilityScores(14, 12, 11, 6, 10, 7)
	if err != nil {
		panic(err)
	}
	return scores
}

// CreateTestGnoll creates a valid CR 1/2 humanoid owned by ownerID
func CreateTestGnoll(ownerID string) *dnd5e.Monster {
	return mustMonster(dnd5e.MonsterFields{
		ID:              "mon_gnoll",
		OwnerID:         ownerID,
		Name:            TestGnollName,
		RawDescription:  "Gnolls are feral hyena-headed humanoids.",
		Size:            dnd5e.SizeMedium,
		ArmorClass:      15,
		HitDiceCount:    5,
		Speed:           30,
		AbilityScores:   TestAbilityScores(),
		ChallengeRating: dnd5e.ChallengeRatingHalf,
		Tags:            []string{"Humanoid", "Medium"},
		Information: []dnd5e.InformationEntry{
			dnd5e.HeaderEntry{Text: "Actions"},
			dnd5e.DescriptionEntry{Title: "Bite", Text: "Melee Weapon Attack: +4 to hit, 1d4+2 piercing."},
		},
	})
}

// CreateTestWolf creates a valid CR 1/4 beast owned by ownerID
func CreateTestWolf(ownerID string) *dnd5e.Monster {
	scores, err := dnd5e.NewAbilityScores(12, 15, 12, 3, 12, 6)
	if err != nil {
		panic(err)
	}
	return mustMonster(dnd5e.MonsterFields{
		ID:               "mon_wolf",
		OwnerID:          ownerID,
		Name:             TestWolfName,
		Size:             dnd5e.SizeMedium,
		ArmorClass:       13,
		HitDiceCount:     2,
		Speed:            40,
		AbilityScores:    scores,
		ChallengeRating:  dnd5e.ChallengeRatingQuarter,
		ImageRef:         "images/wolf.png",
		ImageDescription: "A grey wolf mid-howl",
		Tags:             []string{"Beast", "Medium"},
	})
}

// CreateTestMagicItem creates a damaging rare item owned by ownerID
func CreateTestMagicItem(ownerID string) *dnd5e.MagicItem {
	dmg, err := dnd5e.ParseMagicItemDamage("2d6")
	if err != nil {
		panic(err)
	}
	return dnd5e.NewMagicItem(dnd5e.MagicItemFields{
		ID:          "item_flame_tongue",
		OwnerID:     ownerID,
		Name:        "Flame Tongue",
		SourceBook:  "DMG",
		Rarity:      dnd5e.RarityRare,
		Description: "You can use a bonus action to speak this magic sword's command word.",
		DamageDice:  dmg,
		DamageType:  dnd5e.DamageTypeFire,
	})
}

func mustMonster(fields dnd5e.MonsterFields) *dnd5e.Monster {
	m, err := dnd5e.NewMonster(fields)
	if err != nil {
		panic(err)
	}
	return m
}
