package bundle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-compendium/internal/bundle"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

const bestiary = `
monsters:
  - name: Gnoll
    description: Feral hyena-headed humanoids.
    size: medium
    armor_class: 15
    hit_dice: 5
    speed: 30
    abilities: {str: 14, dex: 12, con: 11, int: 6, wis: 10, cha: 7}
    challenge_rating: "1/2"
    tags: [Humanoid, Medium]
    information:
      - separator: true
      - header: Actions
      - title: Bite
        text: "Melee Weapon Attack: +4 to hit."
      - separator: true
  - name: Wolf
    size: medium
    armor_class: 13
    hit_dice: 2
    speed: 40
    abilities: {str: 12, dex: 15, con: 12, int: 3, wis: 12, cha: 6}
    challenge_rating: "1/4"
  - name: Ooze
    size: medium
    armor_class: 8
    hit_dice: 3
    speed: 15
    abilities: {str: 12, dex: 6, con: 16, int: 1, wis: 6, cha: 2}
    challenge_rating: "31"
magic_items:
  - name: Flame Tongue
    source: DMG
    rarity: rare
    damage: 2d6
    damage_type: fire
  - name: Odd Blade
    damage: 1d7
`

func TestParse(t *testing.T) {
	b, err := bundle.Parse("bestiary.yaml", []byte(bestiary))
	require.NoError(t, err)

	require.Equal(t, 2, b.Monsters.Len())
	gnoll, ok := b.Monsters.Get("Gnoll")
	require.True(t, ok)
	assert.Equal(t, dnd5e.SizeMedium, gnoll.Size())
	assert.Equal(t, dnd5e.ChallengeRatingHalf, gnoll.ChallengeRating())
	assert.Equal(t, 14, gnoll.AbilityScores().Strength())
	assert.Equal(t, "Feral hyena-headed humanoids.", gnoll.RawDescription())
	// leading and trailing separators are dropped
	assert.Equal(t, 2, gnoll.Information().Len())

	require.Len(t, b.MagicItems, 1)
	assert.Equal(t, dnd5e.RarityRare, b.MagicItems[0].Rarity())
	assert.Equal(t, dnd5e.DamageTypeFire, b.MagicItems[0].DamageType())

	require.Len(t, b.Problems, 2)
	assert.False(t, b.OK())
	assert.Equal(t, bundle.KindMonster, b.Problems[0].Kind)
	assert.Equal(t, "Ooze", b.Problems[0].Name)
	assert.True(t, errors.IsRangeError(b.Problems[0].Err))
	assert.Contains(t, b.Problems[0].Error(), "bestiary.yaml: monster #3 (Ooze)")
	assert.Equal(t, bundle.KindMagicItem, b.Problems[1].Kind)
	assert.Equal(t, "Odd Blade", b.Problems[1].Name)
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := bundle.Parse("broken.yaml", []byte("monsters: [name: {"))
	require.Error(t, err)
	assert.True(t, errors.IsFormatError(err))
}

func TestLaterDefinitionsReplaceEarlier(t *testing.T) {
	dir := t.TempDir()
	first := `
monsters:
  - name: Wolf
    size: medium
    armor_class: 13
    hit_dice: 2
    speed: 40
    abilities: {str: 12, dex: 15, con: 12, int: 3, wis: 12, cha: 6}
    challenge_rating: "1/4"
magic_items:
  - name: Rope of Climbing
    rarity: uncommon
`
	second := `
monsters:
  - name: Wolf
    size: medium
    armor_class: 14
    hit_dice: 3
    speed: 40
    abilities: {str: 12, dex: 15, con: 12, int: 3, wis: 12, cha: 6}
    challenge_rating: "1/2"
magic_items:
  - name: Rope of Climbing
    rarity: rare
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte(first), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yml"), []byte(second), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o600))

	b, err := bundle.Load(dir)
	require.NoError(t, err)

	assert.True(t, b.OK())
	require.Equal(t, 1, b.Monsters.Len())
	wolf, _ := b.Monsters.Get("Wolf")
	assert.Equal(t, 14, wolf.ArmorClass())
	require.Len(t, b.MagicItems, 1)
	assert.Equal(t, dnd5e.RarityRare, b.MagicItems[0].Rarity())
	assert.Equal(t, []string{"Wolf", "Rope of Climbing"}, b.Replaced)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := bundle.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestMagicItemDocRequiresName(t *testing.T) {
	_, err := bundle.MagicItemDoc{Rarity: "rare"}.MagicItem()
	assert.True(t, errors.IsStructuralError(err))
	assert.Equal(t, "name", errors.GetField(err))
}
