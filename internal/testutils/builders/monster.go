// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	fields dnd5e.MonsterFields
}

// NewMonsterBuilder creates a new builder with a valid CR 1 medium monster
func NewMonsterBuilder() *MonsterBuilder {
	scores, err := dnd5e.NewAbilityScores(10, 10, 10, 10, 10, 10)
	if err != nil {
		panic(err)
	}
	return &MonsterBuilder{
		fields: dnd5e.MonsterFields{
			ID:              "mon-test-123",
			Name:            "Test Monster",
			Size:            dnd5e.SizeMedium,
			ArmorClass:      12,
			HitDiceCount:    3,
			Speed:           30,
			AbilityScores:   scores,
			ChallengeRating: 1,
		},
	}
}

// WithID sets the storage id
func (b *MonsterBuilder) WithID(id string) *MonsterBuilder {
	b.fields.ID = id
	return b
}

// WithOwner sets the owner id
func (b *MonsterBuilder) WithOwner(ownerID string) *MonsterBuilder {
	b.fields.OwnerID = ownerID
	return b
}

// WithName sets the name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.fields.Name = name
	return b
}

// WithSize sets the size category
func (b *MonsterBuilder) WithSize(size dnd5e.CreatureSize) *MonsterBuilder {
	b.fields.Size = size
	return b
}

// WithHitDice sets the hit dice count
func (b *MonsterBuilder) WithHitDice(count int) *MonsterBuilder {
	b.fields.HitDiceCount = count
	return b
}

// WithSpeed sets the walking speed
func (b *MonsterBuilder) WithSpeed(speed int) *MonsterBuilder {
	b.fields.Speed = speed
	return b
}

// WithChallengeRating sets the challenge rating
func (b *MonsterBuilder) WithChallengeRating(cr dnd5e.ChallengeRating) *MonsterBuilder {
	b.fields.ChallengeRating = cr
	return b
}

// WithAbilityScore replaces one ability score
func (b *MonsterBuilder) WithAbilityScore(ability dnd5e.Ability, value int) *MonsterBuilder {
	scores, err := b.fields.AbilityScores.With(ability, value)
	if err != nil {
		panic(err)
	}
	b.fields.AbilityScores = scores
	return b
}

// WithTags sets the tags
func (b *MonsterBuilder) WithTags(tags ...string) *MonsterBuilder {
	b.fields.Tags = tags
	return b
}

// WithImage sets the image reference and its description
func (b *MonsterBuilder) WithImage(ref, description string) *MonsterBuilder {
	b.fields.ImageRef = ref
	b.fields.ImageDescription = description
	return b
}

// WithInformation sets the information entries
func (b *MonsterBuilder) WithInformation(entries ...dnd5e.InformationEntry) *MonsterBuilder {
	b.fields.Information = entries
	return b
}

// Fields returns the raw fields, useful for testing validation failures
func (b *MonsterBuilder) Fields() dnd5e.MonsterFields {
	return b.fields
}

// Build constructs the monster, panicking on invalid fields
func (b *MonsterBuilder) Build() *dnd5e.Monster {
	m, err := dnd5e.NewMonster(b.fields)
	if err != nil {
		panic(err)
	}
	return m
}
