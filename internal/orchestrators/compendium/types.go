package compendium

import (
	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/search"
)

// CreateMonsterInput defines the request for creating a monster. Fields.ID
// and Fields.OwnerID are assigned by the service.
type CreateMonsterInput struct {
	OwnerID string
	Fields  dnd5e.MonsterFields
}

// CreateMonsterOutput defines the response for creating a monster
type CreateMonsterOutput struct {
	Monster *dnd5e.Monster
}

// UpdateMonsterInput replaces the monster named OriginalName wholesale
type UpdateMonsterInput struct {
	OwnerID      string
	OriginalName string
	Fields       dnd5e.MonsterFields
}

// UpdateMonsterOutput defines the response for updating a monster
type UpdateMonsterOutput struct {
	Monster *dnd5e.Monster
}

// GetMonsterInput defines the request for getting a monster
type GetMonsterInput struct {
	Name string
}

// GetMonsterOutput defines the response for getting a monster
type GetMonsterOutput struct {
	Monster *dnd5e.Monster
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	OwnerID string
	Name    string
}

// DeleteMonsterOutput defines the response for deleting a monster
type DeleteMonsterOutput struct {
	Monster          *dnd5e.Monster
	FavoritesRemoved int
}

// ListMonstersInput filters by owner when OwnerID is set
type ListMonstersInput struct {
	OwnerID string
}

// ListMonstersOutput lists monsters ordered by name
type ListMonstersOutput struct {
	Monsters []*dnd5e.Monster
}

// SearchMonstersInput defines a search. UserID is optional; when set the
// query is remembered as the user's last search.
type SearchMonstersInput struct {
	UserID string
	Query  string
}

// SearchMonstersOutput holds the parsed query and the matches by name
type SearchMonstersOutput struct {
	Query    search.Query
	Monsters []*dnd5e.Monster
}

// GetMonsterStatsInput defines the request for derived statistics
type GetMonsterStatsInput struct {
	Name string
}

// GetMonsterStatsOutput defines the response for derived statistics
type GetMonsterStatsOutput struct {
	Stats *MonsterStats
}

// MonsterStats are the values derived from a monster record
type MonsterStats struct {
	Name             string
	HitDice          string
	AverageHitPoints float64
	ProficiencyBonus int
	ExperiencePoints int
	ChallengeRating  string
	Abilities        []AbilityStat
}

// AbilityStat is one ability score and its modifier
type AbilityStat struct {
	Ability  dnd5e.Ability
	Score    int
	Modifier int
}

// CreateMagicItemInput defines the request for creating a magic item
type CreateMagicItemInput struct {
	OwnerID string
	Fields  dnd5e.MagicItemFields
}

// CreateMagicItemOutput defines the response for creating a magic item
type CreateMagicItemOutput struct {
	Item *dnd5e.MagicItem
}

// GetMagicItemInput looks an item up by ID, or by Name when ID is empty
type GetMagicItemInput struct {
	ID   string
	Name string
}

// GetMagicItemOutput defines the response for getting a magic item
type GetMagicItemOutput struct {
	Item *dnd5e.MagicItem
}

// DeleteMagicItemInput defines the request for deleting a magic item
type DeleteMagicItemInput struct {
	OwnerID string
	ID      string
}

// DeleteMagicItemOutput defines the response for deleting a magic item
type DeleteMagicItemOutput struct {
	Item *dnd5e.MagicItem
}

// ListMagicItemsInput filters by owner and rarity when set
type ListMagicItemsInput struct {
	OwnerID string
	Rarity  dnd5e.Rarity
}

// ListMagicItemsOutput lists items ordered by name
type ListMagicItemsOutput struct {
	Items []*dnd5e.MagicItem
}

// ImportSRDWeaponsInput defines an SRD weapon import
type ImportSRDWeaponsInput struct {
	OwnerID  string
	Category string
}

// ImportSRDWeaponsOutput reports what was imported
type ImportSRDWeaponsOutput struct {
	Imported []*dnd5e.MagicItem
	Skipped  []SkippedWeapon
}

// SkippedWeapon names a weapon that was not imported and why
type SkippedWeapon struct {
	Name   string
	Reason string
}

// GetProfileInput defines the request for a user's profile
type GetProfileInput struct {
	UserID string
}

// GetProfileOutput defines the response for a user's profile
type GetProfileOutput struct {
	Profile *entities.Profile
}

// UpdateProfileInput replaces the editable profile fields
type UpdateProfileInput struct {
	UserID           string
	DisplayName      string
	FavoriteMonsters []string
}

// UpdateProfileOutput defines the response for updating a profile
type UpdateProfileOutput struct {
	Profile *entities.Profile
}

// GetPreferenceInput defines the request for a preference
type GetPreferenceInput struct {
	UserID string
	Key    string
}

// GetPreferenceOutput defines the response for a preference
type GetPreferenceOutput struct {
	Preference *entities.Preference
}

// SetPreferenceInput defines the request for storing a preference
type SetPreferenceInput struct {
	UserID string
	Key    string
	Value  string
}

// SetPreferenceOutput defines the response for storing a preference
type SetPreferenceOutput struct {
	Preference *entities.Preference
}

// ListPreferencesInput defines the request for all of a user's preferences
type ListPreferencesInput struct {
	UserID string
}

// ListPreferencesOutput lists preferences ordered by key
type ListPreferencesOutput struct {
	Preferences []*entities.Preference
}
