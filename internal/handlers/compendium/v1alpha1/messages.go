package v1alpha1

import "time"

// AbilityScores is the wire form of the six ability scores
type AbilityScores struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// Information entry kinds
const (
	InformationKindHeader      = "header"
	InformationKindDescription = "description"
	InformationKindSeparator   = "separator"
)

// InformationEntry is one entry of a monster's information list
type InformationEntry struct {
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Monster is the wire form of a monster record. Size is a size category
// name and ChallengeRating uses the pretty form ("1/4", "5").
type Monster struct {
	ID               string             `json:"id,omitempty"`
	OwnerID          string             `json:"ownerId,omitempty"`
	Name             string             `json:"name"`
	RawDescription   string             `json:"rawDescription,omitempty"`
	Size             string             `json:"size"`
	ArmorClass       int                `json:"armorClass"`
	HitDiceCount     int                `json:"hitDiceCount"`
	Speed            int                `json:"speed"`
	AbilityScores    AbilityScores      `json:"abilityScores"`
	ChallengeRating  string             `json:"challengeRating"`
	ImageRef         string             `json:"imageRef,omitempty"`
	ImageDescription string             `json:"imageDescription,omitempty"`
	Tags             []string           `json:"tags,omitempty"`
	Information      []InformationEntry `json:"information,omitempty"`
}

// MagicItem is the wire form of a magic item. Summary is output only.
type MagicItem struct {
	ID          string `json:"id,omitempty"`
	OwnerID     string `json:"ownerId,omitempty"`
	Name        string `json:"name"`
	SourceBook  string `json:"sourceBook,omitempty"`
	Rarity      string `json:"rarity,omitempty"`
	Description string `json:"description,omitempty"`
	ImageRef    string `json:"imageRef,omitempty"`
	DamageDice  string `json:"damageDice,omitempty"`
	DamageType  string `json:"damageType,omitempty"`
	Summary     string `json:"summary,omitempty"`
}

// AbilityStat is an ability score with its modifier
type AbilityStat struct {
	Ability  string `json:"ability"`
	Score    int    `json:"score"`
	Modifier int    `json:"modifier"`
}

// MonsterStats are the derived values of a monster
type MonsterStats struct {
	Name             string        `json:"name"`
	HitDice          string        `json:"hitDice"`
	AverageHitPoints float64       `json:"averageHitPoints"`
	ProficiencyBonus int           `json:"proficiencyBonus"`
	ExperiencePoints int           `json:"experiencePoints"`
	ChallengeRating  string        `json:"challengeRating"`
	Abilities        []AbilityStat `json:"abilities"`
}

// Profile is the wire form of a user profile
type Profile struct {
	UserID           string    `json:"userId"`
	DisplayName      string    `json:"displayName,omitempty"`
	FavoriteMonsters []string  `json:"favoriteMonsters,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitzero"`
	UpdatedAt        time.Time `json:"updatedAt,omitzero"`
}

// Preference is one stored setting
type Preference struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updatedAt,omitzero"`
}

// SkippedWeapon names an SRD weapon that was not imported
type SkippedWeapon struct {
	Name   string `json:"name"`
	Reason string `json:"reason"`
}

type CreateMonsterRequest struct {
	Monster *Monster `json:"monster"`
}

type CreateMonsterResponse struct {
	Monster *Monster `json:"monster"`
}

// UpdateMonsterRequest replaces the monster named OriginalName
type UpdateMonsterRequest struct {
	OriginalName string   `json:"originalName"`
	Monster      *Monster `json:"monster"`
}

type UpdateMonsterResponse struct {
	Monster *Monster `json:"monster"`
}

type GetMonsterRequest struct {
	Name string `json:"name"`
}

type GetMonsterResponse struct {
	Monster *Monster `json:"monster"`
}

type DeleteMonsterRequest struct {
	Name string `json:"name"`
}

type DeleteMonsterResponse struct {
	Monster          *Monster `json:"monster"`
	FavoritesRemoved int      `json:"favoritesRemoved"`
}

// ListMonstersRequest lists every monster, or only the caller's when Mine is set
type ListMonstersRequest struct {
	Mine bool `json:"mine,omitempty"`
}

type ListMonstersResponse struct {
	Monsters []*Monster `json:"monsters"`
}

type SearchMonstersRequest struct {
	Query string `json:"query"`
}

// SearchMonstersResponse carries the normalized query that was run
type SearchMonstersResponse struct {
	Query    string     `json:"query"`
	Monsters []*Monster `json:"monsters"`
}

type GetMonsterStatsRequest struct {
	Name string `json:"name"`
}

type GetMonsterStatsResponse struct {
	Stats *MonsterStats `json:"stats"`
}

type CreateMagicItemRequest struct {
	Item *MagicItem `json:"item"`
}

type CreateMagicItemResponse struct {
	Item *MagicItem `json:"item"`
}

// GetMagicItemRequest looks up by ID, or by Name when ID is empty
type GetMagicItemRequest struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type GetMagicItemResponse struct {
	Item *MagicItem `json:"item"`
}

type DeleteMagicItemRequest struct {
	ID string `json:"id"`
}

type DeleteMagicItemResponse struct {
	Item *MagicItem `json:"item"`
}

type ListMagicItemsRequest struct {
	Mine   bool   `json:"mine,omitempty"`
	Rarity string `json:"rarity,omitempty"`
}

type ListMagicItemsResponse struct {
	Items []*MagicItem `json:"items"`
}

type ImportSRDWeaponsRequest struct {
	Category string `json:"category"`
}

type ImportSRDWeaponsResponse struct {
	Imported []*MagicItem    `json:"imported"`
	Skipped  []SkippedWeapon `json:"skipped,omitempty"`
}

type GetProfileRequest struct{}

type GetProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type UpdateProfileRequest struct {
	DisplayName      string   `json:"displayName"`
	FavoriteMonsters []string `json:"favoriteMonsters"`
}

type UpdateProfileResponse struct {
	Profile *Profile `json:"profile"`
}

type GetPreferenceRequest struct {
	Key string `json:"key"`
}

type GetPreferenceResponse struct {
	Preference *Preference `json:"preference"`
}

type SetPreferenceRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type SetPreferenceResponse struct {
	Preference *Preference `json:"preference"`
}

type ListPreferencesRequest struct{}

type ListPreferencesResponse struct {
	Preferences []*Preference `json:"preferences"`
}
