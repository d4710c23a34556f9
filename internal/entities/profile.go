// Package entities provides the compendium's user-level data structures.
// Rules-bound records live in the dnd5e subpackage.
package entities

import (
	"slices"
	"time"
)

// Profile is a user's compendium profile
type Profile struct {
	UserID           string
	DisplayName      string
	FavoriteMonsters []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsFavorite reports whether the named monster is one of the user's favorites
func (p *Profile) IsFavorite(monsterName string) bool {
	return slices.Contains(p.FavoriteMonsters, monsterName)
}

// Preference is one stored key/value setting for a user
type Preference struct {
	UserID    string
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known preference keys
const (
	PreferenceLastSearch   = "last_search"
	PreferenceDefaultDice  = "default_dice"
	PreferenceListPageSize = "list_page_size"
)
