// Package profile provides the interface for user profile persistence
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/KirkDiggler/rpg-compendium/internal/repositories/profile Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
)

// Repository defines the interface for profile persistence
type Repository interface {
	// Get retrieves a profile by user id
	// Returns errors.NotFound if the user has no profile yet
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save creates or replaces a profile
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// RemoveFavorite drops a monster name from every profile that lists it
	RemoveFavorite(ctx context.Context, input RemoveFavoriteInput) (*RemoveFavoriteOutput, error)
}

// GetInput defines the input for getting a profile
type GetInput struct {
	UserID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *entities.Profile
}

// SaveInput defines the input for saving a profile
type SaveInput struct {
	Profile *entities.Profile
}

// SaveOutput defines the output for saving a profile
type SaveOutput struct {
	Profile *entities.Profile
}

// RemoveFavoriteInput defines the input for removing a favorite
type RemoveFavoriteInput struct {
	MonsterName string
}

// RemoveFavoriteOutput reports how many profiles changed
type RemoveFavoriteOutput struct {
	ProfilesUpdated int
}
