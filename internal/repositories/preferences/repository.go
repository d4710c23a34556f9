// Package preferences stores small per-user key/value settings locally
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
)

// Repository defines the interface for preference persistence
type Repository interface {
	// Get returns one preference
	// Returns errors.NotFound if the key was never set
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Set creates or replaces a preference
	Set(ctx context.Context, input SetInput) (*SetOutput, error)

	// List returns every preference of a user ordered by key
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// Delete removes a preference; deleting a missing key is not an error
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// GetInput defines the input for getting a preference
type GetInput struct {
	UserID string
	Key    string
}

// GetOutput defines the output for getting a preference
type GetOutput struct {
	Preference *entities.Preference
}

// SetInput defines the input for setting a preference
type SetInput struct {
	UserID string
	Key    string
	Value  string
}

// SetOutput defines the output for setting a preference
type SetOutput struct {
	Preference *entities.Preference
}

// ListInput defines the input for listing preferences
type ListInput struct {
	UserID string
}

// ListOutput defines the output for listing preferences
type ListOutput struct {
	Preferences []*entities.Preference
}

// DeleteInput defines the input for deleting a preference
type DeleteInput struct {
	UserID string
	Key    string
}

// DeleteOutput defines the output for deleting a preference
type DeleteOutput struct {
	Deleted bool
}
