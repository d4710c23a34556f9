// Package magicitem provides the interface for magic item persistence
package magicitem

//go:generate mockgen -destination=mock/mock_repository.go -package=magicitemmock github.com/KirkDiggler/rpg-compendium/internal/repositories/magic_item Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
)

// Repository defines the interface for magic item persistence
type Repository interface {
	// Create stores a new magic item
	// Returns errors.AlreadyExists if an item with the same name exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a magic item by id
	// Returns errors.NotFound if it does not exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// GetByName retrieves a magic item by its exact name
	// Returns errors.NotFound if it does not exist
	GetByName(ctx context.Context, input GetByNameInput) (*GetOutput, error)

	// Delete removes a magic item by id
	// Returns errors.NotFound if it does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns magic items ordered by name
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a magic item
type CreateInput struct {
	Item *dnd5e.MagicItem
}

// CreateOutput defines the output for creating a magic item
type CreateOutput struct {
	Item *dnd5e.MagicItem
}

// GetInput defines the input for getting a magic item
type GetInput struct {
	ID string
}

// GetByNameInput defines the input for getting a magic item by name
type GetByNameInput struct {
	Name string
}

// GetOutput defines the output for getting a magic item
type GetOutput struct {
	Item *dnd5e.MagicItem
}

// DeleteInput defines the input for deleting a magic item
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a magic item
type DeleteOutput struct {
	Item *dnd5e.MagicItem
}

// ListInput defines the input for listing magic items
type ListInput struct {
	// OwnerID limits the result to one owner when set
	OwnerID string
	// Rarity limits the result to one rarity when set
	Rarity dnd5e.Rarity
}

// ListOutput defines the output for listing magic items
type ListOutput struct {
	Items []*dnd5e.MagicItem
}
