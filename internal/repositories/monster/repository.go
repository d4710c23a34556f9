// Package monster provides the interface for monster persistence
package monster

//go:generate mockgen -destination=mock/mock_repository.go -package=monstermock github.com/KirkDiggler/rpg-compendium/internal/repositories/monster Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
)

// Repository defines the interface for monster persistence.
// Monsters are keyed by name, their identity.
type Repository interface {
	// Create stores a new monster
	// Returns errors.AlreadyExists if a monster with the same name exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a monster by name
	// Returns errors.NotFound if no monster has that name
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces the monster stored under OriginalName.
	// A rename to a name already in use returns errors.AlreadyExists.
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster by name
	// Returns errors.NotFound if no monster has that name
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns monsters ordered by name, optionally for one owner
	List(ctx context.Context, input ListInput) (*ListOutput, error)
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *dnd5e.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Monster *dnd5e.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	Name string
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *dnd5e.Monster
}

// UpdateInput defines the input for replacing a monster
type UpdateInput struct {
	OriginalName string
	Monster      *dnd5e.Monster
}

// UpdateOutput defines the output for replacing a monster
type UpdateOutput struct {
	Monster *dnd5e.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	Name string
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct {
	Monster *dnd5e.Monster
}

// ListInput defines the input for listing monsters
type ListInput struct {
	// OwnerID limits the result to one owner when set
	OwnerID string
}

// ListOutput defines the output for listing monsters
type ListOutput struct {
	Monsters []*dnd5e.Monster
}
