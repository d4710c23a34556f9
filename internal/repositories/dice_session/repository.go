// Package dicesession stores short-lived groups of dice rolls
package dicesession

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dicesessionmock github.com/KirkDiggler/rpg-compendium/internal/repositories/dice_session Repository

// DiceSession is the set of rolls an entity made in one context,
// e.g. a player's "ability_scores" rolls
type DiceSession struct {
	EntityID  string
	Context   string
	Rolls     []DiceRoll
	CreatedAt time.Time
	ExpiresAt time.Time
}

// DiceRoll is a single rolled expression
type DiceRoll struct {
	RollID      string
	Notation    string
	Dice        []int32
	Dropped     []int32
	Total       int32
	Description string
}

// Repository defines the interface for dice session storage operations
type Repository interface {
	// Append adds rolls to the session, creating it with TTL when missing.
	// An existing session keeps its original expiry.
	Append(ctx context.Context, input AppendInput) (*AppendOutput, error)

	// Get retrieves a dice session
	// Returns errors.NotFound when missing or expired
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a dice session and reports how many rolls it held
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// AppendInput contains parameters for appending rolls
type AppendInput struct {
	EntityID string
	Context  string
	Rolls    []DiceRoll
	// TTL applies only when the session is created; zero means the default
	TTL time.Duration
}

// AppendOutput contains the session after the append
type AppendOutput struct {
	Session *DiceSession
}

// GetInput contains parameters for retrieving a dice session
type GetInput struct {
	EntityID string
	Context  string
}

// GetOutput contains the result of retrieving a dice session
type GetOutput struct {
	Session *DiceSession
}

// DeleteInput contains parameters for deleting a dice session
type DeleteInput struct {
	EntityID string
	Context  string
}

// DeleteOutput contains the result of deleting a dice session
type DeleteOutput struct {
	RollsDeleted int32
}
