// Package clock abstracts wall time so record timestamps and session
// expiry can be pinned in tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/rpg-compendium/internal/pkg/clock Clock

// Clock reports the current instant
type Clock interface {
	Now() time.Time
}

type system struct{}

func (system) Now() time.Time { return time.Now().UTC() }

// New returns the system clock. Times are always UTC.
func New() Clock {
	return system{}
}
