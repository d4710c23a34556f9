package dnd5e

import (
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// CreatureSize is a creature's size category
type CreatureSize string

// Size categories
const (
	SizeTiny       CreatureSize = "TINY"
	SizeSmall      CreatureSize = "SMALL"
	SizeMedium     CreatureSize = "MEDIUM"
	SizeLarge      CreatureSize = "LARGE"
	SizeHuge       CreatureSize = "HUGE"
	SizeGargantuan CreatureSize = "GARGANTUAN"
)

// AllSizes lists size categories from smallest to largest
var AllSizes = []CreatureSize{SizeTiny, SizeSmall, SizeMedium, SizeLarge, SizeHuge, SizeGargantuan}

var hitDieSidesBySize = map[CreatureSize]int{
	SizeTiny:       4,
	SizeSmall:      6,
	SizeMedium:     8,
	SizeLarge:      10,
	SizeHuge:       12,
	SizeGargantuan: 20,
}

// ParseCreatureSize accepts a size name in any case, e.g. "large"
func ParseCreatureSize(s string) (CreatureSize, error) {
	size := CreatureSize(strings.ToUpper(strings.TrimSpace(s)))
	if !size.Valid() {
		return "", errors.RangeErrorf("size", "unknown creature size %q", s)
	}
	return size, nil
}

// Valid reports whether s is a known size category
func (s CreatureSize) Valid() bool {
	_, ok := hitDieSidesBySize[s]
	return ok
}

// HitDieSides is the hit die face count for a size; 0 for unknown sizes
func HitDieSides(size CreatureSize) int {
	return hitDieSidesBySize[size]
}

// Title is the display form, e.g. "Gargantuan"
func (s CreatureSize) Title() string {
	if s == "" {
		return ""
	}
	lower := strings.ToLower(string(s))
	return strings.ToUpper(lower[:1]) + lower[1:]
}
