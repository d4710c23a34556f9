package dnd5e

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// ChallengeRating is a creature's difficulty: 0, 1/8, 1/4, 1/2 or 1..30
type ChallengeRating float64

// Fractional challenge ratings
const (
	ChallengeRatingEighth  ChallengeRating = 0.125
	ChallengeRatingQuarter ChallengeRating = 0.25
	ChallengeRatingHalf    ChallengeRating = 0.5
)

const maxChallengeRating = 30

// experienceByChallengeRating covers CR 2..30; CR 0..1 is cr * 200
var experienceByChallengeRating = map[int]int{
	2: 450, 3: 700, 4: 1100, 5: 1800, 6: 2300, 7: 2900, 8: 3900, 9: 5000, 10: 5900,
	11: 7200, 12: 8400, 13: 10000, 14: 11500, 15: 13000, 16: 15000, 17: 18000, 18: 20000,
	19: 22000, 20: 25000, 21: 33000, 22: 41000, 23: 50000, 24: 62000, 25: 75000,
	26: 90000, 27: 105000, 28: 120000, 29: 135000, 30: 155000,
}

var fractionLabels = map[ChallengeRating]string{
	ChallengeRatingEighth:  "1/8",
	ChallengeRatingQuarter: "1/4",
	ChallengeRatingHalf:    "1/2",
}

// AllChallengeRatings lists every valid rating in ascending order
func AllChallengeRatings() []ChallengeRating {
	out := []ChallengeRating{0, ChallengeRatingEighth, ChallengeRatingQuarter, ChallengeRatingHalf}
	for i := 1; i <= maxChallengeRating; i++ {
		out = append(out, ChallengeRating(i))
	}
	return out
}

// Valid reports whether cr is 0, 1/8, 1/4, 1/2 or an integer in [1, 30]
func (cr ChallengeRating) Valid() bool {
	switch cr {
	case 0, ChallengeRatingEighth, ChallengeRatingQuarter, ChallengeRatingHalf:
		return true
	}
	f := float64(cr)
	return f >= 1 && f <= maxChallengeRating && f == math.Trunc(f)
}

// ParseChallengeRating accepts "1/8", "0.125", "5" and similar
func ParseChallengeRating(s string) (ChallengeRating, error) {
	trimmed := strings.TrimSpace(s)
	for cr, label := range fractionLabels {
		if trimmed == label {
			return cr, nil
		}
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, errors.FormatErrorf("challenge_rating", "invalid challenge rating %q", s)
	}
	cr := ChallengeRating(f)
	if !cr.Valid() {
		return 0, errors.RangeErrorf("challenge_rating",
			"Challenge rating must be 0, 1/8, 1/4, 1/2 or a whole number from 1 to 30, got %s", trimmed)
	}
	return cr, nil
}

// PrettyChallengeRating renders 0.125 as "1/8", 0.25 as "1/4", 0.5 as "1/2"
// and anything else as an integer
func PrettyChallengeRating(cr ChallengeRating) string {
	if label, ok := fractionLabels[cr]; ok {
		return label
	}
	return strconv.Itoa(int(cr))
}

// String is the pretty form
func (cr ChallengeRating) String() string {
	return PrettyChallengeRating(cr)
}

// mustBeValid panics for ratings outside the allowed set. Records are
// validated at construction, so reaching this is a programming error.
func (cr ChallengeRating) mustBeValid() {
	if !cr.Valid() {
		panic(fmt.Sprintf("dnd5e: challenge rating %v is not in the allowed set", float64(cr)))
	}
}

// ExperiencePoints is cr * 200 for cr in [0, 1] and the table value above.
// It panics if cr is not a valid challenge rating.
func (cr ChallengeRating) ExperiencePoints() int {
	cr.mustBeValid()
	if cr <= 1 {
		return int(float64(cr) * 200)
	}
	return experienceByChallengeRating[int(cr)]
}

// ProficiencyBonus is trunc((cr - 1) / 4) + 2, truncating toward zero.
// It panics if cr is not a valid challenge rating.
func (cr ChallengeRating) ProficiencyBonus() int {
	cr.mustBeValid()
	return int(math.Trunc((float64(cr)-1)/4)) + 2
}
