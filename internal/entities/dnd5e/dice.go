package dnd5e

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// diceNotationPattern matches "[count]d<sides>", e.g. "4d10", "d6", "2D8"
var diceNotationPattern = regexp.MustCompile(`^(\d*)[dD](\d+)$`)

// StandardDieSides are the physical dice used at the table
var StandardDieSides = []int{2, 3, 4, 6, 8, 10, 12, 20, 100}

const (
	minDiceCount = 1
	minDieSides  = 2
)

// DiceExpression is an immutable count/sides pair such as 4d10
type DiceExpression struct {
	count int
	sides int
}

// NewDiceExpression builds a DiceExpression from integers
func NewDiceExpression(count, sides int) (DiceExpression, error) {
	if count < minDiceCount {
		return DiceExpression{}, errors.RangeErrorf("count", "dice count must be at least %d, got %d", minDiceCount, count)
	}
	if sides < minDieSides {
		return DiceExpression{}, errors.RangeErrorf("sides", "dice must have at least %d sides, got %d", minDieSides, sides)
	}
	return DiceExpression{count: count, sides: sides}, nil
}

// ParseDice parses dice notation like "4d10" or "d6" (count defaults to 1).
// When allowedSides is non-empty the parsed sides must be one of them.
func ParseDice(text string, allowedSides ...int) (DiceExpression, error) {
	trimmed := strings.TrimSpace(text)
	matches := diceNotationPattern.FindStringSubmatch(trimmed)
	if matches == nil {
		return DiceExpression{}, errors.FormatErrorf("notation", "invalid dice notation %q (expected format: [count]d<sides>)", text)
	}

	count := 1
	if matches[1] != "" {
		n, err := strconv.Atoi(matches[1])
		if err != nil {
			return DiceExpression{}, errors.RangeErrorf("count", "dice count in %q is too large", text)
		}
		count = n
	}

	sides, err := strconv.Atoi(matches[2])
	if err != nil {
		return DiceExpression{}, errors.RangeErrorf("sides", "die size in %q is too large", text)
	}

	expr, err := NewDiceExpression(count, sides)
	if err != nil {
		return DiceExpression{}, err
	}

	if len(allowedSides) > 0 && !slices.Contains(allowedSides, sides) {
		return DiceExpression{}, errors.RangeErrorf("sides", "d%d is not an allowed die (allowed: %s)", sides, formatSides(allowedSides))
	}

	return expr, nil
}

func formatSides(sides []int) string {
	parts := make([]string, len(sides))
	for i, s := range sides {
		parts[i] = "d" + strconv.Itoa(s)
	}
	return strings.Join(parts, ", ")
}

// Count is the number of dice rolled
func (d DiceExpression) Count() int {
	return d.count
}

// Sides is the number of faces on each die
func (d DiceExpression) Sides() int {
	return d.sides
}

// IsZero reports whether d is the zero value rather than a parsed expression
func (d DiceExpression) IsZero() bool {
	return d.count == 0 && d.sides == 0
}

// String serializes the expression as "{count}d{sides}"
func (d DiceExpression) String() string {
	return fmt.Sprintf("%dd%d", d.count, d.sides)
}

// Average is the expected total: (sides + 1) / 2 * count
func (d DiceExpression) Average() float64 {
	return float64(d.sides+1) / 2 * float64(d.count)
}

// Min is the lowest possible total
func (d DiceExpression) Min() int {
	return d.count
}

// Max is the highest possible total
func (d DiceExpression) Max() int {
	return d.count * d.sides
}

// RollEach rolls every die with roller and returns the individual results
func (d DiceExpression) RollEach(roller dice.Roller) ([]int, error) {
	if roller == nil {
		return nil, errors.Internal("dice roller is required")
	}
	if d.IsZero() {
		return nil, errors.InvalidArgument("cannot roll an empty dice expression")
	}

	results, err := roller.RollN(d.count, d.sides)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to roll %s", d)
	}
	return results, nil
}

// Roll returns the sum of count independent draws in [1, sides]
func (d DiceExpression) Roll(roller dice.Roller) (int, error) {
	results, err := d.RollEach(roller)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, r := range results {
		total += r
	}
	return total, nil
}
