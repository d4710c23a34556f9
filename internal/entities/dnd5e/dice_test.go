package dnd5e_test

import (
	"fmt"
	"testing"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// fixedRoller returns values in order, cycling when exhausted
type fixedRoller struct {
	values []int
	next   int
	err    error
}

func (r *fixedRoller) Roll(_ int) (int, error) {
	if r.err != nil {
		return 0, r.err
	}
	v := r.values[r.next%len(r.values)]
	r.next++
	return v, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type DiceTestSuite struct {
	suite.Suite
}

func TestDiceSuite(t *testing.T) {
	suite.Run(t, new(DiceTestSuite))
}

func (s *DiceTestSuite) TestParseDice() {
	testCases := []struct {
		name      string
		input     string
		allowed   []int
		wantCount int
		wantSides int
		wantKind  errors.Kind
	}{
		{name: "count and sides", input: "4d10", wantCount: 4, wantSides: 10},
		{name: "count defaults to one", input: "d6", wantCount: 1, wantSides: 6},
		{name: "uppercase d", input: "2D8", wantCount: 2, wantSides: 8},
		{name: "surrounding whitespace", input: "  3d4 ", wantCount: 3, wantSides: 4},
		{name: "allowed sides", input: "1d20", allowed: dnd5e.StandardDieSides, wantCount: 1, wantSides: 20},
		{name: "wrong separator", input: "3x6", wantKind: errors.KindFormat},
		{name: "modifier not supported", input: "1d8+2", wantKind: errors.KindFormat},
		{name: "missing sides", input: "4d", wantKind: errors.KindFormat},
		{name: "empty", input: "", wantKind: errors.KindFormat},
		{name: "inner whitespace", input: "4 d6", wantKind: errors.KindFormat},
		{name: "sides not allowed", input: "4d7", allowed: []int{2, 4, 6, 8, 10, 12, 20, 100}, wantKind: errors.KindRange},
		{name: "zero count", input: "0d6", wantKind: errors.KindRange},
		{name: "one sided die", input: "2d1", wantKind: errors.KindRange},
		{name: "count overflow", input: "99999999999999999999d6", wantKind: errors.KindRange},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			expr, err := dnd5e.ParseDice(tc.input, tc.allowed...)
			if tc.wantKind != "" {
				s.Require().Error(err)
				s.Equal(tc.wantKind, errors.GetKind(err))
				return
			}
			s.Require().NoError(err)
			s.Equal(tc.wantCount, expr.Count())
			s.Equal(tc.wantSides, expr.Sides())
		})
	}
}

func (s *DiceTestSuite) TestSerializeRoundTrip() {
	for _, notation := range []string{"4d10", "1d6", "12d100"} {
		expr, err := dnd5e.ParseDice(notation)
		s.Require().NoError(err)
		s.Equal(notation, expr.String())
	}

	expr, err := dnd5e.ParseDice("d6")
	s.Require().NoError(err)
	s.Equal("1d6", expr.String())
}

func (s *DiceTestSuite) TestNewDiceExpression() {
	expr, err := dnd5e.NewDiceExpression(3, 8)
	s.Require().NoError(err)
	s.Equal("3d8", expr.String())
	s.False(expr.IsZero())

	_, err = dnd5e.NewDiceExpression(0, 8)
	s.True(errors.IsRangeError(err))
	s.Equal("count", errors.GetField(err))

	_, err = dnd5e.NewDiceExpression(1, 1)
	s.True(errors.IsRangeError(err))
	s.Equal("sides", errors.GetField(err))

	s.True(dnd5e.DiceExpression{}.IsZero())
}

func (s *DiceTestSuite) TestAverage() {
	for count := 1; count <= 5; count++ {
		for _, sides := range dnd5e.StandardDieSides {
			expr, err := dnd5e.NewDiceExpression(count, sides)
			s.Require().NoError(err)
			s.Equal(float64(sides+1)/2*float64(count), expr.Average(), fmt.Sprintf("%dd%d", count, sides))
		}
	}

	expr, _ := dnd5e.NewDiceExpression(4, 10)
	s.Equal(22.0, expr.Average())
}

func (s *DiceTestSuite) TestRollWithFixedRoller() {
	expr, _ := dnd5e.NewDiceExpression(3, 6)
	roller := &fixedRoller{values: []int{6, 1, 4}}

	total, err := expr.Roll(roller)
	s.Require().NoError(err)
	s.Equal(11, total)

	each, err := expr.RollEach(&fixedRoller{values: []int{2, 3, 5}})
	s.Require().NoError(err)
	s.Equal([]int{2, 3, 5}, each)
}

func (s *DiceTestSuite) TestRollErrors() {
	expr, _ := dnd5e.NewDiceExpression(1, 6)

	_, err := expr.Roll(nil)
	s.Error(err)

	_, err = expr.Roll(&fixedRoller{err: fmt.Errorf("broken")})
	s.Error(err)
	s.Contains(err.Error(), "failed to roll 1d6")

	_, err = dnd5e.DiceExpression{}.Roll(dice.DefaultRoller)
	s.True(errors.IsInvalidArgument(err))
}

func (s *DiceTestSuite) TestRollStaysInRange() {
	for _, notation := range []string{"1d2", "4d6", "3d20", "2d100"} {
		expr, err := dnd5e.ParseDice(notation)
		s.Require().NoError(err)
		for i := 0; i < 500; i++ {
			total, err := expr.Roll(dice.DefaultRoller)
			s.Require().NoError(err)
			s.GreaterOrEqual(total, expr.Min())
			s.LessOrEqual(total, expr.Max())
		}
	}
}
