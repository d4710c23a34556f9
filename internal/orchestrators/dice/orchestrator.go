// Package dice implements the dice orchestrator for handling dice roll sessions
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/rpg-compendium/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	dicesession "github.com/KirkDiggler/rpg-compendium/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-compendium/internal/telemetry"
)

const (
	// ContextAbilityScores is the session context for ability score sets
	ContextAbilityScores = "ability_scores"

	// DefaultSessionTTL for dice sessions
	DefaultSessionTTL = 15 * time.Minute

	// Dice rolling methods
	MethodStandard = "4d6_drop_lowest"
	MethodClassic  = "3d6"

	// MaxDiceCount bounds a single roll
	MaxDiceCount = 100

	abilityScoreCount = 6
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-compendium/internal/orchestrators/dice")

// Service defines the interface for dice operations
type Service interface {
	// Generic dice rolling
	RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error)
	GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error)
	ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error)

	// RollAbilityScores rolls a fresh set of six scores, replacing any
	// earlier set for the entity
	RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	DiceSessionRepo dicesession.Repository
	IDGenerator     idgen.Generator
	// Roller defaults to dice.DefaultRoller
	Roller dice.Roller
	// AllowedSides restricts RollDice notation; empty allows any sides >= 2
	AllowedSides []int
	// SessionTTL applies when a roll does not ask for one; defaults to DefaultSessionTTL
	SessionTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.DiceSessionRepo == nil {
		vb.RequiredField("DiceSessionRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	for _, sides := range c.AllowedSides {
		if sides < 2 {
			vb.Fieldf("AllowedSides", "die sides must be at least 2, got %d", sides)
		}
	}

	return vb.Build()
}

type orchestrator struct {
	diceSessionRepo dicesession.Repository
	idGen           idgen.Generator
	roller          dice.Roller
	allowedSides    []int
	sessionTTL      time.Duration
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	roller := cfg.Roller
	if roller == nil {
		roller = dice.DefaultRoller
	}

	sessionTTL := cfg.SessionTTL
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}

	return &orchestrator{
		diceSessionRepo: cfg.DiceSessionRepo,
		sessionTTL:      sessionTTL,
		idGen:           cfg.IDGenerator,
		roller:          roller,
		allowedSides:    slices.Clone(cfg.AllowedSides),
	}, nil
}

// roll rolls expr and drops the lowest dropLowest dice from the total
func (o *orchestrator) roll(expr dnd5e.DiceExpression, dropLowest int) (*dicesession.DiceRoll, error) {
	results, err := expr.RollEach(o.roller)
	if err != nil {
		return nil, err
	}

	sorted := slices.Clone(results)
	slices.Sort(sorted)
	if dropLowest > len(sorted)-1 {
		dropLowest = 0
	}

	roll := &dicesession.DiceRoll{
		RollID:   o.idGen.Generate(),
		Notation: expr.String(),
	}
	for _, d := range sorted[:dropLowest] {
		// nolint:gosec // die faces are bounded by the notation
		roll.Dropped = append(roll.Dropped, int32(d))
	}

	dropped := slices.Clone(sorted[:dropLowest])
	for _, r := range results {
		if i := slices.Index(dropped, r); i >= 0 {
			dropped = slices.Delete(dropped, i, i+1)
			continue
		}
		// nolint:gosec // die faces are bounded by the notation
		roll.Dice = append(roll.Dice, int32(r))
		roll.Total += int32(r)
	}
	return roll, nil
}

// RollDice rolls dice using the specified notation and stores the result in a session
func (o *orchestrator) RollDice(ctx context.Context, input *RollDiceInput) (*RollDiceOutput, error) {
	ctx, span := tracer.Start(ctx, "dice.RollDice")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}
	if input.Notation == "" {
		return nil, errors.InvalidArgument("dice notation is required")
	}

	expr, err := dnd5e.ParseDice(input.Notation, o.allowedSides...)
	if err != nil {
		return nil, err
	}
	if expr.Count() > MaxDiceCount {
		return nil, errors.RangeErrorf("count", "cannot roll more than %d dice at once", MaxDiceCount)
	}
	span.SetAttributes(attribute.String("dice.notation", expr.String()))

	roll, err := o.roll(expr, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}
	roll.Description = input.Description

	ttl := input.TTL
	if ttl <= 0 {
		ttl = o.sessionTTL
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  input.Context,
		Rolls:    []dicesession.DiceRoll{*roll},
		TTL:      ttl,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store dice roll")
	}

	slog.Info("Dice rolled successfully",
		"entity_id", input.EntityID,
		"context", input.Context,
		"notation", roll.Notation,
		"total", roll.Total,
		"roll_id", roll.RollID,
	)

	return &RollDiceOutput{
		Roll:    roll,
		Session: appendOutput.Session,
	}, nil
}

// GetRollSession retrieves an existing dice roll session
func (o *orchestrator) GetRollSession(ctx context.Context, input *GetRollSessionInput) (*GetRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	getOutput, err := o.diceSessionRepo.Get(ctx, dicesession.GetInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get dice session")
	}

	return &GetRollSessionOutput{
		Session: getOutput.Session,
	}, nil
}

// ClearRollSession removes a dice roll session
func (o *orchestrator) ClearRollSession(ctx context.Context, input *ClearRollSessionInput) (*ClearRollSessionOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	if input.Context == "" {
		return nil, errors.InvalidArgument("context is required")
	}

	deleteOutput, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  input.Context,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete dice session")
	}

	slog.Info("Dice session cleared",
		"entity_id", input.EntityID,
		"context", input.Context,
		"rolls_deleted", deleteOutput.RollsDeleted,
	)

	return &ClearRollSessionOutput{
		RollsDeleted: deleteOutput.RollsDeleted,
	}, nil
}

// RollAbilityScores rolls six ability scores with the given method
func (o *orchestrator) RollAbilityScores(ctx context.Context, input *RollAbilityScoresInput) (*RollAbilityScoresOutput, error) {
	ctx, span := tracer.Start(ctx, "dice.RollAbilityScores")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.EntityID == "" {
		return nil, errors.InvalidArgument("entity ID is required")
	}
	method := input.Method
	if method == "" {
		method = MethodStandard
	}
	span.SetAttributes(attribute.String("dice.method", method))

	var (
		expr       dnd5e.DiceExpression
		dropLowest int
		err        error
	)
	switch method {
	case MethodStandard:
		expr, err = dnd5e.NewDiceExpression(4, 6)
		dropLowest = 1
	case MethodClassic:
		expr, err = dnd5e.NewDiceExpression(3, 6)
	default:
		return nil, errors.InvalidArgumentf("unsupported rolling method: %s", method)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to build ability score dice")
	}

	rolls := make([]*dicesession.DiceRoll, 0, abilityScoreCount)
	values := make([]dicesession.DiceRoll, 0, abilityScoreCount)
	totals := make([]int, 0, abilityScoreCount)
	for i := range abilityScoreCount {
		roll, err := o.roll(expr, dropLowest)
		if err != nil {
			telemetry.RecordError(span, err)
			return nil, errors.Wrapf(err, "failed to roll ability score %d", i+1)
		}
		roll.Description = fmt.Sprintf("Ability Score %d (%s)", i+1, method)
		rolls = append(rolls, roll)
		values = append(values, *roll)
		totals = append(totals, int(roll.Total))
	}

	scores, err := dnd5e.NewAbilityScores(totals[0], totals[1], totals[2], totals[3], totals[4], totals[5])
	if err != nil {
		return nil, errors.Wrap(err, "rolled ability scores out of range")
	}

	// A new set replaces the previous one
	if _, err := o.diceSessionRepo.Delete(ctx, dicesession.DeleteInput{
		EntityID: input.EntityID,
		Context:  ContextAbilityScores,
	}); err != nil {
		return nil, errors.Wrap(err, "failed to clear previous ability scores")
	}

	appendOutput, err := o.diceSessionRepo.Append(ctx, dicesession.AppendInput{
		EntityID: input.EntityID,
		Context:  ContextAbilityScores,
		Rolls:    values,
		TTL:      o.sessionTTL,
	})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrap(err, "failed to create ability score session")
	}

	slog.Info("Ability scores rolled successfully",
		"entity_id", input.EntityID,
		"method", method,
		"rolls_count", len(rolls),
	)

	return &RollAbilityScoresOutput{
		Rolls:   rolls,
		Scores:  scores,
		Session: appendOutput.Session,
	}, nil
}
