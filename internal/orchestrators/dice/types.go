package dice

import (
	"time"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	dicesession "github.com/KirkDiggler/rpg-compendium/internal/repositories/dice_session"
)

// RollDiceInput rolls one dice expression into the entity's session for
// Context. TTL overrides the configured session lifetime when positive.
type RollDiceInput struct {
	EntityID    string
	Context     string
	Notation    string
	Description string
	TTL         time.Duration
}

// RollDiceOutput holds the new roll and the session after appending it
type RollDiceOutput struct {
	Roll    *dicesession.DiceRoll
	Session *dicesession.DiceSession
}

type GetRollSessionInput struct {
	EntityID string
	Context  string
}

type GetRollSessionOutput struct {
	Session *dicesession.DiceSession
}

type ClearRollSessionInput struct {
	EntityID string
	Context  string
}

// ClearRollSessionOutput reports how many rolls the deleted session held
type ClearRollSessionOutput struct {
	RollsDeleted int32
}

// RollAbilityScoresInput rolls a fresh set of six scores for EntityID
type RollAbilityScoresInput struct {
	EntityID string
	Method   string // MethodStandard (default) or MethodClassic
}

// RollAbilityScoresOutput holds the six rolls in ability order. Scores
// assigns the totals to Str, Dex, Con, Int, Wis and Cha in that order.
type RollAbilityScoresOutput struct {
	Rolls   []*dicesession.DiceRoll
	Scores  dnd5e.AbilityScores
	Session *dicesession.DiceSession
}
