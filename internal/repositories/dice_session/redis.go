package dicesession

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	// Key pattern: dice_session:{entity_id}:{context}
	sessionKeyPrefix = "dice_session:"
	// DefaultTTL is used when AppendInput.TTL is zero
	DefaultTTL = 15 * time.Minute

	// optimistic transaction retries before giving up on a contended session
	maxAppendAttempts = 5

	// Error messages
	errEntityIDEmpty = "entity ID cannot be empty"
	errContextEmpty  = "context cannot be empty"
	errNoRolls       = "at least one roll is required"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for dice sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// sessionData is the storage structure for a session
type sessionData struct {
	EntityID  string     `json:"entity_id"`
	Context   string     `json:"context"`
	Rolls     []rollData `json:"rolls"`
	CreatedAt time.Time  `json:"created_at"`
	ExpiresAt time.Time  `json:"expires_at"`
}

type rollData struct {
	RollID      string  `json:"roll_id"`
	Notation    string  `json:"notation"`
	Dice        []int32 `json:"dice"`
	Dropped     []int32 `json:"dropped,omitempty"`
	Total       int32   `json:"total"`
	Description string  `json:"description,omitempty"`
}

func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}
	if len(input.Rolls) == 0 {
		return nil, errors.InvalidArgument(errNoRolls)
	}

	ttl := input.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	key := buildKey(input.EntityID, input.Context)

	var session *DiceSession
	appendFn := func(tx *redis.Tx) error {
		now := r.clock.Now()

		current, err := r.load(ctx, tx, key)
		if err != nil && !errors.IsNotFound(err) {
			return err
		}
		if current == nil || now.After(current.ExpiresAt) {
			current = &DiceSession{
				EntityID:  input.EntityID,
				Context:   input.Context,
				CreatedAt: now,
				ExpiresAt: now.Add(ttl),
			}
		}
		current.Rolls = append(current.Rolls, input.Rolls...)

		payload, err := json.Marshal(toData(current))
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}

		remaining := max(current.ExpiresAt.Sub(now), time.Second)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, remaining)
			return nil
		})
		if err != nil {
			return err
		}
		session = current
		return nil
	}

	for attempt := 0; attempt < maxAppendAttempts; attempt++ {
		err := r.client.Watch(ctx, appendFn, key)
		if err == nil {
			return &AppendOutput{Session: session}, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		return nil, errors.Wrapf(err, "failed to append rolls to session")
	}

	return nil, errors.Newf(errors.CodeAborted, "dice session %s:%s is busy, try again", input.EntityID, input.Context)
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)
	session, err := r.load(ctx, r.client, key)
	if err != nil {
		return nil, err
	}

	if r.clock.Now().After(session.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("dice session has expired")
	}

	return &GetOutput{Session: session}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.EntityID, input.Context); err != nil {
		return nil, err
	}

	key := buildKey(input.EntityID, input.Context)

	var rollsDeleted int32
	if out, err := r.Get(ctx, GetInput(input)); err == nil {
		// nolint:gosec // roll count is always small
		rollsDeleted = int32(len(out.Session.Rolls))
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session from Redis")
	}

	return &DeleteOutput{RollsDeleted: rollsDeleted}, nil
}

// getter is satisfied by both the client and a WATCH transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func (r *redisRepository) load(ctx context.Context, g getter, key string) (*DiceSession, error) {
	raw, err := g.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dice session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var data sessionData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}
	return fromData(data), nil
}

func toData(s *DiceSession) sessionData {
	rolls := make([]rollData, len(s.Rolls))
	for i, roll := range s.Rolls {
		rolls[i] = rollData(roll)
	}
	return sessionData{
		EntityID:  s.EntityID,
		Context:   s.Context,
		Rolls:     rolls,
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
}

func fromData(d sessionData) *DiceSession {
	rolls := make([]DiceRoll, len(d.Rolls))
	for i, roll := range d.Rolls {
		rolls[i] = DiceRoll(roll)
	}
	return &DiceSession{
		EntityID:  d.EntityID,
		Context:   d.Context,
		Rolls:     rolls,
		CreatedAt: d.CreatedAt,
		ExpiresAt: d.ExpiresAt,
	}
}

func validateKey(entityID, context string) error {
	if entityID == "" {
		return errors.InvalidArgument(errEntityIDEmpty)
	}
	if context == "" {
		return errors.InvalidArgument(errContextEmpty)
	}
	return nil
}

// buildKey creates the Redis key for a dice session
func buildKey(entityID, context string) string {
	return fmt.Sprintf("%s%s:%s", sessionKeyPrefix, entityID, context)
}
