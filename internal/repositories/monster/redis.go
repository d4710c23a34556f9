package monster

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	// Key pattern: monster:{name}
	monsterKeyPrefix = "monster:"
	// Sorted set of every monster name, scored 0 for lexical order
	namesKey = "monster_index:names"
	// Key pattern: monster_index:owner:{owner_id}
	ownerKeyPrefix = "monster_index:owner:"

	// Error messages
	errMonsterNil = "monster cannot be nil"
	errNameEmpty  = "monster name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis monster repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed monster repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}

	payload, err := encode(input.Monster)
	if err != nil {
		return nil, err
	}

	created, err := r.client.SetNX(ctx, GetKey(input.Monster.Name()), payload, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store monster %s", input.Monster.Name())
	}
	if !created {
		return nil, errors.AlreadyExistsf("monster %q already exists", input.Monster.Name())
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.addToIndexes(ctx, pipe, input.Monster)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to index monster %s", input.Monster.Name())
	}

	return &CreateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	m, err := r.get(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Monster: m}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.OriginalName == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	existing, err := r.get(ctx, input.OriginalName)
	if err != nil {
		return nil, err
	}

	payload, err := encode(input.Monster)
	if err != nil {
		return nil, err
	}

	if input.Monster.Name() == input.OriginalName {
		_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, GetKey(input.OriginalName), payload, 0)
			r.removeFromIndexes(ctx, pipe, existing)
			r.addToIndexes(ctx, pipe, input.Monster)
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to update monster %s", input.OriginalName)
		}
		return &UpdateOutput{Monster: input.Monster}, nil
	}

	// Rename: claim the new name first so a collision leaves the old record untouched
	claimed, err := r.client.SetNX(ctx, GetKey(input.Monster.Name()), payload, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store monster %s", input.Monster.Name())
	}
	if !claimed {
		return nil, errors.AlreadyExistsf("monster %q already exists", input.Monster.Name())
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, GetKey(input.OriginalName))
		r.removeFromIndexes(ctx, pipe, existing)
		r.addToIndexes(ctx, pipe, input.Monster)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to rename monster %s", input.OriginalName)
	}

	return &UpdateOutput{Monster: input.Monster}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	existing, err := r.get(ctx, input.Name)
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, GetKey(input.Name))
		r.removeFromIndexes(ctx, pipe, existing)
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster %s", input.Name)
	}

	return &DeleteOutput{Monster: existing}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	var names []string
	var err error
	if input.OwnerID == "" {
		names, err = r.client.ZRange(ctx, namesKey, 0, -1).Result()
	} else {
		names, err = r.client.SMembers(ctx, ownerKeyPrefix+input.OwnerID).Result()
		slices.Sort(names)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list monster names")
	}

	if len(names) == 0 {
		return &ListOutput{Monsters: []*dnd5e.Monster{}}, nil
	}

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = GetKey(name)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load monsters")
	}

	monsters := make([]*dnd5e.Monster, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a record; skip it
			continue
		}
		m, err := decode(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode monster %s", names[i])
		}
		monsters = append(monsters, m)
	}

	return &ListOutput{Monsters: monsters}, nil
}

func (r *redisRepository) get(ctx context.Context, name string) (*dnd5e.Monster, error) {
	raw, err := r.client.Get(ctx, GetKey(name)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("monster %q not found", name)
		}
		return nil, errors.Wrapf(err, "failed to get monster %s", name)
	}

	return decode(raw)
}

func (r *redisRepository) addToIndexes(ctx context.Context, pipe redis.Pipeliner, m *dnd5e.Monster) {
	pipe.ZAdd(ctx, namesKey, redis.Z{Score: 0, Member: m.Name()})
	if m.OwnerID() != "" {
		pipe.SAdd(ctx, ownerKeyPrefix+m.OwnerID(), m.Name())
	}
}

func (r *redisRepository) removeFromIndexes(ctx context.Context, pipe redis.Pipeliner, m *dnd5e.Monster) {
	pipe.ZRem(ctx, namesKey, m.Name())
	if m.OwnerID() != "" {
		pipe.SRem(ctx, ownerKeyPrefix+m.OwnerID(), m.Name())
	}
}

func decode(raw string) (*dnd5e.Monster, error) {
	var data monsterData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal monster")
	}
	return fromData(data)
}

// GetKey returns the Redis key for a monster
// Exposed for testing purposes
func GetKey(name string) string {
	return fmt.Sprintf("%s%s", monsterKeyPrefix, name)
}
