package profile

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-compendium/internal/redis"
)

const (
	// Key pattern: profile:{user_id}
	profileKeyPrefix = "profile:"
	// Key pattern: profile_index:favorite:{monster_name} -> set of user ids
	favoriteKeyPrefix = "profile_index:favorite:"

	errUserIDEmpty = "user ID cannot be empty"
)

type profileData struct {
	UserID           string    `json:"user_id"`
	DisplayName      string    `json:"display_name,omitempty"`
	FavoriteMonsters []string  `json:"favorite_monsters,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis profile repository.
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

// NewRedis creates a new Redis-backed profile repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	p, err := r.get(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Profile: p}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Profile == nil {
		return nil, errors.InvalidArgument("profile cannot be nil")
	}
	if input.Profile.UserID == "" {
		return nil, errors.InvalidArgument(errUserIDEmpty)
	}

	previous, err := r.get(ctx, input.Profile.UserID)
	if err != nil && !errors.IsNotFound(err) {
		return nil, err
	}

	payload, err := json.Marshal(profileData(*input.Profile))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal profile")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, GetKey(input.Profile.UserID), payload, 0)
		if previous != nil {
			for _, name := range previous.FavoriteMonsters {
				if !input.Profile.IsFavorite(name) {
					pipe.SRem(ctx, favoriteKeyPrefix+name, input.Profile.UserID)
				}
			}
		}
		for _, name := range input.Profile.FavoriteMonsters {
			pipe.SAdd(ctx, favoriteKeyPrefix+name, input.Profile.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save profile %s", input.Profile.UserID)
	}

	return &SaveOutput{Profile: input.Profile}, nil
}

func (r *redisRepository) RemoveFavorite(ctx context.Context, input RemoveFavoriteInput) (*RemoveFavoriteOutput, error) {
	if input.MonsterName == "" {
		return nil, errors.InvalidArgument("monster name cannot be empty")
	}

	indexKey := favoriteKeyPrefix + input.MonsterName
	userIDs, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read favorites of %s", input.MonsterName)
	}

	updated := 0
	for _, userID := range userIDs {
		p, err := r.get(ctx, userID)
		if errors.IsNotFound(err) {
			continue
		}
		if err != nil {
			return nil, err
		}

		p.FavoriteMonsters = slices.DeleteFunc(p.FavoriteMonsters, func(name string) bool {
			return name == input.MonsterName
		})
		payload, err := json.Marshal(profileData(*p))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal profile")
		}
		if err := r.client.Set(ctx, GetKey(userID), payload, 0).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to update profile %s", userID)
		}
		updated++
	}

	if err := r.client.Del(ctx, indexKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to clear favorites of %s", input.MonsterName)
	}

	return &RemoveFavoriteOutput{ProfilesUpdated: updated}, nil
}

func (r *redisRepository) get(ctx context.Context, userID string) (*entities.Profile, error) {
	raw, err := r.client.Get(ctx, GetKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("profile for user %s not found", userID)
		}
		return nil, errors.Wrapf(err, "failed to get profile %s", userID)
	}

	var data profileData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal profile")
	}
	p := entities.Profile(data)
	return &p, nil
}

// GetKey returns the Redis key for a user's profile
// Exposed for testing purposes
func GetKey(userID string) string {
	return fmt.Sprintf("%s%s", profileKeyPrefix, userID)
}
