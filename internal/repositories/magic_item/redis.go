package magicitem

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
	// Key pattern: magic_item:{id}
	itemKeyPrefix = "magic_item:"
	// Hash of item name -> id
	namesKey = "magic_item_index:names"

	// Error messages
	errItemNil   = "magic item cannot be nil"
	errIDEmpty   = "magic item ID cannot be empty"
	errNameEmpty = "magic item name cannot be empty"
)

// itemData is the storage structure for a magic item
type itemData struct {
	ID          string `json:"id"`
	OwnerID     string `json:"owner_id,omitempty"`
	Name        string `json:"name"`
	SourceBook  string `json:"source_book,omitempty"`
	Rarity      string `json:"rarity"`
	Description string `json:"description,omitempty"`
	ImageRef    string `json:"image_ref,omitempty"`
	DamageDice  string `json:"damage_dice,omitempty"`
	DamageType  string `json:"damage_type"`
}

func toData(item *dnd5e.MagicItem) itemData {
	data := itemData{
		ID:          item.ID(),
		OwnerID:     item.OwnerID(),
		Name:        item.Name(),
		SourceBook:  item.SourceBook(),
		Rarity:      string(item.Rarity()),
		Description: item.Description(),
		ImageRef:    item.ImageRef(),
		DamageType:  string(item.DamageType()),
	}
	if dice, ok := item.DamageDice(); ok {
		data.DamageDice = dice.String()
	}
	return data
}

func fromData(data itemData) (*dnd5e.MagicItem, error) {
	var damage *dnd5e.DiceExpression
	if data.DamageDice != "" {
		d, err := dnd5e.ParseDice(data.DamageDice)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "stored magic item has invalid damage dice")
		}
		damage = &d
	}

	return dnd5e.NewMagicItem(dnd5e.MagicItemFields{
		ID:          data.ID,
		OwnerID:     data.OwnerID,
		Name:        data.Name,
		SourceBook:  data.SourceBook,
		Rarity:      dnd5e.Rarity(data.Rarity),
		Description: data.Description,
		ImageRef:    data.ImageRef,
		DamageDice:  damage,
		DamageType:  dnd5e.DamageType(data.DamageType),
	}), nil
}

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis magic item repository.
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

// NewRedis creates a new Redis-backed magic item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}
	if input.Item.ID() == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}
	if input.Item.Name() == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	payload, err := json.Marshal(toData(input.Item))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal magic item")
	}

	claimed, err := r.client.HSetNX(ctx, namesKey, input.Item.Name(), input.Item.ID()).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to index magic item %s", input.Item.Name())
	}
	if !claimed {
		return nil, errors.AlreadyExistsf("magic item %q already exists", input.Item.Name())
	}

	if err := r.client.Set(ctx, GetKey(input.Item.ID()), payload, 0).Err(); err != nil {
		_ = r.client.HDel(ctx, namesKey, input.Item.Name())
		return nil, errors.Wrapf(err, "failed to store magic item %s", input.Item.ID())
	}

	return &CreateOutput{Item: input.Item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	item, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) GetByName(ctx context.Context, input GetByNameInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errNameEmpty)
	}

	id, err := r.client.HGet(ctx, namesKey, input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("magic item %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to look up magic item %s", input.Name)
	}

	item, err := r.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	item, err := r.get(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, GetKey(input.ID))
		pipe.HDel(ctx, namesKey, item.Name())
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete magic item %s", input.ID)
	}

	return &DeleteOutput{Item: item}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	index, err := r.client.HGetAll(ctx, namesKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list magic items")
	}
	if len(index) == 0 {
		return &ListOutput{Items: []*dnd5e.MagicItem{}}, nil
	}

	names := make([]string, 0, len(index))
	for name := range index {
		names = append(names, name)
	}
	slices.Sort(names)

	keys := make([]string, len(names))
	for i, name := range names {
		keys[i] = GetKey(index[name])
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load magic items")
	}

	items := make([]*dnd5e.MagicItem, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		item, err := decode(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode magic item %s", names[i])
		}
		if input.OwnerID != "" && item.OwnerID() != input.OwnerID {
			continue
		}
		if input.Rarity != "" && item.Rarity() != input.Rarity {
			continue
		}
		items = append(items, item)
	}

	return &ListOutput{Items: items}, nil
}

func (r *redisRepository) get(ctx context.Context, id string) (*dnd5e.MagicItem, error) {
	raw, err := r.client.Get(ctx, GetKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("magic item %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get magic item %s", id)
	}
	return decode(raw)
}

func decode(raw string) (*dnd5e.MagicItem, error) {
	var data itemData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal magic item")
	}
	return fromData(data)
}

// GetKey returns the Redis key for a magic item
// Exposed for testing purposes
func GetKey(id string) string {
	return fmt.Sprintf("%s%s", itemKeyPrefix, id)
}
