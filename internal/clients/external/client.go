// Package external is the location for the dnd5e-api client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-compendium/internal/clients/external Client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// Weapon categories understood by the SRD equipment-categories endpoint
const (
	CategorySimpleWeapons  = "simple-weapons"
	CategoryMartialWeapons = "martial-weapons"
)

// detailConcurrency bounds parallel detail lookups against the API
const detailConcurrency = 8

// Client defines the interface for external API interactions
type Client interface {
	// ListWeaponsByCategory returns the weapons of an equipment category
	// with full details loaded.
	ListWeaponsByCategory(ctx context.Context, category string) ([]*WeaponData, error)

	// GetWeapon fetches a single weapon by its SRD key
	GetWeapon(ctx context.Context, key string) (*WeaponData, error)
}

type client struct {
	dnd5eClient dnd5e.Interface
}

// Config contains configuration options for the external client.
type Config struct {
	// BaseURL for the D&D 5e API (optional, defaults to https://www.dnd5eapi.co/api/2014/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// CacheTTL for the cached client (optional, defaults to 24 hours)
	CacheTTL time.Duration
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://www.dnd5eapi.co/api/2014/"
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = 30 * time.Second
	}
	if cfg.CacheTTL == 0 {
		cfg.CacheTTL = 24 * time.Hour
	}
	if cfg.HTTPTimeout < 0 || cfg.CacheTTL < 0 {
		return errors.InvalidArgument("external client timeouts must not be negative")
	}
	return nil
}

// New creates a new external client with the given configuration.
func New(cfg *Config) (Client, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	baseClient, err := dnd5e.NewDND5eAPI(&dnd5e.DND5eAPIConfig{
		Client:  httpClient,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create D&D 5e API client: %w", err)
	}

	// Wrap with caching; the SRD data is static
	cachedClient := dnd5e.NewCachedClient(baseClient, cfg.CacheTTL)

	return &client{
		dnd5eClient: cachedClient,
	}, nil
}

func (c *client) ListWeaponsByCategory(ctx context.Context, category string) ([]*WeaponData, error) {
	if category == "" {
		return nil, errors.InvalidArgument("category is required")
	}

	equipmentCategory, err := c.dnd5eClient.GetEquipmentCategory(category)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment category "+category)
	}
	if equipmentCategory == nil {
		return nil, errors.NotFoundf("equipment category %s not found", category)
	}

	return c.loadWeaponDetails(ctx, equipmentCategory.Equipment)
}

func (c *client) GetWeapon(_ context.Context, key string) (*WeaponData, error) {
	if key == "" {
		return nil, errors.InvalidArgument("weapon key is required")
	}

	slog.Info("Calling D&D 5e API to get weapon", "weapon", key)
	item, err := c.dnd5eClient.GetEquipment(key)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get equipment "+key)
	}

	weapon := convertWeapon(item)
	if weapon == nil {
		return nil, errors.InvalidArgumentf("equipment %s is not a weapon", key)
	}
	return weapon, nil
}

// loadWeaponDetails fetches every reference concurrently. Entries that
// are not weapons are skipped; input order is preserved.
func (c *client) loadWeaponDetails(ctx context.Context, refs []*entities.ReferenceItem) ([]*WeaponData, error) {
	slog.Info("Loading full details for weapons concurrently", "count", len(refs))
	loaded := make([]*WeaponData, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(detailConcurrency)

	for i, ref := range refs {
		if ref == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item, err := c.dnd5eClient.GetEquipment(ref.Key)
			if err != nil {
				slog.Error("Failed to get equipment details", "equipment", ref.Key, "error", err)
				return fmt.Errorf("failed to get equipment %s: %w", ref.Key, err)
			}
			loaded[i] = convertWeapon(item)
			if loaded[i] == nil {
				slog.Debug("Skipping non-weapon equipment", "equipment", ref.Name)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to load weapon details")
	}

	weapons := make([]*WeaponData, 0, len(loaded))
	for _, w := range loaded {
		if w != nil {
			weapons = append(weapons, w)
		}
	}
	return weapons, nil
}

// convertWeapon maps dnd5e-api equipment to WeaponData, nil for anything
// that is not a weapon
func convertWeapon(equipment dnd5e.EquipmentInterface) *WeaponData {
	eq, ok := equipment.(*entities.Weapon)
	if !ok || eq == nil {
		return nil
	}

	weapon := &WeaponData{
		Key:            eq.Key,
		Name:           eq.Name,
		WeaponCategory: eq.WeaponCategory,
		WeaponRange:    eq.WeaponRange,
	}
	if eq.EquipmentCategory != nil {
		weapon.Category = eq.EquipmentCategory.Key
	}
	if eq.Cost != nil {
		weapon.Cost = fmt.Sprintf("%v %s", eq.Cost.Quantity, eq.Cost.Unit)
	}
	if eq.Damage != nil {
		weapon.DamageDice = strings.TrimSpace(eq.Damage.DamageDice)
		if eq.Damage.DamageType != nil {
			weapon.DamageType = eq.Damage.DamageType.Name
		}
	}
	for _, prop := range eq.Properties {
		if prop != nil {
			weapon.Properties = append(weapon.Properties, prop.Name)
		}
	}
	return weapon
}
