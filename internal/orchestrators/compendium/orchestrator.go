// Package compendium orchestrates monster and magic item records, search,
// SRD imports and per-user profile data
package compendium

//go:generate mockgen -destination=mock/mock_service.go -package=compendiummock github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/rpg-compendium/internal/clients/external"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/events"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/idgen"
	magicitemrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/magic_item"
	monsterrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/monster"
	preferencesrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences"
	profilerepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/profile"
)

var tracer = otel.Tracer("github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium")

// Service defines the compendium operations
type Service interface {
	// Monsters
	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	SearchMonsters(ctx context.Context, input *SearchMonstersInput) (*SearchMonstersOutput, error)
	GetMonsterStats(ctx context.Context, input *GetMonsterStatsInput) (*GetMonsterStatsOutput, error)

	// Magic items
	CreateMagicItem(ctx context.Context, input *CreateMagicItemInput) (*CreateMagicItemOutput, error)
	GetMagicItem(ctx context.Context, input *GetMagicItemInput) (*GetMagicItemOutput, error)
	DeleteMagicItem(ctx context.Context, input *DeleteMagicItemInput) (*DeleteMagicItemOutput, error)
	ListMagicItems(ctx context.Context, input *ListMagicItemsInput) (*ListMagicItemsOutput, error)
	ImportSRDWeapons(ctx context.Context, input *ImportSRDWeaponsInput) (*ImportSRDWeaponsOutput, error)

	// Users
	GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error)
	UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error)
	GetPreference(ctx context.Context, input *GetPreferenceInput) (*GetPreferenceOutput, error)
	SetPreference(ctx context.Context, input *SetPreferenceInput) (*SetPreferenceOutput, error)
	ListPreferences(ctx context.Context, input *ListPreferencesInput) (*ListPreferencesOutput, error)
}

// Config holds the dependencies for the compendium orchestrator
type Config struct {
	MonsterRepo    monsterrepo.Repository
	MagicItemRepo  magicitemrepo.Repository
	ProfileRepo    profilerepo.Repository
	PreferenceRepo preferencesrepo.Repository
	ExternalClient external.Client
	// Publisher defaults to events.Nop()
	Publisher      events.Publisher
	MonsterIDGen   idgen.Generator
	MagicItemIDGen idgen.Generator
	Clock          clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.MagicItemRepo == nil {
		vb.RequiredField("MagicItemRepo")
	}
	if c.ProfileRepo == nil {
		vb.RequiredField("ProfileRepo")
	}
	if c.PreferenceRepo == nil {
		vb.RequiredField("PreferenceRepo")
	}
	if c.ExternalClient == nil {
		vb.RequiredField("ExternalClient")
	}
	if c.MonsterIDGen == nil {
		vb.RequiredField("MonsterIDGen")
	}
	if c.MagicItemIDGen == nil {
		vb.RequiredField("MagicItemIDGen")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	monsterRepo    monsterrepo.Repository
	magicItemRepo  magicitemrepo.Repository
	profileRepo    profilerepo.Repository
	preferenceRepo preferencesrepo.Repository
	externalClient external.Client
	publisher      events.Publisher
	monsterIDGen   idgen.Generator
	magicItemIDGen idgen.Generator
	clock          clock.Clock
}

// NewOrchestrator creates a new compendium orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	publisher := cfg.Publisher
	if publisher == nil {
		publisher = events.Nop()
	}

	return &orchestrator{
		monsterRepo:    cfg.MonsterRepo,
		magicItemRepo:  cfg.MagicItemRepo,
		profileRepo:    cfg.ProfileRepo,
		preferenceRepo: cfg.PreferenceRepo,
		externalClient: cfg.ExternalClient,
		publisher:      publisher,
		monsterIDGen:   cfg.MonsterIDGen,
		magicItemIDGen: cfg.MagicItemIDGen,
		clock:          cfg.Clock,
	}, nil
}

// publish never fails the calling operation; the change is already stored
func (o *orchestrator) publish(ctx context.Context, topic string, record core.Entity) {
	if err := o.publisher.Publish(ctx, topic, record); err != nil {
		slog.WarnContext(ctx, "Failed to publish compendium event",
			"topic", topic,
			"record_id", record.GetID(),
			"error", err,
		)
	}
}

// checkOwner rejects changes to a record owned by someone else. Records
// without an owner are shared and editable by any caller.
func checkOwner(callerID, ownerID, what string) error {
	if ownerID != "" && ownerID != callerID {
		return errors.PermissionDeniedf("%s belongs to another user", what)
	}
	return nil
}
