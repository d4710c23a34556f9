package compendium

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/events"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/textnorm"
	monsterrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/monster"
	preferencesrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences"
	profilerepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-compendium/internal/search"
	"github.com/KirkDiggler/rpg-compendium/internal/telemetry"
)

func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*CreateMonsterOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.CreateMonster")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	fields := input.Fields
	fields.ID = o.monsterIDGen.Generate()
	fields.OwnerID = input.OwnerID

	monster, err := dnd5e.NewMonster(fields)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("monster.name", monster.Name()))

	if _, err := o.monsterRepo.Create(ctx, monsterrepo.CreateInput{Monster: monster}); err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrapf(err, "failed to create monster %q", monster.Name())
	}

	slog.Info("Monster created",
		"monster_id", monster.ID(),
		"name", monster.Name(),
		"owner_id", monster.OwnerID(),
	)
	o.publish(ctx, events.TopicMonsterSaved, monster)

	return &CreateMonsterOutput{Monster: monster}, nil
}

func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*UpdateMonsterOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.UpdateMonster")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.OriginalName == "" {
		return nil, errors.InvalidArgument("original name is required")
	}

	existing, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{Name: input.OriginalName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.OriginalName)
	}
	if err := checkOwner(input.OwnerID, existing.Monster.OwnerID(), "monster "+input.OriginalName); err != nil {
		return nil, err
	}

	fields := input.Fields
	fields.ID = existing.Monster.ID()
	fields.OwnerID = existing.Monster.OwnerID()

	monster, err := dnd5e.NewMonster(fields)
	if err != nil {
		return nil, err
	}

	if _, err := o.monsterRepo.Update(ctx, monsterrepo.UpdateInput{
		OriginalName: input.OriginalName,
		Monster:      monster,
	}); err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrapf(err, "failed to update monster %q", input.OriginalName)
	}

	renamed := monster.Name() != input.OriginalName
	if renamed {
		// favorites are keyed by name
		if _, err := o.profileRepo.RemoveFavorite(ctx, profilerepo.RemoveFavoriteInput{
			MonsterName: input.OriginalName,
		}); err != nil {
			slog.WarnContext(ctx, "Failed to drop favorites of renamed monster",
				"name", input.OriginalName,
				"error", err,
			)
		}
	}

	slog.Info("Monster updated",
		"monster_id", monster.ID(),
		"name", monster.Name(),
		"renamed", renamed,
	)
	o.publish(ctx, events.TopicMonsterSaved, monster)

	return &UpdateMonsterOutput{Monster: monster}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*GetMonsterOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	out, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
	}

	return &GetMonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteMonsterOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.DeleteMonster")
	defer span.End()

	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	existing, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
	}
	if err := checkOwner(input.OwnerID, existing.Monster.OwnerID(), "monster "+input.Name); err != nil {
		return nil, err
	}

	deleted, err := o.monsterRepo.Delete(ctx, monsterrepo.DeleteInput{Name: input.Name})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrapf(err, "failed to delete monster %q", input.Name)
	}

	favorites, err := o.profileRepo.RemoveFavorite(ctx, profilerepo.RemoveFavoriteInput{MonsterName: input.Name})
	removed := 0
	if err != nil {
		slog.WarnContext(ctx, "Failed to remove deleted monster from favorites", "name", input.Name, "error", err)
	} else {
		removed = favorites.ProfilesUpdated
	}

	slog.Info("Monster deleted",
		"monster_id", deleted.Monster.ID(),
		"name", input.Name,
		"favorites_removed", removed,
	)
	o.publish(ctx, events.TopicMonsterDeleted, deleted.Monster)

	return &DeleteMonsterOutput{
		Monster:          deleted.Monster,
		FavoritesRemoved: removed,
	}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	ownerID := ""
	if input != nil {
		ownerID = input.OwnerID
	}

	out, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{OwnerID: ownerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

// SearchMonsters filters every monster with the parsed query and orders
// the matches by name
func (o *orchestrator) SearchMonsters(ctx context.Context, input *SearchMonstersInput) (*SearchMonstersOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.SearchMonsters")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	query := search.Parse(input.Query)
	span.SetAttributes(attribute.String("search.query", query.String()))

	all, err := o.monsterRepo.List(ctx, monsterrepo.ListInput{})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrap(err, "failed to list monsters")
	}

	matches := query.Filter(all.Monsters)
	slices.SortStableFunc(matches, func(a, b *dnd5e.Monster) int {
		return textnorm.Compare(a.Name(), b.Name())
	})
	span.SetAttributes(attribute.Int("search.matches", len(matches)))

	if input.UserID != "" {
		if _, err := o.preferenceRepo.Set(ctx, preferencesrepo.SetInput{
			UserID: input.UserID,
			Key:    entities.PreferenceLastSearch,
			Value:  strings.TrimSpace(input.Query),
		}); err != nil {
			slog.WarnContext(ctx, "Failed to remember last search", "user_id", input.UserID, "error", err)
		}
	}

	return &SearchMonstersOutput{
		Query:    query,
		Monsters: matches,
	}, nil
}

func (o *orchestrator) GetMonsterStats(ctx context.Context, input *GetMonsterStatsInput) (*GetMonsterStatsOutput, error) {
	if input == nil || input.Name == "" {
		return nil, errors.InvalidArgument("monster name is required")
	}

	out, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %q", input.Name)
	}

	return &GetMonsterStatsOutput{Stats: statsFor(out.Monster)}, nil
}

func statsFor(m *dnd5e.Monster) *MonsterStats {
	scores := m.AbilityScores()
	abilities := make([]AbilityStat, 0, len(dnd5e.AllAbilities))
	for _, ability := range dnd5e.AllAbilities {
		abilities = append(abilities, AbilityStat{
			Ability:  ability,
			Score:    scores.Get(ability),
			Modifier: scores.Modifier(ability),
		})
	}

	return &MonsterStats{
		Name:             m.Name(),
		HitDice:          m.HitDice().String(),
		AverageHitPoints: m.AverageHitPoints(),
		ProficiencyBonus: m.ProficiencyBonus(),
		ExperiencePoints: m.ExperiencePoints(),
		ChallengeRating:  dnd5e.PrettyChallengeRating(m.ChallengeRating()),
		Abilities:        abilities,
	}
}
