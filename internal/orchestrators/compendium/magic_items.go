package compendium

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/events"
	magicitemrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/magic_item"
	"github.com/KirkDiggler/rpg-compendium/internal/telemetry"
)

func (o *orchestrator) CreateMagicItem(ctx context.Context, input *CreateMagicItemInput) (*CreateMagicItemOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.CreateMagicItem")
	defer span.End()

	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Fields.Name == "" {
		return nil, errors.InvalidArgument("magic item name is required")
	}

	item, err := o.storeMagicItem(ctx, input.OwnerID, input.Fields)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}

	return &CreateMagicItemOutput{Item: item}, nil
}

func (o *orchestrator) storeMagicItem(ctx context.Context, ownerID string, fields dnd5e.MagicItemFields) (*dnd5e.MagicItem, error) {
	fields.ID = o.magicItemIDGen.Generate()
	fields.OwnerID = ownerID
	item := dnd5e.NewMagicItem(fields)

	if _, err := o.magicItemRepo.Create(ctx, magicitemrepo.CreateInput{Item: item}); err != nil {
		return nil, errors.Wrapf(err, "failed to create magic item %q", item.Name())
	}

	slog.Info("Magic item created",
		"item_id", item.ID(),
		"name", item.Name(),
		"owner_id", item.OwnerID(),
	)
	o.publish(ctx, events.TopicMagicItemSaved, item)
	return item, nil
}

func (o *orchestrator) GetMagicItem(ctx context.Context, input *GetMagicItemInput) (*GetMagicItemOutput, error) {
	if input == nil || (input.ID == "" && input.Name == "") {
		return nil, errors.InvalidArgument("magic item id or name is required")
	}

	var (
		out *magicitemrepo.GetOutput
		err error
	)
	if input.ID != "" {
		out, err = o.magicItemRepo.Get(ctx, magicitemrepo.GetInput{ID: input.ID})
	} else {
		out, err = o.magicItemRepo.GetByName(ctx, magicitemrepo.GetByNameInput{Name: input.Name})
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get magic item")
	}

	return &GetMagicItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) DeleteMagicItem(ctx context.Context, input *DeleteMagicItemInput) (*DeleteMagicItemOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.DeleteMagicItem")
	defer span.End()

	if input == nil || input.ID == "" {
		return nil, errors.InvalidArgument("magic item id is required")
	}

	existing, err := o.magicItemRepo.Get(ctx, magicitemrepo.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get magic item %s", input.ID)
	}
	if err := checkOwner(input.OwnerID, existing.Item.OwnerID(), "magic item "+existing.Item.Name()); err != nil {
		return nil, err
	}

	deleted, err := o.magicItemRepo.Delete(ctx, magicitemrepo.DeleteInput{ID: input.ID})
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrapf(err, "failed to delete magic item %s", input.ID)
	}

	slog.Info("Magic item deleted", "item_id", input.ID, "name", deleted.Item.Name())
	o.publish(ctx, events.TopicMagicItemDeleted, deleted.Item)

	return &DeleteMagicItemOutput{Item: deleted.Item}, nil
}

func (o *orchestrator) ListMagicItems(ctx context.Context, input *ListMagicItemsInput) (*ListMagicItemsOutput, error) {
	var filter magicitemrepo.ListInput
	if input != nil {
		filter = magicitemrepo.ListInput{OwnerID: input.OwnerID, Rarity: input.Rarity}
	}

	out, err := o.magicItemRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list magic items")
	}

	return &ListMagicItemsOutput{Items: out.Items}, nil
}

// ImportSRDWeapons stores the weapons of an SRD equipment category as
// magic item templates. Weapons whose name is already taken or whose
// damage cannot be parsed are skipped.
func (o *orchestrator) ImportSRDWeapons(ctx context.Context, input *ImportSRDWeaponsInput) (*ImportSRDWeaponsOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.ImportSRDWeapons")
	defer span.End()

	if input == nil || input.Category == "" {
		return nil, errors.InvalidArgument("equipment category is required")
	}
	span.SetAttributes(attribute.String("srd.category", input.Category))

	weapons, err := o.externalClient.ListWeaponsByCategory(ctx, input.Category)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, errors.Wrapf(err, "failed to fetch SRD weapons for %s", input.Category)
	}

	out := &ImportSRDWeaponsOutput{}
	for _, weapon := range weapons {
		fields, err := weapon.ToMagicItemFields(input.OwnerID)
		if err != nil {
			out.Skipped = append(out.Skipped, SkippedWeapon{Name: weapon.Name, Reason: errors.GetMessage(err)})
			continue
		}

		_, err = o.magicItemRepo.GetByName(ctx, magicitemrepo.GetByNameInput{Name: fields.Name})
		switch {
		case err == nil:
			out.Skipped = append(out.Skipped, SkippedWeapon{Name: weapon.Name, Reason: "already exists"})
			continue
		case !errors.IsNotFound(err):
			return nil, errors.Wrapf(err, "failed to check magic item %q", fields.Name)
		}

		item, err := o.storeMagicItem(ctx, input.OwnerID, fields)
		if err != nil {
			if errors.IsAlreadyExists(err) {
				out.Skipped = append(out.Skipped, SkippedWeapon{Name: weapon.Name, Reason: "already exists"})
				continue
			}
			return nil, err
		}
		out.Imported = append(out.Imported, item)
	}

	span.SetAttributes(
		attribute.Int("srd.imported", len(out.Imported)),
		attribute.Int("srd.skipped", len(out.Skipped)),
	)
	slog.Info("SRD weapons imported",
		"category", input.Category,
		"imported", len(out.Imported),
		"skipped", len(out.Skipped),
	)

	return out, nil
}
