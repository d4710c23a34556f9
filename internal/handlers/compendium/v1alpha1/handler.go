// Package v1alpha1 handles the CompendiumService grpc interface
package v1alpha1

import (
	"context"

	"github.com/KirkDiggler/rpg-compendium/internal/auth"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
)

// HandlerConfig holds dependencies for the compendium handler
type HandlerConfig struct {
	CompendiumService compendium.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c.CompendiumService == nil {
		return errors.InvalidArgument("compendium service is required")
	}
	return nil
}

// Handler implements CompendiumServiceServer
type Handler struct {
	service compendium.Service
}

var _ CompendiumServiceServer = (*Handler)(nil)

// NewHandler creates a new compendium handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{service: cfg.CompendiumService}, nil
}

// caller returns the authenticated user id or an Unauthenticated error
func caller(ctx context.Context) (string, error) {
	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		return "", errors.ToGRPCError(errors.Unauthenticated("authentication required"))
	}
	return userID, nil
}

func (h *Handler) CreateMonster(ctx context.Context, req *CreateMonsterRequest) (*CreateMonsterResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	fields, err := MonsterFieldsFromMessage(req.Monster)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateMonster(ctx, &compendium.CreateMonsterInput{
		OwnerID: userID,
		Fields:  fields,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateMonsterResponse{Monster: MonsterToMessage(out.Monster)}, nil
}

func (h *Handler) UpdateMonster(ctx context.Context, req *UpdateMonsterRequest) (*UpdateMonsterResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.OriginalName == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("original_name is required"))
	}
	fields, err := MonsterFieldsFromMessage(req.Monster)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.UpdateMonster(ctx, &compendium.UpdateMonsterInput{
		OwnerID:      userID,
		OriginalName: req.OriginalName,
		Fields:       fields,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateMonsterResponse{Monster: MonsterToMessage(out.Monster)}, nil
}

func (h *Handler) GetMonster(ctx context.Context, req *GetMonsterRequest) (*GetMonsterResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.service.GetMonster(ctx, &compendium.GetMonsterInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetMonsterResponse{Monster: MonsterToMessage(out.Monster)}, nil
}

func (h *Handler) DeleteMonster(ctx context.Context, req *DeleteMonsterRequest) (*DeleteMonsterResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.service.DeleteMonster(ctx, &compendium.DeleteMonsterInput{
		OwnerID: userID,
		Name:    req.Name,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteMonsterResponse{
		Monster:          MonsterToMessage(out.Monster),
		FavoritesRemoved: out.FavoritesRemoved,
	}, nil
}

func (h *Handler) ListMonsters(ctx context.Context, req *ListMonstersRequest) (*ListMonstersResponse, error) {
	input := &compendium.ListMonstersInput{}
	if req.Mine {
		userID, err := caller(ctx)
		if err != nil {
			return nil, err
		}
		input.OwnerID = userID
	}

	out, err := h.service.ListMonsters(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListMonstersResponse{Monsters: monstersToMessages(out.Monsters)}, nil
}

// SearchMonsters remembers the query for authenticated callers only
func (h *Handler) SearchMonsters(ctx context.Context, req *SearchMonstersRequest) (*SearchMonstersResponse, error) {
	userID, _ := auth.UserIDFromContext(ctx)

	out, err := h.service.SearchMonsters(ctx, &compendium.SearchMonstersInput{
		UserID: userID,
		Query:  req.Query,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SearchMonstersResponse{
		Query:    out.Query.String(),
		Monsters: monstersToMessages(out.Monsters),
	}, nil
}

func (h *Handler) GetMonsterStats(ctx context.Context, req *GetMonsterStatsRequest) (*GetMonsterStatsResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	out, err := h.service.GetMonsterStats(ctx, &compendium.GetMonsterStatsInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetMonsterStatsResponse{Stats: statsToMessage(out.Stats)}, nil
}

func (h *Handler) CreateMagicItem(ctx context.Context, req *CreateMagicItemRequest) (*CreateMagicItemResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	fields, err := MagicItemFieldsFromMessage(req.Item)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.service.CreateMagicItem(ctx, &compendium.CreateMagicItemInput{
		OwnerID: userID,
		Fields:  fields,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &CreateMagicItemResponse{Item: MagicItemToMessage(out.Item)}, nil
}

func (h *Handler) GetMagicItem(ctx context.Context, req *GetMagicItemRequest) (*GetMagicItemResponse, error) {
	if req.ID == "" && req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id or name is required"))
	}

	out, err := h.service.GetMagicItem(ctx, &compendium.GetMagicItemInput{ID: req.ID, Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetMagicItemResponse{Item: MagicItemToMessage(out.Item)}, nil
}

func (h *Handler) DeleteMagicItem(ctx context.Context, req *DeleteMagicItemRequest) (*DeleteMagicItemResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.ID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("id is required"))
	}

	out, err := h.service.DeleteMagicItem(ctx, &compendium.DeleteMagicItemInput{OwnerID: userID, ID: req.ID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &DeleteMagicItemResponse{Item: MagicItemToMessage(out.Item)}, nil
}

func (h *Handler) ListMagicItems(ctx context.Context, req *ListMagicItemsRequest) (*ListMagicItemsResponse, error) {
	input := &compendium.ListMagicItemsInput{}
	if req.Mine {
		userID, err := caller(ctx)
		if err != nil {
			return nil, err
		}
		input.OwnerID = userID
	}
	if req.Rarity != "" {
		rarity, err := dnd5e.ParseRarity(req.Rarity)
		if err != nil {
			return nil, errors.ToGRPCError(err)
		}
		input.Rarity = rarity
	}

	out, err := h.service.ListMagicItems(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &ListMagicItemsResponse{Items: magicItemsToMessages(out.Items)}, nil
}

func (h *Handler) ImportSRDWeapons(ctx context.Context, req *ImportSRDWeaponsRequest) (*ImportSRDWeaponsResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	if req.Category == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("category is required"))
	}

	out, err := h.service.ImportSRDWeapons(ctx, &compendium.ImportSRDWeaponsInput{
		OwnerID:  userID,
		Category: req.Category,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	skipped := make([]SkippedWeapon, 0, len(out.Skipped))
	for _, s := range out.Skipped {
		skipped = append(skipped, SkippedWeapon{Name: s.Name, Reason: s.Reason})
	}

	return &ImportSRDWeaponsResponse{
		Imported: magicItemsToMessages(out.Imported),
		Skipped:  skipped,
	}, nil
}

func (h *Handler) GetProfile(ctx context.Context, _ *GetProfileRequest) (*GetProfileResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.service.GetProfile(ctx, &compendium.GetProfileInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetProfileResponse{Profile: profileToMessage(out.Profile)}, nil
}

func (h *Handler) UpdateProfile(ctx context.Context, req *UpdateProfileRequest) (*UpdateProfileResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.service.UpdateProfile(ctx, &compendium.UpdateProfileInput{
		UserID:           userID,
		DisplayName:      req.DisplayName,
		FavoriteMonsters: req.FavoriteMonsters,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &UpdateProfileResponse{Profile: profileToMessage(out.Profile)}, nil
}

func (h *Handler) GetPreference(ctx context.Context, req *GetPreferenceRequest) (*GetPreferenceResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.service.GetPreference(ctx, &compendium.GetPreferenceInput{UserID: userID, Key: req.Key})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &GetPreferenceResponse{Preference: preferenceToMessage(out.Preference)}, nil
}

func (h *Handler) SetPreference(ctx context.Context, req *SetPreferenceRequest) (*SetPreferenceResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.service.SetPreference(ctx, &compendium.SetPreferenceInput{
		UserID: userID,
		Key:    req.Key,
		Value:  req.Value,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &SetPreferenceResponse{Preference: preferenceToMessage(out.Preference)}, nil
}

func (h *Handler) ListPreferences(ctx context.Context, _ *ListPreferencesRequest) (*ListPreferencesResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}

	out, err := h.service.ListPreferences(ctx, &compendium.ListPreferencesInput{UserID: userID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	prefs := make([]*Preference, 0, len(out.Preferences))
	for _, p := range out.Preferences {
		prefs = append(prefs, preferenceToMessage(p))
	}

	return &ListPreferencesResponse{Preferences: prefs}, nil
}
