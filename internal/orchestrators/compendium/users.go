package compendium

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	monsterrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/monster"
	preferencesrepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences"
	profilerepo "github.com/KirkDiggler/rpg-compendium/internal/repositories/profile"
)

const maxDisplayNameLength = 64

// GetProfile returns the stored profile, or an empty unsaved one for a
// user who has never saved a profile
func (o *orchestrator) GetProfile(ctx context.Context, input *GetProfileInput) (*GetProfileOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user id is required")
	}

	out, err := o.profileRepo.Get(ctx, profilerepo.GetInput{UserID: input.UserID})
	if err != nil {
		if errors.IsNotFound(err) {
			return &GetProfileOutput{Profile: &entities.Profile{UserID: input.UserID}}, nil
		}
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return &GetProfileOutput{Profile: out.Profile}, nil
}

// UpdateProfile replaces display name and favorites. Every favorite must
// name an existing monster; duplicates are dropped.
func (o *orchestrator) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*UpdateProfileOutput, error) {
	ctx, span := tracer.Start(ctx, "compendium.UpdateProfile")
	defer span.End()

	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user id is required")
	}
	displayName := strings.TrimSpace(input.DisplayName)
	if len(displayName) > maxDisplayNameLength {
		return nil, errors.InvalidArgumentf("display name must be at most %d bytes", maxDisplayNameLength)
	}

	favorites := make([]string, 0, len(input.FavoriteMonsters))
	seen := make(map[string]struct{}, len(input.FavoriteMonsters))
	for _, name := range input.FavoriteMonsters {
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if _, err := o.monsterRepo.Get(ctx, monsterrepo.GetInput{Name: name}); err != nil {
			if errors.IsNotFound(err) {
				return nil, errors.InvalidArgumentf("favorite monster %q does not exist", name)
			}
			return nil, errors.Wrapf(err, "failed to check favorite monster %q", name)
		}
		favorites = append(favorites, name)
	}

	now := o.clock.Now()
	current, err := o.GetProfile(ctx, &GetProfileInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}
	profile := &entities.Profile{
		UserID:           input.UserID,
		DisplayName:      displayName,
		FavoriteMonsters: favorites,
		CreatedAt:        current.Profile.CreatedAt,
		UpdatedAt:        now,
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = now
	}

	saved, err := o.profileRepo.Save(ctx, profilerepo.SaveInput{Profile: profile})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	slog.Info("Profile updated", "user_id", input.UserID, "favorites", len(favorites))

	return &UpdateProfileOutput{Profile: saved.Profile}, nil
}

func (o *orchestrator) GetPreference(ctx context.Context, input *GetPreferenceInput) (*GetPreferenceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user id is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("preference key is required")
	}

	out, err := o.preferenceRepo.Get(ctx, preferencesrepo.GetInput{UserID: input.UserID, Key: input.Key})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get preference %s", input.Key)
	}

	return &GetPreferenceOutput{Preference: out.Preference}, nil
}

func (o *orchestrator) SetPreference(ctx context.Context, input *SetPreferenceInput) (*SetPreferenceOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user id is required")
	}
	if input.Key == "" {
		return nil, errors.InvalidArgument("preference key is required")
	}

	out, err := o.preferenceRepo.Set(ctx, preferencesrepo.SetInput{
		UserID: input.UserID,
		Key:    input.Key,
		Value:  input.Value,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set preference %s", input.Key)
	}

	return &SetPreferenceOutput{Preference: out.Preference}, nil
}

func (o *orchestrator) ListPreferences(ctx context.Context, input *ListPreferencesInput) (*ListPreferencesOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.Unauthenticated("user id is required")
	}

	out, err := o.preferenceRepo.List(ctx, preferencesrepo.ListInput{UserID: input.UserID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list preferences")
	}

	return &ListPreferencesOutput{Preferences: out.Preferences}, nil
}
