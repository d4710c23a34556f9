package v1alpha1_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-compendium/internal/auth"
	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/handlers/compendium/v1alpha1"
	"github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium"
	compendiummock "github.com/KirkDiggler/rpg-compendium/internal/orchestrators/compendium/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/search"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
)

type HandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *compendiummock.MockService
	handler     *v1alpha1.Handler
	anonymous   context.Context
	authed      context.Context
}

func TestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func (s *HandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = compendiummock.NewMockService(s.ctrl)
	s.anonymous = context.Background()
	s.authed = auth.WithUserID(context.Background(), testutils.TestOwnerID)

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{CompendiumService: s.mockService})
	s.Require().NoError(err)
	s.handler = handler
}

func (s *HandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerTestSuite) requireCode(err error, code codes.Code) {
	s.Require().Error(err)
	st, ok := status.FromError(err)
	s.Require().True(ok, "expected a status error, got %v", err)
	s.Equal(code, st.Code(), st.Message())
}

func (s *HandlerTestSuite) TestNewHandlerRequiresService() {
	_, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *HandlerTestSuite) TestCreateMonster() {
	wolf := testutils.CreateTestWolf(testutils.TestOwnerID)

	s.mockService.EXPECT().
		CreateMonster(s.authed, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *compendium.CreateMonsterInput) (*compendium.CreateMonsterOutput, error) {
			s.Equal(testutils.TestOwnerID, input.OwnerID)
			s.Equal(dnd5e.SizeMedium, input.Fields.Size)
			s.Equal(dnd5e.ChallengeRatingQuarter, input.Fields.ChallengeRating)
			return &compendium.CreateMonsterOutput{Monster: wolf}, nil
		})

	resp, err := s.handler.CreateMonster(s.authed, &v1alpha1.CreateMonsterRequest{
		Monster: v1alpha1.MonsterToMessage(testutils.CreateTestWolf("")),
	})

	s.Require().NoError(err)
	s.Equal(testutils.TestWolfName, resp.Monster.Name)
	s.Equal(testutils.TestOwnerID, resp.Monster.OwnerID)
	s.Equal("1/4", resp.Monster.ChallengeRating)
}

func (s *HandlerTestSuite) TestCreateMonsterRequiresCaller() {
	_, err := s.handler.CreateMonster(s.anonymous, &v1alpha1.CreateMonsterRequest{
		Monster: v1alpha1.MonsterToMessage(testutils.CreateTestWolf("")),
	})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *HandlerTestSuite) TestCreateMonsterInvalidSize() {
	msg := v1alpha1.MonsterToMessage(testutils.CreateTestWolf(""))
	msg.Size = "COLOSSAL"

	_, err := s.handler.CreateMonster(s.authed, &v1alpha1.CreateMonsterRequest{Monster: msg})
	s.requireCode(err, codes.OutOfRange)
}

func (s *HandlerTestSuite) TestCreateMonsterDuplicate() {
	s.mockService.EXPECT().
		CreateMonster(s.authed, gomock.Any()).
		Return(nil, errors.AlreadyExistsf("monster %q already exists", testutils.TestWolfName))

	_, err := s.handler.CreateMonster(s.authed, &v1alpha1.CreateMonsterRequest{
		Monster: v1alpha1.MonsterToMessage(testutils.CreateTestWolf("")),
	})
	s.requireCode(err, codes.AlreadyExists)
}

func (s *HandlerTestSuite) TestUpdateMonsterPermissionDenied() {
	s.mockService.EXPECT().
		UpdateMonster(s.authed, gomock.Any()).
		Return(nil, errors.PermissionDeniedf("monster %s belongs to another user", testutils.TestGnollName))

	_, err := s.handler.UpdateMonster(s.authed, &v1alpha1.UpdateMonsterRequest{
		OriginalName: testutils.TestGnollName,
		Monster:      v1alpha1.MonsterToMessage(testutils.CreateTestGnoll("")),
	})
	s.requireCode(err, codes.PermissionDenied)
}

func (s *HandlerTestSuite) TestUpdateMonsterRequiresOriginalName() {
	_, err := s.handler.UpdateMonster(s.authed, &v1alpha1.UpdateMonsterRequest{
		Monster: v1alpha1.MonsterToMessage(testutils.CreateTestGnoll("")),
	})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestGetMonsterNotFound() {
	s.mockService.EXPECT().
		GetMonster(s.anonymous, &compendium.GetMonsterInput{Name: "Tarrasque"}).
		Return(nil, errors.NotFound("monster not found"))

	_, err := s.handler.GetMonster(s.anonymous, &v1alpha1.GetMonsterRequest{Name: "Tarrasque"})
	s.requireCode(err, codes.NotFound)
}

func (s *HandlerTestSuite) TestDeleteMonster() {
	s.mockService.EXPECT().
		DeleteMonster(s.authed, &compendium.DeleteMonsterInput{OwnerID: testutils.TestOwnerID, Name: testutils.TestWolfName}).
		Return(&compendium.DeleteMonsterOutput{Monster: testutils.CreateTestWolf(testutils.TestOwnerID), FavoritesRemoved: 2}, nil)

	resp, err := s.handler.DeleteMonster(s.authed, &v1alpha1.DeleteMonsterRequest{Name: testutils.TestWolfName})

	s.Require().NoError(err)
	s.Equal(testutils.TestWolfName, resp.Monster.Name)
	s.Equal(2, resp.FavoritesRemoved)
}

func (s *HandlerTestSuite) TestListMonstersMine() {
	s.mockService.EXPECT().
		ListMonsters(s.authed, &compendium.ListMonstersInput{OwnerID: testutils.TestOwnerID}).
		Return(&compendium.ListMonstersOutput{Monsters: []*dnd5e.Monster{testutils.CreateTestGnoll(testutils.TestOwnerID)}}, nil)

	resp, err := s.handler.ListMonsters(s.authed, &v1alpha1.ListMonstersRequest{Mine: true})

	s.Require().NoError(err)
	s.Require().Len(resp.Monsters, 1)
	s.Equal(testutils.TestGnollName, resp.Monsters[0].Name)
}

func (s *HandlerTestSuite) TestListMonstersMineRequiresCaller() {
	_, err := s.handler.ListMonsters(s.anonymous, &v1alpha1.ListMonstersRequest{Mine: true})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *HandlerTestSuite) TestSearchMonstersAnonymous() {
	s.mockService.EXPECT().
		SearchMonsters(s.anonymous, &compendium.SearchMonstersInput{Query: "gn +Humanoid"}).
		Return(&compendium.SearchMonstersOutput{
			Query:    search.Parse("gn +Humanoid"),
			Monsters: []*dnd5e.Monster{testutils.CreateTestGnoll("")},
		}, nil)

	resp, err := s.handler.SearchMonsters(s.anonymous, &v1alpha1.SearchMonstersRequest{Query: "gn +Humanoid"})

	s.Require().NoError(err)
	s.Equal("gn +humanoid", resp.Query)
	s.Require().Len(resp.Monsters, 1)
}

func (s *HandlerTestSuite) TestSearchMonstersRemembersForCaller() {
	s.mockService.EXPECT().
		SearchMonsters(s.authed, &compendium.SearchMonstersInput{UserID: testutils.TestOwnerID, Query: "wolf"}).
		Return(&compendium.SearchMonstersOutput{Query: search.Parse("wolf")}, nil)

	resp, err := s.handler.SearchMonsters(s.authed, &v1alpha1.SearchMonstersRequest{Query: "wolf"})

	s.Require().NoError(err)
	s.Empty(resp.Monsters)
}

func (s *HandlerTestSuite) TestGetMonsterStats() {
	s.mockService.EXPECT().
		GetMonsterStats(s.anonymous, &compendium.GetMonsterStatsInput{Name: testutils.TestGnollName}).
		Return(&compendium.GetMonsterStatsOutput{Stats: &compendium.MonsterStats{
			Name:             testutils.TestGnollName,
			HitDice:          "5d8",
			AverageHitPoints: 22.5,
			ProficiencyBonus: 2,
			ExperiencePoints: 100,
			ChallengeRating:  "1/2",
			Abilities:        []compendium.AbilityStat{{Ability: dnd5e.Strength, Score: 14, Modifier: 2}},
		}}, nil)

	resp, err := s.handler.GetMonsterStats(s.anonymous, &v1alpha1.GetMonsterStatsRequest{Name: testutils.TestGnollName})

	s.Require().NoError(err)
	s.Equal("5d8", resp.Stats.HitDice)
	s.Equal([]v1alpha1.AbilityStat{{Ability: "strength", Score: 14, Modifier: 2}}, resp.Stats.Abilities)
}

func (s *HandlerTestSuite) TestCreateMagicItem() {
	item := testutils.CreateTestMagicItem(testutils.TestOwnerID)

	s.mockService.EXPECT().
		CreateMagicItem(s.authed, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *compendium.CreateMagicItemInput) (*compendium.CreateMagicItemOutput, error) {
			s.Equal(dnd5e.RarityVeryRare, input.Fields.Rarity)
			s.Equal(dnd5e.DamageTypeFire, input.Fields.DamageType)
			return &compendium.CreateMagicItemOutput{Item: item}, nil
		})

	resp, err := s.handler.CreateMagicItem(s.authed, &v1alpha1.CreateMagicItemRequest{
		Item: &v1alpha1.MagicItem{Name: "Flame Tongue", Rarity: "very rare", DamageDice: "2d6", DamageType: "fire"},
	})

	s.Require().NoError(err)
	s.Equal("item_flame_tongue", resp.Item.ID)
	s.Equal("2d6", resp.Item.DamageDice)
}

func (s *HandlerTestSuite) TestGetMagicItemRequiresKey() {
	_, err := s.handler.GetMagicItem(s.anonymous, &v1alpha1.GetMagicItemRequest{})
	s.requireCode(err, codes.InvalidArgument)
}

func (s *HandlerTestSuite) TestListMagicItemsByRarity() {
	s.mockService.EXPECT().
		ListMagicItems(s.anonymous, &compendium.ListMagicItemsInput{Rarity: dnd5e.RarityRare}).
		Return(&compendium.ListMagicItemsOutput{Items: []*dnd5e.MagicItem{testutils.CreateTestMagicItem("")}}, nil)

	resp, err := s.handler.ListMagicItems(s.anonymous, &v1alpha1.ListMagicItemsRequest{Rarity: "rare"})

	s.Require().NoError(err)
	s.Len(resp.Items, 1)
}

func (s *HandlerTestSuite) TestListMagicItemsUnknownRarity() {
	_, err := s.handler.ListMagicItems(s.anonymous, &v1alpha1.ListMagicItemsRequest{Rarity: "mythic"})
	s.requireCode(err, codes.OutOfRange)
}

func (s *HandlerTestSuite) TestDeleteMagicItem() {
	item := testutils.CreateTestMagicItem(testutils.TestOwnerID)
	s.mockService.EXPECT().
		DeleteMagicItem(s.authed, &compendium.DeleteMagicItemInput{OwnerID: testutils.TestOwnerID, ID: item.ID()}).
		Return(&compendium.DeleteMagicItemOutput{Item: item}, nil)

	resp, err := s.handler.DeleteMagicItem(s.authed, &v1alpha1.DeleteMagicItemRequest{ID: item.ID()})

	s.Require().NoError(err)
	s.Equal(item.ID(), resp.Item.ID)
}

func (s *HandlerTestSuite) TestImportSRDWeapons() {
	s.mockService.EXPECT().
		ImportSRDWeapons(s.authed, &compendium.ImportSRDWeaponsInput{OwnerID: testutils.TestOwnerID, Category: "martial-weapons"}).
		Return(&compendium.ImportSRDWeaponsOutput{
			Imported: []*dnd5e.MagicItem{testutils.CreateTestMagicItem(testutils.TestOwnerID)},
			Skipped:  []compendium.SkippedWeapon{{Name: "Net", Reason: "already exists"}},
		}, nil)

	resp, err := s.handler.ImportSRDWeapons(s.authed, &v1alpha1.ImportSRDWeaponsRequest{Category: "martial-weapons"})

	s.Require().NoError(err)
	s.Len(resp.Imported, 1)
	s.Equal([]v1alpha1.SkippedWeapon{{Name: "Net", Reason: "already exists"}}, resp.Skipped)
}

func (s *HandlerTestSuite) TestProfile() {
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	profile := &entities.Profile{
		UserID:           testutils.TestOwnerID,
		DisplayName:      "Volo",
		FavoriteMonsters: []string{testutils.TestGnollName},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	s.mockService.EXPECT().
		UpdateProfile(s.authed, &compendium.UpdateProfileInput{
			UserID:           testutils.TestOwnerID,
			DisplayName:      "Volo",
			FavoriteMonsters: []string{testutils.TestGnollName},
		}).
		Return(&compendium.UpdateProfileOutput{Profile: profile}, nil)
	s.mockService.EXPECT().
		GetProfile(s.authed, &compendium.GetProfileInput{UserID: testutils.TestOwnerID}).
		Return(&compendium.GetProfileOutput{Profile: profile}, nil)

	updated, err := s.handler.UpdateProfile(s.authed, &v1alpha1.UpdateProfileRequest{
		DisplayName:      "Volo",
		FavoriteMonsters: []string{testutils.TestGnollName},
	})
	s.Require().NoError(err)
	s.Equal("Volo", updated.Profile.DisplayName)

	got, err := s.handler.GetProfile(s.authed, &v1alpha1.GetProfileRequest{})
	s.Require().NoError(err)
	s.Equal(now, got.Profile.CreatedAt)
}

func (s *HandlerTestSuite) TestProfileRequiresCaller() {
	_, err := s.handler.GetProfile(s.anonymous, &v1alpha1.GetProfileRequest{})
	s.requireCode(err, codes.Unauthenticated)
}

func (s *HandlerTestSuite) TestPreferences() {
	pref := &entities.Preference{UserID: testutils.TestOwnerID, Key: entities.PreferenceDefaultDice, Value: "1d20"}

	s.mockService.EXPECT().
		SetPreference(s.authed, &compendium.SetPreferenceInput{UserID: testutils.TestOwnerID, Key: pref.Key, Value: pref.Value}).
		Return(&compendium.SetPreferenceOutput{Preference: pref}, nil)
	s.mockService.EXPECT().
		GetPreference(s.authed, &compendium.GetPreferenceInput{UserID: testutils.TestOwnerID, Key: pref.Key}).
		Return(&compendium.GetPreferenceOutput{Preference: pref}, nil)
	s.mockService.EXPECT().
		ListPreferences(s.authed, &compendium.ListPreferencesInput{UserID: testutils.TestOwnerID}).
		Return(&compendium.ListPreferencesOutput{Preferences: []*entities.Preference{pref}}, nil)

	set, err := s.handler.SetPreference(s.authed, &v1alpha1.SetPreferenceRequest{Key: pref.Key, Value: pref.Value})
	s.Require().NoError(err)
	s.Equal("1d20", set.Preference.Value)

	got, err := s.handler.GetPreference(s.authed, &v1alpha1.GetPreferenceRequest{Key: pref.Key})
	s.Require().NoError(err)
	s.Equal(pref.Key, got.Preference.Key)

	list, err := s.handler.ListPreferences(s.authed, &v1alpha1.ListPreferencesRequest{})
	s.Require().NoError(err)
	s.Len(list.Preferences, 1)
}
