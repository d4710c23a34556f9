package external

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/dnd5e-api/clients/dnd5e"
	"github.com/fadedpez/dnd5e-api/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	internaldnd5e "github.com/KirkDiggler/rpg-compendium/internal/entities/dnd5e"
	apperrors "github.com/KirkDiggler/rpg-compendium/internal/errors"
)

// mockDND5eClient is a mock implementation of the dnd5e.Interface for testing
type mockDND5eClient struct {
	mock.Mock
}

func (m *mockDND5eClient) ListRaces() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetRace(key string) (*entities.Race, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Race), args.Error(1)
}

func (m *mockDND5eClient) ListEquipment() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetEquipment(key string) (dnd5e.EquipmentInterface, error) {
	args := m.Called(key)
	return args.Get(0).(dnd5e.EquipmentInterface), args.Error(1)
}

func (m *mockDND5eClient) GetEquipmentCategory(key string) (*entities.EquipmentCategory, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.EquipmentCategory), args.Error(1)
}

func (m *mockDND5eClient) ListClasses() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetClass(key string) (*entities.Class, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Class), args.Error(1)
}

func (m *mockDND5eClient) ListSpells(input *dnd5e.ListSpellsInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSpell(key string) (*entities.Spell, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Spell), args.Error(1)
}

func (m *mockDND5eClient) ListFeatures() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetFeature(key string) (*entities.Feature, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Feature), args.Error(1)
}

func (m *mockDND5eClient) ListSkills() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetSkill(key string) (*entities.Skill, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Skill), args.Error(1)
}

func (m *mockDND5eClient) ListMonsters() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) ListMonstersWithFilter(input *dnd5e.ListMonstersInput) ([]*entities.ReferenceItem, error) {
	args := m.Called(input)
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetMonster(key string) (*entities.Monster, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Monster), args.Error(1)
}

func (m *mockDND5eClient) GetClassLevel(key string, level int) (*entities.Level, error) {
	args := m.Called(key, level)
	return args.Get(0).(*entities.Level), args.Error(1)
}

func (m *mockDND5eClient) GetProficiency(key string) (*entities.Proficiency, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Proficiency), args.Error(1)
}

func (m *mockDND5eClient) ListDamageTypes() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetDamageType(key string) (*entities.DamageType, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.DamageType), args.Error(1)
}

func (m *mockDND5eClient) ListBackgrounds() ([]*entities.ReferenceItem, error) {
	args := m.Called()
	return args.Get(0).([]*entities.ReferenceItem), args.Error(1)
}

func (m *mockDND5eClient) GetBackground(key string) (*entities.Background, error) {
	args := m.Called(key)
	return args.Get(0).(*entities.Background), args.Error(1)
}

func longswordFixture() *entities.Weapon {
	return &entities.Weapon{
		Key:               "longsword",
		Name:              "Longsword",
		WeaponCategory:    "Martial",
		WeaponRange:       "Melee",
		EquipmentCategory: &entities.ReferenceItem{Key: "weapon", Name: "Weapon"},
		Cost:              &entities.Cost{Quantity: 15, Unit: "gp"},
		Damage: &entities.Damage{
			DamageDice: "1d8",
			DamageType: &entities.ReferenceItem{Key: "slashing", Name: "Slashing"},
		},
		Properties: []*entities.ReferenceItem{
			{Key: "versatile", Name: "Versatile"},
		},
	}
}

func TestListWeaponsByCategory(t *testing.T) {
	t.Run("loads details in category order", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		category := &entities.EquipmentCategory{
			Index: "martial-weapons",
			Name:  "Martial Weapons",
			Equipment: []*entities.ReferenceItem{
				{Key: "longsword", Name: "Longsword"},
				{Key: "battleaxe", Name: "Battleaxe"},
			},
		}
		battleaxe := &entities.Weapon{
			Key:            "battleaxe",
			Name:           "Battleaxe",
			WeaponCategory: "Martial",
			WeaponRange:    "Melee",
		}

		mockClient.On("GetEquipmentCategory", CategoryMartialWeapons).Return(category, nil)
		mockClient.On("GetEquipment", "longsword").Return(longswordFixture(), nil)
		mockClient.On("GetEquipment", "battleaxe").Return(battleaxe, nil)

		result, err := client.ListWeaponsByCategory(context.Background(), CategoryMartialWeapons)

		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "longsword", result[0].Key)
		assert.Equal(t, "Longsword", result[0].Name)
		assert.Equal(t, "battleaxe", result[1].Key)
		assert.Equal(t, "Battleaxe", result[1].Name)

		mockClient.AssertExpectations(t)
	})

	t.Run("skips equipment that is not a weapon", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		category := &entities.EquipmentCategory{
			Index: "mixed",
			Equipment: []*entities.ReferenceItem{
				{Key: "rope", Name: "Rope"},
				{Key: "longsword", Name: "Longsword"},
			},
		}
		mockClient.On("GetEquipmentCategory", "mixed").Return(category, nil)
		mockClient.On("GetEquipment", "rope").Return(&entities.Equipment{Key: "rope", Name: "Rope"}, nil)
		mockClient.On("GetEquipment", "longsword").Return(longswordFixture(), nil)

		result, err := client.ListWeaponsByCategory(context.Background(), "mixed")

		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "longsword", result[0].Key)
	})

	t.Run("category not found", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("GetEquipmentCategory", "invalid-category").Return(
			(*entities.EquipmentCategory)(nil), errors.New("category not found"))

		result, err := client.ListWeaponsByCategory(context.Background(), "invalid-category")

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to get equipment category")
		assert.Equal(t, apperrors.CodeUnavailable, apperrors.GetCode(err))

		mockClient.AssertExpectations(t)
	})

	t.Run("detail failure fails the listing", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		category := &entities.EquipmentCategory{
			Index:     "simple-weapons",
			Equipment: []*entities.ReferenceItem{{Key: "club", Name: "Club"}},
		}
		mockClient.On("GetEquipmentCategory", CategorySimpleWeapons).Return(category, nil)
		mockClient.On("GetEquipment", "club").Return((*entities.Weapon)(nil), errors.New("timeout"))

		result, err := client.ListWeaponsByCategory(context.Background(), CategorySimpleWeapons)

		assert.Error(t, err)
		assert.Nil(t, result)
		assert.Contains(t, err.Error(), "failed to get equipment club")
	})

	t.Run("category is required", func(t *testing.T) {
		client := &client{dnd5eClient: new(mockDND5eClient)}

		_, err := client.ListWeaponsByCategory(context.Background(), "")

		assert.True(t, apperrors.IsInvalidArgument(err))
	})
}

func TestGetWeapon(t *testing.T) {
	t.Run("successful weapon retrieval", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("GetEquipment", "longsword").Return(longswordFixture(), nil)

		result, err := client.GetWeapon(context.Background(), "longsword")

		require.NoError(t, err)
		assert.Equal(t, &WeaponData{
			Key:            "longsword",
			Name:           "Longsword",
			Category:       "weapon",
			WeaponCategory: "Martial",
			WeaponRange:    "Melee",
			Cost:           "15 gp",
			DamageDice:     "1d8",
			DamageType:     "Slashing",
			Properties:     []string{"Versatile"},
		}, result)

		mockClient.AssertExpectations(t)
	})

	t.Run("equipment that is not a weapon", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("GetEquipment", "chain-mail").Return(&entities.Armor{Key: "chain-mail", Name: "Chain Mail"}, nil)

		result, err := client.GetWeapon(context.Background(), "chain-mail")

		assert.Nil(t, result)
		assert.True(t, apperrors.IsInvalidArgument(err))
	})

	t.Run("api error", func(t *testing.T) {
		mockClient := new(mockDND5eClient)
		client := &client{dnd5eClient: mockClient}

		mockClient.On("GetEquipment", "nope").Return((*entities.Weapon)(nil), errors.New("404"))

		result, err := client.GetWeapon(context.Background(), "nope")

		assert.Nil(t, result)
		assert.Equal(t, apperrors.CodeUnavailable, apperrors.GetCode(err))
	})
}

func TestWeaponDataToMagicItemFields(t *testing.T) {
	t.Run("damage dice and type are mapped", func(t *testing.T) {
		weapon := convertWeapon(longswordFixture())

		fields, err := weapon.ToMagicItemFields("user_1")

		require.NoError(t, err)
		require.NotNil(t, fields.DamageDice)
		assert.Equal(t, "1d8", fields.DamageDice.String())
		assert.Equal(t, internaldnd5e.DamageTypeSlashing, fields.DamageType)
		assert.Equal(t, "Longsword", fields.Name)
		assert.Equal(t, SRDSourceBook, fields.SourceBook)
		assert.Equal(t, "user_1", fields.OwnerID)
		assert.Equal(t, "Martial melee weapon. Properties: Versatile. Cost: 15 gp.", fields.Description)

		item := internaldnd5e.NewMagicItem(fields)
		assert.Contains(t, item.Describe(), "Damage: 1d8 slashing")
	})

	t.Run("no damage means no damage type", func(t *testing.T) {
		weapon := &WeaponData{Key: "net", Name: "Net", DamageType: "Bludgeoning"}

		fields, err := weapon.ToMagicItemFields("")

		require.NoError(t, err)
		assert.Nil(t, fields.DamageDice)
		assert.Equal(t, internaldnd5e.DamageTypeNone, fields.DamageType)
	})

	t.Run("non-standard dice are rejected", func(t *testing.T) {
		weapon := &WeaponData{Key: "odd", Name: "Odd", DamageDice: "1d7"}

		_, err := weapon.ToMagicItemFields("")

		assert.True(t, apperrors.IsRangeError(err))
	})

	t.Run("unknown damage type", func(t *testing.T) {
		weapon := &WeaponData{Key: "odd", Name: "Odd", DamageDice: "1d6", DamageType: "Sonic"}

		_, err := weapon.ToMagicItemFields("")

		assert.True(t, apperrors.IsRangeError(err))
	})
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "https://www.dnd5eapi.co/api/2014/", cfg.BaseURL)

	_, err := New(nil)
	assert.Error(t, err)
}

var _ dnd5e.Interface = (*mockDND5eClient)(nil)
