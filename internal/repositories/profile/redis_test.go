package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/profile"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
)

type RedisProfileTestSuite struct {
	suite.Suite
	cleanup func()
	repo    profile.Repository
	ctx     context.Context
	now     time.Time
}

func TestRedisProfileSuite(t *testing.T) {
	suite.Run(t, new(RedisProfileTestSuite))
}

func (s *RedisProfileTestSuite) SetupTest() {
	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	repo, err := profile.NewRedis(&profile.RedisConfig{Client: client})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisProfileTestSuite) TearDownTest() {
	s.cleanup()
}

func (s *RedisProfileTestSuite) save(userID string, favorites ...string) {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{Profile: &entities.Profile{
		UserID:           userID,
		DisplayName:      "Player " + userID,
		FavoriteMonsters: favorites,
		CreatedAt:        s.now,
		UpdatedAt:        s.now,
	}})
	s.Require().NoError(err)
}

func (s *RedisProfileTestSuite) TestSaveAndGet() {
	s.save("alice", "Gnoll", "Wolf")

	out, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal("Player alice", out.Profile.DisplayName)
	s.Equal([]string{"Gnoll", "Wolf"}, out.Profile.FavoriteMonsters)
	s.Equal(s.now, out.Profile.CreatedAt)
	s.True(out.Profile.IsFavorite("Wolf"))
}

func (s *RedisProfileTestSuite) TestGetErrors() {
	_, err := s.repo.Get(s.ctx, profile.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Get(s.ctx, profile.GetInput{UserID: "nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *RedisProfileTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, profile.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, profile.SaveInput{Profile: &entities.Profile{}})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisProfileTestSuite) TestRemoveFavorite() {
	s.save("alice", "Gnoll", "Wolf")
	s.save("bob", "Gnoll")
	s.save("carol", "Wolf")

	out, err := s.repo.RemoveFavorite(s.ctx, profile.RemoveFavoriteInput{MonsterName: "Gnoll"})
	s.Require().NoError(err)
	s.Equal(2, out.ProfilesUpdated)

	alice, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal([]string{"Wolf"}, alice.Profile.FavoriteMonsters)

	bob, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "bob"})
	s.Require().NoError(err)
	s.Empty(bob.Profile.FavoriteMonsters)

	again, err := s.repo.RemoveFavorite(s.ctx, profile.RemoveFavoriteInput{MonsterName: "Gnoll"})
	s.Require().NoError(err)
	s.Zero(again.ProfilesUpdated)
}

func (s *RedisProfileTestSuite) TestSaveDropsStaleFavoriteIndex() {
	s.save("alice", "Gnoll")
	s.save("alice", "Wolf")

	out, err := s.repo.RemoveFavorite(s.ctx, profile.RemoveFavoriteInput{MonsterName: "Gnoll"})
	s.Require().NoError(err)
	s.Zero(out.ProfilesUpdated)

	alice, err := s.repo.Get(s.ctx, profile.GetInput{UserID: "alice"})
	s.Require().NoError(err)
	s.Equal([]string{"Wolf"}, alice.Profile.FavoriteMonsters)
}
