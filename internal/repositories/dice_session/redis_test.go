package dicesession_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-compendium/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/redis"
	dicesession "github.com/KirkDiggler/rpg-compendium/internal/repositories/dice_session"
	"github.com/KirkDiggler/rpg-compendium/internal/testutils"
)

const (
	testEntityID = "user_123"
	testContext  = "ability_scores"
	testKey      = "dice_session:user_123:ability_scores"
)

type RedisDiceSessionTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	mr        *miniredis.Miniredis
	cleanup   func()
	repo      dicesession.Repository
	ctx       context.Context
	now       time.Time
}

func TestRedisDiceSessionSuite(t *testing.T) {
	suite.Run(t, new(RedisDiceSessionTestSuite))
}

func (s *RedisDiceSessionTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	var client redis.Client
	client, s.mr, s.cleanup = testutils.CreateTestRedisServer(s.T())

	repo, err := dicesession.NewRedisRepository(&dicesession.Config{
		Client: client,
		Clock:  s.mockClock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisDiceSessionTestSuite) TearDownTest() {
	s.cleanup()
	s.ctrl.Finish()
}

func (s *RedisDiceSessionTestSuite) roll(id string, total int32) dicesession.DiceRoll {
	return dicesession.DiceRoll{
		RollID:   id,
		Notation: "4d6",
		Dice:     []int32{total - 3, 1, 1, 1},
		Dropped:  []int32{1},
		Total:    total,
	}
}

func (s *RedisDiceSessionTestSuite) TestNewRedisRepositoryValidation() {
	_, err := dicesession.NewRedisRepository(nil)
	s.Error(err)

	_, err = dicesession.NewRedisRepository(&dicesession.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "client: is required")
	s.Contains(err.Error(), "clock: is required")
}

func (s *RedisDiceSessionTestSuite) TestAppendCreatesSession() {
	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14)},
		TTL:      5 * time.Minute,
	})
	s.Require().NoError(err)

	s.Equal(s.now, out.Session.CreatedAt)
	s.Equal(s.now.Add(5*time.Minute), out.Session.ExpiresAt)
	s.Len(out.Session.Rolls, 1)
	s.True(s.mr.Exists(testKey))
	s.Equal(5*time.Minute, s.mr.TTL(testKey))
}

func (s *RedisDiceSessionTestSuite) TestAppendKeepsExpiry() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14)},
	})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Minute)
	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_2", 9), s.roll("roll_3", 12)},
		TTL:      time.Hour,
	})
	s.Require().NoError(err)

	s.Len(out.Session.Rolls, 3)
	s.Equal([]string{"roll_1", "roll_2", "roll_3"}, rollIDs(out.Session))
	s.Equal(s.now.Add(-time.Minute).Add(dicesession.DefaultTTL), out.Session.ExpiresAt)
	s.Equal(dicesession.DefaultTTL-time.Minute, s.mr.TTL(testKey))
}

func (s *RedisDiceSessionTestSuite) TestAppendReplacesExpiredSession() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14)},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.now = s.now.Add(2 * time.Minute)
	out, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_2", 9)},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)
	s.Equal([]string{"roll_2"}, rollIDs(out.Session))
	s.Equal(s.now, out.Session.CreatedAt)
}

func (s *RedisDiceSessionTestSuite) TestAppendValidation() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{Context: testContext, Rolls: []dicesession.DiceRoll{s.roll("r", 3)}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: testEntityID, Rolls: []dicesession.DiceRoll{s.roll("r", 3)}})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{EntityID: testEntityID, Context: testContext})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisDiceSessionTestSuite) TestGet() {
	_, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: testEntityID, Context: testContext})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Get(s.ctx, dicesession.GetInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Equal(s.roll("roll_1", 14), out.Session.Rolls[0])
}

func (s *RedisDiceSessionTestSuite) TestGetExpiredCleansUp() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14)},
		TTL:      time.Minute,
	})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.repo.Get(s.ctx, dicesession.GetInput{EntityID: testEntityID, Context: testContext})
	s.True(errors.IsNotFound(err))
	s.False(s.mr.Exists(testKey))
}

func (s *RedisDiceSessionTestSuite) TestDelete() {
	_, err := s.repo.Append(s.ctx, dicesession.AppendInput{
		EntityID: testEntityID,
		Context:  testContext,
		Rolls:    []dicesession.DiceRoll{s.roll("roll_1", 14), s.roll("roll_2", 8)},
	})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RollsDeleted)
	s.False(s.mr.Exists(testKey))

	out, err = s.repo.Delete(s.ctx, dicesession.DeleteInput{EntityID: testEntityID, Context: testContext})
	s.Require().NoError(err)
	s.Equal(int32(0), out.RollsDeleted)
}

func rollIDs(session *dicesession.DiceSession) []string {
	ids := make([]string, len(session.Rolls))
	for i, r := range session.Rolls {
		ids[i] = r.RollID
	}
	return ids
}
