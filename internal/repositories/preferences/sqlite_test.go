package preferences_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	mockclock "github.com/KirkDiggler/rpg-compendium/internal/pkg/clock/mock"
	"github.com/KirkDiggler/rpg-compendium/internal/repositories/preferences"
)

type SQLiteStoreTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockClock *mockclock.MockClock
	store     *preferences.SQLiteStore
	ctx       context.Context
	now       time.Time
}

func TestSQLiteStoreSuite(t *testing.T) {
	suite.Run(t, new(SQLiteStoreTestSuite))
}

func (s *SQLiteStoreTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClock = mockclock.NewMockClock(s.ctrl)
	s.ctx = context.Background()
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	store, err := preferences.OpenSQLite(s.ctx, &preferences.SQLiteConfig{
		Path:  preferences.MemoryPath,
		Clock: s.mockClock,
	})
	s.Require().NoError(err)
	s.store = store
}

func (s *SQLiteStoreTestSuite) TearDownTest() {
	s.NoError(s.store.Close())
	s.ctrl.Finish()
}

func (s *SQLiteStoreTestSuite) TestOpenValidation() {
	_, err := preferences.OpenSQLite(s.ctx, &preferences.SQLiteConfig{Clock: s.mockClock})
	s.True(errors.IsInvalidArgument(err))

	_, err = preferences.OpenSQLite(s.ctx, &preferences.SQLiteConfig{Path: preferences.MemoryPath})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteStoreTestSuite) TestSetAndGet() {
	out, err := s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: "last_search", Value: "gn +humanoid"})
	s.Require().NoError(err)
	s.Equal(s.now, out.Preference.UpdatedAt)

	got, err := s.store.Get(s.ctx, preferences.GetInput{UserID: "alice", Key: "last_search"})
	s.Require().NoError(err)
	s.Equal("gn +humanoid", got.Preference.Value)
	s.Equal(s.now, got.Preference.UpdatedAt)

	_, err = s.store.Get(s.ctx, preferences.GetInput{UserID: "bob", Key: "last_search"})
	s.True(errors.IsNotFound(err))
}

func (s *SQLiteStoreTestSuite) TestSetOverwrites() {
	_, err := s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: "default_dice", Value: "1d20"})
	s.Require().NoError(err)

	s.now = s.now.Add(time.Hour)
	_, err = s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: "default_dice", Value: "2d6"})
	s.Require().NoError(err)

	got, err := s.store.Get(s.ctx, preferences.GetInput{UserID: "alice", Key: "default_dice"})
	s.Require().NoError(err)
	s.Equal("2d6", got.Preference.Value)
	s.Equal(s.now, got.Preference.UpdatedAt)
}

func (s *SQLiteStoreTestSuite) TestValidation() {
	_, err := s.store.Set(s.ctx, preferences.SetInput{Key: "k", Value: "v"})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: strings.Repeat("k", 65)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: "k", Value: strings.Repeat("v", 5000)})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.store.List(s.ctx, preferences.ListInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *SQLiteStoreTestSuite) TestListAndDelete() {
	for _, kv := range [][2]string{{"zeta", "1"}, {"alpha", "2"}, {"mid", "3"}} {
		_, err := s.store.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: kv[0], Value: kv[1]})
		s.Require().NoError(err)
	}
	_, err := s.store.Set(s.ctx, preferences.SetInput{UserID: "bob", Key: "alpha", Value: "x"})
	s.Require().NoError(err)

	list, err := s.store.List(s.ctx, preferences.ListInput{UserID: "alice"})
	s.Require().NoError(err)
	keys := make([]string, len(list.Preferences))
	for i, p := range list.Preferences {
		keys[i] = p.Key
	}
	s.Equal([]string{"alpha", "mid", "zeta"}, keys)

	del, err := s.store.Delete(s.ctx, preferences.DeleteInput{UserID: "alice", Key: "alpha"})
	s.Require().NoError(err)
	s.True(del.Deleted)

	del, err = s.store.Delete(s.ctx, preferences.DeleteInput{UserID: "alice", Key: "alpha"})
	s.Require().NoError(err)
	s.False(del.Deleted)

	_, err = s.store.Get(s.ctx, preferences.GetInput{UserID: "bob", Key: "alpha"})
	s.NoError(err)

	empty, err := s.store.List(s.ctx, preferences.ListInput{UserID: "nobody"})
	s.Require().NoError(err)
	s.Empty(empty.Preferences)
}

func (s *SQLiteStoreTestSuite) TestFileDatabasePersists() {
	path := filepath.Join(s.T().TempDir(), "prefs.db")
	cfg := &preferences.SQLiteConfig{Path: path, Clock: s.mockClock}

	first, err := preferences.OpenSQLite(s.ctx, cfg)
	s.Require().NoError(err)
	_, err = first.Set(s.ctx, preferences.SetInput{UserID: "alice", Key: "theme", Value: "dark"})
	s.Require().NoError(err)
	s.Require().NoError(first.Close())

	second, err := preferences.OpenSQLite(s.ctx, cfg)
	s.Require().NoError(err)
	defer func() { _ = second.Close() }()

	got, err := second.Get(s.ctx, preferences.GetInput{UserID: "alice", Key: "theme"})
	s.Require().NoError(err)
	s.Equal("dark", got.Preference.Value)
}
