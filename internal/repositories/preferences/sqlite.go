package preferences

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-compendium/internal/entities"
	"github.com/KirkDiggler/rpg-compendium/internal/errors"
	"github.com/KirkDiggler/rpg-compendium/internal/pkg/clock"
)

// MemoryPath opens a private in-memory database
const MemoryPath = ":memory:"

const (
	maxKeyLength   = 64
	maxValueLength = 4096

	schema = `CREATE TABLE IF NOT EXISTS preferences (
		user_id    TEXT    NOT NULL,
		pref_key   TEXT    NOT NULL,
		value      TEXT    NOT NULL,
		updated_at INTEGER NOT NULL,
		PRIMARY KEY (user_id, pref_key)
	)`
)

// SQLiteConfig contains configuration for the SQLite preference store
type SQLiteConfig struct {
	// Path is a database file path or MemoryPath
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	if cfg.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

// SQLiteStore is a Repository backed by a local SQLite database
type SQLiteStore struct {
	db    *sql.DB
	clock clock.Clock
}

var _ Repository = (*SQLiteStore)(nil)

// OpenSQLite opens the database and creates the schema when missing
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := MemoryPath
	if cfg.Path != MemoryPath {
		dsn = "file:" + filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite database")
	}
	if cfg.Path == MemoryPath {
		// every pooled connection would otherwise get its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to reach sqlite database")
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to create preferences schema")
	}

	return &SQLiteStore{db: db, clock: cfg.Clock}, nil
}

// Close releases the database handle
func (s *SQLiteStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Get returns one preference
func (s *SQLiteStore) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.UserID, input.Key); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT value, updated_at FROM preferences WHERE user_id = ? AND pref_key = ?`,
		input.UserID, input.Key,
	)

	var value string
	var updatedAt int64
	if err := row.Scan(&value, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFoundf("preference %q not set", input.Key)
		}
		return nil, errors.Wrapf(err, "failed to read preference %s", input.Key)
	}

	return &GetOutput{Preference: &entities.Preference{
		UserID:    input.UserID,
		Key:       input.Key,
		Value:     value,
		UpdatedAt: time.UnixMilli(updatedAt).UTC(),
	}}, nil
}

// Set creates or replaces a preference
func (s *SQLiteStore) Set(ctx context.Context, input SetInput) (*SetOutput, error) {
	if err := validateKey(input.UserID, input.Key); err != nil {
		return nil, err
	}
	if len(input.Value) > maxValueLength {
		return nil, errors.InvalidArgumentf("preference value exceeds %d bytes", maxValueLength)
	}

	now := s.clock.Now().UTC().Truncate(time.Millisecond)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (user_id, pref_key, value, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, pref_key) DO UPDATE SET
		    value = excluded.value,
		    updated_at = excluded.updated_at`,
		input.UserID, input.Key, input.Value, now.UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to write preference %s", input.Key)
	}

	return &SetOutput{Preference: &entities.Preference{
		UserID:    input.UserID,
		Key:       input.Key,
		Value:     input.Value,
		UpdatedAt: now,
	}}, nil
}

// List returns every preference of a user ordered by key
func (s *SQLiteStore) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if strings.TrimSpace(input.UserID) == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT pref_key, value, updated_at FROM preferences WHERE user_id = ? ORDER BY pref_key`,
		input.UserID,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list preferences")
	}
	defer func() { _ = rows.Close() }()

	prefs := []*entities.Preference{}
	for rows.Next() {
		p := &entities.Preference{UserID: input.UserID}
		var updatedAt int64
		if err := rows.Scan(&p.Key, &p.Value, &updatedAt); err != nil {
			return nil, errors.Wrapf(err, "failed to scan preference")
		}
		p.UpdatedAt = time.UnixMilli(updatedAt).UTC()
		prefs = append(prefs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list preferences")
	}

	return &ListOutput{Preferences: prefs}, nil
}

// Delete removes a preference
func (s *SQLiteStore) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.UserID, input.Key); err != nil {
		return nil, err
	}

	res, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE user_id = ? AND pref_key = ?`,
		input.UserID, input.Key,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete preference %s", input.Key)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to delete preference %s", input.Key)
	}
	return &DeleteOutput{Deleted: n > 0}, nil
}

func validateKey(userID, key string) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("user_id", userID, vb)
	errors.ValidateRequired("key", key, vb)
	if len(key) > maxKeyLength {
		vb.Fieldf("key", "must be at most %d characters", maxKeyLength)
	}
	return vb.Build()
}
