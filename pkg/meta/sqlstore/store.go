// Package sqlstore adapts a host meta table reached through database/sql to
// meta.Store. Values are stored as JSON text in a three-column table
// (object_id, meta_key, meta_value).
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/goliatone/go-propername/pkg/meta"
)

// Default configuration values.
const (
	DefaultTable        = "object_meta"
	DefaultQueryTimeout = 5 * time.Second
)

// Dialect selects placeholder syntax.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

var tableNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Config configures the store.
type Config struct {
	// Dialect picks the placeholder style. Default: DialectPostgres.
	Dialect Dialect
	// Table is the meta table name. Default: "object_meta".
	Table string
	// AutoMigrate creates the table on Open when it is missing.
	AutoMigrate bool
	// QueryTimeout bounds every statement. Default: 5 seconds.
	QueryTimeout time.Duration
}

// Store implements meta.Store on top of *sql.DB.
type Store struct {
	db     *sql.DB
	config Config
}

var _ meta.Store = (*Store)(nil)

// New wraps db. The caller owns db and closes it.
func New(ctx context.Context, db *sql.DB, cfg Config) (*Store, error) {
	if db == nil {
		return nil, errors.New("sqlstore: db is required")
	}
	if cfg.Dialect == "" {
		cfg.Dialect = DialectPostgres
	}
	if cfg.Dialect != DialectPostgres && cfg.Dialect != DialectSQLite {
		return nil, fmt.Errorf("sqlstore: unsupported dialect %q", cfg.Dialect)
	}
	if strings.TrimSpace(cfg.Table) == "" {
		cfg.Table = DefaultTable
	}
	if !tableNamePattern.MatchString(cfg.Table) {
		return nil, fmt.Errorf("sqlstore: invalid table name %q", cfg.Table)
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = DefaultQueryTimeout
	}

	store := &Store{db: db, config: cfg}
	if cfg.AutoMigrate {
		if err := store.Migrate(ctx); err != nil {
			return nil, err
		}
	}
	return store, nil
}

// Open opens a database with driverName and wraps it. The returned store
// owns the connection; call Close when done.
func Open(ctx context.Context, driverName, dsn string, cfg Config) (*Store, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sqlstore: open %s: %w", driverName, err)
	}
	if driverName == string(DialectSQLite) {
		// each sqlite :memory: connection is a separate database
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlstore: ping %s: %w", driverName, err)
	}
	if cfg.Dialect == "" {
		cfg.Dialect = Dialect(driverName)
	}
	store, err := New(ctx, db, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Migrate creates the meta table when missing.
func (s *Store) Migrate(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	object_id  TEXT NOT NULL,
	meta_key   TEXT NOT NULL,
	meta_value TEXT NOT NULL,
	PRIMARY KEY (object_id, meta_key)
)`, s.config.Table)
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("sqlstore: migrate %s: %w", s.config.Table, err)
	}
	return nil
}

// Get reads and JSON-decodes the value stored for key.
func (s *Store) Get(ctx context.Context, objectID, key string) (any, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT meta_value FROM %s WHERE object_id = %s AND meta_key = %s",
		s.config.Table, s.placeholder(1), s.placeholder(2))

	var payload string
	err := s.db.QueryRowContext(ctx, query, objectID, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlstore: get %s/%s: %w", objectID, key, err)
	}

	var value any
	if err := json.Unmarshal([]byte(payload), &value); err != nil {
		return nil, false, fmt.Errorf("sqlstore: decode %s/%s: %w", objectID, key, err)
	}
	return value, true, nil
}

// Set JSON-encodes value and upserts it under key.
func (s *Store) Set(ctx context.Context, objectID, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("sqlstore: encode %s/%s: %w", objectID, key, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	query := fmt.Sprintf(`INSERT INTO %s (object_id, meta_key, meta_value) VALUES (%s, %s, %s)
ON CONFLICT (object_id, meta_key) DO UPDATE SET meta_value = excluded.meta_value`,
		s.config.Table, s.placeholder(1), s.placeholder(2), s.placeholder(3))
	if _, err := s.db.ExecContext(ctx, query, objectID, key, string(payload)); err != nil {
		return fmt.Errorf("sqlstore: set %s/%s: %w", objectID, key, err)
	}
	return nil
}

// Delete removes key.
func (s *Store) Delete(ctx context.Context, objectID, key string) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.QueryTimeout)
	defer cancel()

	query := fmt.Sprintf("DELETE FROM %s WHERE object_id = %s AND meta_key = %s",
		s.config.Table, s.placeholder(1), s.placeholder(2))
	if _, err := s.db.ExecContext(ctx, query, objectID, key); err != nil {
		return fmt.Errorf("sqlstore: delete %s/%s: %w", objectID, key, err)
	}
	return nil
}

func (s *Store) placeholder(n int) string {
	if s.config.Dialect == DialectSQLite {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}
