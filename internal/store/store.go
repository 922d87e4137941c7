package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"society-manager/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Sentinel errors of the storage layer.
var (
	// ErrStorageUnavailable means the platform denied or lost the database.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrConstraintViolation means a unique index rejected a write.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Store owns the embedded SQLite database. Construct one with New at process
// start and pass it by reference to the services; there is no hidden global
// connection.
type Store struct {
	cfg config.DatabaseConfig

	once sync.Once
	db   *gorm.DB
	err  error
}

// New returns an unopened store for the given database configuration.
func New(cfg config.DatabaseConfig) *Store {
	return &Store{cfg: cfg}
}

// Open establishes the connection, applies basic tuning and runs pending
// schema migrations. It is idempotent: concurrent early callers share a
// single initialization and all receive the same result.
func (s *Store) Open() error {
	s.once.Do(func() {
		s.db, s.err = s.open()
	})
	return s.err
}

func (s *Store) open() (*gorm.DB, error) {
	// ensure parent directory exists
	if dir := filepath.Dir(s.cfg.Path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("%w: create db dir: %v", ErrStorageUnavailable, err)
		}
	}

	gormLogger := logger.Default
	if !s.cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(s.cfg.Path), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: open database: %v", ErrStorageUnavailable, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("%w: get sql db: %v", ErrStorageUnavailable, err)
	}

	// connection pool
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// SQLite performance and reliability tuning
	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
	_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// DB returns the shared connection. It fails with ErrStorageUnavailable if
// the store has not been opened successfully.
func (s *Store) DB() (*gorm.DB, error) {
	if s.db == nil {
		return nil, ErrStorageUnavailable
	}
	return s.db, nil
}

// Translate maps driver errors onto the storage error taxonomy. Record
// not-found is left as gorm.ErrRecordNotFound so callers can model it as a
// valid empty result rather than a failure.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	}
	return err
}
