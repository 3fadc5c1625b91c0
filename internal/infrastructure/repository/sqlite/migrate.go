package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/riskibarqy/pool-league/db/migrations"
)

// Store names one of the two SQLite files.
type Store string

const (
	StoreLeague  Store = "league"
	StoreFantasy Store = "fantasy"
)

func (s Store) source() (fs.FS, string, error) {
	switch s {
	case StoreLeague:
		return migrations.League, "league", nil
	case StoreFantasy:
		return migrations.Fantasy, "fantasy", nil
	default:
		return nil, "", fmt.Errorf("unknown store %q", s)
	}
}

// NewMigrator binds the embedded migrations of store to db. Closing the returned
// migrator closes db as well.
func NewMigrator(db *sql.DB, store Store) (*migrate.Migrate, error) {
	fsys, dir, err := store.source()
	if err != nil {
		return nil, err
	}

	src, err := iofs.New(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("open %s migrations: %w", store, err)
	}

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("create %s migration driver: %w", store, err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("create %s migrator: %w", store, err)
	}
	return m, nil
}

// MigrateUp applies every pending migration of store. db stays open.
func MigrateUp(db *sql.DB, store Store) error {
	m, err := NewMigrator(db, store)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply %s migrations: %w", store, err)
	}
	return nil
}
