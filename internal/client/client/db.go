package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/client/migrations"
	"github.com/dmitrijs2005/volunteer/internal/client/store"
	"github.com/dmitrijs2005/volunteer/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage bundles the open database with the slot store built on it.
type Storage struct {
	DB    *sql.DB
	Slots *store.SQLiteStore
}

// Close releases the database handle.
func (s *Storage) Close() error {
	return s.DB.Close()
}

// RunMigrations applies every pending embedded migration. It is safe to run
// on an up-to-date database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens (creating if needed) the SQLite file at dsn and
// migrates it. The parent directory is created for file paths.
func InitDatabase(ctx context.Context, dsn string) (*Storage, error) {
	if dsn != ":memory:" {
		if _, err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// one writer; also keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Storage{DB: db, Slots: store.NewSQLiteStore(db)}, nil
}
