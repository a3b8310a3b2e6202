package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/volunteer/internal/client/store"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_CreatesSlotsTable(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "volunteer.db")

	s, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.DB.PingContext(ctx))
	require.True(t, tableExists(t, s.DB, "goose_db_version"))
	require.True(t, tableExists(t, s.DB, "slots"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "volunteer.db")

	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db), "second run must be a no-op")
	require.True(t, tableExists(t, db, "slots"))
}

func TestInitDatabase_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "volunteer.db")

	s, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, s.Slots.Set(ctx, store.SlotEvents, []byte(`[{"id":7}]`)))
	require.NoError(t, s.Close())

	s, err = InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer s.Close()

	v, err := s.Slots.Get(ctx, store.SlotEvents)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":7}]`, string(v))
}

func TestInitDatabase_InMemory(t *testing.T) {
	ctx := context.Background()

	s, err := InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	defer s.Close()

	require.True(t, tableExists(t, s.DB, "slots"))
}
