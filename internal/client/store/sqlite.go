package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/dbx"
)

// SQLiteStore keeps slots in the "slots" table created by the embedded
// migrations (see internal/client/client).
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) Get(ctx context.Context, slot Slot) ([]byte, error) {
	if err := checkSlot(slot); err != nil {
		return nil, err
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, string(slot)).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot[%s]: %w", slot, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(ctx context.Context, slot Slot, value []byte) error {
	if err := checkSlot(slot); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO slots (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, string(slot), value)
	if err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", slot, err)
	}
	return nil
}

// Clear deletes the four slots in one transaction.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, slot := range Slots {
			if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, string(slot)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to clear slots: %w", err)
	}
	return nil
}
