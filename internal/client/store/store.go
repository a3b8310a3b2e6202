// Package store is the persistent key/value adapter behind the repositories.
//
// It exposes exactly four named slots (profile, events, reports, messages).
// Each slot holds one JSON document that is always overwritten as a whole;
// there is no versioning, TTL, or size limit at this layer.
//
// Two implementations are provided: SQLiteStore for the on-disk vault and
// MemoryStore for tests and throwaway sessions.
package store

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/common"
)

// Slot names one persistent storage location.
type Slot string

const (
	SlotProfile  Slot = "profile"
	SlotEvents   Slot = "events"
	SlotReports  Slot = "reports"
	SlotMessages Slot = "messages"
)

// Slots lists every slot in load order.
var Slots = []Slot{SlotProfile, SlotEvents, SlotReports, SlotMessages}

// Valid reports whether s is one of the four fixed slots.
func (s Slot) Valid() bool {
	switch s {
	case SlotProfile, SlotEvents, SlotReports, SlotMessages:
		return true
	}
	return false
}

// Store reads and writes whole slot values.
type Store interface {
	// Get returns the raw value of slot, or (nil, nil) if it was never set.
	Get(ctx context.Context, slot Slot) ([]byte, error)

	// Set overwrites slot with value.
	Set(ctx context.Context, slot Slot, value []byte) error

	// Clear removes every slot.
	Clear(ctx context.Context) error
}

func checkSlot(slot Slot) error {
	if !slot.Valid() {
		return fmt.Errorf("%w: %q", common.ErrUnknownSlot, string(slot))
	}
	return nil
}
