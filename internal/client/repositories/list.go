package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/dmitrijs2005/volunteer/internal/client/store"
)

// SlotList is a List persisted as a JSON array in one slot.
type SlotList[T any] struct {
	st    store.Store
	slot  store.Slot
	items []T
}

func NewSlotList[T any](st store.Store, slot store.Slot) *SlotList[T] {
	return &SlotList[T]{st: st, slot: slot}
}

func NewEvents(st store.Store) *SlotList[models.Event] {
	return NewSlotList[models.Event](st, store.SlotEvents)
}

func NewReports(st store.Store) *SlotList[models.Report] {
	return NewSlotList[models.Report](st, store.SlotReports)
}

func NewMessages(st store.Store) *SlotList[models.Message] {
	return NewSlotList[models.Message](st, store.SlotMessages)
}

// Load replaces the in-memory list with the slot contents. An absent or
// JSON-null slot loads as an empty list.
func (r *SlotList[T]) Load(ctx context.Context) error {
	raw, err := r.st.Get(ctx, r.slot)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", r.slot, err)
	}

	var items []T
	if raw != nil {
		if err := json.Unmarshal(raw, &items); err != nil {
			return fmt.Errorf("failed to decode %s: %w", r.slot, err)
		}
	}
	if items == nil {
		items = []T{}
	}
	r.items = items
	return nil
}

func (r *SlotList[T]) Append(ctx context.Context, item T) error {
	n := len(r.items)
	r.items = append(r.items, item)

	if err := r.persist(ctx); err != nil {
		var zero T
		r.items[n] = zero
		r.items = r.items[:n]
		return err
	}
	return nil
}

func (r *SlotList[T]) All() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *SlotList[T]) Len() int {
	return len(r.items)
}

func (r *SlotList[T]) persist(ctx context.Context) error {
	items := r.items
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", r.slot, err)
	}
	if err := r.st.Set(ctx, r.slot, b); err != nil {
		return fmt.Errorf("failed to save %s: %w", r.slot, err)
	}
	return nil
}
