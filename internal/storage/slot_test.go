package storage_test

import (
	"path/filepath"
	"testing"

	"portfolio/internal/storage"
)

func newTestSlot(t *testing.T) *storage.SlotStore {
	t.Helper()
	db, err := storage.New(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return storage.NewSlotStore(db, "content-storage")
}

func TestSlotStore_LoadEmpty(t *testing.T) {
	slot := newTestSlot(t)

	value, ok, err := slot.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if ok || value != "" {
		t.Errorf("expected empty slot, got ok=%v value=%q", ok, value)
	}
}

func TestSlotStore_SaveLoadOverwrite(t *testing.T) {
	slot := newTestSlot(t)

	if err := slot.Save(`{"v":1}`); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	value, ok, err := slot.Load()
	if err != nil || !ok {
		t.Fatalf("Load() = %v, %v", ok, err)
	}
	if value != `{"v":1}` {
		t.Errorf("value = %q", value)
	}

	// Whole-value replacement, no merging.
	if err := slot.Save(`{"v":2}`); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	value, _, _ = slot.Load()
	if value != `{"v":2}` {
		t.Errorf("overwrite failed, value = %q", value)
	}
}

func TestSlotStore_Clear(t *testing.T) {
	slot := newTestSlot(t)

	if err := slot.Save(`{}`); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := slot.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if _, ok, _ := slot.Load(); ok {
		t.Error("slot not empty after Clear")
	}

	// Clearing an empty slot is fine.
	if err := slot.Clear(); err != nil {
		t.Errorf("Clear() on empty slot error = %v", err)
	}
}

func TestSlotStore_NamesAreIsolated(t *testing.T) {
	db, err := storage.New(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	a := storage.NewSlotStore(db, "a")
	b := storage.NewSlotStore(db, "b")

	if err := a.Save("alpha"); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if _, ok, _ := b.Load(); ok {
		t.Error("slot b sees slot a's value")
	}
	if err := a.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
}
