package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/domain"
	"portfolio/internal/seed"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// TransferService tests — export, import, reset
// ─────────────────────────────────────────────────────────────

func newTransfer(t *testing.T) (*service.TransferService, *service.ContentService, *storage.MemorySlot, *service.MockEmitter) {
	t.Helper()
	slot := storage.NewMemorySlot()
	emitter := &service.MockEmitter{}
	content := service.NewContentService(slot, seed.Default(), emitter)
	return service.NewTransferService(slot, content, emitter), content, slot, emitter
}

func TestTransfer_ExportImportRoundTrip(t *testing.T) {
	transfer, content, _, _ := newTransfer(t)
	ctx := context.Background()

	if _, err := content.AddPage(ctx, domain.PageDraft{Title: "Extra", Slug: "/extra"}); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}
	document, err := transfer.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	// Import into a second, pristine store.
	other, otherContent, _, _ := newTransfer(t)
	if err := other.Import(ctx, document); err != nil {
		t.Fatalf("Import() error = %v", err)
	}

	pages := otherContent.Pages()
	if len(pages) != 1 || pages[0].Slug != "/extra" {
		t.Errorf("imported store missing page, got %+v", pages)
	}
}

func TestTransfer_ImportRejectsMalformedJSON(t *testing.T) {
	transfer, content, slot, _ := newTransfer(t)
	ctx := context.Background()

	if _, err := content.AddPage(ctx, domain.PageDraft{Title: "Keep", Slug: "/keep"}); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}
	before, _, _ := slot.Load()

	if err := transfer.Import(ctx, "{broken"); err == nil {
		t.Fatal("expected error for malformed document")
	}

	after, _, _ := slot.Load()
	if before != after {
		t.Error("failed import mutated the slot")
	}
	if pages := content.Pages(); len(pages) != 1 || pages[0].Slug != "/keep" {
		t.Errorf("failed import mutated in-memory state: %+v", pages)
	}
}

func TestTransfer_ImportRejectsForeignDocument(t *testing.T) {
	transfer, _, slot, _ := newTransfer(t)

	// Valid JSON, but not an export of this store.
	if err := transfer.Import(context.Background(), "{}"); err == nil {
		t.Fatal("expected error for document without required keys")
	}
	if _, ok, _ := slot.Load(); ok {
		t.Error("rejected import wrote the slot")
	}
}

func TestTransfer_ResetRestoresDefaults(t *testing.T) {
	transfer, content, slot, emitter := newTransfer(t)
	ctx := context.Background()

	if _, err := content.AddPage(ctx, domain.PageDraft{Title: "Doomed", Slug: "/doomed"}); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}
	if err := transfer.Reset(ctx); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}

	if pages := content.Pages(); len(pages) != 0 {
		t.Errorf("reset kept pages: %+v", pages)
	}
	if nav := content.Navigation(); len(nav) != 12 {
		t.Errorf("reset did not restore seed navigation, got %d items", len(nav))
	}
	if _, ok, _ := slot.Load(); ok {
		t.Error("reset left a value in the slot")
	}

	found := false
	for _, e := range emitter.Emitted() {
		if e.Event == "content:reset" {
			found = true
		}
	}
	if !found {
		t.Error("expected content:reset event")
	}
}

func TestTransfer_ExportFilenameCarriesDate(t *testing.T) {
	transfer, _, _, _ := newTransfer(t)

	now := time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got := transfer.ExportFilename(now); got != "portfolio-content-2025-03-07.json" {
		t.Errorf("ExportFilename() = %q", got)
	}
}

func TestTransfer_FileRoundTrip(t *testing.T) {
	transfer, content, _, _ := newTransfer(t)
	ctx := context.Background()

	if _, err := content.AddPage(ctx, domain.PageDraft{Title: "Disk", Slug: "/disk"}); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}

	dir := t.TempDir()
	path, err := transfer.ExportToFile(dir, time.Now())
	if err != nil {
		t.Fatalf("ExportToFile() error = %v", err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("export landed in %s, want %s", filepath.Dir(path), dir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("export file missing: %v", err)
	}

	other, otherContent, _, _ := newTransfer(t)
	if err := other.ImportFile(ctx, path); err != nil {
		t.Fatalf("ImportFile() error = %v", err)
	}
	if pages := otherContent.Pages(); len(pages) != 1 || pages[0].Slug != "/disk" {
		t.Errorf("file import missing page: %+v", pages)
	}
}
