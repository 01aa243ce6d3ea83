package service_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/domain"
	"portfolio/internal/service"
)

// ─────────────────────────────────────────────────────────────
// BackupService tests — inbox watcher lifecycle
// ─────────────────────────────────────────────────────────────

func TestBackup_InboxImportsDroppedFile(t *testing.T) {
	inbox := t.TempDir()
	source, sourceContent, _, _ := newTransfer(t)
	ctx := context.Background()

	if _, err := sourceContent.AddPage(ctx, domain.PageDraft{Title: "Inbox", Slug: "/inbox"}); err != nil {
		t.Fatalf("AddPage() error = %v", err)
	}
	document, err := source.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	transfer, content, _, emitter := newTransfer(t)
	backup := service.NewBackupService(transfer, config.BackupConfig{}, inbox, emitter)
	backup.Start(ctx)
	defer backup.Stop()

	path := filepath.Join(inbox, "drop.json")
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatalf("write inbox file: %v", err)
	}

	waitForFile(t, path+".imported")
	if pages := content.Pages(); len(pages) != 1 || pages[0].Slug != "/inbox" {
		t.Errorf("inbox import missing page: %+v", pages)
	}
}

// Shutdown can land while the watcher is settling or importing a dropped
// file; the in-flight iteration must finish cleanly instead of crashing.
func TestBackup_StopDuringInboxImport(t *testing.T) {
	inbox := t.TempDir()
	source, _, _, _ := newTransfer(t)
	document, err := source.Export()
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	transfer, _, _, emitter := newTransfer(t)
	backup := service.NewBackupService(transfer, config.BackupConfig{}, inbox, emitter)
	backup.Start(context.Background())

	path := filepath.Join(inbox, "drop.json")
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		t.Fatalf("write inbox file: %v", err)
	}

	// Land inside the watcher's settle window, then tear down.
	time.Sleep(60 * time.Millisecond)
	backup.Stop()

	waitForFile(t, path+".imported")
}

func TestBackup_StopIsIdempotent(t *testing.T) {
	transfer, _, _, emitter := newTransfer(t)
	backup := service.NewBackupService(transfer, config.BackupConfig{}, t.TempDir(), emitter)

	backup.Start(context.Background())
	backup.Stop()
	backup.Stop()
}

func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", path)
}
