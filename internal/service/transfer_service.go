package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"portfolio/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Transfer Service — export, import, reset
// ─────────────────────────────────────────────────────────────

// TransferService moves whole snapshots in and out of the durable slot.
// It bypasses the individual content actions: import and reset are
// swap-and-reload operations on the slot itself.
type TransferService struct {
	slot    domain.SnapshotSlot
	content *ContentService
	emitter EventEmitter
}

func NewTransferService(slot domain.SnapshotSlot, content *ContentService, emitter EventEmitter) *TransferService {
	return &TransferService{slot: slot, content: content, emitter: emitter}
}

// Export serializes the current snapshot to its transportable JSON form.
func (s *TransferService) Export() (string, error) {
	data, err := s.content.Snapshot().Encode()
	if err != nil {
		return "", fmt.Errorf("export snapshot: %w", err)
	}
	return string(data), nil
}

// ExportFilename names the export artifact after the current date.
func (s *TransferService) ExportFilename(now time.Time) string {
	return fmt.Sprintf("portfolio-content-%s.json", now.Format("2006-01-02"))
}

// ExportToFile writes the export artifact into dir and returns its path.
func (s *TransferService) ExportToFile(dir string, now time.Time) (string, error) {
	document, err := s.Export()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	path := filepath.Join(dir, s.ExportFilename(now))
	if err := os.WriteFile(path, []byte(document), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}
	return path, nil
}

// Import validates a previously exported document and swaps it into the
// durable slot, then reloads the in-memory store from the slot.
//
// Validation happens fully in memory before the slot is touched: a
// malformed document returns an error and leaves the persisted state
// exactly as it was.
func (s *TransferService) Import(ctx context.Context, document string) error {
	snap, err := domain.ParseSnapshot([]byte(document))
	if err != nil {
		return fmt.Errorf("invalid file format: %w", err)
	}
	data, err := snap.Encode()
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := s.slot.Save(string(data)); err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	s.content.Reload(ctx)
	s.emitter.Emit(ctx, "content:imported", nil)
	return nil
}

// ImportFile imports the document stored at path.
func (s *TransferService) ImportFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	return s.Import(ctx, string(data))
}

// Reset clears the durable slot so the store re-seeds from the compiled-in
// defaults. Destructive; confirmation is the caller's concern.
func (s *TransferService) Reset(ctx context.Context) error {
	if err := s.slot.Clear(); err != nil {
		return fmt.Errorf("clear slot: %w", err)
	}
	s.content.Reload(ctx)
	s.emitter.Emit(ctx, "content:reset", nil)
	return nil
}
