package service

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/robfig/cron/v3"

	"portfolio/internal/config"
)

// ─────────────────────────────────────────────────────────────
// Backup Service — scheduled exports + import inbox
// ─────────────────────────────────────────────────────────────

// BackupService runs two optional background helpers around the transfer
// subsystem: a cron-scheduled export into the backup directory, and a
// filesystem watch on an import inbox — any .json file dropped there goes
// through the validate-then-swap import path.
type BackupService struct {
	transfer *TransferService
	cfg      config.BackupConfig
	watchDir string
	emitter  EventEmitter

	cronSched *cron.Cron
	watcher   *fsnotify.Watcher
	stopCh    chan struct{}
}

func NewBackupService(transfer *TransferService, cfg config.BackupConfig, watchDir string, emitter EventEmitter) *BackupService {
	return &BackupService{
		transfer: transfer,
		cfg:      cfg,
		watchDir: watchDir,
		emitter:  emitter,
	}
}

// Start launches the scheduled backup and the inbox watcher, as
// configured. Failures to set either up are logged, not fatal: the store
// works fine without background helpers.
func (s *BackupService) Start(ctx context.Context) {
	s.stopCh = make(chan struct{})

	if s.cfg.Enabled && s.cfg.Schedule != "" {
		c := cron.New()
		_, err := c.AddFunc(s.cfg.Schedule, func() {
			path, err := s.transfer.ExportToFile(s.cfg.Dir, time.Now())
			if err != nil {
				log.Printf("backup: export failed: %v", err)
				s.emitter.Emit(ctx, "backup:failed", err.Error())
				return
			}
			log.Printf("backup: wrote %s", path)
			s.emitter.Emit(ctx, "backup:completed", path)
		})
		if err != nil {
			log.Printf("backup: invalid schedule %q: %v", s.cfg.Schedule, err)
		} else {
			c.Start()
			s.cronSched = c
		}
	}

	if s.watchDir != "" {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			log.Printf("backup: create watcher: %v", err)
			return
		}
		if err := w.Add(s.watchDir); err != nil {
			log.Printf("backup: watch %s: %v", s.watchDir, err)
			w.Close()
			return
		}
		s.watcher = w
		// The loop works on locals: Stop closes the watcher and nils the
		// fields, and a field read from the loop goroutine would race.
		go s.watchLoop(ctx, w, s.stopCh)
	}
}

// Stop tears down the cron scheduler and the watcher.
func (s *BackupService) Stop() {
	if s.cronSched != nil {
		s.cronSched.Stop()
		s.cronSched = nil
	}
	if s.watcher != nil {
		s.watcher.Close()
		s.watcher = nil
	}
	if s.stopCh != nil {
		close(s.stopCh)
		s.stopCh = nil
	}
}

func (s *BackupService) watchLoop(ctx context.Context, w *fsnotify.Watcher, stopCh chan struct{}) {
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if !strings.HasSuffix(event.Name, ".json") {
				continue
			}
			// Editors and file managers fire several events per drop;
			// give the writer a moment to finish.
			time.Sleep(200 * time.Millisecond)
			s.importInboxFile(ctx, event.Name)
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			log.Printf("backup: watcher error: %v", err)
		case <-stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

func (s *BackupService) importInboxFile(ctx context.Context, path string) {
	if err := s.transfer.ImportFile(ctx, path); err != nil {
		log.Printf("backup: inbox import %s failed: %v", filepath.Base(path), err)
		s.emitter.Emit(ctx, "content:import-failed", err.Error())
		return
	}
	// Move the file aside so a later Write event doesn't re-import it.
	if err := os.Rename(path, path+".imported"); err != nil {
		log.Printf("backup: rename imported file: %v", err)
	}
	log.Printf("backup: imported %s", filepath.Base(path))
}
