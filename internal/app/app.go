package app

import (
	"context"
	"os"
	"path/filepath"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"portfolio/internal/config"
	"portfolio/internal/seed"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// App is the main Wails application struct.
// All exported methods are available as Wails bindings.
type App struct {
	ctx context.Context

	cfg      *config.Config
	db       *storage.DB
	content  *service.ContentService
	transfer *service.TransferService
	backup   *service.BackupService
}

// New creates a new App.
func New() *App {
	return &App{}
}

// Emit implements service.EventEmitter by delegating to the Wails runtime.
func (a *App) Emit(ctx context.Context, event string, data any) {
	wailsRuntime.EventsEmit(ctx, event, data)
}

// Startup is called when the app starts.
func (a *App) Startup(ctx context.Context) {
	a.ctx = ctx

	cfg, err := config.Load(configPath())
	if err != nil {
		wailsRuntime.LogErrorf(ctx, "Failed to read config, using defaults: %v", err)
		cfg = config.Default()
	}
	a.cfg = cfg

	db, err := storage.New(filepath.Join(cfg.DataDir, "content.db"))
	if err != nil {
		wailsRuntime.LogFatalf(ctx, "Failed to open database: %v", err)
		return
	}
	a.db = db

	slot := storage.NewSlotStore(db, cfg.SlotName)
	a.content = service.NewContentService(slot, seed.Default(), a)
	a.transfer = service.NewTransferService(slot, a.content, a)

	a.backup = service.NewBackupService(a.transfer, cfg.Backup, cfg.ImportWatchDir, a)
	a.backup.Start(ctx)
}

// Shutdown is called when the app is closing.
func (a *App) Shutdown(ctx context.Context) {
	if a.backup != nil {
		a.backup.Stop()
	}
	if a.db != nil {
		a.db.Close()
	}
}

func configPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", "portfolio", "config.toml")
}
