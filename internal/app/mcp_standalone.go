package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"portfolio/internal/config"
	mcpserver "portfolio/internal/mcp"
	"portfolio/internal/seed"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// noopEmitter is a no-op EventEmitter used in MCP-only mode (no Wails frontend).
type noopEmitter struct{}

func (noopEmitter) Emit(_ context.Context, _ string, _ any) {}

// ServeMCP runs the app as a standalone MCP server on stdin/stdout with no GUI.
// It initializes the slot, services, and runs the MCP server until interrupted.
func ServeMCP() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(configPath())
	if err != nil {
		log.Printf("Failed to read config, using defaults: %v", err)
		cfg = config.Default()
	}

	db, err := storage.New(filepath.Join(cfg.DataDir, "content.db"))
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	emitter := noopEmitter{}
	slot := storage.NewSlotStore(db, cfg.SlotName)
	content := service.NewContentService(slot, seed.Default(), emitter)
	transfer := service.NewTransferService(slot, content, emitter)

	mcpSrv := mcpserver.New(ctx, mcpserver.Deps{
		Emitter:  emitter,
		Content:  content,
		Transfer: transfer,
	})

	log.Println("[MCP] Starting standalone stdio server...")
	if err := mcpSrv.ServeStdio(); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
