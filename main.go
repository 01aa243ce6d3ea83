package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"

	portfolioApp "portfolio/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// MCP-only mode: stdio server, no GUI.
	if len(os.Args) > 1 && os.Args[1] == "--mcp" {
		portfolioApp.ServeMCP()
		return
	}

	app := portfolioApp.New()

	err := wails.Run(&options.App{
		Title:     "Portfolio",
		Width:     1280,
		Height:    860,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 250, G: 250, B: 250, A: 1},
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
