package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerTransferTools() {
	// ── export_content ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("export_content",
		mcp.WithDescription("Export the full content snapshot as a JSON document"),
	), s.handleExportContent)

	// ── import_content ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("import_content",
		mcp.WithDescription("Import a previously exported snapshot document. The document is validated before the durable slot is replaced."),
		mcp.WithString("document", mcp.Description("Snapshot JSON document"), mcp.Required()),
	), s.handleImportContent)

	// ── reset_content ──────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("reset_content",
		mcp.WithDescription("Clear the durable slot and re-seed from defaults. Destructive and cannot be undone; confirm with the user first."),
	), s.handleResetContent)
}

func (s *Server) handleExportContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document, err := s.transfer.Export()
	if err != nil {
		return nil, fmt.Errorf("export content: %w", err)
	}
	return textResult(document), nil
}

func (s *Server) handleImportContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	document := req.GetString("document", "")
	if document == "" {
		return nil, fmt.Errorf("document is required")
	}
	if err := s.transfer.Import(ctx, document); err != nil {
		return nil, fmt.Errorf("import content: %w", err)
	}
	return textResult("content imported"), nil
}

func (s *Server) handleResetContent(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.transfer.Reset(ctx); err != nil {
		return nil, fmt.Errorf("reset content: %w", err)
	}
	return textResult("content reset to defaults"), nil
}
