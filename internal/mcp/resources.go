package mcpserver

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) registerResources() {
	// ── portfolio://snapshot ───────────────────────────
	s.mcp.AddResource(mcp.NewResource(
		"portfolio://snapshot",
		"Full Content Snapshot",
		mcp.WithMIMEType("application/json"),
	), s.handleSnapshotResource)
}

func (s *Server) handleSnapshotResource(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	data, err := json.MarshalIndent(s.content.Snapshot(), "", "  ")
	if err != nil {
		return nil, err
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "portfolio://snapshot",
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
