package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"portfolio/internal/domain"
)

func (s *Server) registerContentTools() {
	// ── get_section ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("get_section",
		mcp.WithDescription("Get the stored content items for a page section. Reports whether the section has a stored override."),
		mcp.WithString("pageId", mcp.Description("ID of the page"), mcp.Required()),
		mcp.WithString("sectionId", mcp.Description("ID of the section"), mcp.Required()),
	), s.handleGetSection)

	// ── update_section ─────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_section",
		mcp.WithDescription("Replace the full content item sequence for a page section. Items is a JSON array of {id, type, content, metadata?}; item order is render order."),
		mcp.WithString("pageId", mcp.Description("ID of the page"), mcp.Required()),
		mcp.WithString("sectionId", mcp.Description("ID of the section"), mcp.Required()),
		mcp.WithString("items", mcp.Description("JSON array of content items"), mcp.Required()),
	), s.handleUpdateSection)

	// ── toggle_edit_mode ───────────────────────────────
	s.mcp.AddTool(mcp.NewTool("toggle_edit_mode",
		mcp.WithDescription("Flip the global edit mode flag and return the new value"),
	), s.handleToggleEditMode)

	// ── list_collection ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_collection",
		mcp.WithDescription("List an auxiliary collection: awards, testimonials, publications, resources, or blogPosts"),
		mcp.WithString("name", mcp.Description("Collection name"), mcp.Required()),
		mcp.WithString("filter", mcp.Description("Optional category/type filter")),
	), s.handleListCollection)
}

func (s *Server) handleGetSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID := req.GetString("pageId", "")
	sectionID := req.GetString("sectionId", "")
	if pageID == "" || sectionID == "" {
		return nil, fmt.Errorf("pageId and sectionId are required")
	}
	items, ok := s.content.GetSection(pageID, sectionID)
	return jsonResult(map[string]any{
		"hasOverride": ok,
		"items":       items,
	})
}

func (s *Server) handleUpdateSection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pageID := req.GetString("pageId", "")
	sectionID := req.GetString("sectionId", "")
	itemsJSON := req.GetString("items", "")
	if pageID == "" || sectionID == "" || itemsJSON == "" {
		return nil, fmt.Errorf("pageId, sectionId and items are required")
	}

	var items []domain.ContentItem
	if err := parseJSON(itemsJSON, &items); err != nil {
		return nil, fmt.Errorf("parse items: %w", err)
	}
	if err := s.content.UpdateContent(ctx, pageID, sectionID, items); err != nil {
		return nil, fmt.Errorf("update section: %w", err)
	}
	return textResult(fmt.Sprintf("replaced %s/%s with %d item(s)", pageID, sectionID, len(items))), nil
}

func (s *Server) handleToggleEditMode(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mode := s.content.ToggleEditMode(ctx)
	return jsonResult(map[string]bool{"isEditMode": mode})
}

func (s *Server) handleListCollection(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := req.GetString("name", "")
	filter := req.GetString("filter", "")

	switch name {
	case "awards":
		return jsonResult(s.content.AwardsByCategory(filter))
	case "testimonials":
		return jsonResult(s.content.TestimonialsByCategory(filter))
	case "publications":
		return jsonResult(s.content.PublicationsByType(filter))
	case "resources":
		return jsonResult(s.content.Resources())
	case "blogPosts":
		return jsonResult(s.content.BlogPostsByCategory(filter))
	default:
		return nil, fmt.Errorf("unknown collection %q", name)
	}
}
