package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"portfolio/internal/domain"
)

func (s *Server) registerNavigationTools() {
	// ── list_navigation ────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_navigation",
		mcp.WithDescription("List all navigation items, main nav first, sorted by order"),
	), s.handleListNavigation)

	// ── add_navigation_item ────────────────────────────
	s.mcp.AddTool(mcp.NewTool("add_navigation_item",
		mcp.WithDescription("Add a navigation item"),
		mcp.WithString("href", mcp.Description("Link target, e.g. /about"), mcp.Required()),
		mcp.WithString("label", mcp.Description("Display label"), mcp.Required()),
		mcp.WithBoolean("isMainNav", mcp.Description("Show in the header bar instead of the overflow menu")),
		mcp.WithNumber("order", mcp.Description("Sort position within its partition")),
	), s.handleAddNavigationItem)

	// ── update_navigation_item ─────────────────────────
	s.mcp.AddTool(mcp.NewTool("update_navigation_item",
		mcp.WithDescription("Update fields of a navigation item; omitted fields are unchanged"),
		mcp.WithString("id", mcp.Description("ID of the item"), mcp.Required()),
		mcp.WithString("href", mcp.Description("New link target")),
		mcp.WithString("label", mcp.Description("New display label")),
		mcp.WithBoolean("isMainNav", mcp.Description("New partition")),
		mcp.WithNumber("order", mcp.Description("New sort position")),
	), s.handleUpdateNavigationItem)

	// ── remove_navigation_item ─────────────────────────
	s.mcp.AddTool(mcp.NewTool("remove_navigation_item",
		mcp.WithDescription("Remove a navigation item"),
		mcp.WithString("id", mcp.Description("ID of the item"), mcp.Required()),
	), s.handleRemoveNavigationItem)

	// ── list_pages ─────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("list_pages",
		mcp.WithDescription("List all custom pages"),
	), s.handleListPages)

	// ── create_page ────────────────────────────────────
	s.mcp.AddTool(mcp.NewTool("create_page",
		mcp.WithDescription("Create a custom page. The slug is normalized to start with /"),
		mcp.WithString("title", mcp.Description("Page title"), mcp.Required()),
		mcp.WithString("slug", mcp.Description("URL path, e.g. /my-page"), mcp.Required()),
		mcp.WithString("description", mcp.Description("Optional page description")),
		mcp.WithString("content", mcp.Description("Initial HTML content")),
		mcp.WithBoolean("isPublished", mcp.Description("Publish immediately (default true)")),
	), s.handleCreatePage)
}

func (s *Server) handleListNavigation(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out := struct {
		Main      []domain.NavigationItem `json:"main"`
		Secondary []domain.NavigationItem `json:"secondary"`
	}{
		Main:      s.content.MainNavigation(),
		Secondary: s.content.SecondaryNavigation(),
	}
	return jsonResult(out)
}

func (s *Server) handleAddNavigationItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	href := req.GetString("href", "")
	label := req.GetString("label", "")
	if href == "" || label == "" {
		return nil, fmt.Errorf("href and label are required")
	}
	item, err := s.content.AddNavigationItem(ctx, domain.NavigationDraft{
		Href:      href,
		Label:     label,
		IsMainNav: req.GetBool("isMainNav", false),
		Order:     req.GetInt("order", 0),
	})
	if err != nil {
		return nil, fmt.Errorf("add navigation item: %w", err)
	}
	return jsonResult(item)
}

func (s *Server) handleUpdateNavigationItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}

	var patch domain.NavigationPatch
	args := req.GetArguments()
	if v, ok := args["href"].(string); ok {
		patch.Href = &v
	}
	if v, ok := args["label"].(string); ok {
		patch.Label = &v
	}
	if v, ok := args["isMainNav"].(bool); ok {
		patch.IsMainNav = &v
	}
	if v, ok := args["order"].(float64); ok {
		order := int(v)
		patch.Order = &order
	}

	if err := s.content.UpdateNavigationItem(ctx, id, patch); err != nil {
		return nil, fmt.Errorf("update navigation item: %w", err)
	}
	return textResult("updated " + id), nil
}

func (s *Server) handleRemoveNavigationItem(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("id", "")
	if id == "" {
		return nil, fmt.Errorf("id is required")
	}
	if err := s.content.RemoveNavigationItem(ctx, id); err != nil {
		return nil, fmt.Errorf("remove navigation item: %w", err)
	}
	return textResult("removed " + id), nil
}

func (s *Server) handleListPages(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.content.Pages())
}

func (s *Server) handleCreatePage(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	title := req.GetString("title", "")
	slug := req.GetString("slug", "")
	if title == "" || slug == "" {
		return nil, fmt.Errorf("title and slug are required")
	}
	page, err := s.content.AddPage(ctx, domain.PageDraft{
		Title:       title,
		Slug:        slug,
		Description: req.GetString("description", ""),
		Content:     req.GetString("content", ""),
		IsPublished: req.GetBool("isPublished", true),
	})
	if err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	return jsonResult(page)
}
