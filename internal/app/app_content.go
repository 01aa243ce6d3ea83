package app

// ─────────────────────────────────────────────────────────────
// Content Handlers — thin delegates to ContentService
// ─────────────────────────────────────────────────────────────

import "portfolio/internal/domain"

// ── Edit mode ──────────────────────────────────────────────

func (a *App) IsEditMode() bool {
	return a.content.IsEditMode()
}

func (a *App) ToggleEditMode() bool {
	return a.content.ToggleEditMode(a.ctx)
}

// ── Navigation ─────────────────────────────────────────────

func (a *App) ListNavigation() []domain.NavigationItem {
	return a.content.Navigation()
}

func (a *App) MainNavigation() []domain.NavigationItem {
	return a.content.MainNavigation()
}

func (a *App) SecondaryNavigation() []domain.NavigationItem {
	return a.content.SecondaryNavigation()
}

func (a *App) AddNavigationItem(draft domain.NavigationDraft) (*domain.NavigationItem, error) {
	return a.content.AddNavigationItem(a.ctx, draft)
}

func (a *App) UpdateNavigationItem(id string, patch domain.NavigationPatch) error {
	return a.content.UpdateNavigationItem(a.ctx, id, patch)
}

func (a *App) RemoveNavigationItem(id string) error {
	return a.content.RemoveNavigationItem(a.ctx, id)
}

// ── Pages ──────────────────────────────────────────────────

func (a *App) ListPages() []domain.Page {
	return a.content.Pages()
}

func (a *App) AddPage(draft domain.PageDraft) (*domain.Page, error) {
	return a.content.AddPage(a.ctx, draft)
}

// ── Page content ───────────────────────────────────────────

// ResolveSection returns the stored override for the section when one
// exists, otherwise the supplied default sequence.
func (a *App) ResolveSection(pageID, sectionID string, def []domain.ContentItem) []domain.ContentItem {
	return a.content.ResolveSection(pageID, sectionID, def)
}

func (a *App) UpdateContent(pageID, sectionID string, items []domain.ContentItem) error {
	return a.content.UpdateContent(a.ctx, pageID, sectionID, items)
}

// GetSnapshot hands the full store state to the frontend.
func (a *App) GetSnapshot() *domain.Snapshot {
	return a.content.Snapshot()
}
