package service

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"portfolio/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Content Service — the persistent content store
// ─────────────────────────────────────────────────────────────

// ContentService owns the site content snapshot. Every mutation rewrites
// the full snapshot into the durable slot; initialization restores the
// last written snapshot or falls back to the compiled-in defaults.
//
// Writes are whole-snapshot by design: content volume is tens to low
// hundreds of records and mutations arrive at human editing speed.
type ContentService struct {
	mu       sync.Mutex
	slot     domain.SnapshotSlot
	snap     *domain.Snapshot
	defaults *domain.Snapshot
	emitter  EventEmitter
}

// NewContentService loads the slot and builds the store. A missing or
// unparsable slot value is never fatal: the store seeds from defaults.
func NewContentService(slot domain.SnapshotSlot, defaults *domain.Snapshot, emitter EventEmitter) *ContentService {
	s := &ContentService{
		slot:     slot,
		defaults: defaults,
		emitter:  emitter,
	}
	s.snap = s.loadOrDefault()
	return s
}

func (s *ContentService) loadOrDefault() *domain.Snapshot {
	value, ok, err := s.slot.Load()
	if err != nil {
		log.Printf("content: slot read failed, using defaults: %v", err)
		return s.defaults.Clone()
	}
	if !ok {
		return s.defaults.Clone()
	}
	snap, err := domain.ParseSnapshot([]byte(value))
	if err != nil {
		log.Printf("content: slot value corrupt, using defaults: %v", err)
		return s.defaults.Clone()
	}
	return snap
}

// Reload re-seeds the in-memory snapshot from the slot. Called after an
// import swaps the slot value, or after a reset clears it.
func (s *ContentService) Reload(ctx context.Context) {
	s.mu.Lock()
	s.snap = s.loadOrDefault()
	s.mu.Unlock()
	s.emitter.Emit(ctx, "content:reloaded", nil)
}

// persist writes the full snapshot to the slot. A write failure keeps the
// in-memory state and surfaces as a warning event, never as a lost edit.
func (s *ContentService) persist(ctx context.Context) {
	data, err := s.snap.Encode()
	if err != nil {
		log.Printf("content: encode snapshot: %v", err)
		return
	}
	if err := s.slot.Save(string(data)); err != nil {
		log.Printf("content: slot write failed: %v", err)
		s.emitter.Emit(ctx, "content:save-failed", err.Error())
	}
}

// Snapshot returns a deep copy of the current state.
func (s *ContentService) Snapshot() *domain.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// ── Edit mode ──────────────────────────────────────────────

func (s *ContentService) IsEditMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.IsEditMode
}

// ToggleEditMode flips the global edit flag and returns the new value.
// No other state is touched.
func (s *ContentService) ToggleEditMode(ctx context.Context) bool {
	s.mu.Lock()
	s.snap.IsEditMode = !s.snap.IsEditMode
	mode := s.snap.IsEditMode
	s.persist(ctx)
	s.mu.Unlock()

	s.emitter.Emit(ctx, "content:editmode-changed", mode)
	return mode
}

// ── Navigation ─────────────────────────────────────────────

func (s *ContentService) Navigation() []domain.NavigationItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.NavigationItem(nil), s.snap.Navigation...)
}

// AddNavigationItem appends a new item with a fresh unique id. Field
// validation (non-empty href/label) is the caller's responsibility.
func (s *ContentService) AddNavigationItem(ctx context.Context, draft domain.NavigationDraft) (*domain.NavigationItem, error) {
	item := domain.NavigationItem{
		ID:        uuid.New().String(),
		Href:      draft.Href,
		Label:     draft.Label,
		IsMainNav: draft.IsMainNav,
		Order:     draft.Order,
	}

	s.mu.Lock()
	s.snap.Navigation = append(s.snap.Navigation, item)
	s.persist(ctx)
	s.mu.Unlock()

	s.emitter.Emit(ctx, "content:navigation-changed", item.ID)
	return &item, nil
}

// UpdateNavigationItem merges the non-nil patch fields into the item
// matching id.
func (s *ContentService) UpdateNavigationItem(ctx context.Context, id string, patch domain.NavigationPatch) error {
	s.mu.Lock()
	found := false
	for i := range s.snap.Navigation {
		if s.snap.Navigation[i].ID == id {
			patch.Apply(&s.snap.Navigation[i])
			found = true
			break
		}
	}
	if found {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("navigation item %s not found", id)
	}
	s.emitter.Emit(ctx, "content:navigation-changed", id)
	return nil
}

// RemoveNavigationItem deletes the item matching id. Dangling links from
// removed entries are the caller's concern.
func (s *ContentService) RemoveNavigationItem(ctx context.Context, id string) error {
	s.mu.Lock()
	found := false
	for i := range s.snap.Navigation {
		if s.snap.Navigation[i].ID == id {
			s.snap.Navigation = append(s.snap.Navigation[:i], s.snap.Navigation[i+1:]...)
			found = true
			break
		}
	}
	if found {
		s.persist(ctx)
	}
	s.mu.Unlock()

	if !found {
		return fmt.Errorf("navigation item %s not found", id)
	}
	s.emitter.Emit(ctx, "content:navigation-changed", id)
	return nil
}

// ── Pages ──────────────────────────────────────────────────

func (s *ContentService) Pages() []domain.Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Page(nil), s.snap.Pages...)
}

// AddPage creates a custom page with a fresh id. Slugs are normalized to
// carry a leading slash.
func (s *ContentService) AddPage(ctx context.Context, draft domain.PageDraft) (*domain.Page, error) {
	slug := draft.Slug
	if len(slug) == 0 || slug[0] != '/' {
		slug = "/" + slug
	}
	page := domain.Page{
		ID:          uuid.New().String(),
		Title:       draft.Title,
		Slug:        slug,
		Description: draft.Description,
		Content:     draft.Content,
		IsPublished: draft.IsPublished,
	}

	s.mu.Lock()
	s.snap.Pages = append(s.snap.Pages, page)
	s.persist(ctx)
	s.mu.Unlock()

	s.emitter.Emit(ctx, "content:pages-changed", page.ID)
	return &page, nil
}

// ── Page content ───────────────────────────────────────────

// UpdateContent replaces the entire section sequence for the given
// (pageID, sectionID) key. This is a full overwrite, not a merge; the
// editing UI commits whole drafts. Nested map entries are created on
// demand with explicit existence checks.
func (s *ContentService) UpdateContent(ctx context.Context, pageID, sectionID string, items []domain.ContentItem) error {
	s.mu.Lock()
	if s.snap.PageContent == nil {
		s.snap.PageContent = domain.PageContent{}
	}
	sections, ok := s.snap.PageContent[pageID]
	if !ok {
		sections = make(map[string][]domain.ContentItem)
		s.snap.PageContent[pageID] = sections
	}
	sections[sectionID] = domain.CloneContentItems(items)
	s.persist(ctx)
	s.mu.Unlock()

	s.emitter.Emit(ctx, "content:section-updated", map[string]string{
		"pageId":    pageID,
		"sectionId": sectionID,
	})
	return nil
}

// GetSection returns the stored sequence for the key and whether the key
// exists. An existing empty sequence reports ok=true.
func (s *ContentService) GetSection(pageID, sectionID string) ([]domain.ContentItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sections, ok := s.snap.PageContent[pageID]
	if !ok {
		return nil, false
	}
	items, ok := sections[sectionID]
	if !ok {
		return nil, false
	}
	return domain.CloneContentItems(items), true
}
