package service_test

import (
	"context"
	"testing"

	"portfolio/internal/domain"
	"portfolio/internal/service"
	"portfolio/internal/storage"
)

// ─────────────────────────────────────────────────────────────
// Resolution + navigation ordering tests
// ─────────────────────────────────────────────────────────────

func TestResolveSection_FallsBackToDefault(t *testing.T) {
	svc, _, _ := newTestStore(t)

	def := []domain.ContentItem{
		{ID: "about-intro-1", Type: domain.ContentTypeParagraph, Content: "Default text"},
	}
	got := svc.ResolveSection("about", "intro", def)
	if len(got) != 1 || got[0].Content != "Default text" {
		t.Errorf("expected default sequence, got %+v", got)
	}
}

func TestResolveSection_PrefersStoredOverride(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	override := []domain.ContentItem{
		{ID: "about-intro-2", Type: domain.ContentTypeParagraph, Content: "Customized"},
	}
	if err := svc.UpdateContent(ctx, "about", "intro", override); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}

	def := []domain.ContentItem{
		{ID: "about-intro-1", Type: domain.ContentTypeParagraph, Content: "Default text"},
	}
	got := svc.ResolveSection("about", "intro", def)
	if len(got) != 1 || got[0].Content != "Customized" {
		t.Errorf("expected stored override, got %+v", got)
	}
}

// An empty stored sequence is a deliberate override: the section was
// emptied in the editor, so resolution must not resurrect the default.
func TestResolveSection_EmptyOverrideWins(t *testing.T) {
	svc, _, _ := newTestStore(t)
	ctx := context.Background()

	if err := svc.UpdateContent(ctx, "about", "intro", []domain.ContentItem{}); err != nil {
		t.Fatalf("UpdateContent() error = %v", err)
	}

	def := []domain.ContentItem{
		{ID: "about-intro-1", Type: domain.ContentTypeParagraph, Content: "Default text"},
	}
	got := svc.ResolveSection("about", "intro", def)
	if len(got) != 0 {
		t.Errorf("expected empty override to win over default, got %+v", got)
	}
}

func TestResolveSection_HasNoSideEffects(t *testing.T) {
	svc, slot, _ := newTestStore(t)

	def := []domain.ContentItem{
		{ID: "x", Type: domain.ContentTypeText, Content: "x"},
	}
	svc.ResolveSection("ghost", "section", def)

	if _, ok := svc.GetSection("ghost", "section"); ok {
		t.Error("resolution must not create store entries")
	}
	if _, ok, _ := slot.Load(); ok {
		t.Error("resolution must not write the slot")
	}
}

func TestNavigationOrdering_StableSort(t *testing.T) {
	slot := storage.NewMemorySlot()
	svc := service.NewContentService(slot, emptyDefaults(), &service.MockEmitter{})
	ctx := context.Background()

	// Insertion order A, B, C with orders 2, 2, 1. Stable sort puts C
	// first and keeps A before B.
	for _, d := range []domain.NavigationDraft{
		{Href: "/a", Label: "A", IsMainNav: true, Order: 2},
		{Href: "/b", Label: "B", IsMainNav: true, Order: 2},
		{Href: "/c", Label: "C", IsMainNav: true, Order: 1},
	} {
		if _, err := svc.AddNavigationItem(ctx, d); err != nil {
			t.Fatalf("AddNavigationItem() error = %v", err)
		}
	}

	got := svc.MainNavigation()
	want := []string{"C", "A", "B"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("position %d = %q, want %q", i, got[i].Label, label)
		}
	}
}

func TestNavigationOrdering_Partitions(t *testing.T) {
	svc, _, _ := newTestStore(t)

	for _, n := range svc.MainNavigation() {
		if !n.IsMainNav {
			t.Errorf("secondary item %s leaked into main nav", n.ID)
		}
	}
	for _, n := range svc.SecondaryNavigation() {
		if n.IsMainNav {
			t.Errorf("main item %s leaked into secondary nav", n.ID)
		}
	}

	main := svc.MainNavigation()
	for i := 1; i < len(main); i++ {
		if main[i-1].Order > main[i].Order {
			t.Errorf("main nav not sorted ascending: %+v", main)
		}
	}
}

func TestCollections_FilterByCategory(t *testing.T) {
	svc, _, _ := newTestStore(t)

	all := svc.AwardsByCategory("all")
	if len(all) == 0 {
		t.Fatal("expected seed awards")
	}
	community := svc.AwardsByCategory("community")
	if len(community) == 0 || len(community) >= len(all) {
		t.Errorf("expected a proper community subset, got %d of %d", len(community), len(all))
	}
	for _, a := range community {
		if a.Category != "community" {
			t.Errorf("filter leaked category %q", a.Category)
		}
	}

	journals := svc.PublicationsByType("journal")
	for _, p := range journals {
		if p.Type != "journal" {
			t.Errorf("filter leaked type %q", p.Type)
		}
	}

	if _, ok := svc.BlogPost("modern-react-patterns"); !ok {
		t.Error("expected seed blog post by id")
	}
	if _, ok := svc.BlogPost("missing-post"); ok {
		t.Error("expected lookup miss for unknown id")
	}
}
