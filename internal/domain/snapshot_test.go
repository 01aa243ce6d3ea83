package domain_test

import (
	"strings"
	"testing"

	"portfolio/internal/domain"
)

func sampleSnapshot() *domain.Snapshot {
	return &domain.Snapshot{
		Navigation: []domain.NavigationItem{
			{ID: "nav-1", Href: "/", Label: "Home", IsMainNav: true, Order: 0},
		},
		Pages: []domain.Page{
			{ID: "page-1", Title: "Custom", Slug: "/custom", IsPublished: true},
		},
		PageContent: domain.PageContent{
			"home": {
				"hero": {
					{ID: "home-hero-1", Type: domain.ContentTypeHeading, Content: "Hello"},
					{ID: "home-hero-2", Type: domain.ContentTypeImage, Content: "/me.jpg", Metadata: map[string]string{"alt": "portrait"}},
				},
			},
		},
	}
}

func TestParseSnapshot_RoundTrip(t *testing.T) {
	data, err := sampleSnapshot().Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, err := domain.ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot() error = %v", err)
	}
	if len(got.Navigation) != 1 || got.Navigation[0].ID != "nav-1" {
		t.Errorf("navigation not preserved: %+v", got.Navigation)
	}
	items := got.PageContent["home"]["hero"]
	if len(items) != 2 {
		t.Fatalf("expected 2 hero items, got %d", len(items))
	}
	if items[1].Metadata["alt"] != "portrait" {
		t.Errorf("metadata not preserved: %+v", items[1].Metadata)
	}
}

func TestParseSnapshot_RejectsInvalidJSON(t *testing.T) {
	if _, err := domain.ParseSnapshot([]byte("{not json")); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestParseSnapshot_RejectsMissingKeys(t *testing.T) {
	_, err := domain.ParseSnapshot([]byte(`{"isEditMode": false, "navigation": []}`))
	if err == nil {
		t.Fatal("expected error for document without required keys")
	}
	if !strings.Contains(err.Error(), "missing key") {
		t.Errorf("error = %v, want missing key", err)
	}
}

func TestSnapshot_CloneIsIndependent(t *testing.T) {
	orig := sampleSnapshot()
	clone := orig.Clone()

	clone.Navigation[0].Label = "Changed"
	clone.PageContent["home"]["hero"][0].Content = "Changed"
	clone.PageContent["home"]["hero"][1].Metadata["alt"] = "changed"
	clone.Pages = append(clone.Pages, domain.Page{ID: "page-2"})

	if orig.Navigation[0].Label != "Home" {
		t.Error("clone mutation leaked into original navigation")
	}
	if orig.PageContent["home"]["hero"][0].Content != "Hello" {
		t.Error("clone mutation leaked into original page content")
	}
	if orig.PageContent["home"]["hero"][1].Metadata["alt"] != "portrait" {
		t.Error("clone mutation leaked into original metadata")
	}
	if len(orig.Pages) != 1 {
		t.Error("clone mutation leaked into original pages")
	}
}

func TestNavigationPatch_AppliesOnlySetFields(t *testing.T) {
	item := domain.NavigationItem{ID: "nav-1", Href: "/", Label: "Home", IsMainNav: true, Order: 3}

	label := "Start"
	order := 7
	patch := domain.NavigationPatch{Label: &label, Order: &order}
	patch.Apply(&item)

	if item.Label != "Start" || item.Order != 7 {
		t.Errorf("patched fields not applied: %+v", item)
	}
	if item.Href != "/" || !item.IsMainNav {
		t.Errorf("unpatched fields changed: %+v", item)
	}
}
