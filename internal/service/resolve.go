package service

import (
	"sort"

	"portfolio/internal/domain"
)

// ─────────────────────────────────────────────────────────────
// Read-side projections: content resolution + navigation order
// ─────────────────────────────────────────────────────────────

// ResolveSection returns the effective content for a section: the stored
// sequence when the key exists, otherwise the compile-time default.
//
// Key presence is the override signal. A stored empty sequence is a valid
// override (a section intentionally emptied by the editor) and is returned
// as-is rather than falling back to the default.
func (s *ContentService) ResolveSection(pageID, sectionID string, def []domain.ContentItem) []domain.ContentItem {
	if items, ok := s.GetSection(pageID, sectionID); ok {
		return items
	}
	return domain.CloneContentItems(def)
}

// MainNavigation returns the header navigation, sorted ascending by Order.
// The sort is stable: ties keep their original insertion order.
func (s *ContentService) MainNavigation() []domain.NavigationItem {
	return sortedNavigation(s.Navigation(), true)
}

// SecondaryNavigation returns the overflow-menu navigation, sorted the
// same way as MainNavigation.
func (s *ContentService) SecondaryNavigation() []domain.NavigationItem {
	return sortedNavigation(s.Navigation(), false)
}

func sortedNavigation(items []domain.NavigationItem, mainNav bool) []domain.NavigationItem {
	out := make([]domain.NavigationItem, 0, len(items))
	for _, item := range items {
		if item.IsMainNav == mainNav {
			out = append(out, item)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
