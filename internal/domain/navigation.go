package domain

// NavigationItem is a single entry in the site navigation. Items with
// IsMainNav=true render in the header bar, the rest in the overflow menu.
type NavigationItem struct {
	ID        string `json:"id"`
	Href      string `json:"href"`
	Label     string `json:"label"`
	IsMainNav bool   `json:"isMainNav"`
	Order     int    `json:"order"`
}

// NavigationDraft is the caller-supplied part of a new navigation item;
// the store assigns the id.
type NavigationDraft struct {
	Href      string `json:"href"`
	Label     string `json:"label"`
	IsMainNav bool   `json:"isMainNav"`
	Order     int    `json:"order"`
}

// NavigationPatch carries a partial update for a navigation item.
// Nil fields are left untouched.
type NavigationPatch struct {
	Href      *string `json:"href,omitempty"`
	Label     *string `json:"label,omitempty"`
	IsMainNav *bool   `json:"isMainNav,omitempty"`
	Order     *int    `json:"order,omitempty"`
}

// Apply merges the patch into the item.
func (p NavigationPatch) Apply(item *NavigationItem) {
	if p.Href != nil {
		item.Href = *p.Href
	}
	if p.Label != nil {
		item.Label = *p.Label
	}
	if p.IsMainNav != nil {
		item.IsMainNav = *p.IsMainNav
	}
	if p.Order != nil {
		item.Order = *p.Order
	}
}
