package seed

import "portfolio/internal/domain"

// Navigation returns the default site navigation. Order is dense within
// each partition but only used for relative sorting.
func Navigation() []domain.NavigationItem {
	return []domain.NavigationItem{
		{ID: "nav-home", Href: "/", Label: "Home", IsMainNav: true, Order: 0},
		{ID: "nav-about", Href: "/about", Label: "About", IsMainNav: true, Order: 1},
		{ID: "nav-projects", Href: "/projects", Label: "Projects", IsMainNav: true, Order: 2},
		{ID: "nav-blog", Href: "/blog", Label: "Blog", IsMainNav: true, Order: 3},
		{ID: "nav-contact", Href: "/contact", Label: "Contact", IsMainNav: true, Order: 4},
		{ID: "nav-education", Href: "/education", Label: "Education", IsMainNav: false, Order: 0},
		{ID: "nav-skills", Href: "/skills", Label: "Skills", IsMainNav: false, Order: 1},
		{ID: "nav-speaking", Href: "/speaking", Label: "Speaking", IsMainNav: false, Order: 2},
		{ID: "nav-publications", Href: "/publications", Label: "Publications", IsMainNav: false, Order: 3},
		{ID: "nav-testimonials", Href: "/testimonials", Label: "Testimonials", IsMainNav: false, Order: 4},
		{ID: "nav-awards", Href: "/awards", Label: "Awards", IsMainNav: false, Order: 5},
		{ID: "nav-resources", Href: "/resources", Label: "Resources", IsMainNav: false, Order: 6},
	}
}
