package seed

import "portfolio/internal/domain"

// Default returns the compiled-in default snapshot used when the durable
// slot is empty or unreadable.
func Default() *domain.Snapshot {
	return &domain.Snapshot{
		IsEditMode:   false,
		Navigation:   Navigation(),
		Pages:        []domain.Page{},
		PageContent:  domain.PageContent{},
		Awards:       Awards(),
		Testimonials: Testimonials(),
		Publications: Publications(),
		Resources:    Resources(),
		BlogPosts:    BlogPosts(),
	}
}
