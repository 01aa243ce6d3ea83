package app

// ─────────────────────────────────────────────────────────────
// Collection Handlers — read-only seed-backed collections
// ─────────────────────────────────────────────────────────────

import (
	"fmt"

	"portfolio/internal/domain"
)

func errNotFound(kind, id string) error {
	return fmt.Errorf("%s %s not found", kind, id)
}

func (a *App) ListAwards(category string) []domain.Award {
	return a.content.AwardsByCategory(category)
}

func (a *App) ListTestimonials(category string) []domain.Testimonial {
	return a.content.TestimonialsByCategory(category)
}

func (a *App) ListPublications(pubType string) []domain.Publication {
	return a.content.PublicationsByType(pubType)
}

func (a *App) ListResources() domain.ResourceLibrary {
	return a.content.Resources()
}

func (a *App) ListBlogPosts(category string) []domain.BlogPost {
	return a.content.BlogPostsByCategory(category)
}

func (a *App) GetBlogPost(id string) (*domain.BlogPost, error) {
	post, ok := a.content.BlogPost(id)
	if !ok {
		return nil, errNotFound("blog post", id)
	}
	return post, nil
}
