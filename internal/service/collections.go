package service

import "portfolio/internal/domain"

// ─────────────────────────────────────────────────────────────
// Auxiliary collections — read-only listing and filtering
// ─────────────────────────────────────────────────────────────

func (s *ContentService) Awards() []domain.Award {
	return s.Snapshot().Awards
}

// AwardsByCategory filters by category; "all" (or empty) returns everything.
func (s *ContentService) AwardsByCategory(category string) []domain.Award {
	awards := s.Snapshot().Awards
	if category == "" || category == "all" {
		return awards
	}
	out := []domain.Award{}
	for _, a := range awards {
		if a.Category == category {
			out = append(out, a)
		}
	}
	return out
}

func (s *ContentService) Testimonials() []domain.Testimonial {
	return s.Snapshot().Testimonials
}

func (s *ContentService) TestimonialsByCategory(category string) []domain.Testimonial {
	all := s.Snapshot().Testimonials
	if category == "" || category == "all" {
		return all
	}
	out := []domain.Testimonial{}
	for _, t := range all {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func (s *ContentService) Publications() []domain.Publication {
	return s.Snapshot().Publications
}

func (s *ContentService) PublicationsByType(pubType string) []domain.Publication {
	all := s.Snapshot().Publications
	if pubType == "" || pubType == "all" {
		return all
	}
	out := []domain.Publication{}
	for _, p := range all {
		if p.Type == pubType {
			out = append(out, p)
		}
	}
	return out
}

func (s *ContentService) Resources() domain.ResourceLibrary {
	return s.Snapshot().Resources
}

func (s *ContentService) BlogPosts() []domain.BlogPost {
	return s.Snapshot().BlogPosts
}

func (s *ContentService) BlogPostsByCategory(category string) []domain.BlogPost {
	all := s.Snapshot().BlogPosts
	if category == "" || category == "all" {
		return all
	}
	out := []domain.BlogPost{}
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// BlogPost looks up a post by id (the id doubles as the URL slug).
func (s *ContentService) BlogPost(id string) (*domain.BlogPost, bool) {
	for _, p := range s.Snapshot().BlogPosts {
		if p.ID == id {
			return &p, true
		}
	}
	return nil, false
}
