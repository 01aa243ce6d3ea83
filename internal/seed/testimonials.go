package seed

import "portfolio/internal/domain"

// Testimonials returns the default testimonials collection.
func Testimonials() []domain.Testimonial {
	return []domain.Testimonial{
		{
			ID:       1,
			Name:     "Sarah Johnson",
			Role:     "CTO at TechStart Inc.",
			Company:  "TechStart Inc.",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "John is one of the most talented developers I've had the pleasure of working with. His ability to solve complex problems while maintaining clean, maintainable code is exceptional. He consistently delivered high-quality work ahead of schedule and was always willing to help other team members.",
			Category: "professional",
		},
		{
			ID:       2,
			Name:     "Michael Chen",
			Role:     "Lead Developer at InnovateSoft",
			Company:  "InnovateSoft",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "Working with John on our cloud migration project was a game-changer. His deep understanding of cloud architecture and best practices helped us reduce costs by 40% while improving system reliability. He's not just technically skilled but also great at explaining complex concepts to non-technical stakeholders.",
			Category: "professional",
		},
		{
			ID:       3,
			Name:     "Emily Rodriguez",
			Role:     "Product Manager at DataViz",
			Company:  "DataViz",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "John's contributions to our product team went far beyond writing code. He brought valuable insights to our planning sessions and helped bridge the gap between design and development. His user-focused approach to engineering made our product significantly better.",
			Category: "professional",
		},
		{
			ID:       4,
			Name:     "David Kim",
			Role:     "Startup Founder",
			Company:  "AI Solutions",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "As a non-technical founder, finding the right developer for my startup was crucial. John not only built our MVP but also helped shape the product strategy. His technical expertise combined with business acumen made him an invaluable partner in our early stages.",
			Category: "client",
		},
		{
			ID:       5,
			Name:     "Lisa Patel",
			Role:     "E-commerce Director",
			Company:  "RetailNow",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "John redesigned our e-commerce platform, resulting in a 35% increase in conversion rates and a significant improvement in user satisfaction. He was responsive, professional, and delivered exactly what we needed. I wouldn't hesitate to work with him again.",
			Category: "client",
		},
		{
			ID:       6,
			Name:     "Robert Taylor",
			Role:     "Marketing Director",
			Company:  "GrowthMarketing",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "John developed a custom analytics dashboard for our marketing team that transformed how we track campaign performance. His attention to detail and understanding of our specific needs resulted in a tool that we use daily. He's a true professional who delivers exceptional results.",
			Category: "client",
		},
		{
			ID:       7,
			Name:     "Alex Wong",
			Role:     "CS Student",
			Company:  "University of Technology",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "John's mentorship was instrumental in my development as a programmer. He patiently guided me through complex concepts and provided valuable feedback on my projects. His teaching style made difficult topics accessible and helped me build confidence in my abilities.",
			Category: "mentorship",
		},
		{
			ID:       8,
			Name:     "Sophia Martinez",
			Role:     "Junior Developer",
			Company:  "CodeCraft",
			Image:    "/placeholder.svg?height=200&width=200",
			Quote:    "As a junior developer, having John as a mentor accelerated my growth tremendously. He provided thoughtful code reviews that helped me improve and was always willing to pair program on challenging tasks. His guidance helped me advance my career faster than I thought possible.",
			Category: "mentorship",
		},
	}
}
