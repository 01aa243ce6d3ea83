package seed

import "portfolio/internal/domain"

// BlogPosts returns the default blog posts. Content is raw HTML rendered
// verbatim by the blog page.
func BlogPosts() []domain.BlogPost {
	return []domain.BlogPost{
		{
			ID:      "modern-react-patterns",
			Title:   "Modern React Patterns for 2023",
			Excerpt: "Exploring the latest patterns and best practices in React development that will help you write cleaner, more maintainable code.",
			Content: `
      <p>React has evolved significantly since its initial release, and with it, the patterns and practices we use to build applications have also matured. In this article, we'll explore some of the most effective patterns that have emerged in the React ecosystem in 2023.</p>

      <h2>The Rise of React Hooks</h2>
      <p>Hooks have revolutionized how we write React components, allowing us to use state and other React features without writing classes. Let's look at some advanced hook patterns:</p>

      <h3>Custom Hooks for Reusable Logic</h3>
      <p>One of the most powerful aspects of hooks is the ability to extract component logic into reusable functions.</p>

      <h3>The useReducer Pattern for Complex State</h3>
      <p>When state logic becomes complex, useReducer provides a more structured approach than multiple useState calls.</p>

      <p>What patterns have you found most effective in your React projects? Share your experiences in the comments below!</p>
    `,
			Date:     "October 15, 2023",
			ReadTime: "8 min read",
			Image:    "/placeholder.svg?height=600&width=1200&text=React+Patterns",
			Category: "development",
			Tags:     []string{"React", "JavaScript", "Web Development"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "Senior Frontend Developer",
			},
		},
		{
			ID:      "machine-learning-intro",
			Title:   "A Beginner's Guide to Machine Learning",
			Excerpt: "An accessible introduction to machine learning concepts for developers with no prior data science experience.",
			Content: `
      <p>Machine learning can seem intimidating for developers coming from a traditional software engineering background. This guide breaks down the core concepts into approachable pieces.</p>

      <h2>Supervised vs. Unsupervised Learning</h2>
      <p>The two main branches of machine learning differ in whether the training data carries labels for the model to learn from.</p>

      <h2>Getting Started with Practical Tools</h2>
      <p>You don't need a PhD to experiment with machine learning. Modern libraries let you train useful models with a few dozen lines of code.</p>
    `,
			Date:     "September 28, 2023",
			ReadTime: "12 min read",
			Image:    "/placeholder.svg?height=600&width=1200&text=Machine+Learning",
			Category: "ai",
			Tags:     []string{"Machine Learning", "AI", "Data Science"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "AI Enthusiast & Software Engineer",
			},
		},
		{
			ID:       "cloud-architecture",
			Title:    "Designing Scalable Cloud Architecture",
			Excerpt:  "Key principles and patterns for designing cloud systems that can scale to millions of users while maintaining performance.",
			Content:  "",
			Date:     "August 10, 2023",
			ReadTime: "10 min read",
			Image:    "/placeholder.svg?height=400&width=600&text=Cloud+Architecture",
			Category: "devops",
			Tags:     []string{"AWS", "Cloud", "Architecture", "DevOps"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "Cloud Architect",
			},
		},
		{
			ID:       "ux-design-principles",
			Title:    "UX Design Principles Every Developer Should Know",
			Excerpt:  "Essential user experience concepts that will help developers create more intuitive and user-friendly applications.",
			Content:  "",
			Date:     "July 22, 2023",
			ReadTime: "7 min read",
			Image:    "/placeholder.svg?height=400&width=600&text=UX+Design",
			Category: "design",
			Tags:     []string{"UX", "Design", "Frontend"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "UX Engineer",
			},
		},
		{
			ID:       "microservices-vs-monolith",
			Title:    "Microservices vs. Monolith: Choosing the Right Architecture",
			Excerpt:  "A practical guide to deciding between microservices and monolithic architectures for your next project.",
			Content:  "",
			Date:     "June 15, 2023",
			ReadTime: "9 min read",
			Image:    "/placeholder.svg?height=400&width=600&text=Microservices",
			Category: "architecture",
			Tags:     []string{"Microservices", "Architecture", "System Design"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "Software Architect",
			},
		},
		{
			ID:       "typescript-best-practices",
			Title:    "TypeScript Best Practices in 2023",
			Excerpt:  "Proven patterns and practices for writing maintainable TypeScript code in large-scale applications.",
			Content:  "",
			Date:     "May 3, 2023",
			ReadTime: "11 min read",
			Image:    "/placeholder.svg?height=400&width=600&text=TypeScript",
			Category: "development",
			Tags:     []string{"TypeScript", "JavaScript", "Best Practices"},
			Author: domain.Author{
				Name:   "John Doe",
				Avatar: "/placeholder.svg?height=100&width=100",
				Title:  "Senior Frontend Developer",
			},
		},
	}
}
