package seed

import "portfolio/internal/domain"

// Resources returns the default resource library (downloads + videos).
func Resources() domain.ResourceLibrary {
	return domain.ResourceLibrary{
		Downloads: []domain.Resource{
			{
				ID:          "resource-1",
				Title:       "Modern React Development Guide",
				Description: "A comprehensive guide to modern React development practices, including hooks, context, and state management.",
				Image:       "/placeholder.svg?height=400&width=600&text=React+Guide",
				Type:        "guide",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "2.4 MB",
			},
			{
				ID:          "resource-2",
				Title:       "Web Performance Optimization Checklist",
				Description: "A detailed checklist for optimizing web application performance, covering everything from code splitting to image optimization.",
				Image:       "/placeholder.svg?height=400&width=600&text=Performance+Checklist",
				Type:        "checklist",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "1.8 MB",
			},
			{
				ID:          "resource-3",
				Title:       "Frontend Architecture Template",
				Description: "A starter template for organizing large-scale frontend applications with best practices for folder structure and code organization.",
				Image:       "/placeholder.svg?height=400&width=600&text=Architecture+Template",
				Type:        "template",
				GithubURL:   "https://github.com/example/frontend-architecture",
				DemoURL:     "https://example.com/demo",
			},
			{
				ID:          "resource-4",
				Title:       "TypeScript Best Practices",
				Description: "A collection of TypeScript best practices and patterns for writing maintainable and type-safe code.",
				Image:       "/placeholder.svg?height=400&width=600&text=TypeScript+Practices",
				Type:        "guide",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "3.1 MB",
			},
			{
				ID:          "resource-5",
				Title:       "Microservices vs. Monoliths Decision Framework",
				Description: "A framework to help teams decide between microservices and monolithic architectures based on project requirements.",
				Image:       "/placeholder.svg?height=400&width=600&text=Architecture+Decision",
				Type:        "framework",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "2.2 MB",
			},
			{
				ID:          "resource-6",
				Title:       "React Component Library Starter",
				Description: "A starter kit for building and publishing your own React component library with TypeScript, Storybook, and testing setup.",
				Image:       "/placeholder.svg?height=400&width=600&text=Component+Library",
				Type:        "template",
				GithubURL:   "https://github.com/example/component-library",
				DemoURL:     "https://example.com/demo",
			},
			{
				ID:          "resource-7",
				Title:       "Web Accessibility Checklist",
				Description: "A comprehensive checklist for ensuring your web applications are accessible to all users, including those with disabilities.",
				Image:       "/placeholder.svg?height=400&width=600&text=Accessibility",
				Type:        "checklist",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "1.5 MB",
			},
			{
				ID:          "resource-8",
				Title:       "Introduction to Machine Learning for Web Developers",
				Description: "A beginner-friendly guide to implementing machine learning features in web applications without a data science background.",
				Image:       "/placeholder.svg?height=400&width=600&text=ML+for+Web",
				Type:        "guide",
				DownloadURL: "https://example.com/download",
				FileType:    "PDF",
				FileSize:    "4.2 MB",
			},
		},
		Videos: []domain.VideoResource{
			{
				ID:          "video-1",
				Title:       "Building Scalable React Applications",
				Description: "Learn how to structure and organize React applications that can scale to millions of users.",
				Thumbnail:   "/placeholder.svg?height=400&width=600&text=React+Scaling",
				Duration:    "45:22",
				URL:         "https://example.com/video",
			},
			{
				ID:          "video-2",
				Title:       "TypeScript for JavaScript Developers",
				Description: "A practical introduction to TypeScript for developers who are already familiar with JavaScript.",
				Thumbnail:   "/placeholder.svg?height=400&width=600&text=TypeScript",
				Duration:    "38:15",
				URL:         "https://example.com/video",
			},
			{
				ID:          "video-3",
				Title:       "Modern CSS Techniques",
				Description: "Explore modern CSS techniques like Grid, Flexbox, and CSS Variables to build responsive layouts.",
				Thumbnail:   "/placeholder.svg?height=400&width=600&text=Modern+CSS",
				Duration:    "52:10",
				URL:         "https://example.com/video",
			},
			{
				ID:          "video-4",
				Title:       "Introduction to Next.js",
				Description: "Learn the basics of Next.js and how to build server-rendered React applications.",
				Thumbnail:   "/placeholder.svg?height=400&width=600&text=Next.js",
				Duration:    "41:35",
				URL:         "https://example.com/video",
			},
		},
	}
}
