package seed

import "portfolio/internal/domain"

// Publications returns the default publications collection.
func Publications() []domain.Publication {
	return []domain.Publication{
		{
			ID:        "pub-1",
			Title:     "Optimizing React Performance: A Comprehensive Guide",
			Abstract:  "This paper presents a systematic approach to identifying and resolving performance bottlenecks in React applications, with a focus on rendering optimization and state management.",
			Authors:   []string{"John Doe", "Sarah Johnson"},
			Date:      "October 2023",
			Publisher: "Journal of Web Engineering",
			Image:     "/placeholder.svg?height=400&width=600&text=React+Performance",
			Type:      "journal",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J., & Johnson, S. (2023). Optimizing React Performance: A Comprehensive Guide. Journal of Web Engineering, 15(4), 78-92.",
		},
		{
			ID:        "pub-2",
			Title:     "Machine Learning for Frontend Developers",
			Abstract:  "An exploration of practical machine learning applications that can be implemented by frontend developers to enhance user experiences without requiring extensive data science expertise.",
			Authors:   []string{"John Doe"},
			Date:      "August 2023",
			Publisher: "Frontend Quarterly",
			Image:     "/placeholder.svg?height=400&width=600&text=ML+for+Frontend",
			Type:      "magazine",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J. (2023). Machine Learning for Frontend Developers. Frontend Quarterly, 8(2), 45-53.",
		},
		{
			ID:        "pub-3",
			Title:     "Microservices vs. Monoliths: A Quantitative Analysis",
			Abstract:  "This research paper presents a quantitative comparison of microservices and monolithic architectures across various dimensions including performance, scalability, and development velocity.",
			Authors:   []string{"John Doe", "Michael Chen", "Emily Rodriguez"},
			Date:      "June 2023",
			Publisher: "International Conference on Software Architecture",
			Image:     "/placeholder.svg?height=400&width=600&text=Microservices+Analysis",
			Type:      "conference",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J., Chen, M., & Rodriguez, E. (2023). Microservices vs. Monoliths: A Quantitative Analysis. Proceedings of the International Conference on Software Architecture, 112-125.",
		},
		{
			ID:        "pub-4",
			Title:     "The State of Web Development in 2023",
			Abstract:  "A comprehensive survey of current trends, technologies, and practices in web development, based on data from over 5,000 developers worldwide.",
			Authors:   []string{"John Doe", "Lisa Patel"},
			Date:      "May 2023",
			Publisher: "Web Technologies Research Group",
			Image:     "/placeholder.svg?height=400&width=600&text=Web+Development+2023",
			Type:      "whitepaper",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J., & Patel, L. (2023). The State of Web Development in 2023. Web Technologies Research Group.",
		},
		{
			ID:        "pub-5",
			Title:     "Implementing Secure Authentication in Modern Web Applications",
			Abstract:  "This paper discusses best practices for implementing secure authentication in web applications, covering topics such as OAuth 2.0, JWT, and multi-factor authentication.",
			Authors:   []string{"John Doe"},
			Date:      "March 2023",
			Publisher: "Journal of Cybersecurity",
			Image:     "/placeholder.svg?height=400&width=600&text=Secure+Authentication",
			Type:      "journal",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J. (2023). Implementing Secure Authentication in Modern Web Applications. Journal of Cybersecurity, 7(1), 34-49.",
		},
		{
			ID:        "pub-6",
			Title:     "Progressive Web Apps: Bridging the Gap Between Web and Native",
			Abstract:  "An analysis of how Progressive Web Apps are changing the landscape of mobile development, with case studies of successful PWA implementations.",
			Authors:   []string{"John Doe", "Robert Taylor"},
			Date:      "January 2023",
			Publisher: "Mobile Development Today",
			Image:     "/placeholder.svg?height=400&width=600&text=Progressive+Web+Apps",
			Type:      "magazine",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J., & Taylor, R. (2023). Progressive Web Apps: Bridging the Gap Between Web and Native. Mobile Development Today, 12(1), 22-31.",
		},
		{
			ID:        "pub-7",
			Title:     "Serverless Architecture: Patterns and Anti-patterns",
			Abstract:  "This paper identifies common patterns and anti-patterns in serverless architecture, based on an analysis of over 100 production serverless applications.",
			Authors:   []string{"John Doe", "David Kim", "Sarah Johnson"},
			Date:      "November 2022",
			Publisher: "Cloud Computing Conference",
			Image:     "/placeholder.svg?height=400&width=600&text=Serverless+Architecture",
			Type:      "conference",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J., Kim, D., & Johnson, S. (2022). Serverless Architecture: Patterns and Anti-patterns. Proceedings of the Cloud Computing Conference, 78-91.",
		},
		{
			ID:        "pub-8",
			Title:     "The Impact of TypeScript on Team Productivity",
			Abstract:  "A study measuring the impact of TypeScript adoption on development team productivity, code quality, and bug rates across 20 software teams.",
			Authors:   []string{"John Doe"},
			Date:      "September 2022",
			Publisher: "Software Engineering Institute",
			Image:     "/placeholder.svg?height=400&width=600&text=TypeScript+Productivity",
			Type:      "whitepaper",
			Link:      "https://example.com/publication",
			Citation:  "Doe, J. (2022). The Impact of TypeScript on Team Productivity. Software Engineering Institute.",
		},
	}
}
