package seed

import "portfolio/internal/domain"

// Awards returns the default awards collection.
func Awards() []domain.Award {
	return []domain.Award{
		{
			ID:           "award-1",
			Title:        "Outstanding Technical Achievement",
			Organization: "Tech Innovation Awards",
			Date:         "November 2023",
			Description:  "Recognized for developing an innovative cloud architecture solution that reduced infrastructure costs by 40% while improving system reliability and performance.",
			Image:        "/placeholder.svg?height=200&width=200&text=Tech+Innovation",
			Category:     "professional",
		},
		{
			ID:           "award-2",
			Title:        "Best Open Source Contribution",
			Organization: "Open Source Summit",
			Date:         "September 2023",
			Description:  "Awarded for significant contributions to the React ecosystem, including the development of a widely-adopted state management library used by thousands of developers worldwide.",
			Image:        "/placeholder.svg?height=200&width=200&text=Open+Source",
			Category:     "community",
		},
		{
			ID:           "award-3",
			Title:        "Excellence in Web Development",
			Organization: "WebDev Conference",
			Date:         "July 2023",
			Description:  "Recognized for pioneering work in progressive web applications and advancing the state of the art in web development practices.",
			Image:        "/placeholder.svg?height=200&width=200&text=WebDev",
			Category:     "professional",
		},
		{
			ID:           "award-4",
			Title:        "Distinguished Speaker",
			Organization: "TechTalks Global",
			Date:         "May 2023",
			Description:  "Awarded for exceptional presentations on software architecture and design patterns that received the highest attendee ratings at the conference.",
			Image:        "/placeholder.svg?height=200&width=200&text=TechTalks",
			Category:     "speaking",
		},
		{
			ID:           "award-5",
			Title:        "Technical Mentor of the Year",
			Organization: "Dev Community Alliance",
			Date:         "March 2023",
			Description:  "Recognized for outstanding mentorship of junior developers and significant contributions to developer education and career advancement.",
			Image:        "/placeholder.svg?height=200&width=200&text=Mentor",
			Category:     "community",
		},
		{
			ID:           "award-6",
			Title:        "Innovation in AI Applications",
			Organization: "AI Summit",
			Date:         "December 2022",
			Description:  "Awarded for developing a novel approach to integrating machine learning capabilities into web applications that significantly improved user experiences.",
			Image:        "/placeholder.svg?height=200&width=200&text=AI+Summit",
			Category:     "professional",
		},
		{
			ID:           "award-7",
			Title:        "Outstanding Research Paper",
			Organization: "International Conference on Software Engineering",
			Date:         "October 2022",
			Description:  "Recognized for the research paper 'Microservices vs. Monoliths: A Quantitative Analysis' which provided valuable insights for the software architecture community.",
			Image:        "/placeholder.svg?height=200&width=200&text=ICSE",
			Category:     "academic",
		},
		{
			ID:           "award-8",
			Title:        "Community Leadership Award",
			Organization: "Tech Community Foundation",
			Date:         "August 2022",
			Description:  "Awarded for organizing and leading a series of workshops and meetups that helped hundreds of developers advance their skills and careers.",
			Image:        "/placeholder.svg?height=200&width=200&text=Community",
			Category:     "community",
		},
	}
}
