package domain

// Read-mostly collections shipped as seed data. They are listed and
// filtered by the frontend but have no edit path in the admin surface.

type Award struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization"`
	Date         string `json:"date"`
	Description  string `json:"description"`
	Image        string `json:"image"`
	Category     string `json:"category"`
}

type Testimonial struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company"`
	Image    string `json:"image"`
	Quote    string `json:"quote"`
	Category string `json:"category"`
}

type Publication struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Abstract  string   `json:"abstract"`
	Authors   []string `json:"authors"`
	Date      string   `json:"date"`
	Publisher string   `json:"publisher"`
	Image     string   `json:"image"`
	Type      string   `json:"type"` // journal, magazine, conference, whitepaper
	Link      string   `json:"link"`
	Citation  string   `json:"citation"`
}

type Resource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Type        string `json:"type"`
	DownloadURL string `json:"downloadUrl,omitempty"`
	FileType    string `json:"fileType,omitempty"`
	FileSize    string `json:"fileSize,omitempty"`
	GithubURL   string `json:"githubUrl,omitempty"`
	DemoURL     string `json:"demoUrl,omitempty"`
}

type VideoResource struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Duration    string `json:"duration"`
	URL         string `json:"url"`
}

// ResourceLibrary groups downloadable resources and videos, matching the
// shape the resources page consumes.
type ResourceLibrary struct {
	Downloads []Resource      `json:"downloads"`
	Videos    []VideoResource `json:"videos"`
}

type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
	Title  string `json:"title"`
}

type BlogPost struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Image    string   `json:"image"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Author   Author   `json:"author"`
}
