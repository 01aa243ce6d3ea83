package domain

// Page is a user-authored custom page. Slug always carries a leading slash.
type Page struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

// PageDraft is the caller-supplied part of a new page; the store assigns
// the id and normalizes the slug.
type PageDraft struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Content     string `json:"content"`
	IsPublished bool   `json:"isPublished"`
}

type ContentType string

const (
	ContentTypeHeading   ContentType = "heading"
	ContentTypeParagraph ContentType = "paragraph"
	ContentTypeList      ContentType = "list"
	ContentTypeImage     ContentType = "image"
	ContentTypeText      ContentType = "text"
	ContentTypeCustom    ContentType = "custom"
)

// ContentItem is the atomic editable unit of a page section.
// Content holds display text for structured types, a URL for images,
// and raw markup for custom items. IDs only need to be unique within
// their section; editors compose them as pageID-sectionID-timestamp.
type ContentItem struct {
	ID       string            `json:"id"`
	Type     ContentType       `json:"type"`
	Content  string            `json:"content"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// PageContent maps pageID → sectionID → ordered content items.
// Slice order is render order and must survive every mutation.
type PageContent map[string]map[string][]ContentItem
