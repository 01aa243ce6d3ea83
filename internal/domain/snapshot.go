package domain

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the full serializable state of the content store. It is the
// unit of persistence: every mutation rewrites the whole snapshot into the
// durable slot, and import/export operate on nothing else.
type Snapshot struct {
	IsEditMode   bool             `json:"isEditMode"`
	Navigation   []NavigationItem `json:"navigation"`
	Pages        []Page           `json:"pages"`
	PageContent  PageContent      `json:"pageContent"`
	Awards       []Award          `json:"awards"`
	Testimonials []Testimonial    `json:"testimonials"`
	Publications []Publication    `json:"publications"`
	Resources    ResourceLibrary  `json:"resources"`
	BlogPosts    []BlogPost       `json:"blogPosts"`
}

// requiredKeys are the top-level keys an imported document must carry.
// There is no schema version field in the wire format, so this presence
// check is the only structural defense against foreign JSON.
var requiredKeys = []string{
	"isEditMode", "navigation", "pages", "pageContent",
	"awards", "testimonials", "publications", "resources", "blogPosts",
}

// ParseSnapshot decodes a snapshot document, verifying the required
// top-level keys before committing to the struct decode.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	for _, key := range requiredKeys {
		if _, ok := raw[key]; !ok {
			return nil, fmt.Errorf("parse snapshot: missing key %q", key)
		}
	}
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	if snap.PageContent == nil {
		snap.PageContent = PageContent{}
	}
	return &snap, nil
}

// Encode serializes the snapshot to its wire form.
func (s *Snapshot) Encode() ([]byte, error) {
	return json.Marshal(s)
}

// Clone returns a deep copy so callers can never alias store-owned state.
func (s *Snapshot) Clone() *Snapshot {
	out := &Snapshot{
		IsEditMode:   s.IsEditMode,
		Navigation:   append([]NavigationItem(nil), s.Navigation...),
		Pages:        append([]Page(nil), s.Pages...),
		PageContent:  make(PageContent, len(s.PageContent)),
		Awards:       append([]Award(nil), s.Awards...),
		Testimonials: append([]Testimonial(nil), s.Testimonials...),
		Publications: clonePublications(s.Publications),
		Resources: ResourceLibrary{
			Downloads: append([]Resource(nil), s.Resources.Downloads...),
			Videos:    append([]VideoResource(nil), s.Resources.Videos...),
		},
		BlogPosts: cloneBlogPosts(s.BlogPosts),
	}
	for pageID, sections := range s.PageContent {
		out.PageContent[pageID] = make(map[string][]ContentItem, len(sections))
		for sectionID, items := range sections {
			out.PageContent[pageID][sectionID] = CloneContentItems(items)
		}
	}
	return out
}

// CloneContentItems deep-copies a section sequence, preserving order.
// The result is never nil so a stored empty override stays distinguishable
// from an absent key after JSON round-trips.
func CloneContentItems(items []ContentItem) []ContentItem {
	out := make([]ContentItem, len(items))
	for i, item := range items {
		out[i] = item
		if item.Metadata != nil {
			out[i].Metadata = make(map[string]string, len(item.Metadata))
			for k, v := range item.Metadata {
				out[i].Metadata[k] = v
			}
		}
	}
	return out
}

func clonePublications(pubs []Publication) []Publication {
	out := append([]Publication(nil), pubs...)
	for i := range out {
		out[i].Authors = append([]string(nil), pubs[i].Authors...)
	}
	return out
}

func cloneBlogPosts(posts []BlogPost) []BlogPost {
	out := append([]BlogPost(nil), posts...)
	for i := range out {
		out[i].Tags = append([]string(nil), posts[i].Tags...)
	}
	return out
}

// SnapshotSlot is the single durable key-value location backing the store.
// Load reports ok=false when the slot has never been written.
type SnapshotSlot interface {
	Load() (value string, ok bool, err error)
	Save(value string) error
	Clear() error
}
