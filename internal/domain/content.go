package domain

// SectionType discriminates page content sections. The set is closed; the
// renderer dispatch must handle every member and reject anything else.
type SectionType string

const (
	SectionTypeHero    SectionType = "hero"
	SectionTypeText    SectionType = "text"
	SectionTypeImage   SectionType = "image"
	SectionTypeGallery SectionType = "gallery"
	SectionTypeEvents  SectionType = "events"
	SectionTypeCTA     SectionType = "cta"
)

// Section is one block of a content page.
type Section struct {
	Type     SectionType `json:"type"`
	Heading  string      `json:"heading,omitempty"`
	Body     string      `json:"body,omitempty"`
	Image    string      `json:"image,omitempty"`
	LinkURL  string      `json:"linkUrl,omitempty"`
	LinkText string      `json:"linkText,omitempty"`
	Ref      string      `json:"ref,omitempty"` // gallery slug or event filter, by section type
}

// ValidSectionType reports whether t is a known section type. Loaders call
// this so an unknown type surfaces as ErrUnknownSectionType instead of a
// silently empty render.
func ValidSectionType(t SectionType) bool {
	switch t {
	case SectionTypeHero, SectionTypeText, SectionTypeImage, SectionTypeGallery, SectionTypeEvents, SectionTypeCTA:
		return true
	}
	return false
}

// Page is a static content page.
type Page struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	NavOrder  int       `json:"navOrder"`
	ShowInNav bool      `json:"showInNav"`
	Sections  []Section `json:"sections,omitempty"`
}

// GallerySource tells where a gallery's photos live.
type GallerySource string

const (
	GallerySourceUploaded GallerySource = "uploaded"
	GallerySourceDrive    GallerySource = "drive"
	GallerySourceFacebook GallerySource = "facebook"
)

// ValidGallerySource reports whether s is a known gallery source type.
func ValidGallerySource(s GallerySource) bool {
	switch s {
	case GallerySourceUploaded, GallerySourceDrive, GallerySourceFacebook:
		return true
	}
	return false
}

// GalleryPhoto is one photo in an uploaded gallery.
type GalleryPhoto struct {
	Image   string `json:"image"`
	Caption string `json:"caption,omitempty"`
}

// Gallery is a photo collection, either uploaded directly or linked out to an
// external source.
type Gallery struct {
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	SourceType  GallerySource  `json:"sourceType"`
	SourceURL   string         `json:"sourceUrl,omitempty"`
	Featured    bool           `json:"featured"`
	CoverImage  string         `json:"coverImage,omitempty"`
	Photos      []GalleryPhoto `json:"photos,omitempty"`
}

// Site holds organization-wide settings from site.json.
type Site struct {
	Name        string            `json:"name"`
	Tagline     string            `json:"tagline,omitempty"`
	Email       string            `json:"email,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Address     string            `json:"address,omitempty"`
	SocialLinks map[string]string `json:"socialLinks,omitempty"`
}
