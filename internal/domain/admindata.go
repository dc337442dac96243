package domain

import (
	"context"
	"time"
)

// Announcement is a site-wide banner item managed in the admin CMS.
type Announcement struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body,omitempty"`
	Active bool   `json:"active"`
}

// FeaturedEvent pins an event (by slug) to the homepage carousel.
type FeaturedEvent struct {
	EventSlug string `json:"eventSlug"`
	Image     string `json:"image,omitempty"`
	Active    bool   `json:"active"`
}

// AdminData is a singleton document. Saving replaces both arrays wholesale:
// a partial submission would silently drop unsent items, so callers must
// always send the full document.
type AdminData struct {
	Announcements  []Announcement  `json:"announcements"`
	FeaturedEvents []FeaturedEvent `json:"featuredEvents"`
	UpdatedAt      time.Time       `json:"updated_at,omitzero"`
}

// AdminDataRepository defines storage for the singleton admin document.
type AdminDataRepository interface {
	Get(ctx context.Context) (*AdminData, error)
	// Replace overwrites the whole document.
	Replace(ctx context.Context, data *AdminData) error
}

// AdminDataService defines read/replace for the admin document.
type AdminDataService interface {
	GetAdminData(ctx context.Context) (*AdminData, error)
	SaveAdminData(ctx context.Context, data *AdminData) (*AdminData, error)
}
