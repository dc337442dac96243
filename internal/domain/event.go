package domain

import (
	"context"
	"time"
)

// EventStatus is the author-set lifecycle status stored on an event.
type EventStatus string

const (
	EventStatusOpen     EventStatus = "open"
	EventStatusUpcoming EventStatus = "upcoming"
	EventStatusClosed   EventStatus = "closed"
)

// ValidEventStatus reports whether s is one of the stored statuses.
func ValidEventStatus(s EventStatus) bool {
	switch s {
	case EventStatusOpen, EventStatusUpcoming, EventStatusClosed:
		return true
	}
	return false
}

// EventType categorizes an event for filtering and vendor intake.
type EventType string

const (
	EventTypeCarCruise    EventType = "car-cruise"
	EventTypeStreetMarket EventType = "street-market"
	EventTypeNightMarket  EventType = "night-market"
	EventTypeOther        EventType = "other"
)

// EventTypes lists all valid event types.
var EventTypes = []EventType{EventTypeCarCruise, EventTypeStreetMarket, EventTypeNightMarket, EventTypeOther}

// ValidEventType reports whether t is one of the enumerated event types.
func ValidEventType(t EventType) bool {
	for _, v := range EventTypes {
		if t == v {
			return true
		}
	}
	return false
}

// EventSource marks where an event record lives. Static events come from
// content files and are read-only at runtime; dynamic events live in the
// database and are managed through the admin CRUD surface.
type EventSource string

const (
	EventSourceStatic  EventSource = "static"
	EventSourceDynamic EventSource = "dynamic"
)

// EventLinks holds the registration links for an event.
type EventLinks struct {
	VendorURL   string `json:"vendorUrl,omitempty"`
	SponsorURL  string `json:"sponsorUrl,omitempty"`
	AttendeeURL string `json:"attendeeUrl,omitempty"`
}

// Event is the single event entity for both content-file and database-backed
// events; Source tells them apart. The nested Links block is the current link
// representation; the flat *URL fields are the legacy one and survive only so
// older content files keep working.
type Event struct {
	ID          string      `json:"id"`
	Slug        string      `json:"slug"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	StartDate   time.Time   `json:"startDate"`
	EndDate     *time.Time  `json:"endDate,omitempty"`
	TimeText    string      `json:"timeText,omitempty"`
	Location    string      `json:"location,omitempty"`
	Status      EventStatus `json:"status"`
	EventType   EventType   `json:"eventType"`
	Cap         *int        `json:"cap,omitempty"`
	HeroImage   string      `json:"heroImage,omitempty"`
	GallerySlug string      `json:"gallerySlug,omitempty"`
	Featured    bool        `json:"featured"`
	Links       *EventLinks `json:"links,omitempty"`

	// Legacy flat link fields; superseded by Links when both are present.
	VendorURL   string `json:"vendorUrl,omitempty"`
	SponsorURL  string `json:"sponsorUrl,omitempty"`
	AttendeeURL string `json:"attendeeUrl,omitempty"`

	Source    EventSource `json:"source"`
	CreatedAt time.Time   `json:"created_at,omitzero"`
	UpdatedAt time.Time   `json:"updated_at,omitzero"`
}

// dateOnly truncates t to day granularity in its own location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// lastDay returns the event's final calendar day: end date when present,
// otherwise the start date.
func (e *Event) lastDay() time.Time {
	if e.EndDate != nil {
		return dateOnly(*e.EndDate)
	}
	return dateOnly(e.StartDate)
}

// EffectiveStatus is the status a viewer should see: the stored status, except
// that an event whose last day is behind now is closed regardless of what the
// author left in the record. Already-closed events stay closed. The override
// never reopens anything.
func (e *Event) EffectiveStatus(now time.Time) EventStatus {
	if e.Status == EventStatusClosed {
		return EventStatusClosed
	}
	if e.lastDay().Before(dateOnly(now)) {
		return EventStatusClosed
	}
	return e.Status
}

// URLs merges the nested link block over the legacy flat fields. A non-empty
// nested value wins per field; otherwise the flat value is kept.
func (e *Event) URLs() EventLinks {
	out := EventLinks{
		VendorURL:   e.VendorURL,
		SponsorURL:  e.SponsorURL,
		AttendeeURL: e.AttendeeURL,
	}
	if e.Links == nil {
		return out
	}
	if e.Links.VendorURL != "" {
		out.VendorURL = e.Links.VendorURL
	}
	if e.Links.SponsorURL != "" {
		out.SponsorURL = e.Links.SponsorURL
	}
	if e.Links.AttendeeURL != "" {
		out.AttendeeURL = e.Links.AttendeeURL
	}
	return out
}

// ShowRegistrationButtons reports whether registration actions may be
// rendered: the effective status must be open and at least one merged link
// must resolve to a non-empty string.
func (e *Event) ShowRegistrationButtons(now time.Time) bool {
	if e.EffectiveStatus(now) != EventStatusOpen {
		return false
	}
	links := e.URLs()
	return links.VendorURL != "" || links.SponsorURL != "" || links.AttendeeURL != ""
}

// OccursOn reports whether the event is on the calendar day of d, inclusive of
// both endpoints and ignoring time of day.
func (e *Event) OccursOn(d time.Time) bool {
	day := dateOnly(d)
	if day.Before(dateOnly(e.StartDate)) {
		return false
	}
	return !day.After(e.lastDay())
}

// EventUpdate carries a partial update for a dynamic event. Nil fields are
// left unchanged.
type EventUpdate struct {
	Title       *string
	Description *string
	StartDate   *time.Time
	EndDate     *time.Time
	TimeText    *string
	Location    *string
	Status      *EventStatus
	EventType   *EventType
	Cap         *int
	HeroImage   *string
	GallerySlug *string
	Featured    *bool
	Links       *EventLinks
}

// EventRepository defines storage for dynamic (database-backed) events.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the event operations exposed over HTTP.
type EventService interface {
	// ListEvents returns static content events followed by dynamic events.
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEventBySlug(ctx context.Context, slug string) (*Event, error)
	CreateEvent(ctx context.Context, event *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id string, upd EventUpdate) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
