package content

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mainstreet/internal/domain"
)

// Repository is the file-backed content store. It is loaded once at startup
// and queried through pure, synchronous selectors; content files are edited
// out-of-band and never written at runtime.
type Repository struct {
	events    []*domain.Event
	eventsBy  map[string]*domain.Event
	pages     []*domain.Page
	pagesBy   map[string]*domain.Page
	galleries []*domain.Gallery
	gallsBy   map[string]*domain.Gallery
	tiers     []*domain.SponsorTier
	site      *domain.Site
}

// EventsByStatus is the three-way partition of events keyed on stored status.
type EventsByStatus struct {
	Open     []*domain.Event `json:"open"`
	Upcoming []*domain.Event `json:"upcoming"`
	Closed   []*domain.Event `json:"closed"`
}

// Load reads the content tree under dir:
//
//	events/*.json  pages/*.json  galleries/*.json  site.json  sponsors/tiers.json
//
// Files are read in sorted name order; on slug collisions the last-loaded
// record wins. A file that fails to parse is skipped with a warning and never
// aborts the rest of the load. A missing directory yields an empty collection.
func Load(dir string, logger *slog.Logger) (*Repository, error) {
	repo := &Repository{
		eventsBy: make(map[string]*domain.Event),
		pagesBy:  make(map[string]*domain.Page),
		gallsBy:  make(map[string]*domain.Gallery),
	}

	for _, path := range listJSON(filepath.Join(dir, "events")) {
		var ev domain.Event
		if !readJSON(path, &ev, logger) {
			continue
		}
		normalizeEvent(&ev, path)
		if prev, ok := repo.eventsBy[ev.Slug]; ok {
			logger.Warn("duplicate event slug, last file wins", "slug", ev.Slug, "file", filepath.Base(path))
			repo.dropEvent(prev)
		}
		repo.eventsBy[ev.Slug] = &ev
		repo.events = append(repo.events, &ev)
	}

	for _, path := range listJSON(filepath.Join(dir, "pages")) {
		var pg domain.Page
		if !readJSON(path, &pg, logger) {
			continue
		}
		if pg.Slug == "" {
			pg.Slug = Slugify(pg.Title)
		}
		if pg.Slug == "" {
			pg.Slug = fileStem(path)
		}
		if pg.NavOrder == 0 {
			pg.NavOrder = 100
		}
		if err := checkSections(pg.Sections); err != nil {
			logger.Warn("skipping page", "file", filepath.Base(path), "err", err)
			continue
		}
		if prev, ok := repo.pagesBy[pg.Slug]; ok {
			logger.Warn("duplicate page slug, last file wins", "slug", pg.Slug, "file", filepath.Base(path))
			repo.dropPage(prev)
		}
		repo.pagesBy[pg.Slug] = &pg
		repo.pages = append(repo.pages, &pg)
	}

	for _, path := range listJSON(filepath.Join(dir, "galleries")) {
		var g domain.Gallery
		if !readJSON(path, &g, logger) {
			continue
		}
		if g.Slug == "" {
			g.Slug = Slugify(g.Title)
		}
		if g.Slug == "" {
			g.Slug = fileStem(path)
		}
		if g.SourceType == "" {
			g.SourceType = domain.GallerySourceUploaded
		}
		if !domain.ValidGallerySource(g.SourceType) {
			logger.Warn("skipping gallery", "file", filepath.Base(path), "err", domain.ErrUnknownSectionType, "sourceType", g.SourceType)
			continue
		}
		if prev, ok := repo.gallsBy[g.Slug]; ok {
			logger.Warn("duplicate gallery slug, last file wins", "slug", g.Slug, "file", filepath.Base(path))
			repo.dropGallery(prev)
		}
		repo.gallsBy[g.Slug] = &g
		repo.galleries = append(repo.galleries, &g)
	}

	var site domain.Site
	if readJSON(filepath.Join(dir, "site.json"), &site, logger) {
		repo.site = &site
	}

	var tiers []*domain.SponsorTier
	if readJSON(filepath.Join(dir, "sponsors", "tiers.json"), &tiers, logger) {
		sort.SliceStable(tiers, func(i, j int) bool { return tiers[i].Order < tiers[j].Order })
		repo.tiers = tiers
	}

	return repo, nil
}

// normalizeEvent fills defaults: slug from title or filename, id from slug,
// upcoming status when unset, other event type when unset.
func normalizeEvent(ev *domain.Event, path string) {
	if ev.Slug == "" {
		ev.Slug = Slugify(ev.Title)
	}
	if ev.Slug == "" {
		ev.Slug = fileStem(path)
	}
	if ev.ID == "" {
		ev.ID = ev.Slug
	}
	if ev.Status == "" {
		ev.Status = domain.EventStatusUpcoming
	}
	if ev.EventType == "" {
		ev.EventType = domain.EventTypeOther
	}
	ev.Source = domain.EventSourceStatic
}

// checkSections rejects pages carrying an unknown section type so a typo in a
// content file fails loudly at load time instead of rendering nothing.
func checkSections(sections []domain.Section) error {
	for _, s := range sections {
		if !domain.ValidSectionType(s.Type) {
			return fmt.Errorf("%w: %q", domain.ErrUnknownSectionType, s.Type)
		}
	}
	return nil
}

func listJSON(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out
}

func readJSON(path string, dest any, logger *slog.Logger) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("unreadable content file", "file", filepath.Base(path), "err", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn("malformed content file", "file", filepath.Base(path), "err", err)
		return false
	}
	return true
}

func fileStem(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}

func (r *Repository) dropEvent(ev *domain.Event) {
	for i, e := range r.events {
		if e == ev {
			r.events = append(r.events[:i], r.events[i+1:]...)
			return
		}
	}
}

func (r *Repository) dropPage(pg *domain.Page) {
	for i, p := range r.pages {
		if p == pg {
			r.pages = append(r.pages[:i], r.pages[i+1:]...)
			return
		}
	}
}

func (r *Repository) dropGallery(g *domain.Gallery) {
	for i, gg := range r.galleries {
		if gg == g {
			r.galleries = append(r.galleries[:i], r.galleries[i+1:]...)
			return
		}
	}
}

// Events returns all content events in load order.
func (r *Repository) Events() []*domain.Event {
	return append([]*domain.Event(nil), r.events...)
}

// EventBySlug returns the event with the given slug; a miss is a normal
// outcome reported by ok, not an error.
func (r *Repository) EventBySlug(slug string) (*domain.Event, bool) {
	ev, ok := r.eventsBy[slug]
	return ev, ok
}

// PageBySlug returns the page with the given slug.
func (r *Repository) PageBySlug(slug string) (*domain.Page, bool) {
	pg, ok := r.pagesBy[slug]
	return pg, ok
}

// GalleryBySlug returns the gallery with the given slug.
func (r *Repository) GalleryBySlug(slug string) (*domain.Gallery, bool) {
	g, ok := r.gallsBy[slug]
	return g, ok
}

// NavPages returns pages with showInNav set, sorted ascending by navOrder.
func (r *Repository) NavPages() []*domain.Page {
	var out []*domain.Page
	for _, p := range r.pages {
		if p.ShowInNav {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].NavOrder < out[j].NavOrder })
	return out
}

// EventsByType returns events of the given type in load order.
func (r *Repository) EventsByType(t domain.EventType) []*domain.Event {
	var out []*domain.Event
	for _, e := range r.events {
		if e.EventType == t {
			out = append(out, e)
		}
	}
	return out
}

// FeaturedEvents returns events with the featured flag set.
func (r *Repository) FeaturedEvents() []*domain.Event {
	var out []*domain.Event
	for _, e := range r.events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// GroupEventsByStatus partitions all events on their stored status. Every
// event lands in exactly one bucket; the buckets union back to the full set.
func (r *Repository) GroupEventsByStatus() EventsByStatus {
	return GroupEventsByStatus(r.events)
}

// GroupEventsByStatus partitions events on stored (not effective) status.
func GroupEventsByStatus(events []*domain.Event) EventsByStatus {
	var g EventsByStatus
	for _, e := range events {
		switch e.Status {
		case domain.EventStatusOpen:
			g.Open = append(g.Open, e)
		case domain.EventStatusClosed:
			g.Closed = append(g.Closed, e)
		default:
			g.Upcoming = append(g.Upcoming, e)
		}
	}
	return g
}

// SponsorTiers returns the tier catalog sorted ascending by display order.
func (r *Repository) SponsorTiers() []*domain.SponsorTier {
	return append([]*domain.SponsorTier(nil), r.tiers...)
}

// Site returns the site settings document, or ok=false when site.json was
// absent or unparsable.
func (r *Repository) Site() (*domain.Site, bool) {
	if r.site == nil {
		return nil, false
	}
	return r.site, true
}
