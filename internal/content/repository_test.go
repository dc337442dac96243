package content

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"mainstreet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// writeContent lays out a content tree in dir from relative path -> JSON body.
func writeContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for rel, body := range files {
		path := filepath.Join(dir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
}

func TestLoad_EventNormalization(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"events/fall-fest.json": `{"title":"Fall Fest","startDate":"2025-10-04T00:00:00Z","featured":true}`,
		"events/cruise.json":    `{"title":"Cruise Night","slug":"summer-cruise","startDate":"2025-07-01T00:00:00Z","status":"open","eventType":"car-cruise"}`,
		"events/untitled.json":  `{"startDate":"2025-08-01T00:00:00Z"}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)
	require.Len(t, repo.Events(), 3)

	ev, ok := repo.EventBySlug("fall-fest")
	require.True(t, ok, "slug derived from title")
	assert.Equal(t, domain.EventStatusUpcoming, ev.Status, "status defaults to upcoming")
	assert.Equal(t, domain.EventTypeOther, ev.EventType, "event type defaults to other")
	assert.Equal(t, domain.EventSourceStatic, ev.Source)
	assert.True(t, ev.Featured)

	_, ok = repo.EventBySlug("summer-cruise")
	assert.True(t, ok, "explicit slug wins over title")

	_, ok = repo.EventBySlug("untitled")
	assert.True(t, ok, "slug falls back to filename stem")
}

func TestLoad_MalformedFileIsSkipped(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"events/good.json":   `{"title":"Good","startDate":"2025-07-01T00:00:00Z"}`,
		"events/broken.json": `{"title": "Broken",`,
		"site.json":          `not json at all`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err, "a bad file must not abort the load")
	assert.Len(t, repo.Events(), 1)
	_, ok := repo.Site()
	assert.False(t, ok)
}

func TestLoad_DuplicateSlugLastWins(t *testing.T) {
	dir := t.TempDir()
	// Files load in sorted name order, so b.json wins the slug.
	writeContent(t, dir, map[string]string{
		"events/a.json": `{"title":"Cruise Night","startDate":"2025-07-01T00:00:00Z","location":"First"}`,
		"events/b.json": `{"title":"Cruise Night","startDate":"2025-07-01T00:00:00Z","location":"Second"}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)
	require.Len(t, repo.Events(), 1)
	ev, ok := repo.EventBySlug("cruise-night")
	require.True(t, ok)
	assert.Equal(t, "Second", ev.Location)
}

func TestLoad_MissingDirsYieldEmptyCollections(t *testing.T) {
	repo, err := Load(t.TempDir(), testLogger)
	require.NoError(t, err)
	assert.Empty(t, repo.Events())
	assert.Empty(t, repo.NavPages())
	assert.Empty(t, repo.SponsorTiers())
}

func TestNavPages(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"pages/about.json":   `{"title":"About Us","showInNav":true,"navOrder":20}`,
		"pages/events.json":  `{"title":"Events","showInNav":true,"navOrder":10}`,
		"pages/legal.json":   `{"title":"Legal","showInNav":false,"navOrder":1}`,
		"pages/contact.json": `{"title":"Contact","showInNav":true}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)

	nav := repo.NavPages()
	require.Len(t, nav, 3, "hidden pages stay out of nav")
	assert.Equal(t, "events", nav[0].Slug)
	assert.Equal(t, "about-us", nav[1].Slug)
	assert.Equal(t, "contact", nav[2].Slug, "missing navOrder defaults to 100 and sorts last")
}

func TestLoad_UnknownSectionTypeRejectsPage(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"pages/ok.json":  `{"title":"OK","showInNav":true,"sections":[{"type":"hero","heading":"Hi"}]}`,
		"pages/bad.json": `{"title":"Bad","showInNav":true,"sections":[{"type":"carousel3000"}]}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)
	_, ok := repo.PageBySlug("ok")
	assert.True(t, ok)
	_, ok = repo.PageBySlug("bad")
	assert.False(t, ok, "unknown section types are an explicit load failure")
}

func TestGroupEventsByStatus_Partition(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"events/a.json": `{"title":"A","startDate":"2025-07-01T00:00:00Z","status":"open"}`,
		"events/b.json": `{"title":"B","startDate":"2025-08-01T00:00:00Z","status":"upcoming"}`,
		"events/c.json": `{"title":"C","startDate":"2025-05-01T00:00:00Z","status":"closed"}`,
		"events/d.json": `{"title":"D","startDate":"2025-09-01T00:00:00Z"}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)

	groups := repo.GroupEventsByStatus()
	total := len(groups.Open) + len(groups.Upcoming) + len(groups.Closed)
	assert.Equal(t, len(repo.Events()), total, "buckets union to the input set")

	seen := make(map[string]int)
	for _, e := range groups.Open {
		seen[e.Slug]++
	}
	for _, e := range groups.Upcoming {
		seen[e.Slug]++
	}
	for _, e := range groups.Closed {
		seen[e.Slug]++
	}
	for slug, n := range seen {
		assert.Equal(t, 1, n, "event %s appears in exactly one bucket", slug)
	}
	assert.Len(t, groups.Open, 1)
	assert.Len(t, groups.Upcoming, 2, "defaulted status counts as upcoming")
	assert.Len(t, groups.Closed, 1)
}

func TestEventsByTypeAndFeatured(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"events/a.json": `{"title":"A","startDate":"2025-07-01T00:00:00Z","eventType":"car-cruise","featured":true}`,
		"events/b.json": `{"title":"B","startDate":"2025-08-01T00:00:00Z","eventType":"street-market"}`,
		"events/c.json": `{"title":"C","startDate":"2025-09-01T00:00:00Z","eventType":"car-cruise"}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)

	cruises := repo.EventsByType(domain.EventTypeCarCruise)
	require.Len(t, cruises, 2)

	featured := repo.FeaturedEvents()
	require.Len(t, featured, 1)
	assert.Equal(t, "a", featured[0].Slug)
}

func TestLoad_SiteAndTiers(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"site.json": `{"name":"Main Street Alliance","tagline":"Keep it local"}`,
		"sponsors/tiers.json": `[
			{"id":"gold","name":"Gold","price":"$1000","benefits":["logo"],"squareUrl":"https://sq/g","order":2},
			{"id":"presenting","name":"Presenting","price":"$5000","benefits":["banner","logo"],"squareUrl":"https://sq/p","order":1}
		]`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)

	site, ok := repo.Site()
	require.True(t, ok)
	assert.Equal(t, "Main Street Alliance", site.Name)

	tiers := repo.SponsorTiers()
	require.Len(t, tiers, 2)
	assert.Equal(t, "presenting", tiers[0].ID, "tiers sort ascending by order")
}

func TestLoad_GalleryDefaultsAndLinks(t *testing.T) {
	dir := t.TempDir()
	writeContent(t, dir, map[string]string{
		"galleries/cruise.json": `{"title":"Cruise Photos","featured":true,"photos":[{"image":"/img/1.jpg","caption":"line-up"}]}`,
		"galleries/fb.json":     `{"title":"FB Album","sourceType":"facebook","sourceUrl":"https://facebook.com/album"}`,
		"galleries/bad.json":    `{"title":"Bad","sourceType":"instagram"}`,
	})

	repo, err := Load(dir, testLogger)
	require.NoError(t, err)

	g, ok := repo.GalleryBySlug("cruise-photos")
	require.True(t, ok)
	assert.Equal(t, domain.GallerySourceUploaded, g.SourceType, "sourceType defaults to uploaded")
	require.Len(t, g.Photos, 1)

	_, ok = repo.GalleryBySlug("fb-album")
	assert.True(t, ok)

	_, ok = repo.GalleryBySlug("bad")
	assert.False(t, ok, "unknown gallery source is rejected at load")
}
