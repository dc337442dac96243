package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mainstreet/internal/adapters/sponsorfeed"
	"mainstreet/internal/cache"
	"mainstreet/internal/content"
	"mainstreet/internal/domain"
)

func loadContentFixture(t *testing.T, files map[string]string) *content.Repository {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	repo, err := content.Load(dir, testLogger)
	require.NoError(t, err)
	return repo
}

func TestContentController_Pages(t *testing.T) {
	repo := loadContentFixture(t, map[string]string{
		"pages/about.json":   `{"slug":"about","title":"About Us","navOrder":2,"showInNav":true}`,
		"pages/history.json": `{"slug":"history","title":"Our History","navOrder":1,"showInNav":true}`,
		"pages/hidden.json":  `{"slug":"hidden","title":"Hidden","showInNav":false}`,
	})
	ctrl := NewContentController(testLogger, repo, nil)

	t.Run("lists nav pages in nav order", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pages", nil)
		rec := httptest.NewRecorder()

		ctrl.ListPages(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data, apiErr := decodeEnvelope(t, rec.Body)
		require.Nil(t, apiErr)
		var pages []*domain.Page
		require.NoError(t, json.Unmarshal(data, &pages))
		require.Len(t, pages, 2)
		assert.Equal(t, "history", pages[0].Slug)
		assert.Equal(t, "about", pages[1].Slug)
	})

	t.Run("gets one page by slug", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pages/hidden", nil)
		req.SetPathValue("slug", "hidden")
		rec := httptest.NewRecorder()

		ctrl.GetPage(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		data, _ := decodeEnvelope(t, rec.Body)
		var page domain.Page
		require.NoError(t, json.Unmarshal(data, &page))
		assert.Equal(t, "Hidden", page.Title)
	})

	t.Run("missing page returns 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/pages/nope", nil)
		req.SetPathValue("slug", "nope")
		rec := httptest.NewRecorder()

		ctrl.GetPage(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContentController_GetGallery(t *testing.T) {
	repo := loadContentFixture(t, map[string]string{
		"galleries/parade-2025.json": `{"slug":"parade-2025","title":"Parade 2025","sourceType":"uploaded","photos":[{"image":"/uploads/p1.jpg"}]}`,
	})
	ctrl := NewContentController(testLogger, repo, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/galleries/parade-2025", nil)
	req.SetPathValue("slug", "parade-2025")
	rec := httptest.NewRecorder()

	ctrl.GetGallery(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec.Body)
	var g domain.Gallery
	require.NoError(t, json.Unmarshal(data, &g))
	assert.Equal(t, "Parade 2025", g.Title)
	require.Len(t, g.Photos, 1)
}

func TestContentController_GetSite(t *testing.T) {
	t.Run("returns site settings", func(t *testing.T) {
		repo := loadContentFixture(t, map[string]string{
			"site.json": `{"name":"Main Street Alliance","email":"hello@example.org"}`,
		})
		ctrl := NewContentController(testLogger, repo, nil)

		rec := httptest.NewRecorder()
		ctrl.GetSite(rec, httptest.NewRequest(http.MethodGet, "/api/site", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		data, _ := decodeEnvelope(t, rec.Body)
		var site domain.Site
		require.NoError(t, json.Unmarshal(data, &site))
		assert.Equal(t, "Main Street Alliance", site.Name)
	})

	t.Run("no site file returns 404", func(t *testing.T) {
		repo := loadContentFixture(t, map[string]string{})
		ctrl := NewContentController(testLogger, repo, nil)

		rec := httptest.NewRecorder()
		ctrl.GetSite(rec, httptest.NewRequest(http.MethodGet, "/api/site", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestContentController_ListSponsorTiers(t *testing.T) {
	repo := loadContentFixture(t, map[string]string{
		"sponsors/tiers.json": `[{"id":"gold","name":"Gold","order":2},{"id":"platinum","name":"Platinum","order":1}]`,
	})
	ctrl := NewContentController(testLogger, repo, nil)

	rec := httptest.NewRecorder()
	ctrl.ListSponsorTiers(rec, httptest.NewRequest(http.MethodGet, "/api/sponsor-tiers", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec.Body)
	var tiers []*domain.SponsorTier
	require.NoError(t, json.Unmarshal(data, &tiers))
	require.Len(t, tiers, 2)
	assert.Equal(t, "Platinum", tiers[0].Name)
}

func TestContentController_ListSponsorLogos(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"logos":[{"name":"Acme Hardware","imageUrl":"https://cdn.example/acme.png"}]}`))
	}))
	defer upstream.Close()

	feedCache := cache.New(cache.NewMemoryStore(), testLogger)
	feed := sponsorfeed.New(upstream.URL, time.Minute, feedCache, testLogger)
	repo := loadContentFixture(t, map[string]string{})
	ctrl := NewContentController(testLogger, repo, feed)

	rec := httptest.NewRecorder()
	ctrl.ListSponsorLogos(rec, httptest.NewRequest(http.MethodGet, "/api/sponsor-logos", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec.Body)
	var logos []sponsorfeed.Logo
	require.NoError(t, json.Unmarshal(data, &logos))
	require.Len(t, logos, 1)
	assert.Equal(t, "Acme Hardware", logos[0].Name)
}
