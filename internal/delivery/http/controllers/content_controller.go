package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/adapters/sponsorfeed"
	"mainstreet/internal/content"
	"mainstreet/internal/delivery/http/helpers"
)

// ContentController serves the read-only content surface: pages, galleries,
// sponsor tiers, site settings and the external sponsor-logo feed.
type ContentController struct {
	Logger  *slog.Logger
	Content *content.Repository
	Feed    *sponsorfeed.Client
}

func NewContentController(logger *slog.Logger, contentRepo *content.Repository, feed *sponsorfeed.Client) *ContentController {
	return &ContentController{Logger: logger, Content: contentRepo, Feed: feed}
}

// ListPages godoc
// @Summary List navigation pages
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains pages in nav order"
// @Router /pages [get]
func (c *ContentController) ListPages(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.NavPages())
}

// GetPage godoc
// @Summary Get one page by slug
// @Tags content
// @Produce json
// @Param slug path string true "Page slug"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /pages/{slug} [get]
func (c *ContentController) GetPage(w http.ResponseWriter, r *http.Request) {
	page, ok := c.Content.PageBySlug(r.PathValue("slug"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, page)
}

// GetGallery godoc
// @Summary Get one gallery by slug
// @Tags content
// @Produce json
// @Param slug path string true "Gallery slug"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /galleries/{slug} [get]
func (c *ContentController) GetGallery(w http.ResponseWriter, r *http.Request) {
	gallery, ok := c.Content.GalleryBySlug(r.PathValue("slug"))
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, gallery)
}

// ListSponsorTiers godoc
// @Summary List the sponsorship tier catalog
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /sponsor-tiers [get]
func (c *ContentController) ListSponsorTiers(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Content.SponsorTiers())
}

// GetSite godoc
// @Summary Get site-wide settings
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /site [get]
func (c *ContentController) GetSite(w http.ResponseWriter, r *http.Request) {
	site, ok := c.Content.Site()
	if !ok {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, site)
}

// ListSponsorLogos godoc
// @Summary List sponsor logos from the external feed
// @Description Served from the TTL cache; a feed outage degrades to stale or
// empty data, never to an error.
// @Tags content
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Router /sponsor-logos [get]
func (c *ContentController) ListSponsorLogos(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONSuccess(w, http.StatusOK, c.Feed.Logos(r.Context()))
}
