package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
)

// CreateSponsorRequest is the request body for POST /api/admin/sponsors.
type CreateSponsorRequest struct {
	Name            string              `json:"name"`
	Level           domain.SponsorLevel `json:"level"`
	LogoURL         string              `json:"logoUrl"`
	WebsiteURL      string              `json:"websiteUrl"`
	EventType       domain.EventType    `json:"eventType"`
	SponsorImageURL string              `json:"sponsorImageUrl"`
}

// UpdateSponsorRequest is the request body for PATCH /api/admin/sponsors/{id}.
type UpdateSponsorRequest struct {
	Name            *string              `json:"name"`
	Level           *domain.SponsorLevel `json:"level"`
	LogoURL         *string              `json:"logoUrl"`
	WebsiteURL      *string              `json:"websiteUrl"`
	EventType       *domain.EventType    `json:"eventType"`
	SponsorImageURL *string              `json:"sponsorImageUrl"`
}

type SponsorController struct {
	Logger  *slog.Logger
	Service domain.SponsorService
}

func NewSponsorController(logger *slog.Logger, svc domain.SponsorService) *SponsorController {
	return &SponsorController{Logger: logger, Service: svc}
}

// ListSponsors godoc
// @Summary List sponsors
// @Tags sponsors
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains an array of sponsors"
// @Router /sponsors [get]
func (c *SponsorController) ListSponsors(w http.ResponseWriter, r *http.Request) {
	sponsors, err := c.Service.ListSponsors(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sponsors)
}

// CreateSponsor godoc
// @Summary Create a sponsor
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param sponsor body CreateSponsorRequest true "Sponsor fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/sponsors [post]
func (c *SponsorController) CreateSponsor(w http.ResponseWriter, r *http.Request) {
	var req CreateSponsorRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	sp, err := c.Service.CreateSponsor(r.Context(), &domain.Sponsor{
		Name:            req.Name,
		Level:           req.Level,
		LogoURL:         req.LogoURL,
		WebsiteURL:      req.WebsiteURL,
		EventType:       req.EventType,
		SponsorImageURL: req.SponsorImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sp)
}

// UpdateSponsor godoc
// @Summary Update a sponsor
// @Description Partial update; omitted fields are left unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sponsor id"
// @Param sponsor body UpdateSponsorRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/sponsors/{id} [patch]
func (c *SponsorController) UpdateSponsor(w http.ResponseWriter, r *http.Request) {
	var req UpdateSponsorRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	sp, err := c.Service.UpdateSponsor(r.Context(), r.PathValue("id"), domain.SponsorUpdate{
		Name:            req.Name,
		Level:           req.Level,
		LogoURL:         req.LogoURL,
		WebsiteURL:      req.WebsiteURL,
		EventType:       req.EventType,
		SponsorImageURL: req.SponsorImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, sp)
}

// DeleteSponsor godoc
// @Summary Delete a sponsor
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Sponsor id"
// @Success 200 {object} helpers.APIResponse "data contains {ok:true}"
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/sponsors/{id} [delete]
func (c *SponsorController) DeleteSponsor(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteSponsor(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"ok": true})
}
