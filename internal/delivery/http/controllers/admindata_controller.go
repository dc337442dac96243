package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
)

// SaveAdminDataRequest is the request body for POST /api/admin/data. The save
// replaces both arrays wholesale; a client that omits items loses them.
type SaveAdminDataRequest struct {
	Announcements  []domain.Announcement  `json:"announcements"`
	FeaturedEvents []domain.FeaturedEvent `json:"featuredEvents"`
}

type AdminDataController struct {
	Logger  *slog.Logger
	Service domain.AdminDataService
}

func NewAdminDataController(logger *slog.Logger, svc domain.AdminDataService) *AdminDataController {
	return &AdminDataController{Logger: logger, Service: svc}
}

// GetAdminData godoc
// @Summary Read the announcements/featured-events document
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/data [get]
func (c *AdminDataController) GetAdminData(w http.ResponseWriter, r *http.Request) {
	data, err := c.Service.GetAdminData(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}

// SaveAdminData godoc
// @Summary Replace the announcements/featured-events document
// @Description Whole-document replace, not a merge: both arrays are
// overwritten with exactly what was sent.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param data body SaveAdminDataRequest true "Full document"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/data [post]
func (c *AdminDataController) SaveAdminData(w http.ResponseWriter, r *http.Request) {
	var req SaveAdminDataRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	data, err := c.Service.SaveAdminData(r.Context(), &domain.AdminData{
		Announcements:  req.Announcements,
		FeaturedEvents: req.FeaturedEvents,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, data)
}
