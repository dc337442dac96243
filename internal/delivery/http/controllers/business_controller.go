package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
)

// CreateBusinessRequest is the request body for POST /api/admin/businesses.
type CreateBusinessRequest struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Address     string                  `json:"address"`
	Phone       string                  `json:"phone"`
	Website     string                  `json:"website"`
	Category    domain.BusinessCategory `json:"category"`
	ImageURL    string                  `json:"imageUrl"`
}

// UpdateBusinessRequest is the request body for PATCH /api/admin/businesses/{id}.
type UpdateBusinessRequest struct {
	Name        *string                  `json:"name"`
	Description *string                  `json:"description"`
	Address     *string                  `json:"address"`
	Phone       *string                  `json:"phone"`
	Website     *string                  `json:"website"`
	Category    *domain.BusinessCategory `json:"category"`
	ImageURL    *string                  `json:"imageUrl"`
}

type BusinessController struct {
	Logger  *slog.Logger
	Service domain.DirectoryService
}

func NewBusinessController(logger *slog.Logger, svc domain.DirectoryService) *BusinessController {
	return &BusinessController{Logger: logger, Service: svc}
}

// ListBusinesses godoc
// @Summary List directory businesses
// @Tags businesses
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains an array of businesses"
// @Router /businesses [get]
func (c *BusinessController) ListBusinesses(w http.ResponseWriter, r *http.Request) {
	businesses, err := c.Service.ListBusinesses(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, businesses)
}

// CreateBusiness godoc
// @Summary Create a directory business
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param business body CreateBusinessRequest true "Business fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/businesses [post]
func (c *BusinessController) CreateBusiness(w http.ResponseWriter, r *http.Request) {
	var req CreateBusinessRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	b, err := c.Service.CreateBusiness(r.Context(), &domain.Business{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, b)
}

// UpdateBusiness godoc
// @Summary Update a directory business
// @Description Partial update; omitted fields are left unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business id"
// @Param business body UpdateBusinessRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/businesses/{id} [patch]
func (c *BusinessController) UpdateBusiness(w http.ResponseWriter, r *http.Request) {
	var req UpdateBusinessRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	b, err := c.Service.UpdateBusiness(r.Context(), r.PathValue("id"), domain.BusinessUpdate{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Phone:       req.Phone,
		Website:     req.Website,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, b)
}

// DeleteBusiness godoc
// @Summary Delete a directory business
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business id"
// @Success 200 {object} helpers.APIResponse "data contains {ok:true}"
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/businesses/{id} [delete]
func (c *BusinessController) DeleteBusiness(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteBusiness(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"ok": true})
}
