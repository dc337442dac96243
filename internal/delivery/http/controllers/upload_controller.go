package controllers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
	"mainstreet/internal/services"
)

type UploadController struct {
	Logger  *slog.Logger
	Service domain.UploadService
}

func NewUploadController(logger *slog.Logger, svc domain.UploadService) *UploadController {
	return &UploadController{Logger: logger, Service: svc}
}

// Upload godoc
// @Summary Upload an image
// @Description Multipart upload under the "file" field, capped at 5MB.
// Raster formats get a thumbnail; svg/avif/webp are stored as-is.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image file"
// @Success 201 {object} helpers.APIResponse "data contains url and thumbnailUrl"
// @Failure 400 {object} helpers.APIResponse
// @Router /admin/upload [post]
func (c *UploadController) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+4096)
	if err := r.ParseMultipartForm(services.MaxUploadSize); err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "could not parse multipart form")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		helpers.WriteValidationError(w, domain.FieldErrors{{Field: "file", Message: "file is required"}})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			helpers.WriteValidationError(w, domain.FieldErrors{{Field: "file", Message: "file is too large"}})
			return
		}
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}

	upload, err := c.Service.Save(r.Context(), header.Filename, data)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, upload)
}
