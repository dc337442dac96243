package controllers

import (
	"log/slog"
	"net/http"
	"time"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
)

// CreateEventRequest is the request body for POST /api/admin/events.
type CreateEventRequest struct {
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Description string              `json:"description"`
	StartDate   time.Time           `json:"startDate"`
	EndDate     *time.Time          `json:"endDate"`
	TimeText    string              `json:"timeText"`
	Location    string              `json:"location"`
	Status      domain.EventStatus  `json:"status"`
	EventType   domain.EventType    `json:"eventType"`
	Cap         *int                `json:"cap"`
	HeroImage   string              `json:"heroImage"`
	GallerySlug string              `json:"gallerySlug"`
	Featured    bool                `json:"featured"`
	Links       *domain.EventLinks  `json:"links"`
	VendorURL   string              `json:"vendorUrl"`
	SponsorURL  string              `json:"sponsorUrl"`
	AttendeeURL string              `json:"attendeeUrl"`
}

func (req CreateEventRequest) toDomain() *domain.Event {
	return &domain.Event{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TimeText:    req.TimeText,
		Location:    req.Location,
		Status:      req.Status,
		EventType:   req.EventType,
		Cap:         req.Cap,
		HeroImage:   req.HeroImage,
		GallerySlug: req.GallerySlug,
		Featured:    req.Featured,
		Links:       req.Links,
		VendorURL:   req.VendorURL,
		SponsorURL:  req.SponsorURL,
		AttendeeURL: req.AttendeeURL,
	}
}

// UpdateEventRequest is the request body for PATCH /api/admin/events/{id}.
// Every field is optional; omitted fields are left unchanged.
type UpdateEventRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	StartDate   *time.Time          `json:"startDate"`
	EndDate     *time.Time          `json:"endDate"`
	TimeText    *string             `json:"timeText"`
	Location    *string             `json:"location"`
	Status      *domain.EventStatus `json:"status"`
	EventType   *domain.EventType   `json:"eventType"`
	Cap         *int                `json:"cap"`
	HeroImage   *string             `json:"heroImage"`
	GallerySlug *string             `json:"gallerySlug"`
	Featured    *bool               `json:"featured"`
	Links       *domain.EventLinks  `json:"links"`
}

func (req UpdateEventRequest) toDomain() domain.EventUpdate {
	return domain.EventUpdate{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		TimeText:    req.TimeText,
		Location:    req.Location,
		Status:      req.Status,
		EventType:   req.EventType,
		Cap:         req.Cap,
		HeroImage:   req.HeroImage,
		GallerySlug: req.GallerySlug,
		Featured:    req.Featured,
		Links:       req.Links,
	}
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{Logger: logger, Service: svc}
}

// ListEvents godoc
// @Summary List all events
// @Description Public listing; merges content-file events with admin-created ones.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains an array of events"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, events)
}

// GetEvent godoc
// @Summary Get one event by slug
// @Tags events
// @Produce json
// @Param slug path string true "Event slug"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /events/{slug} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := c.Service.GetEventBySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// CreateEvent godoc
// @Summary Create an event
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_error"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /admin/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	event, err := c.Service.CreateEvent(r.Context(), req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Partial update; omitted fields are left unchanged.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Param event body UpdateEventRequest true "Fields to change"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/events/{id} [patch]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	event, err := c.Service.UpdateEvent(r.Context(), r.PathValue("id"), req.toDomain())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Success 200 {object} helpers.APIResponse "data contains {ok:true}"
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteEvent(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"ok": true})
}
