package controllers

import (
	"log/slog"
	"net/http"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"
)

// VehicleRegistrationRequest is the request body for POST /api/vehicle-registrations.
type VehicleRegistrationRequest struct {
	FirstName    string              `json:"firstName"`
	LastName     string              `json:"lastName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	VehicleYear  string              `json:"vehicleYear"`
	VehicleMake  string              `json:"vehicleMake"`
	VehicleModel string              `json:"vehicleModel"`
	VehicleColor string              `json:"vehicleColor"`
	VehicleClass domain.VehicleClass `json:"vehicleClass"`
	Notes        string              `json:"notes"`
}

// VendorRegistrationRequest is the request body for POST /api/vendor-registrations.
type VendorRegistrationRequest struct {
	BusinessName    string                `json:"businessName"`
	ContactName     string                `json:"contactName"`
	Email           string                `json:"email"`
	Phone           string                `json:"phone"`
	EventType       domain.EventType      `json:"eventType"`
	VendorCategory  domain.VendorCategory `json:"vendorCategory"`
	Description     string                `json:"description"`
	SpecialRequests string                `json:"specialRequests"`
}

// SponsorshipInquiryRequest is the request body for POST /api/sponsorship-inquiries.
type SponsorshipInquiryRequest struct {
	BusinessName string              `json:"businessName"`
	ContactName  string              `json:"contactName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	Level        domain.SponsorLevel `json:"level"`
	Message      string              `json:"message"`
}

// ContactMessageRequest is the request body for POST /api/contact.
type ContactMessageRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// SetVendorStatusRequest is the request body for PATCH /api/admin/vendor-registrations/{id}.
type SetVendorStatusRequest struct {
	Status domain.VendorStatus `json:"status"`
}

type IntakeController struct {
	Logger  *slog.Logger
	Service domain.IntakeService
}

func NewIntakeController(logger *slog.Logger, svc domain.IntakeService) *IntakeController {
	return &IntakeController{Logger: logger, Service: svc}
}

// SubmitVehicleRegistration godoc
// @Summary Submit a car-cruise vehicle registration
// @Tags intake
// @Accept json
// @Produce json
// @Param registration body VehicleRegistrationRequest true "Registration fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse "error.fields names every failing field"
// @Router /vehicle-registrations [post]
func (c *IntakeController) SubmitVehicleRegistration(w http.ResponseWriter, r *http.Request) {
	var req VehicleRegistrationRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	reg, err := c.Service.SubmitVehicleRegistration(r.Context(), &domain.VehicleRegistration{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		VehicleYear:  req.VehicleYear,
		VehicleMake:  req.VehicleMake,
		VehicleModel: req.VehicleModel,
		VehicleColor: req.VehicleColor,
		VehicleClass: req.VehicleClass,
		Notes:        req.Notes,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// SubmitVendorRegistration godoc
// @Summary Submit a vendor booth application
// @Tags intake
// @Accept json
// @Produce json
// @Param registration body VendorRegistrationRequest true "Application fields"
// @Success 201 {object} helpers.APIResponse "data contains the pending record"
// @Failure 400 {object} helpers.APIResponse
// @Router /vendor-registrations [post]
func (c *IntakeController) SubmitVendorRegistration(w http.ResponseWriter, r *http.Request) {
	var req VendorRegistrationRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	reg, err := c.Service.SubmitVendorRegistration(r.Context(), &domain.VendorRegistration{
		BusinessName:    req.BusinessName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		EventType:       req.EventType,
		VendorCategory:  req.VendorCategory,
		Description:     req.Description,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, reg)
}

// SubmitSponsorshipInquiry godoc
// @Summary Submit a sponsorship inquiry
// @Tags intake
// @Accept json
// @Produce json
// @Param inquiry body SponsorshipInquiryRequest true "Inquiry fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /sponsorship-inquiries [post]
func (c *IntakeController) SubmitSponsorshipInquiry(w http.ResponseWriter, r *http.Request) {
	var req SponsorshipInquiryRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	inq, err := c.Service.SubmitSponsorshipInquiry(r.Context(), &domain.SponsorshipInquiry{
		BusinessName: req.BusinessName,
		ContactName:  req.ContactName,
		Email:        req.Email,
		Phone:        req.Phone,
		Level:        req.Level,
		Message:      req.Message,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, inq)
}

// SubmitContactMessage godoc
// @Summary Submit a contact-form message
// @Tags intake
// @Accept json
// @Produce json
// @Param message body ContactMessageRequest true "Message fields"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /contact [post]
func (c *IntakeController) SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	var req ContactMessageRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	msg, err := c.Service.SubmitContactMessage(r.Context(), &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, msg)
}

// ListVehicleRegistrations godoc
// @Summary List vehicle registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/vehicle-registrations [get]
func (c *IntakeController) ListVehicleRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListVehicleRegistrations(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListVendorRegistrations godoc
// @Summary List vendor registrations
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/vendor-registrations [get]
func (c *IntakeController) ListVendorRegistrations(w http.ResponseWriter, r *http.Request) {
	regs, err := c.Service.ListVendorRegistrations(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, regs)
}

// ListSponsorshipInquiries godoc
// @Summary List sponsorship inquiries
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/sponsorship-inquiries [get]
func (c *IntakeController) ListSponsorshipInquiries(w http.ResponseWriter, r *http.Request) {
	inquiries, err := c.Service.ListSponsorshipInquiries(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, inquiries)
}

// ListContactMessages godoc
// @Summary List contact messages
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse
// @Router /admin/contact-messages [get]
func (c *IntakeController) ListContactMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := c.Service.ListContactMessages(r.Context())
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, msgs)
}

// GetVendorRegistration godoc
// @Summary Get one vendor registration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/vendor-registrations/{id} [get]
func (c *IntakeController) GetVendorRegistration(w http.ResponseWriter, r *http.Request) {
	reg, err := c.Service.GetVendorRegistration(r.Context(), r.PathValue("id"))
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// SetVendorStatus godoc
// @Summary Set a vendor registration's moderation status
// @Description Approve, deny or reset; every transition is legal at any time.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration id"
// @Param status body SetVendorStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/vendor-registrations/{id} [patch]
func (c *IntakeController) SetVendorStatus(w http.ResponseWriter, r *http.Request) {
	var req SetVendorStatusRequest
	if !helpers.Decode(w, r, &req) {
		return
	}
	reg, err := c.Service.SetVendorStatus(r.Context(), r.PathValue("id"), req.Status)
	if err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reg)
}

// DeleteVendorRegistration godoc
// @Summary Delete a vendor registration
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Registration id"
// @Success 200 {object} helpers.APIResponse "data contains {ok:true}"
// @Failure 404 {object} helpers.APIResponse
// @Router /admin/vendor-registrations/{id} [delete]
func (c *IntakeController) DeleteVendorRegistration(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.DeleteVendorRegistration(r.Context(), r.PathValue("id")); err != nil {
		helpers.WriteServiceError(w, r, c.Logger, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]bool{"ok": true})
}
