package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"mainstreet/internal/delivery/http/controllers"
	"mainstreet/internal/delivery/http/middleware"
	"mainstreet/internal/domain"
)

// Controllers bundles everything the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Events    *controllers.EventController
	Business  *controllers.BusinessController
	Sponsors  *controllers.SponsorController
	Intake    *controllers.IntakeController
	AdminData *controllers.AdminDataController
	Upload    *controllers.UploadController
	Content   *controllers.ContentController
}

// NewRouter initializes the HTTP router with all application routes.
// Everything lives under /api; /api/admin/* (except verify) requires a bearer token.
func NewRouter(c Controllers, verifier domain.TokenVerifier, limiter *middleware.RateLimiter, uploadDir string, logger *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier, logger)

	// Public reads
	mux.HandleFunc("GET /api/events", c.Events.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", c.Events.GetEvent)
	mux.HandleFunc("GET /api/businesses", c.Business.ListBusinesses)
	mux.HandleFunc("GET /api/sponsors", c.Sponsors.ListSponsors)
	mux.HandleFunc("GET /api/pages", c.Content.ListPages)
	mux.HandleFunc("GET /api/pages/{slug}", c.Content.GetPage)
	mux.HandleFunc("GET /api/galleries/{slug}", c.Content.GetGallery)
	mux.HandleFunc("GET /api/sponsor-tiers", c.Content.ListSponsorTiers)
	mux.HandleFunc("GET /api/sponsor-logos", c.Content.ListSponsorLogos)
	mux.HandleFunc("GET /api/site", c.Content.GetSite)

	// Public form submissions, rate limited per client
	mux.HandleFunc("POST /api/contact", limiter.Limit(c.Intake.SubmitContactMessage))
	mux.HandleFunc("POST /api/vehicle-registrations", limiter.Limit(c.Intake.SubmitVehicleRegistration))
	mux.HandleFunc("POST /api/vendor-registrations", limiter.Limit(c.Intake.SubmitVendorRegistration))
	mux.HandleFunc("POST /api/sponsorship-inquiries", limiter.Limit(c.Intake.SubmitSponsorshipInquiry))

	// Auth
	mux.HandleFunc("POST /api/auth/login", c.Auth.Login)
	mux.HandleFunc("POST /api/admin/verify", c.Auth.VerifyPasscode)
	mux.HandleFunc("GET /api/admin/me", auth(c.Auth.Me))

	// Admin CRUD
	mux.HandleFunc("POST /api/admin/events", auth(c.Events.CreateEvent))
	mux.HandleFunc("PATCH /api/admin/events/{id}", auth(c.Events.UpdateEvent))
	mux.HandleFunc("DELETE /api/admin/events/{id}", auth(c.Events.DeleteEvent))
	mux.HandleFunc("POST /api/admin/businesses", auth(c.Business.CreateBusiness))
	mux.HandleFunc("PATCH /api/admin/businesses/{id}", auth(c.Business.UpdateBusiness))
	mux.HandleFunc("DELETE /api/admin/businesses/{id}", auth(c.Business.DeleteBusiness))
	mux.HandleFunc("POST /api/admin/sponsors", auth(c.Sponsors.CreateSponsor))
	mux.HandleFunc("PATCH /api/admin/sponsors/{id}", auth(c.Sponsors.UpdateSponsor))
	mux.HandleFunc("DELETE /api/admin/sponsors/{id}", auth(c.Sponsors.DeleteSponsor))

	// Admin intake moderation
	mux.HandleFunc("GET /api/admin/vehicle-registrations", auth(c.Intake.ListVehicleRegistrations))
	mux.HandleFunc("GET /api/admin/vendor-registrations", auth(c.Intake.ListVendorRegistrations))
	mux.HandleFunc("GET /api/admin/vendor-registrations/{id}", auth(c.Intake.GetVendorRegistration))
	mux.HandleFunc("PATCH /api/admin/vendor-registrations/{id}", auth(c.Intake.SetVendorStatus))
	mux.HandleFunc("DELETE /api/admin/vendor-registrations/{id}", auth(c.Intake.DeleteVendorRegistration))
	mux.HandleFunc("GET /api/admin/sponsorship-inquiries", auth(c.Intake.ListSponsorshipInquiries))
	mux.HandleFunc("GET /api/admin/contact-messages", auth(c.Intake.ListContactMessages))

	// Admin data + uploads
	mux.HandleFunc("GET /api/admin/data", auth(c.AdminData.GetAdminData))
	mux.HandleFunc("POST /api/admin/data", auth(c.AdminData.SaveAdminData))
	mux.HandleFunc("POST /api/admin/upload", auth(c.Upload.Upload))

	// Uploaded files
	mux.Handle("GET /uploads/", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
