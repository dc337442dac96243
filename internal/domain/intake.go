package domain

import (
	"context"
	"time"
)

// VehicleClass is the judged class a car-cruise entry registers under.
type VehicleClass string

const (
	VehicleClassClassic    VehicleClass = "classic"
	VehicleClassMuscle     VehicleClass = "muscle"
	VehicleClassHotRod     VehicleClass = "hot-rod"
	VehicleClassImport     VehicleClass = "import"
	VehicleClassTruck      VehicleClass = "truck"
	VehicleClassMotorcycle VehicleClass = "motorcycle"
	VehicleClassOther      VehicleClass = "other"
)

// VehicleClasses lists all valid vehicle classes.
var VehicleClasses = []VehicleClass{
	VehicleClassClassic,
	VehicleClassMuscle,
	VehicleClassHotRod,
	VehicleClassImport,
	VehicleClassTruck,
	VehicleClassMotorcycle,
	VehicleClassOther,
}

// ValidVehicleClass reports whether c is one of the enumerated classes.
func ValidVehicleClass(c VehicleClass) bool {
	for _, v := range VehicleClasses {
		if c == v {
			return true
		}
	}
	return false
}

// VendorCategory is the booth category a vendor registers under.
type VendorCategory string

const (
	VendorCategoryFood      VendorCategory = "food"
	VendorCategoryCrafts    VendorCategory = "crafts"
	VendorCategoryRetail    VendorCategory = "retail"
	VendorCategoryNonprofit VendorCategory = "nonprofit"
	VendorCategoryServices  VendorCategory = "services"
	VendorCategoryOther     VendorCategory = "other"
)

// VendorCategories lists all valid vendor categories.
var VendorCategories = []VendorCategory{
	VendorCategoryFood,
	VendorCategoryCrafts,
	VendorCategoryRetail,
	VendorCategoryNonprofit,
	VendorCategoryServices,
	VendorCategoryOther,
}

// ValidVendorCategory reports whether c is one of the enumerated categories.
func ValidVendorCategory(c VendorCategory) bool {
	for _, v := range VendorCategories {
		if c == v {
			return true
		}
	}
	return false
}

// VendorStatus is the moderation state of a vendor registration. New
// registrations start pending; an admin may set any of the three states at
// any time, and there is no automatic transition.
type VendorStatus string

const (
	VendorStatusPending  VendorStatus = "pending"
	VendorStatusApproved VendorStatus = "approved"
	VendorStatusDenied   VendorStatus = "denied"
)

// ValidVendorStatus reports whether s is one of the moderation states.
func ValidVendorStatus(s VendorStatus) bool {
	switch s {
	case VendorStatusPending, VendorStatusApproved, VendorStatusDenied:
		return true
	}
	return false
}

// VehicleRegistration is an append-only car-cruise entry submission.
// swagger:model VehicleRegistration
type VehicleRegistration struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	VehicleYear  string       `json:"vehicleYear"`
	VehicleMake  string       `json:"vehicleMake"`
	VehicleModel string       `json:"vehicleModel"`
	VehicleColor string       `json:"vehicleColor"`
	VehicleClass VehicleClass `json:"vehicleClass"`
	Notes        string       `json:"notes,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// VendorRegistration is a vendor booth application; the only intake record
// with a moderation status.
// swagger:model VendorRegistration
type VendorRegistration struct {
	ID              string         `json:"id"`
	BusinessName    string         `json:"businessName"`
	ContactName     string         `json:"contactName"`
	Email           string         `json:"email"`
	Phone           string         `json:"phone"`
	EventType       EventType      `json:"eventType"`
	VendorCategory  VendorCategory `json:"vendorCategory"`
	Description     string         `json:"description"`
	SpecialRequests string         `json:"specialRequests,omitempty"`
	Status          VendorStatus   `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// SponsorshipInquiry is an append-only sponsorship interest submission.
// swagger:model SponsorshipInquiry
type SponsorshipInquiry struct {
	ID           string       `json:"id"`
	BusinessName string       `json:"businessName"`
	ContactName  string       `json:"contactName"`
	Email        string       `json:"email"`
	Phone        string       `json:"phone"`
	Level        SponsorLevel `json:"level"`
	Message      string       `json:"message,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
}

// ContactMessage is an append-only contact-form submission.
// swagger:model ContactMessage
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// VehicleRegistrationRepository defines storage for vehicle registrations.
type VehicleRegistrationRepository interface {
	Create(ctx context.Context, reg *VehicleRegistration) error
	List(ctx context.Context) ([]*VehicleRegistration, error)
}

// VendorRegistrationRepository defines storage for vendor registrations.
type VendorRegistrationRepository interface {
	Create(ctx context.Context, reg *VendorRegistration) error
	GetByID(ctx context.Context, id string) (*VendorRegistration, error)
	List(ctx context.Context) ([]*VendorRegistration, error)
	UpdateStatus(ctx context.Context, id string, status VendorStatus) (*VendorRegistration, error)
	Delete(ctx context.Context, id string) error
}

// SponsorshipInquiryRepository defines storage for sponsorship inquiries.
type SponsorshipInquiryRepository interface {
	Create(ctx context.Context, inq *SponsorshipInquiry) error
	List(ctx context.Context) ([]*SponsorshipInquiry, error)
}

// ContactMessageRepository defines storage for contact messages.
type ContactMessageRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]*ContactMessage, error)
}

// IntakeService defines the public submission and admin moderation operations.
type IntakeService interface {
	SubmitVehicleRegistration(ctx context.Context, reg *VehicleRegistration) (*VehicleRegistration, error)
	SubmitVendorRegistration(ctx context.Context, reg *VendorRegistration) (*VendorRegistration, error)
	SubmitSponsorshipInquiry(ctx context.Context, inq *SponsorshipInquiry) (*SponsorshipInquiry, error)
	SubmitContactMessage(ctx context.Context, msg *ContactMessage) (*ContactMessage, error)

	ListVehicleRegistrations(ctx context.Context) ([]*VehicleRegistration, error)
	ListVendorRegistrations(ctx context.Context) ([]*VendorRegistration, error)
	ListSponsorshipInquiries(ctx context.Context) ([]*SponsorshipInquiry, error)
	ListContactMessages(ctx context.Context) ([]*ContactMessage, error)

	GetVendorRegistration(ctx context.Context, id string) (*VendorRegistration, error)
	SetVendorStatus(ctx context.Context, id string, status VendorStatus) (*VendorRegistration, error)
	DeleteVendorRegistration(ctx context.Context, id string) error
}
