package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mainstreet/internal/domain"
)

const minContactMessageLen = 10
const minPhoneLen = 7

type intakeService struct {
	vehicleRepo    domain.VehicleRegistrationRepository
	vendorRepo     domain.VendorRegistrationRepository
	inquiryRepo    domain.SponsorshipInquiryRepository
	contactRepo    domain.ContactMessageRepository
	notifier       domain.NotificationService
	contextTimeout time.Duration
}

func NewIntakeService(
	vehicleRepo domain.VehicleRegistrationRepository,
	vendorRepo domain.VendorRegistrationRepository,
	inquiryRepo domain.SponsorshipInquiryRepository,
	contactRepo domain.ContactMessageRepository,
	notifier domain.NotificationService,
	timeout time.Duration,
) domain.IntakeService {
	return &intakeService{
		vehicleRepo:    vehicleRepo,
		vendorRepo:     vendorRepo,
		inquiryRepo:    inquiryRepo,
		contactRepo:    contactRepo,
		notifier:       notifier,
		contextTimeout: timeout,
	}
}

func (s *intakeService) SubmitVehicleRegistration(ctx context.Context, reg *domain.VehicleRegistration) (*domain.VehicleRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "firstName", reg.FirstName)
	errs = domain.RequireField(errs, "lastName", reg.LastName)
	errs = requireEmail(errs, reg.Email)
	errs = requirePhone(errs, reg.Phone)
	errs = domain.RequireField(errs, "vehicleYear", reg.VehicleYear)
	errs = domain.RequireField(errs, "vehicleMake", reg.VehicleMake)
	errs = domain.RequireField(errs, "vehicleModel", reg.VehicleModel)
	errs = domain.RequireField(errs, "vehicleColor", reg.VehicleColor)
	if !domain.ValidVehicleClass(reg.VehicleClass) {
		errs = append(errs, domain.FieldError{Field: "vehicleClass", Message: "vehicleClass is not a known vehicle class"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	reg.CreatedAt = time.Now()
	if err := s.vehicleRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create vehicle registration: %w", err)
	}
	s.notifier.NotifyIntake(ctx, &domain.IntakeNotification{
		Kind:    "vehicle registration",
		From:    reg.FirstName + " " + reg.LastName,
		Email:   reg.Email,
		Summary: fmt.Sprintf("%s %s %s (%s)", reg.VehicleYear, reg.VehicleMake, reg.VehicleModel, reg.VehicleClass),
	})
	return reg, nil
}

func (s *intakeService) SubmitVendorRegistration(ctx context.Context, reg *domain.VendorRegistration) (*domain.VendorRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "businessName", reg.BusinessName)
	errs = domain.RequireField(errs, "contactName", reg.ContactName)
	errs = requireEmail(errs, reg.Email)
	errs = requirePhone(errs, reg.Phone)
	if !domain.ValidEventType(reg.EventType) {
		errs = append(errs, domain.FieldError{Field: "eventType", Message: "eventType is not a known event type"})
	}
	if !domain.ValidVendorCategory(reg.VendorCategory) {
		errs = append(errs, domain.FieldError{Field: "vendorCategory", Message: "vendorCategory is not a known vendor category"})
	}
	errs = domain.RequireField(errs, "description", reg.Description)
	if len(errs) > 0 {
		return nil, errs
	}

	// All submissions start pending regardless of what was posted.
	reg.Status = domain.VendorStatusPending
	now := time.Now()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	if err := s.vendorRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create vendor registration: %w", err)
	}
	s.notifier.NotifyIntake(ctx, &domain.IntakeNotification{
		Kind:    "vendor registration",
		From:    reg.ContactName,
		Email:   reg.Email,
		Summary: fmt.Sprintf("%s (%s, %s)", reg.BusinessName, reg.EventType, reg.VendorCategory),
	})
	return reg, nil
}

func (s *intakeService) SubmitSponsorshipInquiry(ctx context.Context, inq *domain.SponsorshipInquiry) (*domain.SponsorshipInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "businessName", inq.BusinessName)
	errs = domain.RequireField(errs, "contactName", inq.ContactName)
	errs = requireEmail(errs, inq.Email)
	errs = requirePhone(errs, inq.Phone)
	if !domain.ValidSponsorLevel(inq.Level) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "level is not a known sponsorship level"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	inq.CreatedAt = time.Now()
	if err := s.inquiryRepo.Create(ctx, inq); err != nil {
		return nil, fmt.Errorf("create sponsorship inquiry: %w", err)
	}
	s.notifier.NotifyIntake(ctx, &domain.IntakeNotification{
		Kind:    "sponsorship inquiry",
		From:    inq.ContactName,
		Email:   inq.Email,
		Summary: fmt.Sprintf("%s (%s)", inq.BusinessName, inq.Level),
	})
	return inq, nil
}

func (s *intakeService) SubmitContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "name", msg.Name)
	errs = requireEmail(errs, msg.Email)
	errs = domain.RequireField(errs, "subject", msg.Subject)
	if len(strings.TrimSpace(msg.Message)) < minContactMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: fmt.Sprintf("message must be at least %d characters", minContactMessageLen)})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	msg.CreatedAt = time.Now()
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	s.notifier.NotifyIntake(ctx, &domain.IntakeNotification{
		Kind:    "contact message",
		From:    msg.Name,
		Email:   msg.Email,
		Summary: msg.Subject,
	})
	return msg, nil
}

func (s *intakeService) ListVehicleRegistrations(ctx context.Context) ([]*domain.VehicleRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.vehicleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vehicle registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.VehicleRegistration{}
	}
	return regs, nil
}

func (s *intakeService) ListVendorRegistrations(ctx context.Context) ([]*domain.VendorRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	regs, err := s.vendorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list vendor registrations: %w", err)
	}
	if regs == nil {
		regs = []*domain.VendorRegistration{}
	}
	return regs, nil
}

func (s *intakeService) ListSponsorshipInquiries(ctx context.Context) ([]*domain.SponsorshipInquiry, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	inquiries, err := s.inquiryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsorship inquiries: %w", err)
	}
	if inquiries == nil {
		inquiries = []*domain.SponsorshipInquiry{}
	}
	return inquiries, nil
}

func (s *intakeService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	msgs, err := s.contactRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	if msgs == nil {
		msgs = []*domain.ContactMessage{}
	}
	return msgs, nil
}

func (s *intakeService) GetVendorRegistration(ctx context.Context, id string) (*domain.VendorRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	reg, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get vendor registration: %w", err)
	}
	return reg, nil
}

// SetVendorStatus moves a registration to any of the moderation states. There
// is no transition graph to enforce: approve, deny and reset are all legal
// from every state.
func (s *intakeService) SetVendorStatus(ctx context.Context, id string, status domain.VendorStatus) (*domain.VendorRegistration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if !domain.ValidVendorStatus(status) {
		return nil, domain.FieldErrors{{Field: "status", Message: "status must be pending, approved or denied"}}
	}

	reg, err := s.vendorRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update vendor status: %w", err)
	}
	return reg, nil
}

func (s *intakeService) DeleteVendorRegistration(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete vendor registration: %w", err)
	}
	return nil
}

func requireEmail(errs domain.FieldErrors, email string) domain.FieldErrors {
	if strings.TrimSpace(email) == "" {
		return append(errs, domain.FieldError{Field: "email", Message: "email is required"})
	}
	if !domain.ValidEmail(email) {
		return append(errs, domain.FieldError{Field: "email", Message: "email is not a valid address"})
	}
	return errs
}

func requirePhone(errs domain.FieldErrors, phone string) domain.FieldErrors {
	if len(strings.TrimSpace(phone)) < minPhoneLen {
		return append(errs, domain.FieldError{Field: "phone", Message: fmt.Sprintf("phone must be at least %d characters", minPhoneLen)})
	}
	return errs
}
