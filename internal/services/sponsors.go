package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainstreet/config"
	"mainstreet/internal/domain"
)

type sponsorService struct {
	sponsorRepo    domain.SponsorRepository
	defaults       config.FormDefaults
	contextTimeout time.Duration
}

func NewSponsorService(sponsorRepo domain.SponsorRepository, defaults config.FormDefaults, timeout time.Duration) domain.SponsorService {
	return &sponsorService{
		sponsorRepo:    sponsorRepo,
		defaults:       defaults,
		contextTimeout: timeout,
	}
}

func (s *sponsorService) ListSponsors(ctx context.Context) ([]*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	sponsors, err := s.sponsorRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sponsors: %w", err)
	}
	if sponsors == nil {
		sponsors = []*domain.Sponsor{}
	}
	return sponsors, nil
}

func (s *sponsorService) CreateSponsor(ctx context.Context, sp *domain.Sponsor) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "name", sp.Name)
	if sp.Level != "" && !domain.ValidSponsorLevel(sp.Level) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "level is not a known sponsorship level"})
	}
	if sp.EventType != "" && !domain.ValidEventType(sp.EventType) {
		errs = append(errs, domain.FieldError{Field: "eventType", Message: "eventType is not a known event type"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if sp.Level == "" {
		sp.Level = domain.SponsorLevel(s.defaults.SponsorLevel)
	}
	now := time.Now()
	sp.CreatedAt = now
	sp.UpdatedAt = now

	if err := s.sponsorRepo.Create(ctx, sp); err != nil {
		return nil, fmt.Errorf("create sponsor: %w", err)
	}
	return sp, nil
}

func (s *sponsorService) UpdateSponsor(ctx context.Context, id string, upd domain.SponsorUpdate) (*domain.Sponsor, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	if upd.Level != nil && !domain.ValidSponsorLevel(*upd.Level) {
		errs = append(errs, domain.FieldError{Field: "level", Message: "level is not a known sponsorship level"})
	}
	if upd.EventType != nil && !domain.ValidEventType(*upd.EventType) {
		errs = append(errs, domain.FieldError{Field: "eventType", Message: "eventType is not a known event type"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	sp, err := s.sponsorRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update sponsor: %w", err)
	}
	return sp, nil
}

func (s *sponsorService) DeleteSponsor(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.sponsorRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete sponsor: %w", err)
	}
	return nil
}
