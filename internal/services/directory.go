package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainstreet/config"
	"mainstreet/internal/domain"
)

type directoryService struct {
	businessRepo   domain.BusinessRepository
	defaults       config.FormDefaults
	contextTimeout time.Duration
}

func NewDirectoryService(businessRepo domain.BusinessRepository, defaults config.FormDefaults, timeout time.Duration) domain.DirectoryService {
	return &directoryService{
		businessRepo:   businessRepo,
		defaults:       defaults,
		contextTimeout: timeout,
	}
}

func (s *directoryService) ListBusinesses(ctx context.Context) ([]*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	businesses, err := s.businessRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list businesses: %w", err)
	}
	if businesses == nil {
		businesses = []*domain.Business{}
	}
	return businesses, nil
}

func (s *directoryService) CreateBusiness(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "name", b.Name)
	errs = domain.RequireField(errs, "address", b.Address)
	if b.Category != "" && !domain.ValidBusinessCategory(b.Category) {
		errs = append(errs, domain.FieldError{Field: "category", Message: "category is not a known directory category"})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if b.Category == "" {
		b.Category = domain.BusinessCategory(s.defaults.BusinessCategory)
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := s.businessRepo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create business: %w", err)
	}
	return b, nil
}

func (s *directoryService) UpdateBusiness(ctx context.Context, id string, upd domain.BusinessUpdate) (*domain.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if upd.Category != nil && !domain.ValidBusinessCategory(*upd.Category) {
		return nil, domain.FieldErrors{{Field: "category", Message: "category is not a known directory category"}}
	}

	b, err := s.businessRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update business: %w", err)
	}
	return b, nil
}

func (s *directoryService) DeleteBusiness(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.businessRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete business: %w", err)
	}
	return nil
}
