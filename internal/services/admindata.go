package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mainstreet/internal/domain"
)

type adminDataService struct {
	repo           domain.AdminDataRepository
	contextTimeout time.Duration
}

func NewAdminDataService(repo domain.AdminDataRepository, timeout time.Duration) domain.AdminDataService {
	return &adminDataService{repo: repo, contextTimeout: timeout}
}

// GetAdminData returns the singleton document. A site that has never saved
// one gets an empty document, not an error.
func (s *adminDataService) GetAdminData(ctx context.Context) (*domain.AdminData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	data, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AdminData{
				Announcements:  []domain.Announcement{},
				FeaturedEvents: []domain.FeaturedEvent{},
			}, nil
		}
		return nil, fmt.Errorf("get admin data: %w", err)
	}
	if data.Announcements == nil {
		data.Announcements = []domain.Announcement{}
	}
	if data.FeaturedEvents == nil {
		data.FeaturedEvents = []domain.FeaturedEvent{}
	}
	return data, nil
}

// SaveAdminData replaces the whole document. Both arrays are overwritten with
// exactly what the caller sent; there is no per-item merge.
func (s *adminDataService) SaveAdminData(ctx context.Context, data *domain.AdminData) (*domain.AdminData, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	for i, a := range data.Announcements {
		if a.Title == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("announcements[%d].title", i), Message: "announcement title is required"})
		}
	}
	for i, f := range data.FeaturedEvents {
		if f.EventSlug == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("featuredEvents[%d].eventSlug", i), Message: "featured event slug is required"})
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}

	if data.Announcements == nil {
		data.Announcements = []domain.Announcement{}
	}
	if data.FeaturedEvents == nil {
		data.FeaturedEvents = []domain.FeaturedEvent{}
	}
	data.UpdatedAt = time.Now()

	if err := s.repo.Replace(ctx, data); err != nil {
		return nil, fmt.Errorf("save admin data: %w", err)
	}
	return data, nil
}
