package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"mainstreet/config"
	"mainstreet/internal/content"
	"mainstreet/internal/domain"
)

type eventService struct {
	content        *content.Repository
	eventRepo      domain.EventRepository
	defaults       config.FormDefaults
	contextTimeout time.Duration
}

func NewEventService(contentRepo *content.Repository, eventRepo domain.EventRepository, defaults config.FormDefaults, timeout time.Duration) domain.EventService {
	return &eventService{
		content:        contentRepo,
		eventRepo:      eventRepo,
		defaults:       defaults,
		contextTimeout: timeout,
	}
}

// ListEvents merges content-file events with database events, sorted by start
// date. Slugs are expected to be disjoint between the two sources; if a
// database event shadows a content slug the database one wins.
func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dynamic, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	seen := make(map[string]bool, len(dynamic))
	merged := make([]*domain.Event, 0, len(dynamic))
	for _, e := range dynamic {
		seen[e.Slug] = true
		merged = append(merged, e)
	}
	for _, e := range s.content.Events() {
		if !seen[e.Slug] {
			merged = append(merged, e)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StartDate.Equal(merged[j].StartDate) {
			return merged[i].Slug < merged[j].Slug
		}
		return merged[i].StartDate.Before(merged[j].StartDate)
	})
	return merged, nil
}

func (s *eventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	dynamic, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	for _, e := range dynamic {
		if e.Slug == slug {
			return e, nil
		}
	}
	if e, ok := s.content.EventBySlug(slug); ok {
		return e, nil
	}
	return nil, domain.ErrNotFound
}

func (s *eventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if errs := validateEvent(event); len(errs) > 0 {
		return nil, errs
	}

	if event.Slug == "" {
		event.Slug = content.Slugify(event.Title)
	}
	if event.Location == "" {
		event.Location = s.defaults.EventLocation
	}
	if event.EventType == "" {
		event.EventType = domain.EventType(s.defaults.EventType)
	}
	if event.Status == "" {
		event.Status = domain.EventStatusUpcoming
	}
	event.Source = domain.EventSourceDynamic
	now := time.Now()
	event.CreatedAt = now
	event.UpdatedAt = now

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var errs domain.FieldErrors
	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "title is required"})
	}
	if upd.Status != nil && !domain.ValidEventStatus(*upd.Status) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "status must be open, upcoming or closed"})
	}
	if upd.EventType != nil && !domain.ValidEventType(*upd.EventType) {
		errs = append(errs, domain.FieldError{Field: "eventType", Message: "eventType is not a known event type"})
	}
	if len(errs) > 0 {
		return nil, errs
	}
	// Content-file events are owned by the repo tree, not the database.
	if _, ok := s.content.EventBySlug(id); ok {
		return nil, fmt.Errorf("event %q comes from a content file and cannot be edited: %w", id, domain.ErrInvalidInput)
	}

	event, err := s.eventRepo.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if _, ok := s.content.EventBySlug(id); ok {
		return fmt.Errorf("event %q comes from a content file and cannot be deleted: %w", id, domain.ErrInvalidInput)
	}

	if err := s.eventRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func validateEvent(event *domain.Event) domain.FieldErrors {
	var errs domain.FieldErrors
	errs = domain.RequireField(errs, "title", event.Title)
	if event.StartDate.IsZero() {
		errs = append(errs, domain.FieldError{Field: "startDate", Message: "startDate is required"})
	}
	if event.EndDate != nil && event.EndDate.Before(event.StartDate) {
		errs = append(errs, domain.FieldError{Field: "endDate", Message: "endDate must not be before startDate"})
	}
	if event.Status != "" && !domain.ValidEventStatus(event.Status) {
		errs = append(errs, domain.FieldError{Field: "status", Message: "status must be open, upcoming or closed"})
	}
	if event.EventType != "" && !domain.ValidEventType(event.EventType) {
		errs = append(errs, domain.FieldError{Field: "eventType", Message: "eventType is not a known event type"})
	}
	return errs
}
