package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mainstreet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService records the last call and returns canned results.
type fakeEventService struct {
	events     []*domain.Event
	lastCreate *domain.Event
	lastUpdate domain.EventUpdate
	lastID     string
	err        error
}

func (f *fakeEventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	return f.events, f.err
}

func (f *fakeEventService) GetEventBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.events {
		if e.Slug == slug {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventService) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastCreate = event
	event.ID = "ev-1"
	return event, nil
}

func (f *fakeEventService) UpdateEvent(ctx context.Context, id string, upd domain.EventUpdate) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastID = id
	f.lastUpdate = upd
	return &domain.Event{ID: id}, nil
}

func (f *fakeEventService) DeleteEvent(ctx context.Context, id string) error {
	f.lastID = id
	return f.err
}

func TestEventController_ListEvents(t *testing.T) {
	svc := &fakeEventService{events: []*domain.Event{
		{ID: "ev-1", Slug: "summer-market", Title: "Summer Market"},
	}}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	ctrl.ListEvents(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data, apiErr := decodeEnvelope(t, rec.Body)
	assert.Nil(t, apiErr)
	var events []*domain.Event
	require.NoError(t, json.Unmarshal(data, &events))
	require.Len(t, events, 1)
	assert.Equal(t, "summer-market", events[0].Slug)
}

func TestEventController_GetEvent(t *testing.T) {
	svc := &fakeEventService{events: []*domain.Event{{Slug: "summer-market"}}}
	ctrl := NewEventController(testLogger, svc)

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events/summer-market", nil)
		req.SetPathValue("slug", "summer-market")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/events/nope", nil)
		req.SetPathValue("slug", "nope")
		rec := httptest.NewRecorder()
		ctrl.GetEvent(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_CreateEvent(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger, svc)

	body := `{"title":"Fall Fest","startDate":"2025-09-20T00:00:00Z","featured":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.CreateEvent(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, "Fall Fest", svc.lastCreate.Title)
	assert.Equal(t, time.Date(2025, 9, 20, 0, 0, 0, 0, time.UTC), svc.lastCreate.StartDate)
	assert.True(t, svc.lastCreate.Featured)
}

func TestEventController_UpdateEvent(t *testing.T) {
	t.Run("only sent fields reach the service", func(t *testing.T) {
		svc := &fakeEventService{}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/events/ev-1", strings.NewReader(`{"location":"Elm Street"}`))
		req.SetPathValue("id", "ev-1")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ev-1", svc.lastID)
		require.NotNil(t, svc.lastUpdate.Location)
		assert.Equal(t, "Elm Street", *svc.lastUpdate.Location)
		assert.Nil(t, svc.lastUpdate.Title)
		assert.Nil(t, svc.lastUpdate.Status)
	})

	t.Run("missing event yields 404", func(t *testing.T) {
		svc := &fakeEventService{err: domain.ErrNotFound}
		ctrl := NewEventController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/events/missing", strings.NewReader(`{"title":"x"}`))
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.UpdateEvent(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestEventController_DeleteEvent(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/events/ev-1", nil)
	req.SetPathValue("id", "ev-1")
	rec := httptest.NewRecorder()
	ctrl.DeleteEvent(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data, apiErr := decodeEnvelope(t, rec.Body)
	assert.Nil(t, apiErr)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}
