package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mainstreet/internal/delivery/http/helpers"
	"mainstreet/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeIntakeService records calls and returns canned results.
type fakeIntakeService struct {
	lastVehicle *domain.VehicleRegistration
	lastVendor  *domain.VendorRegistration
	lastContact *domain.ContactMessage
	lastStatus  domain.VendorStatus
	lastID      string
	err         error
}

func (f *fakeIntakeService) SubmitVehicleRegistration(ctx context.Context, reg *domain.VehicleRegistration) (*domain.VehicleRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastVehicle = reg
	reg.ID = "veh-1"
	return reg, nil
}

func (f *fakeIntakeService) SubmitVendorRegistration(ctx context.Context, reg *domain.VendorRegistration) (*domain.VendorRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastVendor = reg
	reg.ID = "vr-1"
	reg.Status = domain.VendorStatusPending
	return reg, nil
}

func (f *fakeIntakeService) SubmitSponsorshipInquiry(ctx context.Context, inq *domain.SponsorshipInquiry) (*domain.SponsorshipInquiry, error) {
	if f.err != nil {
		return nil, f.err
	}
	inq.ID = "inq-1"
	return inq, nil
}

func (f *fakeIntakeService) SubmitContactMessage(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastContact = msg
	msg.ID = "cm-1"
	return msg, nil
}

func (f *fakeIntakeService) ListVehicleRegistrations(ctx context.Context) ([]*domain.VehicleRegistration, error) {
	return []*domain.VehicleRegistration{}, f.err
}

func (f *fakeIntakeService) ListVendorRegistrations(ctx context.Context) ([]*domain.VendorRegistration, error) {
	return []*domain.VendorRegistration{{ID: "vr-1", Status: domain.VendorStatusPending}}, f.err
}

func (f *fakeIntakeService) ListSponsorshipInquiries(ctx context.Context) ([]*domain.SponsorshipInquiry, error) {
	return []*domain.SponsorshipInquiry{}, f.err
}

func (f *fakeIntakeService) ListContactMessages(ctx context.Context) ([]*domain.ContactMessage, error) {
	return []*domain.ContactMessage{}, f.err
}

func (f *fakeIntakeService) GetVendorRegistration(ctx context.Context, id string) (*domain.VendorRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastID = id
	return &domain.VendorRegistration{ID: id, BusinessName: "Taco Cart", Status: domain.VendorStatusPending}, nil
}

func (f *fakeIntakeService) SetVendorStatus(ctx context.Context, id string, status domain.VendorStatus) (*domain.VendorRegistration, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastID = id
	f.lastStatus = status
	return &domain.VendorRegistration{ID: id, Status: status}, nil
}

func (f *fakeIntakeService) DeleteVendorRegistration(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	f.lastID = id
	return nil
}

func decodeEnvelope(t *testing.T, body io.Reader) (json.RawMessage, *helpers.APIError) {
	t.Helper()
	var env struct {
		Data  json.RawMessage   `json:"data"`
		Error *helpers.APIError `json:"error"`
	}
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env.Data, env.Error
}

func TestIntakeController_SubmitContactMessage(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := &fakeIntakeService{}
		ctrl := NewIntakeController(testLogger, svc)

		body := `{"name":"Pat","email":"pat@example.com","subject":"Hi","message":"long enough"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.SubmitContactMessage(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		data, apiErr := decodeEnvelope(t, rec.Body)
		assert.Nil(t, apiErr)
		var msg domain.ContactMessage
		require.NoError(t, json.Unmarshal(data, &msg))
		assert.Equal(t, "cm-1", msg.ID)
		require.NotNil(t, svc.lastContact)
		assert.Equal(t, "Hi", svc.lastContact.Subject)
	})

	t.Run("validation error names the failing fields", func(t *testing.T) {
		svc := &fakeIntakeService{err: domain.FieldErrors{
			{Field: "message", Message: "message must be at least 10 characters"},
		}}
		ctrl := NewIntakeController(testLogger, svc)

		body := `{"name":"Pat","email":"pat@example.com","subject":"Hi","message":"too short"}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.SubmitContactMessage(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		_, apiErr := decodeEnvelope(t, rec.Body)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeValidation, apiErr.Code)
		assert.Equal(t, []string{"message"}, apiErr.Fields)
	})

	t.Run("unknown body fields rejected", func(t *testing.T) {
		ctrl := NewIntakeController(testLogger, &fakeIntakeService{})

		body := `{"name":"Pat","admin":true}`
		req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.SubmitContactMessage(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestIntakeController_GetVendorRegistration(t *testing.T) {
	t.Run("returns the registration", func(t *testing.T) {
		svc := &fakeIntakeService{}
		ctrl := NewIntakeController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/vendor-registrations/vr-1", nil)
		req.SetPathValue("id", "vr-1")
		rec := httptest.NewRecorder()
		ctrl.GetVendorRegistration(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "vr-1", svc.lastID)
		data, apiErr := decodeEnvelope(t, rec.Body)
		require.Nil(t, apiErr)
		var reg domain.VendorRegistration
		require.NoError(t, json.Unmarshal(data, &reg))
		assert.Equal(t, "Taco Cart", reg.BusinessName)
	})

	t.Run("missing registration yields 404", func(t *testing.T) {
		svc := &fakeIntakeService{err: domain.ErrNotFound}
		ctrl := NewIntakeController(testLogger, svc)

		req := httptest.NewRequest(http.MethodGet, "/api/admin/vendor-registrations/missing", nil)
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.GetVendorRegistration(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestIntakeController_SetVendorStatus(t *testing.T) {
	t.Run("approves", func(t *testing.T) {
		svc := &fakeIntakeService{}
		ctrl := NewIntakeController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/vendor-registrations/vr-1", strings.NewReader(`{"status":"approved"}`))
		req.SetPathValue("id", "vr-1")
		rec := httptest.NewRecorder()
		ctrl.SetVendorStatus(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "vr-1", svc.lastID)
		assert.Equal(t, domain.VendorStatusApproved, svc.lastStatus)
	})

	t.Run("missing registration yields 404", func(t *testing.T) {
		svc := &fakeIntakeService{err: domain.ErrNotFound}
		ctrl := NewIntakeController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPatch, "/api/admin/vendor-registrations/missing", strings.NewReader(`{"status":"denied"}`))
		req.SetPathValue("id", "missing")
		rec := httptest.NewRecorder()
		ctrl.SetVendorStatus(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		_, apiErr := decodeEnvelope(t, rec.Body)
		require.NotNil(t, apiErr)
		assert.Equal(t, helpers.ErrCodeNotFound, apiErr.Code)
	})
}

func TestIntakeController_DeleteVendorRegistration(t *testing.T) {
	svc := &fakeIntakeService{}
	ctrl := NewIntakeController(testLogger, svc)

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/vendor-registrations/vr-1", nil)
	req.SetPathValue("id", "vr-1")
	rec := httptest.NewRecorder()
	ctrl.DeleteVendorRegistration(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	data, _ := decodeEnvelope(t, rec.Body)
	assert.JSONEq(t, `{"ok":true}`, string(data))
	assert.Equal(t, "vr-1", svc.lastID)
}
