package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TecWeb-Studio/newbodyline2/internal/domain"
	uc "github.com/TecWeb-Studio/newbodyline2/internal/usecase/create_booking"
)

type stubCreator struct {
	gotData uc.CreateBookingData
	booking *domain.Booking
	err     error
}

func (s *stubCreator) CreateBooking(_ context.Context, data uc.CreateBookingData) (*domain.Booking, error) {
	s.gotData = data
	return s.booking, s.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle_ParsesWireFields(t *testing.T) {
	stub := &stubCreator{booking: &domain.Booking{ID: "booking-1", Status: domain.StatusPending}}
	h := New(stub, nopLogger{})

	body := `{
		"trainerId": "elena-petrova",
		"date": "2025-06-11",
		"time": "09:00",
		"clientName": "Anna Rossi",
		"clientEmail": "anna@example.com",
		"clientPhone": "+39 333 123 4567"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "elena-petrova", stub.gotData.TrainerID)
	assert.Equal(t, "Anna Rossi", stub.gotData.ClientName)
	assert.Equal(t, "anna@example.com", stub.gotData.ClientEmail)
	assert.Equal(t, "+39 333 123 4567", stub.gotData.ClientPhone)
	// Публичная запись всегда входит в статусе pending
	assert.Equal(t, domain.StatusPending, stub.gotData.InitialStatus)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := New(&stubCreator{}, nopLogger{})

	body := `{"trainerId": "elena-petrova", "date": "11.06.2025", "time": "09:00"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
