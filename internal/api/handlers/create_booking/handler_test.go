package create_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AGIA-RentalService/internal/api/middleware"
	createBooking "github.com/m04kA/AGIA-RentalService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	resp    *createBooking.Response
	err     error
	lastReq *createBooking.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func serve(uc CreateBookingUseCase, body string, withAuth bool) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	if withAuth {
		req.Header.Set(middleware.HeaderUserID, "user-1")
	}

	rec := httptest.NewRecorder()
	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandler_Handle_Success(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:         "booking-1",
		VillaID:    "villa-1",
		UserID:     "user-1",
		StartDate:  date(2026, 6, 10),
		EndDate:    date(2026, 6, 14),
		Nights:     4,
		TotalPrice: 40000,
		Status:     "confirmed",
		CreatedAt:  now,
		UpdatedAt:  now,
	}}

	rec := serve(uc, `{"villaId":"villa-1","startDate":"2026-06-10","endDate":"2026-06-14"}`, true)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "booking-1", resp.ID)
	assert.Equal(t, "2026-06-10", resp.StartDate)
	assert.Equal(t, "2026-06-14", resp.EndDate)
	assert.Equal(t, 4, resp.Nights)
	assert.Equal(t, int64(40000), resp.TotalPrice)

	// userID берётся из заголовка аутентификации
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "user-1", uc.lastReq.UserID)
}

func TestHandler_Handle_RequiresAuth(t *testing.T) {
	rec := serve(&fakeUseCase{}, `{}`, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Handle_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"villaId":`},
		{name: "unknown field", body: `{"villaId":"v","startDate":"2026-06-10","endDate":"2026-06-14","surprise":1}`},
		{name: "bad date format", body: `{"villaId":"v","startDate":"10.06.2026","endDate":"2026-06-14"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{}, tt.body, true)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandler_Handle_ErrorMapping(t *testing.T) {
	body := `{"villaId":"villa-1","startDate":"2026-06-10","endDate":"2026-06-14"}`

	tests := []struct {
		name     string
		err      error
		wantCode int
	}{
		{name: "dates unavailable", err: createBooking.ErrDatesUnavailable, wantCode: http.StatusConflict},
		{name: "villa not found", err: createBooking.ErrVillaNotFound, wantCode: http.StatusNotFound},
		{name: "invalid date range", err: createBooking.ErrInvalidDateRange, wantCode: http.StatusBadRequest},
		{name: "date in past", err: createBooking.ErrDateInPast, wantCode: http.StatusBadRequest},
		{name: "price mismatch", err: createBooking.ErrPriceMismatch, wantCode: http.StatusUnprocessableEntity},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantCode: http.StatusBadRequest},
		{name: "internal error", err: createBooking.ErrInternal, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, body, true)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
