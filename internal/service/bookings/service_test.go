package bookings

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
	bookingRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/booking"
	userRepo "github.com/m04kA/AGIA-RentalService/internal/infra/storage/user"
	"github.com/m04kA/AGIA-RentalService/internal/service/bookings/models"
	"github.com/m04kA/AGIA-RentalService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings map[string]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id string) (*domain.Booking, error) {
	booking, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return booking, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id string, reason string) error {
	booking, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	booking.Status = domain.StatusCancelled
	booking.CancellationReason = ptr.Ptr(reason)
	booking.CancelledAt = ptr.Ptr(time.Now())
	return nil
}

type fakeUserRepo struct {
	users map[string]*domain.User
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, userRepo.ErrUserNotFound
	}
	return user, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*Service, *fakeBookingRepo) {
	bookings := &fakeBookingRepo{bookings: map[string]*domain.Booking{
		"booking-1": {
			ID:        "booking-1",
			VillaID:   "villa-1",
			UserID:    "user-1",
			StartDate: date(2026, 6, 10),
			EndDate:   date(2026, 6, 14),
			Status:    domain.StatusConfirmed,
		},
	}}
	users := &fakeUserRepo{users: map[string]*domain.User{
		"user-1": {ID: "user-1", Role: domain.RoleUser},
		"user-2": {ID: "user-2", Role: domain.RoleUser},
		"admin":  {ID: "admin", Role: domain.RoleAdmin},
	}}
	return NewService(bookings, users, nopLogger{}), bookings
}

func TestService_GetByID_Access(t *testing.T) {
	tests := []struct {
		name    string
		userID  string
		wantErr error
	}{
		{name: "owner", userID: "user-1"},
		{name: "admin", userID: "admin"},
		{name: "stranger", userID: "user-2", wantErr: ErrAccessDenied},
		{name: "unknown user", userID: "ghost", wantErr: ErrAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService()

			resp, err := svc.GetByID(context.Background(), "booking-1", tt.userID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "booking-1", resp.ID)
			assert.Equal(t, 4, resp.Nights)
		})
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID(context.Background(), "missing", "user-1")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_Cancel(t *testing.T) {
	svc, bookings := newTestService()

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
		UserID:             "user-1",
		CancellationReason: "change of plans",
	})
	require.NoError(t, err)

	cancelled := bookings.bookings["booking-1"]
	assert.Equal(t, domain.StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancellationReason)
	assert.Equal(t, "change of plans", *cancelled.CancellationReason)
	assert.NotNil(t, cancelled.CancelledAt)
}

func TestService_Cancel_AdminCanCancelAny(t *testing.T) {
	svc, bookings := newTestService()

	err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "admin"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, bookings.bookings["booking-1"].Status)
}

func TestService_Cancel_Errors(t *testing.T) {
	t.Run("stranger denied", func(t *testing.T) {
		svc, bookings := newTestService()

		err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "user-2"})
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusConfirmed, bookings.bookings["booking-1"].Status)
	})

	t.Run("not found", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Cancel(context.Background(), "missing", &models.CancelBookingRequest{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("reason too long", func(t *testing.T) {
		svc, _ := newTestService()

		err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{
			UserID:             "user-1",
			CancellationReason: strings.Repeat("x", domain.MaxCancellationReasonLength+1),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("already cancelled", func(t *testing.T) {
		svc, bookings := newTestService()
		bookings.bookings["booking-1"].Status = domain.StatusCancelled

		err := svc.Cancel(context.Background(), "booking-1", &models.CancelBookingRequest{UserID: "user-1"})
		assert.ErrorIs(t, err, ErrCannotCancel)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	svc, bookings := newTestService()
	bookings.bookings["booking-2"] = &domain.Booking{
		ID:      "booking-2",
		VillaID: "villa-2",
		UserID:  "user-2",
		Status:  domain.StatusConfirmed,
	}

	resp, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "booking-1", resp.Bookings[0].ID)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
