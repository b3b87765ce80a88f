package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a villa stay reservation.
// StartDate and EndDate form a half-open interval [StartDate, EndDate):
// the checkout date is free for the next guest's check-in.
type Booking struct {
	ID         string
	VillaID    string
	UserID     string
	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
	Status     BookingStatus

	// HasReviewed is set once, when a review referencing this booking is recorded
	HasReviewed bool

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Blocks returns true if the booking occupies its date range.
// Only confirmed bookings participate in availability checks;
// pending and cancelled bookings never block new confirmations.
func (b *Booking) Blocks() bool {
	return b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can transition to cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Nights returns the number of nights of the stay
func (b *Booking) Nights() int {
	return Nights(b.StartDate, b.EndDate)
}

// Overlaps reports whether the booking's date range overlaps [start, end)
func (b *Booking) Overlaps(start, end time.Time) bool {
	return RangesOverlap(start, end, b.StartDate, b.EndDate)
}
