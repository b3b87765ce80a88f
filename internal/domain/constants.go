package domain

// Review rating scale
const (
	MinRating = 1
	MaxRating = 5
)

// Business validation constants
const (
	MaxCommentLength            = 1000
	MaxCancellationReasonLength = 500
	MaxNameLength               = 200
	MaxLocationLength           = 100
)

// Defaults for users created through the login flow
const (
	DefaultAvatar   = "/images/default-avatar.svg"
	DefaultPassword = "password123"
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses lists booking statuses that occupy a villa's date range.
// Used when filtering bookings for availability checks.
var BlockingStatuses = []BookingStatus{
	StatusConfirmed,
}
