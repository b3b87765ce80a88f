package domain

import "time"

// Review represents a guest review of a villa.
// UserName and UserAvatar are denormalized at creation time so review
// listings do not depend on the users table.
type Review struct {
	ID      string
	VillaID string
	UserID  string

	// BookingID links the review to the stay it describes (optional)
	BookingID *string

	UserName   string
	UserAvatar string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// IsValidRating returns true if the rating is within the allowed scale
func IsValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
