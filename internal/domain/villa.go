package domain

import "time"

// Villa represents a rental property in the catalog
type Villa struct {
	ID            string
	Name          string
	Location      string
	PricePerNight int64
	DiscountPrice *int64
	Description   string
	ImageURL      string
	Capacity      int
	Bedrooms      int
	Latitude      float64
	Longitude     float64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// EffectiveRate returns the nightly price actually charged:
// the discount price when active, otherwise the standard price
func (v *Villa) EffectiveRate() int64 {
	if v.IsDiscounted() {
		return *v.DiscountPrice
	}
	return v.PricePerNight
}

// IsDiscounted returns true if the villa has an active discount
func (v *Villa) IsDiscounted() bool {
	return v.DiscountPrice != nil && *v.DiscountPrice > 0
}

// TotalPriceFor returns the stay price for the given number of nights
func (v *Villa) TotalPriceFor(nights int) int64 {
	return int64(nights) * v.EffectiveRate()
}
