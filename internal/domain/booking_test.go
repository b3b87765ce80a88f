package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Blocks(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusConfirmed, true},
		{StatusPending, false},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.Blocks())
		})
	}
}

func TestBooking_CanBeCancelled(t *testing.T) {
	tests := []struct {
		status BookingStatus
		want   bool
	}{
		{StatusConfirmed, true},
		{StatusPending, true},
		{StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.want, b.CanBeCancelled())
		})
	}
}

func TestBooking_Overlaps(t *testing.T) {
	b := &Booking{
		StartDate: date(2026, 7, 10),
		EndDate:   date(2026, 7, 15),
	}

	assert.True(t, b.Overlaps(date(2026, 7, 12), date(2026, 7, 20)))
	assert.True(t, b.Overlaps(date(2026, 7, 1), date(2026, 7, 11)))

	// Стыковые диапазоны не конфликтуют
	assert.False(t, b.Overlaps(date(2026, 7, 15), date(2026, 7, 20)))
	assert.False(t, b.Overlaps(date(2026, 7, 1), date(2026, 7, 10)))
}

func TestBooking_Nights(t *testing.T) {
	b := &Booking{
		StartDate: date(2026, 7, 10),
		EndDate:   date(2026, 7, 15),
	}
	assert.Equal(t, 5, b.Nights())
}

func TestVilla_EffectiveRate(t *testing.T) {
	discount := int64(8000)
	zero := int64(0)

	tests := []struct {
		name  string
		villa Villa
		want  int64
	}{
		{
			name:  "no discount",
			villa: Villa{PricePerNight: 10000},
			want:  10000,
		},
		{
			name:  "active discount",
			villa: Villa{PricePerNight: 10000, DiscountPrice: &discount},
			want:  8000,
		},
		{
			name:  "zero discount ignored",
			villa: Villa{PricePerNight: 10000, DiscountPrice: &zero},
			want:  10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.villa.EffectiveRate())
		})
	}
}

func TestVilla_TotalPriceFor(t *testing.T) {
	discount := int64(8000)
	v := Villa{PricePerNight: 10000, DiscountPrice: &discount}

	assert.Equal(t, int64(32000), v.TotalPriceFor(4))
	assert.Equal(t, int64(0), v.TotalPriceFor(0))
}

func TestVilla_IsDiscounted(t *testing.T) {
	discount := int64(8000)
	zero := int64(0)

	assert.False(t, (&Villa{PricePerNight: 10000}).IsDiscounted())
	assert.True(t, (&Villa{PricePerNight: 10000, DiscountPrice: &discount}).IsDiscounted())
	assert.False(t, (&Villa{PricePerNight: 10000, DiscountPrice: &zero}).IsDiscounted())
}

func TestIsValidRating(t *testing.T) {
	for rating := MinRating; rating <= MaxRating; rating++ {
		assert.True(t, IsValidRating(rating), "rating %d", rating)
	}
	assert.False(t, IsValidRating(MinRating-1))
	assert.False(t, IsValidRating(MaxRating+1))
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(-1))
}
