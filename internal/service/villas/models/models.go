package models

import (
	"time"

	"github.com/m04kA/AGIA-RentalService/internal/domain"
)

// Request модели

// SaveVillaRequest данные виллы для создания или обновления
type SaveVillaRequest struct {
	UserID        string     `json:"-"`
	Name          string     `json:"name" validate:"required,max=200"`
	Location      string     `json:"location" validate:"required,max=100"`
	PricePerNight int64      `json:"pricePerNight" validate:"required,gt=0"`
	DiscountPrice *int64     `json:"discountPrice,omitempty" validate:"omitempty,gte=0"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Capacity      int        `json:"capacity" validate:"required,gt=0"`
	Bedrooms      int        `json:"bedrooms" validate:"required,gt=0"`
	Coordinates   [2]float64 `json:"coordinates"` // [широта, долгота]
}

// ToDomainVilla конвертирует request в domain модель
func (r *SaveVillaRequest) ToDomainVilla() *domain.Villa {
	return &domain.Villa{
		Name:          r.Name,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		DiscountPrice: r.DiscountPrice,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		Capacity:      r.Capacity,
		Bedrooms:      r.Bedrooms,
		Latitude:      r.Coordinates[0],
		Longitude:     r.Coordinates[1],
	}
}

// Response модели

// VillaResponse ответ с данными виллы
type VillaResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Location      string     `json:"location"`
	PricePerNight int64      `json:"pricePerNight"`
	DiscountPrice *int64     `json:"discountPrice,omitempty"`
	Description   string     `json:"description"`
	ImageURL      string     `json:"imageUrl"`
	Capacity      int        `json:"capacity"`
	Bedrooms      int        `json:"bedrooms"`
	Coordinates   [2]float64 `json:"coordinates"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// VillaListResponse ответ со списком вилл
type VillaListResponse struct {
	Villas []VillaResponse `json:"villas"`
}

// FromDomainVilla конвертирует domain модель в DTO
func FromDomainVilla(v *domain.Villa) *VillaResponse {
	if v == nil {
		return nil
	}

	return &VillaResponse{
		ID:            v.ID,
		Name:          v.Name,
		Location:      v.Location,
		PricePerNight: v.PricePerNight,
		DiscountPrice: v.DiscountPrice,
		Description:   v.Description,
		ImageURL:      v.ImageURL,
		Capacity:      v.Capacity,
		Bedrooms:      v.Bedrooms,
		Coordinates:   [2]float64{v.Latitude, v.Longitude},
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

// FromDomainVillaList конвертирует список domain моделей в DTO
func FromDomainVillaList(villas []*domain.Villa) *VillaListResponse {
	resp := &VillaListResponse{
		Villas: make([]VillaResponse, 0, len(villas)),
	}

	for _, villa := range villas {
		if villaResp := FromDomainVilla(villa); villaResp != nil {
			resp.Villas = append(resp.Villas, *villaResp)
		}
	}

	return resp
}
