package dto

import (
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
)

// Listing sort orders accepted by the public search
const (
	SortPriceAsc  = "price_asc"
	SortPriceDesc = "price_desc"
	SortDistance  = "distance"
	SortNewest    = "newest"
)

// ListingFilter captures the public search query parameters
type ListingFilter struct {
	Location   string   `form:"location"`
	Status     string   `form:"status"`
	LandlordID *int64   `form:"landlord_id"`
	MinPrice   *float64 `form:"min_price"`
	MaxPrice   *float64 `form:"max_price"`
	MaxDist    *float64 `form:"max_distance"`
	Sort       string   `form:"sort"`
}

// CreateListingRequest is the listing creation payload
type CreateListingRequest struct {
	Title             string   `json:"title" binding:"required"`
	Description       string   `json:"description"`
	Location          string   `json:"location" binding:"required"`
	Price             float64  `json:"price" binding:"required,gt=0"`
	Amenities         string   `json:"amenities"`
	ProximityToCampus *float64 `json:"proximity_to_campus,omitempty"`
	AvailableFrom     *string  `json:"available_from,omitempty"`
}

// UpdateListingRequest is the partial-update payload; nil fields are untouched
type UpdateListingRequest struct {
	Title             *string               `json:"title,omitempty"`
	Description       *string               `json:"description,omitempty"`
	Location          *string               `json:"location,omitempty"`
	Price             *float64              `json:"price,omitempty"`
	Amenities         *string               `json:"amenities,omitempty"`
	ProximityToCampus *float64              `json:"proximity_to_campus,omitempty"`
	AvailableFrom     *string               `json:"available_from,omitempty"`
	Status            *models.ListingStatus `json:"status,omitempty"`
}

// IsEmpty reports whether the update carries no fields
func (r *UpdateListingRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Location == nil &&
		r.Price == nil && r.Amenities == nil && r.ProximityToCampus == nil &&
		r.AvailableFrom == nil && r.Status == nil
}

// CreateListingResponse carries the new listing identifier
type CreateListingResponse struct {
	ListingID int64 `json:"listing_id" example:"7"`
}
