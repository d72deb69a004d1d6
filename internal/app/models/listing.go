package models

import (
	"time"
)

// ListingStatus enumerates listing availability states
type ListingStatus string

const (
	ListingAvailable   ListingStatus = "available"
	ListingBooked      ListingStatus = "booked"
	ListingUnavailable ListingStatus = "unavailable"
)

// Listing defines the listing model based on the 'listings' table.
// A listing is only visible in public search once an admin sets is_verified.
type Listing struct {
	ID                int64         `json:"listing_id" db:"listing_id"`
	LandlordID        int64         `json:"landlord_id" db:"landlord_id"`
	Title             string        `json:"title" db:"title"`
	Description       string        `json:"description" db:"description"`
	Location          string        `json:"location" db:"location"`
	Price             float64       `json:"price" db:"price"`
	Amenities         string        `json:"amenities" db:"amenities"`
	ProximityToCampus *float64      `json:"proximity_to_campus,omitempty" db:"proximity_to_campus"`
	AvailableFrom     *time.Time    `json:"available_from,omitempty" db:"available_from"`
	Status            ListingStatus `json:"status" db:"status"`
	IsVerified        bool          `json:"is_verified" db:"is_verified"`
	CreatedAt         time.Time     `json:"created_at" db:"created_at"`
}

// ListingDetail is a listing joined with landlord contact details
type ListingDetail struct {
	Listing
	LandlordName  string  `json:"landlord_name"`
	LandlordPhone *string `json:"landlord_phone,omitempty"`
	LandlordEmail *string `json:"landlord_email,omitempty"`
}
