package models

import (
	"time"
)

// BookingStatus enumerates booking lifecycle states
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking defines the booking model based on the 'bookings' table
type Booking struct {
	ID          int64         `json:"booking_id" db:"booking_id"`
	StudentID   int64         `json:"student_id" db:"student_id"`
	ListingID   int64         `json:"listing_id" db:"listing_id"`
	BookingDate time.Time     `json:"booking_date" db:"booking_date"`
	Status      BookingStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
}

// BookingDetail is a booking joined with listing and party display fields
type BookingDetail struct {
	Booking
	ListingTitle    string  `json:"listing_title"`
	ListingLocation string  `json:"listing_location"`
	ListingPrice    float64 `json:"listing_price"`
	StudentName     string  `json:"student_name"`
	StudentEmail    string  `json:"student_email"`
	StudentPhone    *string `json:"student_phone,omitempty"`
	LandlordName    string  `json:"landlord_name"`
}

// BookingOwnership carries the fields needed for authorization decisions on
// a booking: the booking itself plus the owning landlord of its listing.
type BookingOwnership struct {
	Booking
	LandlordID int64 `json:"landlord_id" db:"landlord_id"`
}
