package dto

// CreateBookingRequest is the booking creation payload
type CreateBookingRequest struct {
	ListingID   int64  `json:"listing_id" binding:"required"`
	BookingDate string `json:"booking_date" binding:"required"`
}

// CreateBookingResponse carries the new booking identifier
type CreateBookingResponse struct {
	BookingID int64 `json:"booking_id" example:"13"`
}
