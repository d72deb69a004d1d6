package dto

// AdminStats are the platform-wide dashboard counters
type AdminStats struct {
	TotalUsers           int64 `json:"total_users"`
	TotalListings        int64 `json:"total_listings"`
	TotalBookings        int64 `json:"total_bookings"`
	PendingVerifications int64 `json:"pending_verifications"`
}

// LandlordStats are the per-landlord dashboard counters
type LandlordStats struct {
	MyListings      int64  `json:"my_listings"`
	TotalBookings   int64  `json:"total_bookings"`
	PendingBookings int64  `json:"pending_bookings"`
	TotalRevenue    string `json:"total_revenue"`
}

// StudentStats are the per-student dashboard counters
type StudentStats struct {
	MyBookings        int64 `json:"my_bookings"`
	AvailableListings int64 `json:"available_listings"`
	ConfirmedBookings int64 `json:"confirmed_bookings"`
	PendingBookings   int64 `json:"pending_bookings"`
}
