package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
)

// StatsRepository serves the dashboard aggregate counts
type StatsRepository struct {
	db *pgxpool.Pool
}

// NewStatsRepository creates a new StatsRepository
func NewStatsRepository(db *pgxpool.Pool) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("error counting rows: %w", err)
	}
	return n, nil
}

// CountUsers returns the total number of accounts
func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountListings returns the total number of listings
func (r *StatsRepository) CountListings(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM listings`)
}

// CountBookings returns the total number of bookings
func (r *StatsRepository) CountBookings(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings`)
}

// CountPendingVerifications returns how many landlord verifications await review
func (r *StatsRepository) CountPendingVerifications(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM verifications WHERE status = 'pending'`)
}

// CountListingsByLandlord returns how many listings the landlord owns
func (r *StatsRepository) CountListingsByLandlord(ctx context.Context, landlordID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM listings WHERE landlord_id = $1`, landlordID)
}

// CountBookingsByLandlord returns how many bookings target the landlord's listings
func (r *StatsRepository) CountBookingsByLandlord(ctx context.Context, landlordID int64) (int64, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM bookings b
		JOIN listings l ON b.listing_id = l.listing_id
		WHERE l.landlord_id = $1`, landlordID)
}

// CountBookingsByLandlordWithStatus filters the landlord's bookings by status
func (r *StatsRepository) CountBookingsByLandlordWithStatus(ctx context.Context, landlordID int64, status models.BookingStatus) (int64, error) {
	return r.count(ctx, `
		SELECT COUNT(*) FROM bookings b
		JOIN listings l ON b.listing_id = l.listing_id
		WHERE l.landlord_id = $1 AND b.status = $2`, landlordID, status)
}

// SumConfirmedRevenueByLandlord totals the listing price of every confirmed
// booking against the landlord's listings.
func (r *StatsRepository) SumConfirmedRevenueByLandlord(ctx context.Context, landlordID int64) (float64, error) {
	var total float64
	query := `
		SELECT COALESCE(SUM(l.price), 0) FROM bookings b
		JOIN listings l ON b.listing_id = l.listing_id
		WHERE l.landlord_id = $1 AND b.status = 'confirmed'
	`
	if err := r.db.QueryRow(ctx, query, landlordID).Scan(&total); err != nil {
		return 0, fmt.Errorf("error summing revenue: %w", err)
	}
	return total, nil
}

// CountBookingsByStudent returns how many bookings the student has made
func (r *StatsRepository) CountBookingsByStudent(ctx context.Context, studentID int64) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE student_id = $1`, studentID)
}

// CountBookingsByStudentWithStatus filters the student's bookings by status
func (r *StatsRepository) CountBookingsByStudentWithStatus(ctx context.Context, studentID int64, status models.BookingStatus) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM bookings WHERE student_id = $1 AND status = $2`, studentID, status)
}

// CountAvailableListings returns how many verified listings are open for booking
func (r *StatsRepository) CountAvailableListings(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM listings WHERE is_verified AND status = 'available'`)
}
