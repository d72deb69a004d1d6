package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
)

// BookingRepository handles database operations for bookings
type BookingRepository struct {
	db *pgxpool.Pool
}

// NewBookingRepository creates a new BookingRepository
func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a new pending booking. It accepts a Querier so the insert
// can share a transaction with the listing status flip.
func (r *BookingRepository) Create(ctx context.Context, q db.Querier, booking *models.Booking) (int64, error) {
	query := `
		INSERT INTO bookings (student_id, listing_id, booking_date, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING booking_id, created_at
	`

	err := q.QueryRow(ctx, query,
		booking.StudentID,
		booking.ListingID,
		booking.BookingDate,
	).Scan(&booking.ID, &booking.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating booking: %w", err)
	}

	booking.Status = models.BookingPending
	return booking.ID, nil
}

// GetOwnership retrieves a booking together with the owning landlord of its
// listing. Returns (nil, nil) when absent.
func (r *BookingRepository) GetOwnership(ctx context.Context, id int64) (*models.BookingOwnership, error) {
	query := `
		SELECT b.booking_id, b.student_id, b.listing_id, b.booking_date, b.status, b.created_at,
		       l.landlord_id
		FROM bookings b
		JOIN listings l ON b.listing_id = l.listing_id
		WHERE b.booking_id = $1
	`

	var ownership models.BookingOwnership
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ownership.ID,
		&ownership.StudentID,
		&ownership.ListingID,
		&ownership.BookingDate,
		&ownership.Status,
		&ownership.CreatedAt,
		&ownership.LandlordID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving booking: %w", err)
	}

	return &ownership, nil
}

// HasActiveForPair reports whether the student already holds a non-cancelled
// booking on the listing.
func (r *BookingRepository) HasActiveForPair(ctx context.Context, studentID, listingID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE student_id = $1 AND listing_id = $2 AND status <> 'cancelled'
		)
	`
	if err := r.db.QueryRow(ctx, query, studentID, listingID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking existing booking: %w", err)
	}
	return exists, nil
}

func (r *BookingRepository) listDetails(ctx context.Context, where squirrel.Sqlizer) ([]models.BookingDetail, error) {
	queryBuilder := squirrel.Select(
		"b.booking_id", "b.student_id", "b.listing_id", "b.booking_date", "b.status", "b.created_at",
		"l.title", "l.location", "l.price",
		"s.full_name", "s.email", "s.phone_number",
		"u.full_name",
	).
		From("bookings b").
		Join("listings l ON b.listing_id = l.listing_id").
		Join("users s ON b.student_id = s.user_id").
		Join("users u ON l.landlord_id = u.user_id").
		OrderBy("b.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var bookings []models.BookingDetail
	for rows.Next() {
		var detail models.BookingDetail
		err := rows.Scan(
			&detail.ID,
			&detail.StudentID,
			&detail.ListingID,
			&detail.BookingDate,
			&detail.Status,
			&detail.CreatedAt,
			&detail.ListingTitle,
			&detail.ListingLocation,
			&detail.ListingPrice,
			&detail.StudentName,
			&detail.StudentEmail,
			&detail.StudentPhone,
			&detail.LandlordName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return bookings, nil
}

// ListForStudent retrieves the student's bookings, newest first
func (r *BookingRepository) ListForStudent(ctx context.Context, studentID int64) ([]models.BookingDetail, error) {
	return r.listDetails(ctx, squirrel.Expr("b.student_id = ?", studentID))
}

// ListForLandlord retrieves bookings against the landlord's listings
func (r *BookingRepository) ListForLandlord(ctx context.Context, landlordID int64) ([]models.BookingDetail, error) {
	return r.listDetails(ctx, squirrel.Expr("l.landlord_id = ?", landlordID))
}

// ListAll retrieves every booking (admin view)
func (r *BookingRepository) ListAll(ctx context.Context) ([]models.BookingDetail, error) {
	return r.listDetails(ctx, nil)
}

// SetStatusIfNot performs a guarded status transition, refusing the update if
// the booking is already in the target-excluded state.
func (r *BookingRepository) SetStatusIfNot(ctx context.Context, q db.Querier, id int64, not, to models.BookingStatus) (bool, error) {
	result, err := q.Exec(ctx,
		`UPDATE bookings SET status = $1 WHERE booking_id = $2 AND status <> $3`,
		to, id, not,
	)
	if err != nil {
		return false, fmt.Errorf("error updating booking status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
