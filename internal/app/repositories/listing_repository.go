package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
)

// ListingRepository handles database operations for listings
type ListingRepository struct {
	db *pgxpool.Pool
}

// NewListingRepository creates a new ListingRepository
func NewListingRepository(db *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{db: db}
}

var listingDetailColumns = []string{
	"l.listing_id", "l.landlord_id", "l.title", "l.description", "l.location",
	"l.price", "l.amenities", "l.proximity_to_campus", "l.available_from",
	"l.status", "l.is_verified", "l.created_at",
	"u.full_name", "u.phone_number",
}

func scanListingDetail(rows pgx.Rows) (*models.ListingDetail, error) {
	var detail models.ListingDetail
	err := rows.Scan(
		&detail.ID,
		&detail.LandlordID,
		&detail.Title,
		&detail.Description,
		&detail.Location,
		&detail.Price,
		&detail.Amenities,
		&detail.ProximityToCampus,
		&detail.AvailableFrom,
		&detail.Status,
		&detail.IsVerified,
		&detail.CreatedAt,
		&detail.LandlordName,
		&detail.LandlordPhone,
	)
	if err != nil {
		return nil, fmt.Errorf("error scanning listing row: %w", err)
	}
	return &detail, nil
}

// Create inserts a new listing. New listings start unverified and available.
func (r *ListingRepository) Create(ctx context.Context, listing *models.Listing) (int64, error) {
	query := `
		INSERT INTO listings (
			landlord_id, title, description, location, price,
			amenities, proximity_to_campus, available_from, status, is_verified
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 'available', FALSE)
		RETURNING listing_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		listing.LandlordID,
		listing.Title,
		listing.Description,
		listing.Location,
		listing.Price,
		listing.Amenities,
		listing.ProximityToCampus,
		listing.AvailableFrom,
	).Scan(&listing.ID, &listing.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating listing: %w", err)
	}

	return listing.ID, nil
}

// GetDetailByID retrieves a listing with landlord contact details
func (r *ListingRepository) GetDetailByID(ctx context.Context, id int64) (*models.ListingDetail, error) {
	query := `
		SELECT l.listing_id, l.landlord_id, l.title, l.description, l.location,
		       l.price, l.amenities, l.proximity_to_campus, l.available_from,
		       l.status, l.is_verified, l.created_at,
		       u.full_name, u.phone_number, u.email
		FROM listings l
		JOIN users u ON l.landlord_id = u.user_id
		WHERE l.listing_id = $1
	`

	var detail models.ListingDetail
	err := r.db.QueryRow(ctx, query, id).Scan(
		&detail.ID,
		&detail.LandlordID,
		&detail.Title,
		&detail.Description,
		&detail.Location,
		&detail.Price,
		&detail.Amenities,
		&detail.ProximityToCampus,
		&detail.AvailableFrom,
		&detail.Status,
		&detail.IsVerified,
		&detail.CreatedAt,
		&detail.LandlordName,
		&detail.LandlordPhone,
		&detail.LandlordEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving listing: %w", err)
	}

	return &detail, nil
}

// GetForLandlord retrieves a listing only if it belongs to the given landlord.
// Returns (nil, nil) both for unknown ids and foreign ownership, so callers
// cannot distinguish the two.
func (r *ListingRepository) GetForLandlord(ctx context.Context, id, landlordID int64) (*models.Listing, error) {
	query := `
		SELECT listing_id, landlord_id, title, description, location, price,
		       amenities, proximity_to_campus, available_from, status, is_verified, created_at
		FROM listings
		WHERE listing_id = $1 AND landlord_id = $2
	`

	var listing models.Listing
	err := r.db.QueryRow(ctx, query, id, landlordID).Scan(
		&listing.ID,
		&listing.LandlordID,
		&listing.Title,
		&listing.Description,
		&listing.Location,
		&listing.Price,
		&listing.Amenities,
		&listing.ProximityToCampus,
		&listing.AvailableFrom,
		&listing.Status,
		&listing.IsVerified,
		&listing.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving listing: %w", err)
	}

	return &listing, nil
}

// Search retrieves verified listings matching the public filters
func (r *ListingRepository) Search(ctx context.Context, filter *dto.ListingFilter) ([]models.ListingDetail, error) {
	queryBuilder := squirrel.Select(listingDetailColumns...).
		From("listings l").
		Join("users u ON l.landlord_id = u.user_id").
		Where("l.is_verified").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Status != "" {
		queryBuilder = queryBuilder.Where("l.status = ?", filter.Status)
	}
	if filter.Location != "" {
		queryBuilder = queryBuilder.Where("l.location ILIKE ?", "%"+filter.Location+"%")
	}
	if filter.LandlordID != nil {
		queryBuilder = queryBuilder.Where("l.landlord_id = ?", *filter.LandlordID)
	}
	if filter.MinPrice != nil {
		queryBuilder = queryBuilder.Where("l.price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		queryBuilder = queryBuilder.Where("l.price <= ?", *filter.MaxPrice)
	}
	if filter.MaxDist != nil {
		queryBuilder = queryBuilder.Where("l.proximity_to_campus <= ?", *filter.MaxDist)
	}

	switch filter.Sort {
	case dto.SortPriceAsc:
		queryBuilder = queryBuilder.OrderBy("l.price ASC")
	case dto.SortPriceDesc:
		queryBuilder = queryBuilder.OrderBy("l.price DESC")
	case dto.SortDistance:
		queryBuilder = queryBuilder.OrderBy("l.proximity_to_campus ASC")
	default:
		queryBuilder = queryBuilder.OrderBy("l.created_at DESC")
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.queryListingDetails(ctx, sql, args...)
}

// TextSearch retrieves verified listings matching a free-text term
func (r *ListingRepository) TextSearch(ctx context.Context, term string, limit uint64) ([]models.ListingDetail, error) {
	pattern := "%" + term + "%"
	queryBuilder := squirrel.Select(listingDetailColumns...).
		From("listings l").
		Join("users u ON l.landlord_id = u.user_id").
		Where("l.is_verified").
		Where(squirrel.Or{
			squirrel.Expr("l.title ILIKE ?", pattern),
			squirrel.Expr("l.description ILIKE ?", pattern),
			squirrel.Expr("l.location ILIKE ?", pattern),
			squirrel.Expr("l.amenities ILIKE ?", pattern),
		}).
		OrderBy("l.created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	return r.queryListingDetails(ctx, sql, args...)
}

func (r *ListingRepository) queryListingDetails(ctx context.Context, sql string, args ...any) ([]models.ListingDetail, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var listings []models.ListingDetail
	for rows.Next() {
		detail, err := scanListingDetail(rows)
		if err != nil {
			return nil, err
		}
		listings = append(listings, *detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating listing rows: %w", err)
	}

	return listings, nil
}

// Update applies a partial update; nil request fields are left untouched
func (r *ListingRepository) Update(ctx context.Context, id int64, req *dto.UpdateListingRequest) error {
	queryBuilder := squirrel.Update("listings").
		Where("listing_id = ?", id).
		PlaceholderFormat(squirrel.Dollar)

	if req.Title != nil {
		queryBuilder = queryBuilder.Set("title", *req.Title)
	}
	if req.Description != nil {
		queryBuilder = queryBuilder.Set("description", *req.Description)
	}
	if req.Location != nil {
		queryBuilder = queryBuilder.Set("location", *req.Location)
	}
	if req.Price != nil {
		queryBuilder = queryBuilder.Set("price", *req.Price)
	}
	if req.Amenities != nil {
		queryBuilder = queryBuilder.Set("amenities", *req.Amenities)
	}
	if req.ProximityToCampus != nil {
		queryBuilder = queryBuilder.Set("proximity_to_campus", *req.ProximityToCampus)
	}
	if req.AvailableFrom != nil {
		queryBuilder = queryBuilder.Set("available_from", *req.AvailableFrom)
	}
	if req.Status != nil {
		queryBuilder = queryBuilder.Set("status", *req.Status)
	}

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("error building SQL: %w", err)
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error updating listing: %w", err)
	}

	return nil
}

// Delete removes a listing
func (r *ListingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM listings WHERE listing_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting listing: %w", err)
	}
	if result.RowsAffected() == 0 {
		return fmt.Errorf("no listing found with ID %d", id)
	}
	return nil
}

// MarkVerified flips the admin verification flag. Returns false when the
// listing does not exist.
func (r *ListingRepository) MarkVerified(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.Exec(ctx, `UPDATE listings SET is_verified = TRUE WHERE listing_id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("error verifying listing: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// UpdateStatusIf performs a guarded status transition, reporting whether the
// precondition still held. The affected-row check doubles as the concurrency
// guard for racing bookings.
func (r *ListingRepository) UpdateStatusIf(ctx context.Context, q db.Querier, id int64, from, to models.ListingStatus) (bool, error) {
	result, err := q.Exec(ctx,
		`UPDATE listings SET status = $1 WHERE listing_id = $2 AND status = $3`,
		to, id, from,
	)
	if err != nil {
		return false, fmt.Errorf("error updating listing status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// SetStatus performs an unconditional status transition
func (r *ListingRepository) SetStatus(ctx context.Context, q db.Querier, id int64, to models.ListingStatus) error {
	_, err := q.Exec(ctx, `UPDATE listings SET status = $1 WHERE listing_id = $2`, to, id)
	if err != nil {
		return fmt.Errorf("error updating listing status: %w", err)
	}
	return nil
}
