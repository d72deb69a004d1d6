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

// VerificationRepository handles database operations for landlord verifications
type VerificationRepository struct {
	db *pgxpool.Pool
}

// NewVerificationRepository creates a new VerificationRepository
func NewVerificationRepository(db *pgxpool.Pool) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Create inserts a new pending verification
func (r *VerificationRepository) Create(ctx context.Context, verification *models.Verification) (int64, error) {
	query := `
		INSERT INTO verifications (user_id, verification_type, document_url, status)
		VALUES ($1, $2, $3, 'pending')
		RETURNING verification_id
	`

	err := r.db.QueryRow(ctx, query,
		verification.UserID,
		verification.Type,
		verification.DocumentURL,
	).Scan(&verification.ID)
	if err != nil {
		return 0, fmt.Errorf("error creating verification: %w", err)
	}

	verification.Status = models.ReviewPending
	return verification.ID, nil
}

// ActiveStatusOfType returns the status of an existing pending or approved
// record for (user, type), or nil when none exists.
func (r *VerificationRepository) ActiveStatusOfType(ctx context.Context, userID int64, vtype models.VerificationType) (*models.ReviewStatus, error) {
	var status models.ReviewStatus
	query := `
		SELECT status FROM verifications
		WHERE user_id = $1 AND verification_type = $2 AND status IN ('pending', 'approved')
		LIMIT 1
	`
	err := r.db.QueryRow(ctx, query, userID, vtype).Scan(&status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error checking existing verification: %w", err)
	}
	return &status, nil
}

// GetByID retrieves a verification record. Returns (nil, nil) when absent.
func (r *VerificationRepository) GetByID(ctx context.Context, id int64) (*models.Verification, error) {
	query := `
		SELECT verification_id, user_id, verification_type, document_url, status, verified_by, verified_at
		FROM verifications
		WHERE verification_id = $1
	`

	var verification models.Verification
	err := r.db.QueryRow(ctx, query, id).Scan(
		&verification.ID,
		&verification.UserID,
		&verification.Type,
		&verification.DocumentURL,
		&verification.Status,
		&verification.VerifiedBy,
		&verification.VerifiedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving verification: %w", err)
	}

	return &verification, nil
}

func (r *VerificationRepository) listDetails(ctx context.Context, where squirrel.Sqlizer) ([]models.VerificationDetail, error) {
	queryBuilder := squirrel.Select(
		"v.verification_id", "v.user_id", "v.verification_type", "v.document_url",
		"v.status", "v.verified_by", "v.verified_at",
		"u.full_name", "u.email", "u.username", "u.phone_number", "u.created_at",
		"reviewer.full_name",
	).
		From("verifications v").
		Join("users u ON v.user_id = u.user_id").
		LeftJoin("users reviewer ON v.verified_by = reviewer.user_id").
		Where(where).
		OrderBy("v.verification_id DESC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building SQL: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	var details []models.VerificationDetail
	for rows.Next() {
		var detail models.VerificationDetail
		err := rows.Scan(
			&detail.ID,
			&detail.UserID,
			&detail.Type,
			&detail.DocumentURL,
			&detail.Status,
			&detail.VerifiedBy,
			&detail.VerifiedAt,
			&detail.FullName,
			&detail.Email,
			&detail.Username,
			&detail.PhoneNumber,
			&detail.UserCreatedAt,
			&detail.VerifiedByName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning verification row: %w", err)
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating verification rows: %w", err)
	}

	return details, nil
}

// ListByUser retrieves a landlord's own submissions, newest first
func (r *VerificationRepository) ListByUser(ctx context.Context, userID int64) ([]models.VerificationDetail, error) {
	return r.listDetails(ctx, squirrel.Expr("v.user_id = ?", userID))
}

// ListWithStatus retrieves all verifications in a given state (admin view)
func (r *VerificationRepository) ListWithStatus(ctx context.Context, status models.ReviewStatus) ([]models.VerificationDetail, error) {
	return r.listDetails(ctx, squirrel.Expr("v.status = ?", status))
}

// ReviewIfPending records a review decision guarded on the pending state,
// reporting whether the transition happened.
func (r *VerificationRepository) ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, reviewerID int64) (bool, error) {
	result, err := q.Exec(ctx,
		`UPDATE verifications SET status = $1, verified_by = $2, verified_at = NOW()
		 WHERE verification_id = $3 AND status = 'pending'`,
		status, reviewerID, id,
	)
	if err != nil {
		return false, fmt.Errorf("error reviewing verification: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
