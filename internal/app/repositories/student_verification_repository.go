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

// StudentVerificationRepository handles database operations for
// landlord-reviewed student verification requests
type StudentVerificationRepository struct {
	db *pgxpool.Pool
}

// NewStudentVerificationRepository creates a new StudentVerificationRepository
func NewStudentVerificationRepository(db *pgxpool.Pool) *StudentVerificationRepository {
	return &StudentVerificationRepository{db: db}
}

// Create inserts a new pending request
func (r *StudentVerificationRepository) Create(ctx context.Context, sv *models.StudentVerification) (int64, error) {
	query := `
		INSERT INTO student_verifications (student_id, landlord_id, document_url, document_type, status)
		VALUES ($1, $2, $3, $4, 'pending')
		RETURNING student_verification_id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		sv.StudentID,
		sv.LandlordID,
		sv.DocumentURL,
		sv.DocumentType,
	).Scan(&sv.ID, &sv.SubmittedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating student verification: %w", err)
	}

	sv.Status = models.ReviewPending
	return sv.ID, nil
}

// HasPendingForPair reports whether the student already has a pending request
// with the landlord.
func (r *StudentVerificationRepository) HasPendingForPair(ctx context.Context, studentID, landlordID int64) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM student_verifications
			WHERE student_id = $1 AND landlord_id = $2 AND status = 'pending'
		)
	`
	if err := r.db.QueryRow(ctx, query, studentID, landlordID).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking pending request: %w", err)
	}
	return exists, nil
}

// GetForLandlord retrieves a request only if it is addressed to the given
// landlord. Returns (nil, nil) for unknown ids and foreign records alike.
func (r *StudentVerificationRepository) GetForLandlord(ctx context.Context, id, landlordID int64) (*models.StudentVerification, error) {
	query := `
		SELECT student_verification_id, student_id, landlord_id, document_url, document_type,
		       status, notes, submitted_at, reviewed_at
		FROM student_verifications
		WHERE student_verification_id = $1 AND landlord_id = $2
	`

	var sv models.StudentVerification
	err := r.db.QueryRow(ctx, query, id, landlordID).Scan(
		&sv.ID,
		&sv.StudentID,
		&sv.LandlordID,
		&sv.DocumentURL,
		&sv.DocumentType,
		&sv.Status,
		&sv.Notes,
		&sv.SubmittedAt,
		&sv.ReviewedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving student verification: %w", err)
	}

	return &sv, nil
}

func (r *StudentVerificationRepository) list(ctx context.Context, join, joinedName, joinedEmail string, where squirrel.Sqlizer, withPhone bool) ([]models.StudentVerificationDetail, error) {
	columns := []string{
		"sv.student_verification_id", "sv.student_id", "sv.landlord_id", "sv.document_url",
		"sv.document_type", "sv.status", "sv.notes", "sv.submitted_at", "sv.reviewed_at",
		joinedName, joinedEmail,
	}
	if withPhone {
		columns = append(columns, "u.phone_number")
	}

	queryBuilder := squirrel.Select(columns...).
		From("student_verifications sv").
		Join(join).
		Where(where).
		OrderBy("sv.submitted_at DESC").
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

	var details []models.StudentVerificationDetail
	for rows.Next() {
		var detail models.StudentVerificationDetail
		var name, email *string
		dest := []any{
			&detail.ID,
			&detail.StudentID,
			&detail.LandlordID,
			&detail.DocumentURL,
			&detail.DocumentType,
			&detail.Status,
			&detail.Notes,
			&detail.SubmittedAt,
			&detail.ReviewedAt,
			&name,
			&email,
		}
		if withPhone {
			dest = append(dest, &detail.StudentPhone)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning student verification row: %w", err)
		}
		if withPhone {
			detail.StudentName = name
			detail.StudentEmail = email
		} else {
			detail.LandlordName = name
			detail.LandlordEmail = email
		}
		details = append(details, detail)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student verification rows: %w", err)
	}

	return details, nil
}

// ListForLandlord retrieves requests addressed to the landlord, optionally
// filtered by status, newest first.
func (r *StudentVerificationRepository) ListForLandlord(ctx context.Context, landlordID int64, status *models.ReviewStatus) ([]models.StudentVerificationDetail, error) {
	where := squirrel.And{squirrel.Expr("sv.landlord_id = ?", landlordID)}
	if status != nil {
		where = append(where, squirrel.Expr("sv.status = ?", *status))
	}
	return r.list(ctx, "users u ON sv.student_id = u.user_id", "u.full_name", "u.email", where, true)
}

// ListForStudent retrieves the student's own requests, newest first
func (r *StudentVerificationRepository) ListForStudent(ctx context.Context, studentID int64) ([]models.StudentVerificationDetail, error) {
	where := squirrel.Expr("sv.student_id = ?", studentID)
	return r.list(ctx, "users u ON sv.landlord_id = u.user_id", "u.full_name", "u.email", where, false)
}

// ReviewIfPending records a review decision guarded on the pending state,
// reporting whether the transition happened.
func (r *StudentVerificationRepository) ReviewIfPending(ctx context.Context, q db.Querier, id int64, status models.ReviewStatus, notes string) (bool, error) {
	result, err := q.Exec(ctx,
		`UPDATE student_verifications SET status = $1, notes = $2, reviewed_at = NOW()
		 WHERE student_verification_id = $3 AND status = 'pending'`,
		status, notes, id,
	)
	if err != nil {
		return false, fmt.Errorf("error reviewing student verification: %w", err)
	}
	return result.RowsAffected() > 0, nil
}
