package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `user_id, username, email, password_hash, role, full_name, phone_number, is_verified, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FullName,
		&user.PhoneNumber,
		&user.IsVerified,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error scanning user row: %w", err)
	}
	return &user, nil
}

// Create inserts a new user and fills in the generated identifier
func (r *UserRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	query := `
		INSERT INTO users (username, email, password_hash, role, full_name, phone_number, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE)
		RETURNING user_id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		user.Username,
		user.Email,
		user.Password,
		user.Role,
		user.FullName,
		user.PhoneNumber,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("error creating user: %w", err)
	}

	return user.ID, nil
}

// FindByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(r.db.QueryRow(ctx, query, email))
}

// FindByID retrieves a user by id. Returns (nil, nil) when absent.
func (r *UserRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return scanUser(r.db.QueryRow(ctx, query, id))
}

// ExistsWithEmailOrUsername checks registration uniqueness
func (r *UserRepository) ExistsWithEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`
	if err := r.db.QueryRow(ctx, query, email, username).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking user existence: %w", err)
	}
	return exists, nil
}

// ExistsWithRole checks that a user exists and holds the given role
func (r *UserRepository) ExistsWithRole(ctx context.Context, id int64, role models.RoleType) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM users WHERE user_id = $1 AND role = $2)`
	if err := r.db.QueryRow(ctx, query, id, role).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking user role: %w", err)
	}
	return exists, nil
}

// List retrieves all users, newest first
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.Password,
			&user.Role,
			&user.FullName,
			&user.PhoneNumber,
			&user.IsVerified,
			&user.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning user row: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}

	return users, nil
}

// IsVerified re-reads the verification flag from the store. Capability gates
// must not trust the flag embedded in a previously issued token.
func (r *UserRepository) IsVerified(ctx context.Context, id int64) (bool, error) {
	var verified bool
	query := `SELECT is_verified FROM users WHERE user_id = $1`
	err := r.db.QueryRow(ctx, query, id).Scan(&verified)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("error reading verification flag: %w", err)
	}
	return verified, nil
}

// SetVerified marks a user verified. It accepts a Querier so the write can
// join the transaction that records the approving review.
func (r *UserRepository) SetVerified(ctx context.Context, q db.Querier, id int64) error {
	_, err := q.Exec(ctx, `UPDATE users SET is_verified = TRUE WHERE user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("error setting verification flag: %w", err)
	}
	return nil
}
