package services

import (
	"context"
	"fmt"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models/dto"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/apperrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/auth"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/dberrors"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
)

// AuthService handles registration, login and account lookups
type AuthService struct {
	users      UserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(users UserStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new student or landlord account. Admin accounts are
// seeded at startup and cannot be self-registered.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	if !models.IsValidRegistrationRole(req.Role) {
		return nil, apperrors.NewValidationError("role must be student or landlord")
	}

	exists, err := s.users.ExistsWithEmailOrUsername(ctx, req.Email, req.Username)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:    req.Username,
		Email:       req.Email,
		Password:    hashedPassword,
		Role:        req.Role,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
	}

	userID, err := s.users.Create(ctx, user)
	if err != nil {
		// The existence check above races with concurrent registrations;
		// the unique constraint is the authority.
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, err
	}

	logger.Info().Int64("userID", userID).Str("role", string(user.Role)).Msg("User registered")
	return &dto.RegisterResponse{UserID: userID}, nil
}

// Login verifies credentials and issues a signed token
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &dto.LoginResponse{
		Token: token,
		User: dto.LoginUser{
			ID:         user.ID,
			Name:       user.FullName,
			Role:       user.Role,
			Email:      user.Email,
			IsVerified: user.IsVerified,
		},
	}, nil
}

// GetProfile retrieves the caller's own account
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers retrieves all accounts (admin view)
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}
