package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/models"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/repositories"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/config"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/auth"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
)

// EnsureAdmin creates the default admin account when it does not exist.
// Admin accounts cannot be self-registered, so a fresh install gets exactly
// one from configuration.
func EnsureAdmin(ctx context.Context, pool *pgxpool.Pool, userRepo *repositories.UserRepository, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn().Msg("Admin credentials not configured, skipping admin seed")
		return nil
	}

	existing, err := userRepo.FindByEmail(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username: "admin",
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
		FullName: "Administrator",
	}

	adminID, err := userRepo.Create(ctx, admin)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	if err := userRepo.SetVerified(ctx, pool, adminID); err != nil {
		return fmt.Errorf("failed to verify admin account: %w", err)
	}

	logger.Info().Str("email", cfg.Admin.Email).Msg("Default admin account created")
	return nil
}
