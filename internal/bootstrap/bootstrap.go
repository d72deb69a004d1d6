// Package bootstrap wires configuration, storage and the HTTP surface together
package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/controllers"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/migrations"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/repositories"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/routes"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/app/services"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/config"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/db"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/middleware"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/auth"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/helpers"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/seed"
)

// LoadConfig reads configuration and configures the global logger
func LoadConfig(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format == "console" || cfg.IsDevelopment(),
	})

	return cfg, nil
}

// SetupDatabase connects the pool and applies pending migrations
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	if migrationsDir != "" {
		migrator := migrations.NewMigrator(database.Pool)
		if err := migrator.ApplyDirectory(ctx, migrationsDir); err != nil {
			database.Close()
			return nil, err
		}
	}

	return database, nil
}

// BuildRouter assembles repositories, services, controllers and routes
func BuildRouter(ctx context.Context, cfg *config.Config, database *db.PostgresDB) (*gin.Engine, error) {
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	repos := repositories.NewRepositories(database.Pool)
	svcs := services.NewServices(repos, database, jwtService)

	if err := seed.EnsureAdmin(ctx, database.Pool, repos.UserRepository, cfg); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery())

	routes.SetupRouter(router, &routes.Controllers{
		Auth:         controllers.NewAuthController(svcs.AuthService),
		User:         controllers.NewUserController(svcs.AuthService),
		Listing:      controllers.NewListingController(svcs.ListingService),
		Booking:      controllers.NewBookingController(svcs.BookingService),
		Message:      controllers.NewMessageController(svcs.MessageService),
		Verification: controllers.NewVerificationController(svcs.VerificationService),
		Dashboard:    controllers.NewDashboardController(svcs.DashboardService),
		System:       controllers.NewSystemController(database.Pool),
	}, middleware.NewAuthMiddleware(jwtService))

	return router, nil
}
