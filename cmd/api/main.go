package main

import (
	"flag"
	"os"

	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/pkg/logger"
	"github.com/Mellisa04m/University-Students-Accommodation-Finder/internal/server"
)

// @title Student Accommodation Finder API
// @version 1.0
// @description REST API connecting university students with verified landlords: listings, bookings, messaging and verification workflows.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:5000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the configuration file")
	migrationsDir := flag.String("migrations", "migrations", "path to the SQL migrations directory")
	flag.Parse()

	srv, err := server.New(*configPath, *migrationsDir)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed")
		os.Exit(1)
	}
}
