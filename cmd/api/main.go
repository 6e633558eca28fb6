package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/shinystarlight00/papi2/internal/pkg/logger"
	"github.com/shinystarlight00/papi2/internal/server"
)

// @title HELPthing API
// @version 1.0
// @description Expert and chapter management API for the HELPthing platform

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /v1
// @schemes http https

func main() {
	// Load .env if present; environment overrides config file values
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, using existing environment")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal is received
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
