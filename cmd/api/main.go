// @title           CampusHub API
// @version         1.0
// @description     Campus complaint, helpdesk and engagement platform API.

// @contact.name   CampusHub Team

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"os"

	"github.com/campushub/campushub/internal/pkg/logger"
	"github.com/campushub/campushub/internal/server"
)

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server terminated with error")
		os.Exit(1)
	}
}
