// main.go
package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/tripkit/tripkit-backend/config"
	"github.com/tripkit/tripkit-backend/repository"
	"github.com/tripkit/tripkit-backend/routes"
	"github.com/tripkit/tripkit-backend/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg.LoggerLevel); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// New Relic is optional; skip when no license is configured
	var app *newrelic.Application
	if cfg.NewRelicLicenseKey != "" {
		var err error
		app, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.ServiceName),
			newrelic.ConfigLicense(cfg.NewRelicLicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
		)
		if err != nil {
			utils.Logger.Warnw("failed to initialize New Relic", "error", err)
		}
	}

	if err := repository.InitDB(cfg); err != nil {
		utils.Logger.Fatalw("failed to initialize database", "error", err)
	}
	defer repository.CloseDB()

	router := gin.Default()

	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := routes.SetupRoutes(router, cfg); err != nil {
		utils.Logger.Fatalw("failed to set up routes", "error", err)
	}

	utils.Logger.Infow("server starting", "port", cfg.AppPort)
	if err := router.Run(fmt.Sprintf(":%d", cfg.AppPort)); err != nil {
		utils.Logger.Fatalw("failed to start server", "error", err)
	}
}
