// File: staybook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"staybook/config"
	"staybook/handlers"
	"staybook/middleware"
	"staybook/platform"
	"staybook/routes"
	"staybook/services/booking"
	"staybook/session"
	"staybook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitSessionStore()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Platform API clients.
	apiClient := platform.NewClient(config.AppConfig.BackendAPIURL, config.BackendRequestTimeout(), logger)
	authClient := platform.NewAuthClient(apiClient)
	roomsClient := platform.NewRoomsClient(apiClient)
	availabilityClient := platform.NewAvailabilityClient(apiClient, utils.GetCacheClient())
	bookingClient := platform.NewBookingClient(apiClient)
	adminClient := platform.NewAdminClient(apiClient)

	sessionManager := session.NewManager(utils.GetSessionClient(), authClient, config.SessionTTL(), logger)

	// services.
	wizardService := &booking.DefaultWizardService{
		Rooms:        roomsClient,
		Availability: availabilityClient,
		Bookings:     bookingClient,
		Currency:     config.AppConfig.Currency,
		Logger:       logger,
	}
	historyService := &booking.DefaultHistoryService{
		Bookings: bookingClient,
		Currency: config.AppConfig.Currency,
		Logger:   logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Sessions: sessionManager,
		Auth:     handlers.NewAuthHandler(authClient, sessionManager, logger),
		Wizard:   handlers.NewWizardHandler(wizardService, logger),
		History:  handlers.NewHistoryHandler(historyService, logger),
		Browse:   handlers.NewBrowseHandler(availabilityClient, logger),
		Admin:    handlers.NewAdminHandler(adminClient, logger),
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "3000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
