package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"wanderluxe/config"
	"wanderluxe/cron"
	"wanderluxe/database"
	activityRepoPkg "wanderluxe/database/repository/activity"
	bookingRepoPkg "wanderluxe/database/repository/booking"
	commissionRepoPkg "wanderluxe/database/repository/commission"
	destinationRepoPkg "wanderluxe/database/repository/destination"
	notificationRepoPkg "wanderluxe/database/repository/notification"
	userRepoPkg "wanderluxe/database/repository/user"
	"wanderluxe/handlers"
	"wanderluxe/middleware"
	"wanderluxe/routes"
	"wanderluxe/services/activity"
	"wanderluxe/services/booking"
	"wanderluxe/services/notification"
	"wanderluxe/services/recommendation"
	"wanderluxe/services/user"
	"wanderluxe/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.Default())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	destinationRepo := destinationRepoPkg.NewMongoDestinationRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	commissionRepo := commissionRepoPkg.NewMongoCommissionRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	activityRepo := activityRepoPkg.NewMongoActivityRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Logger: logger,
	}
	notificationService := &notification.DefaultNotificationService{
		Repo:   notificationRepo,
		Logger: logger,
	}
	activityRecorder := &activity.DefaultRecorder{
		Repo:   activityRepo,
		Logger: logger,
	}
	balancer := &booking.AgentAssignmentBalancer{
		Bookings: bookingRepo,
		Notifier: notificationService,
		Logger:   logger,
	}
	bookingService := &booking.DefaultBookingService{
		Bookings:     bookingRepo,
		Destinations: destinationRepo,
		Users:        userRepo,
		Ledger:       &booking.CommissionLedger{Repo: commissionRepo},
		Balancer:     balancer,
		Notifier:     notificationService,
		Email:        &notification.LogEmailSender{Logger: logger},
		Activity:     activityRecorder,
		Logger:       logger,
	}
	recommendationService := &recommendation.DefaultRecommendationService{
		Users:        userRepo,
		Destinations: destinationRepo,
		Bookings:     bookingRepo,
		Cache:        utils.GetCacheClient(),
		Logger:       logger,
	}

	// Background housekeeping (check-in reminders, auto-completion).
	cron.InitHousekeepingWorker(&cron.Housekeeper{
		Bookings: bookingRepo,
		Svc:      bookingService,
		Notifier: notificationService,
		Logger:   logger,
	})

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	routes.RegisterRoutes(router, &routes.Handlers{
		UserRepo:       userRepo,
		Auth:           handlers.NewAuthHandler(userService),
		Booking:        handlers.NewBookingHandler(bookingService, logger),
		Destination:    handlers.NewDestinationHandler(destinationRepo),
		Commission:     handlers.NewCommissionHandler(commissionRepo),
		Recommendation: handlers.NewRecommendationHandler(recommendationService),
		Notification:   handlers.NewNotificationHandler(notificationService),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
