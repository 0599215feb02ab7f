package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookhive/config"
	"bookhive/cron"
	"bookhive/database"
	bookingRepo "bookhive/database/repository/bookingstore"
	catalogRepo "bookhive/database/repository/catalog"
	staffRepo "bookhive/database/repository/staff"
	"bookhive/handlers"
	"bookhive/middleware"
	"bookhive/routes"
	"bookhive/services/notification"
	"bookhive/services/reminders"
	"bookhive/services/scheduling"
	"bookhive/services/staff"
	"bookhive/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	if err := staffRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure staff indexes: %v", err)
	}
	if err := bookingRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	staffRepository := staffRepo.NewMongoStaffRepo()
	bookingRepository := bookingRepo.NewMongoBookingRepo()
	serviceCatalog := catalogRepo.NewMongoServiceCatalog()

	// availability cache, owned by the engine rather than package state.
	cache, err := scheduling.NewAvailabilityCache(scheduling.CacheConfig{
		SlotTTL:   time.Duration(config.AppConfig.SlotCacheTTLSeconds) * time.Second,
		RosterTTL: time.Duration(config.AppConfig.RosterCacheTTLSeconds) * time.Second,
		Size:      config.AppConfig.CacheSize,
	})
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize availability cache: %v", err)
	}

	// reminder queue client.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	})
	defer asynqClient.Close()

	reminderScheduler := &reminders.AsynqReminderScheduler{
		Client: asynqClient,
		Lead:   time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour,
	}

	// services.
	engine := &scheduling.DefaultSchedulingEngine{
		StaffRepo:   staffRepository,
		BookingRepo: bookingRepository,
		Catalog:     serviceCatalog,
		Cache:       cache,
		Reminders:   reminderScheduler,
	}
	staffService := &staff.DefaultStaffService{
		Repo:  staffRepository,
		Cache: cache,
	}
	notificationService := &notification.LogNotificationService{}

	// handlers.
	availabilityHandler := handlers.NewAvailabilityHandler(engine)
	bookingHandler := handlers.NewBookingHandler(engine)
	staffHandler := handlers.NewStaffHandler(staffService)
	catalogHandler := handlers.NewCatalogHandler(serviceCatalog)

	routes.RegisterRoutes(router, availabilityHandler, bookingHandler, staffHandler, catalogHandler)

	// background reminder worker and health monitor.
	cron.InitReminderWorker(notificationService)
	utils.StartHealthMonitor(utils.GetReminderQueueClient(), database.MongoClient)

	srv := &http.Server{
		Addr:    ":" + config.AppConfig.AppPort,
		Handler: router,
	}

	go func() {
		logger.Sugar().Infof("main: listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server error: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("main: shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: forced shutdown: %v", err)
	}
	logger.Info("main: server exited")
}
