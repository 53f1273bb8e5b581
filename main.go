// File: classbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"classbook/config"
	"classbook/cron"
	"classbook/database"
	"classbook/handlers"
	"classbook/middleware"
	"classbook/routes"
	"classbook/services/booking"
	"classbook/services/tasks"
	"classbook/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, closeStore, err := database.OpenBookingStore(logger)
	if err != nil {
		logger.Fatal("main: failed to open booking store", zap.String("driver", config.AppConfig.StoreDriver), zap.Error(err))
	}
	defer closeStore()

	monitor := utils.NewHealthMonitor(logger)
	monitor.Register("store", store)

	// Pending confirmations live in Redis when it is enabled.
	var pending booking.PendingStore = booking.NewMemoryPendingStore()
	if config.AppConfig.RedisEnabled {
		cache := utils.GetCacheClient()
		defer cache.Close()
		pending = booking.NewRedisPendingStore(cache)
		monitor.Register("redis", utils.PingFunc(func(ctx context.Context) error {
			return cache.Ping(ctx).Err()
		}))
	}

	rules, err := booking.RulesFromWindow(config.AppConfig.WindowStart, config.AppConfig.WindowEnd)
	if err != nil {
		logger.Fatal("main: invalid booking window", zap.Error(err))
	}
	controller := booking.NewController(store, pending, rules, config.AppConfig.PendingTTL, logger)

	var worker *asynq.Server
	if config.AppConfig.RemindersEnabled && config.AppConfig.RedisEnabled {
		queueClient := asynq.NewClient(utils.QueueRedisOpt())
		defer queueClient.Close()
		controller.Reminders = tasks.NewReminderScheduler(queueClient, config.AppConfig.ReminderLead)

		worker, err = cron.StartReminderWorker(utils.QueueRedisOpt(), cron.LogNotifier{Logger: logger}, logger)
		if err != nil {
			logger.Fatal("main: reminder worker", zap.Error(err))
		}
	}

	if err := monitor.Start(config.AppConfig.HealthCron); err != nil {
		logger.Fatal("main: failed to start health monitor", zap.Error(err))
	}
	defer monitor.Stop()

	if _, err := controller.LoadAndRender(context.Background()); err != nil {
		logger.Warn("main: initial booking load failed", zap.Error(err))
	}

	bookingHandler := handlers.NewBookingHandler(controller, config.AppConfig.MobileBreakpoint, config.AppConfig.CalendarLocale)
	handlerBundle := handlers.NewHandlerBundle(bookingHandler, handlers.NewHealthHandler(monitor))

	// Create the Gin router.
	router := gin.New()
	if err := router.SetTrustedProxies(middleware.TrustedProxies(config.AppConfig.TrustedProxies)); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}
	if worker != nil {
		worker.Shutdown()
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
