package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Varun5711/taskhub/internal/analytics"
	"github.com/Varun5711/taskhub/internal/auth"
	"github.com/Varun5711/taskhub/internal/cache"
	"github.com/Varun5711/taskhub/internal/clickhouse"
	"github.com/Varun5711/taskhub/internal/config"
	"github.com/Varun5711/taskhub/internal/database"
	"github.com/Varun5711/taskhub/internal/events"
	"github.com/Varun5711/taskhub/internal/handlers"
	"github.com/Varun5711/taskhub/internal/logger"
	"github.com/Varun5711/taskhub/internal/middleware"
	"github.com/Varun5711/taskhub/internal/redis"
	"github.com/Varun5711/taskhub/internal/service"
	"github.com/Varun5711/taskhub/internal/storage"
)

func main() {
	log := logger.New("task-service")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: %v", err)
	}

	dbConfig := database.Config{
		PrimaryDSN:      cfg.Database.PrimaryDSN,
		ReplicaDSNs:     cfg.Database.ReplicaDSNs,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
	}

	dbManager, err := database.NewDBManager(ctx, dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer dbManager.Close()

	// Redis backs the task-list cache, the activity stream and rate limiting.
	// The service still serves requests without it.
	var (
		listCache   *cache.TaskListCache
		producer    *events.ActivityProducer
		rateLimiter *middleware.RateLimiter
	)

	redisClient, err := redis.NewRedisClient(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Warn("Redis unavailable, running without cache, rate limiting and activity events: %v", err)
		listCache = cache.NewTaskListCache(cfg.Cache.L1Capacity, nil, cfg.Cache.L2TTL)
	} else {
		defer redisClient.Close()
		listCache = cache.NewTaskListCache(cfg.Cache.L1Capacity, redisClient.GetClient(), cfg.Cache.L2TTL)
		producer = events.NewActivityProducer(redisClient.GetClient(), cfg.Redis.StreamName)
		rateLimiter = middleware.NewRateLimiter(redisClient.GetClient(), cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	var analyticsHandler *handlers.AnalyticsHandler
	chClient, err := clickhouse.NewClient(cfg.ClickHouse)
	if err != nil {
		log.Warn("ClickHouse unavailable, activity endpoints disabled: %v", err)
	} else {
		defer chClient.Close()
		analyticsHandler = handlers.NewAnalyticsHandler(analytics.NewService(chClient))
	}

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	userService := service.NewUserService(storage.NewUserStorage(dbManager), jwtManager)
	taskService := service.NewTaskService(storage.NewPostgresTaskStorage(dbManager), listCache)

	mux := handlers.NewRouter(handlers.RouterConfig{
		Auth:        handlers.NewAuthHandler(userService),
		Tasks:       handlers.NewTaskHandler(taskService, producer),
		Analytics:   analyticsHandler,
		AuthMW:      middleware.NewAuthMiddleware(jwtManager),
		RateLimiter: rateLimiter,
	})

	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("Task service listening on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down task service...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Forced shutdown: %v", err)
	}

	log.Info("Task service stopped")
}
