package main

// @title Venue Discovery API
// @version 1.0.0
// @description Сервис подбора заведений по дню недели и категории активности. Посетитель спрашивает "где сегодня викторина" или "у кого сейчас happy hour", сервис возвращает видимые заведения с лейблами подошедших листингов.
// @description
// @description Основные возможности:
// @description - Подбор заведений по дню недели и активности с лейблами листингов
// @description - Фильтры: город, ключевое слово, только акции, идущие сейчас, радиус в милях
// @description - Fallback по городу при пустой выдаче
// @description - Каталог категорий активности

// @contact.name API Support
// @contact.email support@venue-discovery.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/venue-discovery/docs/swagger"
	"github.com/venue-discovery/internal/config"
	httpDelivery "github.com/venue-discovery/internal/delivery/http"
	"github.com/venue-discovery/internal/delivery/http/handler"
	"github.com/venue-discovery/internal/pkg/logger"
	"github.com/venue-discovery/internal/repository/postgres"
	redisRepo "github.com/venue-discovery/internal/repository/redis"
	"github.com/venue-discovery/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Venue Discovery API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := redisRepo.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize repositories
	venueRepo := postgres.NewVenueRepository(db)
	counterRepo := redisRepo.NewCounterRepository(redisClient.Client(), log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	log.Info("Repositories initialized")

	// 7. Initialize use cases
	emitter := usecase.NewEffectEmitter(cfg.Search.EffectQueueSize, cfg.Search.EffectWorkers, log)
	defer emitter.Close()

	discoveryUC := usecase.NewDiscoveryUseCase(venueRepo, counterRepo, streamRepo, emitter, log)
	categoryUC := usecase.NewCategoryUseCase(venueRepo, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP handlers
	discoveryHandler := handler.NewDiscoveryHandler(discoveryUC, log)
	categoryHandler := handler.NewCategoryHandler(categoryUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// 9. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, discoveryHandler, categoryHandler, healthHandler)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	// Дожидаемся отправки уже поставленных в очередь эффектов
	emitter.Close()

	log.Info("Server stopped successfully")
}
