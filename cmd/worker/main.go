package main

import (
	"os"

	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"

	"autocart-backend/internal/config"
	cartJob "autocart-backend/internal/domains/cart/job"
	cartRepo "autocart-backend/internal/domains/cart/repository"
	orderJob "autocart-backend/internal/domains/order/job"
	infraCache "autocart-backend/internal/infrastructure/cache"
	"autocart-backend/internal/shared"
	"autocart-backend/pkg/logger"
)

// The worker consumes the background queues the API enqueues into:
// delayed abandoned-cart cleanup and order confirmation delivery.
func main() {
	_ = godotenv.Load()

	logger.Init(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}

	store := infraCache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	defer store.Close()

	srv := asynq.NewServer(
		asynq.RedisClientOpt{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		},
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"high":    6,
				"default": 3,
				"low":     1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.Handle(shared.TypeSendOrderConfirmation, orderJob.NewSendOrderConfirmationHandler())
	mux.Handle(shared.TypeCleanupAbandonedCart, cartJob.NewCleanupAbandonedCartHandler(
		cartRepo.NewCartRepository(store),
	))

	logger.Info("worker starting", map[string]interface{}{
		"redis": cfg.Redis.Addr,
	})

	// Run blocks until SIGINT/SIGTERM and drains in-flight tasks
	if err := srv.Run(mux); err != nil {
		logger.Error("worker stopped with error", err)
		os.Exit(1)
	}
}
