package container

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"autocart-backend/internal/config"
	infraCache "autocart-backend/internal/infrastructure/cache"
	"autocart-backend/pkg/cache"
	"autocart-backend/pkg/jwt"
	"autocart-backend/pkg/logger"

	accountHandler "autocart-backend/internal/domains/account/handler"
	accountRepo "autocart-backend/internal/domains/account/repository"
	accountService "autocart-backend/internal/domains/account/service"
	cartHandler "autocart-backend/internal/domains/cart/handler"
	cartRepo "autocart-backend/internal/domains/cart/repository"
	cartService "autocart-backend/internal/domains/cart/service"
	catalogHandler "autocart-backend/internal/domains/catalog/handler"
	catalogRepo "autocart-backend/internal/domains/catalog/repository"
	catalogService "autocart-backend/internal/domains/catalog/service"
	couponRepo "autocart-backend/internal/domains/coupon/repository"
	orderHandler "autocart-backend/internal/domains/order/handler"
	orderRepo "autocart-backend/internal/domains/order/repository"
	orderService "autocart-backend/internal/domains/order/service"
	wishlistHandler "autocart-backend/internal/domains/wishlist/handler"
	wishlistRepo "autocart-backend/internal/domains/wishlist/repository"
	wishlistService "autocart-backend/internal/domains/wishlist/service"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config, then
// infrastructure, then repositories, services, and handlers.
type Container struct {
	Config      *config.Config
	Store       cache.Cache
	JWTManager  *jwt.Manager
	AsynqClient *asynq.Client

	Coupons *couponRepo.Catalog

	CatalogService  catalogService.ServiceInterface
	CartService     cartService.ServiceInterface
	WishlistService wishlistService.ServiceInterface
	AccountService  accountService.ServiceInterface
	OrderService    orderService.ServiceInterface

	CatalogHandler  *catalogHandler.Handler
	CartHandler     *cartHandler.Handler
	WishlistHandler *wishlistHandler.Handler
	AccountHandler  *accountHandler.AccountHandler
	OrderHandler    *orderHandler.OrderHandler

	redis *infraCache.Redis
}

// NewContainer builds the full graph. A Redis that is down fails startup;
// every storefront container depends on the store.
func NewContainer() (*Container, error) {
	c := &Container{}

	// Step 1: Configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: Infrastructure
	redis := infraCache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := redis.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.Addr, err)
	}
	c.redis = redis
	c.Store = redis

	c.JWTManager = jwt.NewManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Hour,
	)

	c.AsynqClient = asynq.NewClient(asynq.RedisClientOpt{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Step 3: Coupon catalog, loaded once and immutable afterwards
	coupons, err := couponRepo.Load(cfg.Coupon.File)
	if err != nil {
		return nil, fmt.Errorf("failed to load coupon catalog: %w", err)
	}
	c.Coupons = coupons
	logger.Info("coupon catalog loaded", map[string]interface{}{
		"coupons": coupons.Len(),
	})

	// Step 4: Services, repositories inline since nothing else needs them
	c.CatalogService = catalogService.NewCatalogService(catalogRepo.NewMemory(nil))
	c.CartService = cartService.NewCartService(
		cartRepo.NewCartRepository(c.Store),
		c.CatalogService,
		c.Coupons,
		c.AsynqClient,
	)
	c.WishlistService = wishlistService.NewWishlistService(
		wishlistRepo.NewWishlistRepository(c.Store),
		c.CatalogService,
	)
	c.AccountService = accountService.NewAccountService(
		accountRepo.NewAccountRepository(c.Store),
		c.JWTManager,
	)
	c.OrderService = orderService.NewOrderService(
		orderRepo.NewOrderRepository(c.Store),
		c.CartService,
		c.AccountService,
		c.AsynqClient,
	)

	// Step 5: Handlers
	c.CatalogHandler = catalogHandler.NewHandler(c.CatalogService)
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.WishlistHandler = wishlistHandler.NewHandler(c.WishlistService)
	c.AccountHandler = accountHandler.NewAccountHandler(c.AccountService)
	c.OrderHandler = orderHandler.NewOrderHandler(c.OrderService)

	return c, nil
}

// Cleanup releases infrastructure connections, in reverse init order
func (c *Container) Cleanup() {
	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			logger.Error("failed to close asynq client", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			logger.Error("failed to close redis connection", err)
		}
	}
}
