package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/emberwick/storefront-api/api/routes"
	"github.com/emberwick/storefront-api/internal/auth"
	"github.com/emberwick/storefront-api/internal/cart"
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/categories"
	"github.com/emberwick/storefront-api/internal/checkout"
	"github.com/emberwick/storefront-api/internal/ledger"
	products "github.com/emberwick/storefront-api/internal/products"
	"github.com/emberwick/storefront-api/internal/quiz"
	"github.com/emberwick/storefront-api/internal/wishlist"
	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/emberwick/storefront-api/pkg/db"
	"github.com/emberwick/storefront-api/pkg/instance"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/metrics"
	"github.com/emberwick/storefront-api/pkg/migrate"
	"github.com/emberwick/storefront-api/pkg/pubsub"
	"github.com/emberwick/storefront-api/pkg/redis"
	"github.com/emberwick/storefront-api/pkg/storage/gcs"
)

const shutdownTimeout = 15 * time.Second

type closer interface {
	Close() error
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	var closers []closer
	defer func() {
		for i := len(closers) - 1; i >= 0; i-- {
			err = multierr.Append(err, closers[i].Close())
		}
	}()

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		return err
	}
	closers = append(closers, dbClient)

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	deps := routes.Dependencies{
		Config:      cfg,
		Logger:      logg,
		DB:          dbClient,
		Gatherer:    reg,
		HTTPMetrics: metrics.NewHTTPMetrics(reg),
	}

	var slots ledger.SlotProvider = ledger.NewMemorySlots()
	if cfg.Redis.Enabled() {
		redisClient, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return err
		}
		closers = append(closers, redisClient)
		slots = ledger.NewRedisSlots(redisClient, cfg.Storefront.LedgerTTL)
		deps.Redis = redisClient
		deps.RateLimiter = redisClient
		deps.Idempotency = redisClient
	} else {
		logg.Warn(ctx, "redis not configured; carts and wishlists are kept in process memory")
	}

	productRepo := products.NewRepository(dbClient.DB())
	categoryRepo := categories.NewRepository(dbClient.DB())

	catalogService, err := catalog.NewService(catalog.ServiceParams{
		Products:   productRepo,
		Categories: categoryRepo,
		Logger:     logg,
	})
	if err != nil {
		return err
	}
	deps.Catalog = catalogService

	deps.Quiz, err = quiz.NewService(quiz.ServiceParams{
		Catalog: catalogService,
		Metrics: metrics.NewQuizMetrics(reg),
		Logger:  logg,
	})
	if err != nil {
		return err
	}

	ledgers := ledger.NewFactory(slots, metrics.NewLedgerMetrics(reg))
	shipping := ledger.ShippingPolicy{
		Fee:           cfg.Storefront.ShippingFeeAmount(),
		FreeThreshold: cfg.Storefront.FreeShippingThresholdAmount(),
	}

	deps.Cart, err = cart.NewService(cart.ServiceParams{Catalog: catalogService, Ledgers: ledgers, Shipping: shipping})
	if err != nil {
		return err
	}
	deps.Wishlist, err = wishlist.NewService(wishlist.ServiceParams{Catalog: catalogService, Ledgers: ledgers})
	if err != nil {
		return err
	}

	var notifier checkout.Notifier = checkout.NewLogNotifier(logg)
	if strings.TrimSpace(cfg.PubSub.OrdersTopic) != "" {
		psClient, err := pubsub.NewClient(ctx, cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			return err
		}
		closers = append(closers, psClient)
		notifier = checkout.NewPubSubNotifier(psClient, logg)
		deps.PubSub = psClient
	} else {
		logg.Warn(ctx, "orders topic not configured; order confirmations are only logged")
	}

	deps.Checkout, err = checkout.NewService(checkout.ServiceParams{
		Catalog:  catalogService,
		Ledgers:  ledgers,
		Shipping: shipping,
		Notifier: notifier,
		Logger:   logg,
	})
	if err != nil {
		return err
	}

	productParams := products.ServiceParams{
		Repo:          productRepo,
		MaxImageBytes: cfg.Storefront.MaxImageBytes(),
	}
	if strings.TrimSpace(cfg.GCS.BucketName) != "" {
		gcsClient, err := gcs.NewClient(ctx, cfg.GCS, cfg.GCP, logg)
		if err != nil {
			return err
		}
		closers = append(closers, gcsClient)
		productParams.Images = gcsClient
		deps.Storage = gcsClient
	} else {
		logg.Warn(ctx, "gcs bucket not configured; product image uploads are disabled")
	}
	deps.Products, err = products.NewService(productParams)
	if err != nil {
		return err
	}

	deps.Categories, err = categories.NewService(categoryRepo)
	if err != nil {
		return err
	}

	deps.Auth, err = auth.NewService(auth.ServiceParams{
		Admin:     cfg.Admin,
		JWTConfig: cfg.JWT,
		Password:  cfg.Password,
		Logger:    logg,
	})
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(ctx, map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": instance.GetID(),
	})

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		logg.Info(logCtx, "starting api server")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
