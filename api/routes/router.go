package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/emberwick/storefront-api/api/controllers"
	"github.com/emberwick/storefront-api/api/middleware"
	"github.com/emberwick/storefront-api/internal/auth"
	"github.com/emberwick/storefront-api/internal/cart"
	"github.com/emberwick/storefront-api/internal/catalog"
	"github.com/emberwick/storefront-api/internal/categories"
	checkoutsvc "github.com/emberwick/storefront-api/internal/checkout"
	products "github.com/emberwick/storefront-api/internal/products"
	"github.com/emberwick/storefront-api/internal/quiz"
	"github.com/emberwick/storefront-api/internal/wishlist"
	"github.com/emberwick/storefront-api/pkg/config"
	"github.com/emberwick/storefront-api/pkg/logger"
	"github.com/emberwick/storefront-api/pkg/metrics"
	pkgredis "github.com/emberwick/storefront-api/pkg/redis"
)

type pinger interface {
	Ping(ctx context.Context) error
}

type rateLimiter interface {
	FixedWindowAllow(ctx context.Context, scope string, limit int64, window time.Duration) (bool, int64, error)
}

// Dependencies carries everything the router wires into handlers. Optional
// collaborators (Redis, storage, Pub/Sub) are left nil when not configured.
type Dependencies struct {
	Config *config.Config
	Logger *logger.Logger

	DB          pinger
	Redis       pinger
	Storage     pinger
	PubSub      pinger
	RateLimiter rateLimiter
	Idempotency pkgredis.IdempotencyStore

	Gatherer    prometheus.Gatherer
	HTTPMetrics *metrics.HTTPMetrics

	Catalog    catalog.Service
	Quiz       quiz.Service
	Cart       cart.Service
	Wishlist   wishlist.Service
	Checkout   checkoutsvc.Service
	Auth       auth.Service
	Products   products.Service
	Categories categories.Service
}

func NewRouter(deps Dependencies) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(logg),
		middleware.Recoverer(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(cfg.Storefront.CORSOrigins),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"admin_login",
		cfg.LoginRateLimit.Window,
		cfg.LoginRateLimit.IPLimit,
		cfg.LoginRateLimit.EmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg,
			controllers.ReadinessCheck{Name: "db", Pinger: deps.DB},
			controllers.ReadinessCheck{Name: "redis", Pinger: deps.Redis},
			controllers.ReadinessCheck{Name: "storage", Pinger: deps.Storage},
			controllers.ReadinessCheck{Name: "pubsub", Pinger: deps.PubSub},
		))
	})

	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/sitemap.xml", controllers.Sitemap(deps.Catalog, cfg.Storefront.PublicBaseURL, nil, logg))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(middleware.SessionOptions{
			MaxAge: cfg.Storefront.LedgerTTL,
			Secure: cfg.App.IsProd(),
		}, logg))
		r.Use(middleware.Idempotency(deps.Idempotency, logg))

		r.Get("/products", controllers.CatalogBrowse(deps.Catalog, logg))
		r.Get("/products/{productId}", controllers.CatalogProduct(deps.Catalog, logg))
		r.Get("/categories", controllers.CatalogCategories(deps.Catalog, logg))

		r.Get("/quiz", controllers.QuizQuestions(deps.Quiz))
		r.Post("/quiz/recommendations", controllers.QuizRecommend(deps.Quiz, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Cart, logg))
			r.Delete("/", controllers.CartClear(deps.Cart, logg))
			r.Post("/items", controllers.CartAddItem(deps.Cart, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.WishlistFetch(deps.Wishlist, logg))
			r.Delete("/", controllers.WishlistClear(deps.Wishlist, logg))
			r.Post("/items", controllers.WishlistAddItem(deps.Wishlist, logg))
			r.Delete("/items/{productId}", controllers.WishlistRemoveItem(deps.Wishlist, logg))
		})

		r.Post("/checkout/confirm", controllers.CheckoutConfirm(deps.Checkout, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.RateLimiter, logg)).
			Post("/auth/login", controllers.AdminAuthLogin(deps.Auth, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminAuth(cfg.JWT, logg))

			r.Route("/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(deps.Products, logg))
				r.Post("/", controllers.AdminCreateProduct(deps.Products, logg))
				r.Post("/images", controllers.AdminUploadProductImage(deps.Products, cfg.Storefront.MaxImageBytes(), logg))
				r.Get("/{productId}", controllers.AdminGetProduct(deps.Products, logg))
				r.Patch("/{productId}", controllers.AdminUpdateProduct(deps.Products, logg))
				r.Delete("/{productId}", controllers.AdminDeleteProduct(deps.Products, logg))
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", controllers.AdminListCategories(deps.Categories, logg))
				r.Post("/", controllers.AdminCreateCategory(deps.Categories, logg))
				r.Patch("/{categoryId}", controllers.AdminUpdateCategory(deps.Categories, logg))
				r.Delete("/{categoryId}", controllers.AdminDeleteCategory(deps.Categories, logg))
			})
		})
	})

	return r
}
