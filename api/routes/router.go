package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wickandhive/storefront-backend/api/controllers"
	"github.com/wickandhive/storefront-backend/api/middleware"
	cartsvc "github.com/wickandhive/storefront-backend/internal/cart"
	checkoutsvc "github.com/wickandhive/storefront-backend/internal/checkout"
	ordersvc "github.com/wickandhive/storefront-backend/internal/orders"
	productsvc "github.com/wickandhive/storefront-backend/internal/products"
	wishlistsvc "github.com/wickandhive/storefront-backend/internal/wishlist"
	"github.com/wickandhive/storefront-backend/pkg/config"
	"github.com/wickandhive/storefront-backend/pkg/db"
	"github.com/wickandhive/storefront-backend/pkg/logger"
	"github.com/wickandhive/storefront-backend/pkg/metrics"
	pkgredis "github.com/wickandhive/storefront-backend/pkg/redis"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	Metrics     *metrics.HTTPMetrics
	MetricsHTTP http.Handler
	Idempotency pkgredis.IdempotencyStore
	RateLimiter middleware.RateLimiter
	DB          db.Pinger
	Redis       pkgredis.Pinger

	Checkout checkoutsvc.Service
	Orders   ordersvc.Service
	Products productsvc.Service
	Cart     cartsvc.Service
	Wishlist wishlistsvc.Service
}

// NewRouter assembles the full HTTP surface: the legacy /functions endpoints
// the storefront UI already speaks, and the enveloped /api/v1 endpoints.
func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
		middleware.Session(logg),
		middleware.Metrics(deps.Metrics),
	)

	limitCheckout := middleware.RateLimit(deps.RateLimiter, cfg.Checkout.RateLimitPerMinute, time.Minute, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis))
	})

	if deps.MetricsHTTP != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHTTP)
	} else {
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	}

	// Legacy surface, shape-compatible with the original serverless functions.
	r.Route("/functions", func(r chi.Router) {
		r.Use(middleware.Idempotency(deps.Idempotency, logg))

		r.With(limitCheckout).Post("/checkout", controllers.CheckoutFunction(deps.Checkout, deps.Metrics, logg))
		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrdersFunction(deps.Orders, logg))
			r.Get("/{orderNumber}", controllers.GetOrderFunction(deps.Orders, logg))
			r.Put("/{orderID}/status", controllers.UpdateOrderStatusFunction(deps.Orders, logg))
			r.Put("/{orderID}/payment", controllers.UpdateOrderPaymentFunction(deps.Orders, logg))
		})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Idempotency(deps.Idempotency, logg))

		r.With(limitCheckout).Post("/checkout", controllers.Checkout(deps.Checkout, deps.Metrics, logg))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", controllers.ListOrders(deps.Orders, logg))
			r.Get("/{orderNumber}", controllers.GetOrder(deps.Orders, logg))
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(deps.Products, logg))
			r.Get("/{slug}", controllers.GetProduct(deps.Products, logg))
		})

		r.Get("/collections", controllers.ListCollections(deps.Products, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.GetCart(deps.Cart, logg))
			r.Post("/", controllers.AddCartItem(deps.Cart, logg))
			r.Delete("/", controllers.ClearCart(deps.Cart, logg))
			r.Put("/{itemID}", controllers.UpdateCartItem(deps.Cart, logg))
			r.Delete("/{itemID}", controllers.RemoveCartItem(deps.Cart, logg))
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Get("/", controllers.GetWishlist(deps.Wishlist, logg))
			r.Post("/", controllers.AddWishlistItem(deps.Wishlist, logg))
			r.Delete("/{productID}", controllers.RemoveWishlistItem(deps.Wishlist, logg))
		})
	})

	return r
}
