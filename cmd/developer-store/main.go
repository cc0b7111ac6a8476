package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/canso2044/developer-store/internal/api/handlers"
	"github.com/canso2044/developer-store/internal/api/middleware"
	"github.com/canso2044/developer-store/internal/config"
	"github.com/canso2044/developer-store/internal/health"
	"github.com/canso2044/developer-store/internal/metrics"
	"github.com/canso2044/developer-store/internal/models"
	repository "github.com/canso2044/developer-store/internal/repositories"
	service "github.com/canso2044/developer-store/internal/services"
	"github.com/canso2044/developer-store/internal/telemetry"
	"github.com/canso2044/developer-store/pkg/orderapi"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.MustLoad()

	ctx := context.Background()

	shutdownTelemetry, err := telemetry.Setup(ctx, &cfg.Telemetry)
	if err != nil {
		slog.Error("Failed to set up telemetry", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := shutdownTelemetry(flushCtx); err != nil {
			slog.Error("Failed to flush telemetry", slog.Any("error", err))
		}
	}()

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("Failed to initialize Redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	// Repositories
	cartRepo := repository.NewCartRepo(redisClient, cfg.CartStore.KeyPrefix, cfg.CartStore.TTL)

	// Services
	cartService := service.NewCartService(cartRepo)
	cartService.OnCartChanged(func(sessionID string, state *models.Cart) {
		metrics.ObserveCartChange()
	})

	orderGateway := orderapi.NewClient(cfg.OrderAPI.BaseURL, cfg.OrderAPI.Timeout)
	checkoutService := service.NewCheckoutService(orderGateway)
	catalogService := service.NewCatalogService()

	// Handlers
	cartHandler := handlers.NewCartHandler(cartService)
	checkoutHandler := handlers.NewCheckoutHandler(cartService, checkoutService, cfg.Checkout.TaxRate)
	orderHandler := handlers.NewOrderHandler(cfg.OrderSim, handlers.NewOrderCounter(cfg.OrderSim.CounterSeed))
	paymentHandler := handlers.NewPaymentHandler()
	productHandler := handlers.NewProductHandler(catalogService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("Failed to initialize health checks", slog.Any("error", err))
		os.Exit(1)
	}

	router := http.NewServeMux()

	// Cart
	router.HandleFunc("GET /api/cart", cartHandler.GetCart())
	router.HandleFunc("DELETE /api/cart", cartHandler.ClearCart())
	router.HandleFunc("POST /api/cart/items", cartHandler.AddItem())
	router.HandleFunc("PUT /api/cart/items/{id}", cartHandler.UpdateQuantity())
	router.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem())
	router.HandleFunc("GET /api/cart/item-quantity", cartHandler.GetItemQuantity())

	// Checkout
	router.HandleFunc("POST /api/checkout", checkoutHandler.Submit())
	router.HandleFunc("GET /api/checkout/orders/{id}", checkoutHandler.OrderStatus())
	router.HandleFunc("POST /api/payments", checkoutHandler.Pay())

	// Mocked order endpoint
	router.HandleFunc("POST /api/orders", orderHandler.SubmitOrder())
	router.HandleFunc("GET /api/orders/health", orderHandler.Health())
	router.HandleFunc("GET /api/orders/{id}", orderHandler.GetOrderStatus())
	router.HandleFunc("POST /api/payments/creditcard", paymentHandler.CreditCardPayment())

	// Catalog
	router.HandleFunc("GET /api/products", productHandler.ListProducts())
	router.HandleFunc("GET /api/products/{id}", productHandler.GetProduct())

	// Operations
	router.Handle("GET /healthz", healthHandler.Handler())
	router.Handle("GET /metrics", metrics.Handler())

	var handler http.Handler = router
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)
	handler = otelhttp.NewHandler(handler, "developer-store")

	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server starting", slog.String("address", cfg.HTTPServer.Addr), slog.String("env", cfg.Env))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Failed to start server", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	<-done

	slog.Info("Shutting down the server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shutdown server", slog.Any("error", err))
		return
	}

	slog.Info("✅ Server shutdown successful")
}
