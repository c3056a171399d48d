package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/scoopworks/creamery-backend/internal/adapters/kv"
	"github.com/scoopworks/creamery-backend/internal/adapters/providers/geolocation"
	"github.com/scoopworks/creamery-backend/internal/api/handlers"
	"github.com/scoopworks/creamery-backend/internal/api/routes"
	"github.com/scoopworks/creamery-backend/internal/application/services"
	"github.com/scoopworks/creamery-backend/internal/catalog"
	"github.com/scoopworks/creamery-backend/internal/domain/providers"
	"github.com/scoopworks/creamery-backend/internal/infrastructure/clients/redis"
	"github.com/scoopworks/creamery-backend/internal/infrastructure/observability"
	"github.com/scoopworks/creamery-backend/pkg/config"
)

func main() {

	// Load .env if present; real environments set variables directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	observability.InitLogger(cfg.OTEL.ServiceName, cfg.Environment)

	// Set up context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize OpenTelemetry if enabled
	if cfg.OTEL.Enabled && cfg.OTEL.Endpoint != "" {
		shutdown, err := observability.Setup(
			ctx,
			cfg.OTEL.ServiceName,
			cfg.OTEL.ServiceVersion,
			cfg.OTEL.Endpoint,
		)
		if err != nil {
			log.Printf("Warning: Failed to set up OpenTelemetry: %v", err)
		} else {
			defer func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down OpenTelemetry: %v", err)
				}
			}()
			log.Println("OpenTelemetry initialized successfully")
		}
	}

	// Initialize metrics
	metrics, err := observability.InitMetrics()
	if err != nil {
		log.Fatalf("Failed to initialize metrics: %v", err)
	}

	// Initialize Redis client
	redisClient, err := redis.NewClient(&cfg.Redis)
	if err != nil {
		log.Printf("Warning: Failed to initialize Redis client: %v", err)
		// Continue without Redis - recent searches fall back to process memory
	} else {
		defer redisClient.Close()
		log.Println("Redis client initialized successfully")
	}

	// Initialize the in-memory catalogs
	productCatalog := catalog.NewProductCatalog()
	storeCatalog := catalog.NewStoreCatalog()
	recipeCatalog := catalog.NewRecipeCatalog()
	pageCatalog := catalog.NewPageCatalog()

	// Recent searches live in Redis when available, otherwise in memory
	var kvProvider providers.KeyValueProvider
	if redisClient != nil {
		kvProvider = kv.NewRedisAdapter(redisClient)
	} else {
		kvProvider = kv.NewMemoryAdapter()
		log.Println("Recent searches running on in-memory storage (Redis unavailable)")
	}

	var geolocationProvider providers.GeolocationProvider
	switch cfg.Geolocation.Provider {
	case "static":
		geolocationProvider = geolocation.NewStaticProvider()
	default:
		geolocationProvider = geolocation.NewUnsupportedProvider()
		log.Printf("Warning: unknown geolocation provider %q; geocoding disabled", cfg.Geolocation.Provider)
	}

	// Initialize services

	searchService := services.NewSearchService(
		productCatalog,
		storeCatalog,
		recipeCatalog,
		pageCatalog,
	)

	recentSearchRepo := kv.NewRecentSearchAdapter(kvProvider, cfg.Search.RecentSearchKey)
	historyService := services.NewSearchHistoryService(
		recentSearchRepo,
		cfg.Search.RecentSearchSize,
	)

	locatorService := services.NewStoreLocatorService(storeCatalog, geolocationProvider)

	listingService := services.NewListingService(
		productCatalog,
		storeCatalog,
		recipeCatalog,
		cfg.Search.DefaultPageSize,
	).WithMaxPageSize(cfg.Search.MaxPageSize)

	// Initialize handlers

	searchHandler := handlers.NewSearchHandler(searchService, historyService, listingService, metrics)

	productHandler := handlers.NewProductHandler(productCatalog, recipeCatalog, listingService)

	storeHandler := handlers.NewStoreHandler(storeCatalog, listingService, locatorService)

	recipeHandler := handlers.NewRecipeHandler(recipeCatalog, listingService)

	geolocationHandler := handlers.NewGeolocationHandler(locatorService, cfg.Geolocation.Provider, metrics)

	// Set up router

	router := routes.NewRouter(
		searchHandler,
		productHandler,
		storeHandler,
		recipeHandler,
		geolocationHandler,
		metrics,
	)

	handler := router.SetupRoutes()

	// Create HTTP server
	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	}

	log.Println("Server stopped")
}
