package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Liorohan10/Skin-Sage/config"
	httpDelivery "github.com/Liorohan10/Skin-Sage/internal/delivery/http"
	"github.com/Liorohan10/Skin-Sage/internal/domain"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/cache"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/catalog"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/gemini"
	"github.com/Liorohan10/Skin-Sage/internal/infrastructure/report"
	"github.com/Liorohan10/Skin-Sage/internal/logging"
	"github.com/Liorohan10/Skin-Sage/internal/metrics"
	"github.com/Liorohan10/Skin-Sage/internal/usecase"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Caller: !cfg.IsProduction(),
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("cache", cfg.Cache.Type).
		Dur("cache_ttl", cfg.Cache.TTL).
		Msg("Starting SkinSage backend v1.0.0")

	// Product catalog
	var products domain.ProductCatalog
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.LoadFile(cfg.Catalog.Path)
		if err != nil {
			logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load product catalog")
		}
		logging.Info().Int("products", loaded.Len()).Str("path", cfg.Catalog.Path).Msg("Product catalog loaded")
		products = loaded
	} else {
		ref := catalog.NewReference()
		logging.Info().Int("products", ref.Len()).Msg("Using built-in product catalog")
		products = ref
	}

	// Result store backed by the in-memory cache
	memoryCache := cache.NewMemoryCache(cache.Options{MaxEntries: cfg.Cache.MaxEntries})
	defer memoryCache.Close()
	metrics.RegisterResultStoreSize(memoryCache.Size)

	store := usecase.NewCacheResultStore(memoryCache, cfg.Cache.TTL)

	// Generative AI client; without an API key every analysis comes from the engine
	var ai domain.AIRecommender
	if cfg.AIEnabled() {
		client, err := gemini.NewClient(context.Background(), gemini.Config{
			APIKey:            cfg.Gemini.APIKey,
			Model:             cfg.Gemini.Model,
			RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
			FailureThreshold:  cfg.Gemini.FailureThreshold,
		})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		defer client.Close()
		ai = client
	} else {
		logging.Warn().Msg("Gemini API key not configured, using the recommendation engine only")
	}

	debug := cfg.Server.Environment == "development"

	// Initialize usecase layer
	engine := usecase.NewRecommendationEngine(products, usecase.EngineConfig{
		RoutineMode:         usecase.RoutineMode(cfg.Engine.RoutineMode),
		PremiumBudgetPolicy: usecase.PremiumBudgetPolicy(cfg.Engine.PremiumBudgetPolicy),
		DefaultLimit:        cfg.Engine.RecommendationLimit,
		EnableDebugLogging:  debug,
	})

	analysisService := usecase.NewAnalysisService(engine, ai, store, report.NewPDFExporter(), usecase.AnalysisServiceConfig{
		AITimeout:           cfg.Gemini.Timeout,
		RecommendationLimit: cfg.Engine.RecommendationLimit,
		EnableDebugLogging:  debug,
	})

	logging.Info().
		Str("routine_mode", cfg.Engine.RoutineMode).
		Str("premium_policy", cfg.Engine.PremiumBudgetPolicy).
		Int("limit", cfg.Engine.RecommendationLimit).
		Bool("ai", cfg.AIEnabled()).
		Msg("Recommendation engine configured")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(analysisService, products, cfg.AIEnabled())

	limiter := httpDelivery.NewIPRateLimiter(cfg.RateLimit.PerIP)
	limiter.StartCleanup(5 * time.Minute)
	defer limiter.Stop()

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, limiter)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Server shutdown failed")
	}
}
