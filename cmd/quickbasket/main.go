package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/quickbasket/assistant/internal/api"
	"github.com/quickbasket/assistant/internal/config"
	"github.com/quickbasket/assistant/internal/nlp"
	"github.com/quickbasket/assistant/internal/repository"
	"github.com/quickbasket/assistant/internal/service"
)

var (
	configPath = flag.String("config", "", "Path to config file")
)

func main() {
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database (catalog, orders, promotions, stores)
	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer db.Close()

	// Load collaborator data
	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	catalog, err := catalogRepo.Load()
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}
	promotions, err := promotionRepo.List()
	if err != nil {
		logger.Fatal("Failed to load promotions", zap.Error(err))
	}
	stores, err := storeRepo.List()
	if err != nil {
		logger.Fatal("Failed to load stores", zap.Error(err))
	}

	// Sessions live in memory for the process lifetime
	sessions := repository.NewSessionStore()

	// Build the dialogue pipeline
	corrector := nlp.NewCorrector()
	extractor := nlp.NewExtractor(corrector)
	safety := nlp.NewSafetyFilter()
	classifier := nlp.NewClassifier(nlp.NewBayesPredictor(), cfg.Chat.ConfidenceThreshold)

	seed := cfg.Chat.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	cartService := service.NewCartService(catalog, promotions, cfg.Chat.MaxPromotions)
	recommendations := service.NewRecommendationService(catalog, cfg.Chat.MaxRecommendations, cfg.Chat.PriceDelta)
	responder := service.NewResponder(catalog, orderRepo, stores, recommendations, rng, cfg.Chat.WelcomePromo)
	chatService := service.NewChatService(logger, extractor, safety, classifier,
		service.NewContextTracker(), cartService, responder)

	// Setup router
	router := api.SetupRouter(api.Deps{
		ChatService: chatService,
		CartService: cartService,
		Sessions:    sessions,
		Stores:      stores,
		Catalog:     catalogRepo,
		Orders:      orderRepo,
		Promotions:  promotionRepo,
	}, api.RouterConfig{
		APIKey:       cfg.Admin.APIKey,
		AllowOrigins: []string{"*"},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Starting Quick Basket assistant",
			zap.String("address", cfg.Address()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
