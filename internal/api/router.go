package api

import (
	"github.com/gin-gonic/gin"

	"github.com/quickbasket/assistant/internal/api/admin"
	"github.com/quickbasket/assistant/internal/api/chat"
	"github.com/quickbasket/assistant/internal/api/middleware"
	"github.com/quickbasket/assistant/internal/domain"
	"github.com/quickbasket/assistant/internal/repository"
	"github.com/quickbasket/assistant/internal/service"
)

// RouterConfig holds configuration for the router
type RouterConfig struct {
	APIKey       string
	AllowOrigins []string
}

// Deps collects the handlers' collaborators.
type Deps struct {
	ChatService *service.ChatService
	CartService *service.CartService
	Sessions    *repository.SessionStore
	Stores      []domain.Store
	Catalog     *repository.CatalogRepository
	Orders      *repository.OrderRepository
	Promotions  *repository.PromotionRepository
}

// SetupRouter sets up the Gin router
func SetupRouter(deps Deps, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	// CORS middleware
	r.Use(middleware.CORS(cfg.AllowOrigins))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Public chat API
	chatHandler := chat.NewHandler(deps.ChatService, deps.CartService, deps.Sessions, deps.Stores)
	chatGroup := r.Group("/api/v1")
	chatHandler.RegisterRoutes(chatGroup)

	// Admin API (requires API key)
	adminHandler := admin.NewHandler(deps.Sessions, deps.Catalog, deps.Orders, deps.Promotions)
	adminGroup := r.Group("/api/v1/admin")
	adminGroup.Use(middleware.Auth(cfg.APIKey))
	adminHandler.RegisterRoutes(adminGroup)

	return r
}
