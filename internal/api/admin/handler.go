package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbasket/assistant/internal/domain"
	"github.com/quickbasket/assistant/internal/repository"
)

// Handler serves the API-key gated admin surface.
type Handler struct {
	sessions   *repository.SessionStore
	catalog    *repository.CatalogRepository
	orders     *repository.OrderRepository
	promotions *repository.PromotionRepository
}

// NewHandler creates a new admin handler.
func NewHandler(sessions *repository.SessionStore, catalog *repository.CatalogRepository,
	orders *repository.OrderRepository, promotions *repository.PromotionRepository) *Handler {
	return &Handler{
		sessions:   sessions,
		catalog:    catalog,
		orders:     orders,
		promotions: promotions,
	}
}

// RegisterRoutes registers admin routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats", h.Stats)
}

// Stats returns system statistics.
func (h *Handler) Stats(c *gin.Context) {
	products, err := h.catalog.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	orders, err := h.orders.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	promotions, err := h.promotions.Count()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.Stats{
		ActiveSessions:  h.sessions.Count(),
		TotalProducts:   products,
		TotalOrders:     orders,
		TotalPromotions: promotions,
	})
}
