package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickbasket/assistant/internal/domain"
	"github.com/quickbasket/assistant/internal/repository"
	"github.com/quickbasket/assistant/internal/service"
)

// Handler serves the public chat API.
type Handler struct {
	chatService *service.ChatService
	cartService *service.CartService
	sessions    *repository.SessionStore
	stores      []domain.Store
}

// NewHandler creates a new chat handler.
func NewHandler(chatService *service.ChatService, cartService *service.CartService,
	sessions *repository.SessionStore, stores []domain.Store) *Handler {
	return &Handler{
		chatService: chatService,
		cartService: cartService,
		sessions:    sessions,
		stores:      stores,
	}
}

// RegisterRoutes registers chat routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/chat", h.Chat)
	r.GET("/sessions/:id/cart", h.Cart)
	r.DELETE("/sessions/:id", h.ResetSession)
	r.GET("/stores", h.Stores)
}

// Chat handles one chat turn, creating a session when none is given.
func (h *Handler) Chat(c *gin.Context) {
	var req domain.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.sessions.Create().ID
	}

	var resp *domain.ChatResponse
	ok := h.sessions.Do(sessionID, func(sess *domain.SessionContext) {
		resp = h.chatService.ProcessTurn(sess, req.Message)
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Cart returns the session's cart contents, total, and applicable
// promotions.
func (h *Handler) Cart(c *gin.Context) {
	id := c.Param("id")

	var payload gin.H
	ok := h.sessions.Do(id, func(sess *domain.SessionContext) {
		payload = gin.H{
			"items":      sess.Cart.Items,
			"total":      sess.Cart.Total(),
			"promotions": h.cartService.ApplicablePromotions(sess.Cart),
		}
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, payload)
}

// ResetSession clears a session's accumulated state and cart.
func (h *Handler) ResetSession(c *gin.Context) {
	id := c.Param("id")

	ok := h.sessions.Do(id, func(sess *domain.SessionContext) {
		sess.Reset()
	})
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// Stores lists all store locations.
func (h *Handler) Stores(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"stores": h.stores})
}
