package api

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/quickbasket/assistant/internal/domain"
	"github.com/quickbasket/assistant/internal/nlp"
	"github.com/quickbasket/assistant/internal/repository"
	"github.com/quickbasket/assistant/internal/service"
)

func newTestRouter(t *testing.T) (*gin.Engine, *repository.SessionStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := repository.NewDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	catalogRepo := repository.NewCatalogRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	catalog, err := catalogRepo.Load()
	require.NoError(t, err)
	promotions, err := promotionRepo.List()
	require.NoError(t, err)
	stores, err := storeRepo.List()
	require.NoError(t, err)

	sessions := repository.NewSessionStore()

	cartService := service.NewCartService(catalog, promotions, 3)
	recs := service.NewRecommendationService(catalog, 3, 30)
	responder := service.NewResponder(catalog, orderRepo, stores, recs,
		rand.New(rand.NewSource(1)), "WELCOME15")
	chatService := service.NewChatService(zap.NewNop(),
		nlp.NewExtractor(nlp.NewCorrector()),
		nlp.NewSafetyFilter(),
		nlp.NewClassifier(nlp.NewBayesPredictor(), 0.4),
		service.NewContextTracker(),
		cartService, responder)

	router := SetupRouter(Deps{
		ChatService: chatService,
		CartService: cartService,
		Sessions:    sessions,
		Stores:      stores,
		Catalog:     catalogRepo,
		Orders:      orderRepo,
		Promotions:  promotionRepo,
	}, RouterConfig{
		APIKey:       "test-key",
		AllowOrigins: []string{"*"},
	})

	return router, sessions
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/health", nil, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestChatCreatesSession(t *testing.T) {
	router, sessions := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat",
		domain.ChatRequest{Message: "hello"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.SessionID)
	assert.Equal(t, domain.IntentGreeting, resp.Intent)
	assert.NotEmpty(t, resp.Reply)
	assert.Equal(t, 1, sessions.Count())
}

func TestChatReusesSession(t *testing.T) {
	router, sessions := newTestRouter(t)
	sess := sessions.Create()

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat",
		domain.ChatRequest{SessionID: sess.ID, Message: "add nike air max to my cart"}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp domain.ChatResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, sess.ID, resp.SessionID)
	assert.Equal(t, domain.IntentShoppingCart, resp.Intent)
	assert.Equal(t, 1, sessions.Count())
}

func TestChatUnknownSession(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat",
		domain.ChatRequest{SessionID: "nope", Message: "hello"}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestChatRejectsMissingMessage(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/chat", map[string]string{}, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartEndpoint(t *testing.T) {
	router, sessions := newTestRouter(t)
	sess := sessions.Create()

	doJSON(t, router, http.MethodPost, "/api/v1/chat",
		domain.ChatRequest{SessionID: sess.ID, Message: "add nike air max to my cart"}, nil)

	w := doJSON(t, router, http.MethodGet, "/api/v1/sessions/"+sess.ID+"/cart", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Items []domain.CartItem `json:"items"`
		Total float64           `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.Len(t, payload.Items, 1)
	assert.Equal(t, "Air Max", payload.Items[0].Model)
	assert.Equal(t, 120.0, payload.Total)
}

func TestResetSessionEndpoint(t *testing.T) {
	router, sessions := newTestRouter(t)
	sess := sessions.Create()

	doJSON(t, router, http.MethodPost, "/api/v1/chat",
		domain.ChatRequest{SessionID: sess.ID, Message: "add nike air max to my cart"}, nil)

	w := doJSON(t, router, http.MethodDelete, "/api/v1/sessions/"+sess.ID, nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	got, ok := sessions.Get(sess.ID)
	require.True(t, ok)
	assert.True(t, got.Cart.Empty())
}

func TestStoresEndpoint(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/stores", nil, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Stores []domain.Store `json:"stores"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Len(t, payload.Stores, 3)
}

func TestAdminStatsRequiresAPIKey(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil,
		map[string]string{"X-API-Key": "test-key"})
	require.Equal(t, http.StatusOK, w.Code)

	var stats domain.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 8, stats.TotalProducts)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 5, stats.TotalPromotions)
}

func TestAdminStatsBearerToken(t *testing.T) {
	router, _ := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/admin/stats", nil,
		map[string]string{"Authorization": "Bearer test-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}
