package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/telmart/console_api/internal/sse"
	"github.com/telmart/console_api/internal/utils"
)

type capturingNotifier struct {
	sse.NopNotifier
	approved []string
}

func (n *capturingNotifier) NotifyProductApproved(sellerID, productID, name string) {
	n.approved = append(n.approved, productID)
}

func webhookRequest(secret string, body []byte, sign bool) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/catalog", bytes.NewReader(body))
	if sign {
		req.Header.Set("X-Catalog-Signature", utils.GenerateSignature(body, secret))
	}
	return req
}

func TestCatalogWebhook_ValidSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)

	notifier := &capturingNotifier{}
	handler := NewWebhookHandler(notifier, "hook-secret")
	router := gin.New()
	router.POST("/webhook/catalog", handler.HandleCatalogWebhook)

	body := []byte(`{"event": "product.approved", "productId": "p1", "sellerId": "s1", "name": "iPhone 13"}`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest("hook-secret", body, true))

	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, notifier.approved, 1)
	assert.Equal(t, "p1", notifier.approved[0])
}

func TestCatalogWebhook_InvalidSignatureRejected(t *testing.T) {
	gin.SetMode(gin.TestMode)

	notifier := &capturingNotifier{}
	handler := NewWebhookHandler(notifier, "hook-secret")
	router := gin.New()
	router.POST("/webhook/catalog", handler.HandleCatalogWebhook)

	body := []byte(`{"event": "product.approved", "productId": "p1", "sellerId": "s1"}`)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest("wrong-secret", body, true))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, notifier.approved)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest("hook-secret", body, false))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogWebhook_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewWebhookHandler(&capturingNotifier{}, "hook-secret")
	router := gin.New()
	router.POST("/webhook/catalog", handler.HandleCatalogWebhook)

	body := []byte(`not json`)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, webhookRequest("hook-secret", body, true))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
