package handler

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/telmart/console_api/internal/sse"
	"github.com/telmart/console_api/internal/utils"
)

// catalogWebhookPayload is what the catalog backend posts when a product
// changes state outside this console (an admin approval, for example).
type catalogWebhookPayload struct {
	Event      string `json:"event"`
	ProductID  string `json:"productId"`
	SellerID   string `json:"sellerId"`
	Name       string `json:"name"`
	IsVerified bool   `json:"isVerified"`
	IsApproved bool   `json:"isApproved"`
}

// WebhookHandler handles incoming webhooks from the catalog backend.
type WebhookHandler struct {
	notifier      sse.ProductNotifier
	webhookSecret string
}

// NewWebhookHandler constructs a WebhookHandler.
func NewWebhookHandler(notifier sse.ProductNotifier, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{notifier: notifier, webhookSecret: webhookSecret}
}

// HandleCatalogWebhook handles POST /webhook/catalog
func (h *WebhookHandler) HandleCatalogWebhook(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid body"})
		return
	}

	signature := c.GetHeader("X-Catalog-Signature")
	if !utils.VerifySignature(body, signature, h.webhookSecret) {
		log.Warn().Str("ip", c.ClientIP()).Msg("Webhook signature mismatch")
		c.JSON(401, gin.H{"error": "Invalid signature"})
		return
	}

	var payload catalogWebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(400, gin.H{"error": "Invalid JSON"})
		return
	}

	switch payload.Event {
	case "product.verified":
		h.notifier.NotifyProductVerified(payload.SellerID, payload.ProductID, payload.Name, payload.IsApproved)
	case "product.approved":
		h.notifier.NotifyProductApproved(payload.SellerID, payload.ProductID, payload.Name)
	default:
		h.notifier.NotifyProductUpdated(payload.SellerID, payload.ProductID, payload.Name, payload.IsVerified, payload.IsApproved)
	}

	c.JSON(200, gin.H{"received": true})
}
