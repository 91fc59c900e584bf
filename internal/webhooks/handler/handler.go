package handler

import (
	"errors"
	"io"
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/observability"
	"outreach-server/internal/webhooks/processor"

	"github.com/gin-gonic/gin"
)

const (
	hmacHeader           = "X-Shopify-Hmac-Sha256"
	shopHeader           = "X-Shopify-Shop-Domain"
	webhookIDHeader      = "X-Shopify-Webhook-Id"
	maxWebhookBody       = 2 << 20
	smartleadSecretParam = "secret"
)

// Handler receives platform and outreach webhooks
type Handler struct {
	processor processor.WebhookProcessor
	logger    *observability.Logger
}

func New(processor processor.WebhookProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

func (h *Handler) readBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to read webhook body", err)
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Unable to read request body")
		return nil, false
	}
	return body, true
}

// verifyShopify reads the raw body and checks the Shopify signature before anything is parsed.
func (h *Handler) verifyShopify(c *gin.Context) (string, []byte, bool) {
	body, ok := h.readBody(c)
	if !ok {
		return "", nil, false
	}

	shop, err := h.processor.VerifyShopify(body, c.GetHeader(hmacHeader), c.GetHeader(shopHeader))
	if err != nil {
		h.handleError(c, err)
		return "", nil, false
	}

	ctx := observability.WithFields(c.Request.Context(),
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "webhook_topic", Value: c.GetHeader("X-Shopify-Topic")},
	)
	c.Request = c.Request.WithContext(ctx)
	return shop, body, true
}

// HandleOrderCreate handles POST /webhooks/orders/create
func (h *Handler) HandleOrderCreate(c *gin.Context) {
	shop, body, ok := h.verifyShopify(c)
	if !ok {
		return
	}

	if err := h.processor.EnqueueOrder(c.Request.Context(), shop, c.GetHeader(webhookIDHeader), body); err != nil {
		h.handleError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// HandleAppUninstalled handles POST /webhooks/app/uninstalled
func (h *Handler) HandleAppUninstalled(c *gin.Context) {
	shop, _, ok := h.verifyShopify(c)
	if !ok {
		return
	}

	// Acknowledged even when the purge fails.
	_ = h.processor.Uninstall(c.Request.Context(), shop)
	c.Status(http.StatusOK)
}

// HandleSmartleadReply handles POST /webhooks/smartlead/reply
func (h *Handler) HandleSmartleadReply(c *gin.Context) {
	if err := h.processor.VerifySmartlead(c.Query(smartleadSecretParam)); err != nil {
		h.handleError(c, err)
		return
	}

	body, ok := h.readBody(c)
	if !ok {
		return
	}

	if err := h.processor.EnqueueReply(c.Request.Context(), body); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrInvalidSignature):
		apierrors.Unauthorized(c, "Invalid webhook signature")
	case errors.Is(err, processor.ErrInvalidSecret):
		apierrors.Unauthorized(c, "Invalid webhook secret")
	case errors.Is(err, processor.ErrInvalidShop):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Missing or invalid shop domain header")
	case errors.Is(err, processor.ErrInvalidPayload):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Webhook body must be JSON")
	default:
		// Queue full or shutting down: a 503 makes the sender retry the delivery.
		h.logger.Error(c.Request.Context(), "webhook not accepted", err)
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, apierrors.ErrorResponse{
			Success: false,
			Error:   "Webhook could not be queued, please retry",
			Code:    apierrors.CodeInternalError,
		})
	}
}
