package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/auth/processor"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
)

// ShopKey is the gin context key TenantMiddleware stores the shop under.
const ShopKey = "Shop"

const reauthorizeHeader = "X-Shopify-API-Request-Failure-Reauthorize-Url"

type Handler struct {
	authProcessor processor.AuthProcessor
	apiKey        string
	logger        *observability.Logger
}

func New(authProcessor processor.AuthProcessor, apiKey string, logger *observability.Logger) Handler {
	return Handler{authProcessor: authProcessor, apiKey: apiKey, logger: logger}
}

// appURL is the shop admin page that hosts the embedded app.
func (h *Handler) appURL(shop string) string {
	return "https://" + shop + "/admin/apps/" + url.PathEscape(h.apiKey)
}

// HandleInstall redirects the merchant to the OAuth consent screen.
func (h *Handler) HandleInstall(c *gin.Context) {
	redirect, err := h.authProcessor.InstallURL(c.Request.Context(), c.Query("shop"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, redirect)
}

// HandleCallback completes the OAuth install and opens the app in the shop admin.
func (h *Handler) HandleCallback(c *gin.Context) {
	shop, err := h.authProcessor.CompleteInstall(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.appURL(shop))
}

// HandleGmailConnect returns the Google consent URL for the current shop.
func (h *Handler) HandleGmailConnect(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}
	consentURL, err := h.authProcessor.GmailConnectURL(c.Request.Context(), shop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "url": consentURL})
}

// HandleGmailCallback stores the mailbox tokens and returns the merchant to the app.
func (h *Handler) HandleGmailCallback(c *gin.Context) {
	if reason := c.Query("error"); reason != "" {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Gmail authorization was denied: "+reason)
		return
	}
	shop, err := h.authProcessor.CompleteGmailConnect(c.Request.Context(), c.Query("state"), c.Query("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, h.appURL(shop)+"?gmail=connected")
}

// TenantMiddleware resolves the shop for every /api route.
func (h *Handler) TenantMiddleware(c *gin.Context) {
	ctx := c.Request.Context()

	req := processor.TenantRequest{
		Shop:      c.GetHeader("X-Shop-Domain"),
		APISecret: c.GetHeader("X-Api-Secret"),
	}
	if authHeader := c.GetHeader("Authorization"); strings.HasPrefix(authHeader, "Bearer ") {
		req.BearerToken = strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	}
	if req.Shop == "" {
		req.Shop = c.Query("shop")
	}

	shop, err := h.authProcessor.ResolveTenant(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Set(ShopKey, shop)
	c.Request = c.Request.WithContext(observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop}))
	c.Next()
}

func (h *Handler) getShop(c *gin.Context) (string, bool) {
	shop := c.GetString(ShopKey)
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return "", false
	}
	return shop, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var reauth *processor.ReauthorizationError
	switch {
	case errors.As(err, &reauth):
		c.Header(reauthorizeHeader, reauth.URL)
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"success":         false,
			"error":           "Reauthorization required",
			"code":            apierrors.CodeUnauthorized,
			"reauthorize_url": reauth.URL,
		})
	case errors.Is(err, processor.ErrInvalidShop):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "A valid shop domain is required")
	case errors.Is(err, processor.ErrMissingCode):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Authorization code is missing")
	case errors.Is(err, processor.ErrGmailNotConfigured):
		apierrors.BadRequest(c, apierrors.CodeNotConfigured, "Gmail forwarding is not configured on this server")
	case errors.Is(err, processor.ErrInvalidHMAC):
		apierrors.Unauthorized(c, "Invalid HMAC signature")
	case errors.Is(err, processor.ErrInvalidState):
		apierrors.Unauthorized(c, "Invalid or expired OAuth state")
	case errors.Is(err, processor.ErrInvalidSessionToken):
		apierrors.Unauthorized(c, "Invalid session token")
	case errors.Is(err, processor.ErrMissingTenant):
		apierrors.Unauthorized(c, "Missing shop identity")
	case errors.Is(err, processor.ErrInvalidAPISecret):
		apierrors.Unauthorized(c, "Invalid API secret")
	default:
		apierrors.RespondWithError(c, err)
	}
}
