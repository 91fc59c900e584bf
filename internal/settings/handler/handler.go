package handler

import (
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/observability"
	"outreach-server/internal/settings/processor"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.SettingsProcessor
	logger    *observability.Logger
}

func New(processor processor.SettingsProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type UpdateSettingsRequest struct {
	AttributionAPIKey     *string  `json:"attribution_api_key"`
	WebhookEnabled        *bool    `json:"webhook_enabled"`
	MetafieldSyncEnabled  *bool    `json:"metafield_sync_enabled"`
	CommissionRate        *float64 `json:"commission_rate" binding:"omitempty,gte=0,lte=1"`
	AttributionWindowDays *int     `json:"attribution_window_days" binding:"omitempty,gte=1,lte=365"`
	MinWatchSeconds       *int     `json:"min_watch_seconds" binding:"omitempty,gte=0,lte=3600"`
}

type ContactRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	Organization *string `json:"organization"`
	Address      *string `json:"address"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Zip          *string `json:"zip"`
	Country      *string `json:"country" binding:"omitempty,len=2"`
	Phone        *string `json:"phone"`
	Email        *string `json:"email" binding:"omitempty,email"`
}

type UpdateEmailSettingsRequest struct {
	CloudflareAccountID *string         `json:"cloudflare_account_id"`
	CloudflareAPIToken  *string         `json:"cloudflare_api_token"`
	SmartleadAPIKey     *string         `json:"smartlead_api_key"`
	GmailForwardTo      *string         `json:"gmail_forward_to" binding:"omitempty,email"`
	Contact             *ContactRequest `json:"contact"`
}

func (r ContactRequest) fields() map[string]*string {
	return map[string]*string{
		"first_name":   r.FirstName,
		"last_name":    r.LastName,
		"organization": r.Organization,
		"address":      r.Address,
		"city":         r.City,
		"state":        r.State,
		"zip":          r.Zip,
		"country":      r.Country,
		"phone":        r.Phone,
		"email":        r.Email,
	}
}

// HandleGetSettings handles GET /api/settings
func (h *Handler) HandleGetSettings(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	settings, err := h.processor.GetSettings(c.Request.Context(), shop)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// HandleUpdateSettings handles PUT /api/settings
func (h *Handler) HandleUpdateSettings(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	settings, err := h.processor.UpdateSettings(c.Request.Context(), shop, processor.UpdateSettingsParams{
		AttributionAPIKey:     req.AttributionAPIKey,
		WebhookEnabled:        req.WebhookEnabled,
		MetafieldSyncEnabled:  req.MetafieldSyncEnabled,
		CommissionRate:        req.CommissionRate,
		AttributionWindowDays: req.AttributionWindowDays,
		MinWatchSeconds:       req.MinWatchSeconds,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// HandleGetEmailSettings handles GET /api/email-settings
func (h *Handler) HandleGetEmailSettings(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	settings, err := h.processor.GetEmailSettings(c.Request.Context(), shop)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

// HandleUpdateEmailSettings handles PUT /api/email-settings
func (h *Handler) HandleUpdateEmailSettings(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req UpdateEmailSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params := processor.UpdateEmailSettingsParams{
		CloudflareAccountID: req.CloudflareAccountID,
		CloudflareAPIToken:  req.CloudflareAPIToken,
		SmartleadAPIKey:     req.SmartleadAPIKey,
		GmailForwardTo:      req.GmailForwardTo,
	}
	if req.Contact != nil {
		params.Contact = req.Contact.fields()
	}

	settings, err := h.processor.UpdateEmailSettings(c.Request.Context(), shop, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": settings})
}

func (h *Handler) getShop(c *gin.Context) (string, bool) {
	shop := c.GetString("Shop")
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return "", false
	}
	return shop, true
}
