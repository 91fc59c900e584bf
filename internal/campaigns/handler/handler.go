package handler

import (
	"errors"
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/campaigns/processor"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	processor processor.CampaignProcessor
	logger    *observability.Logger
}

func New(processor processor.CampaignProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateCampaignRequest struct {
	Name string `json:"name" binding:"required,max=200"`
}

// HandleList handles GET /api/campaigns
func (h *Handler) HandleList(c *gin.Context) {
	shop := c.GetString("Shop")
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return
	}

	campaigns, err := h.processor.ListCampaigns(c.Request.Context(), shop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "campaigns": campaigns})
}

// HandleCreate handles POST /api/campaigns
func (h *Handler) HandleCreate(c *gin.Context) {
	shop := c.GetString("Shop")
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	campaign, err := h.processor.CreateCampaign(c.Request.Context(), shop, req.Name)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, campaign)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrEmptyName):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Campaign name is required")
	case errors.Is(err, processor.ErrOutreachNotConfigured):
		apierrors.BadRequest(c, apierrors.CodeNotConfigured, "Smartlead API key must be configured in email settings")
	default:
		apierrors.RespondWithError(c, err)
	}
}
