package handler

import (
	"errors"
	"net/http"

	"outreach-server/internal/accounts/processor"
	"outreach-server/internal/apierrors"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AccountProcessor
	logger    *observability.Logger
}

func New(processor processor.AccountProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type CreateAccountRequest struct {
	DomainID      string `json:"domainId" binding:"required,uuid"`
	LocalPart     string `json:"localPart" binding:"required,min=1,max=64"`
	Password      string `json:"password" binding:"required,min=8"`
	FromName      string `json:"fromName" binding:"max=100"`
	SMTPHost      string `json:"smtpHost" binding:"omitempty,hostname"`
	SMTPPort      int    `json:"smtpPort" binding:"omitempty,min=1,max=65535"`
	IMAPHost      string `json:"imapHost" binding:"omitempty,hostname"`
	IMAPPort      int    `json:"imapPort" binding:"omitempty,min=1,max=65535"`
	DailyLimit    int    `json:"dailyLimit" binding:"omitempty,min=1,max=500"`
	WarmupEnabled *bool  `json:"warmupEnabled"`
}

type WarmupRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

type AssignRequest struct {
	CampaignID string `json:"campaignId" binding:"required,uuid"`
}

// HandleCreate handles POST /api/accounts
func (h *Handler) HandleCreate(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	account, err := h.processor.CreateAccount(c.Request.Context(), shop, processor.CreateAccountParams{
		DomainID:      uuid.MustParse(req.DomainID),
		LocalPart:     req.LocalPart,
		Password:      req.Password,
		FromName:      req.FromName,
		SMTPHost:      req.SMTPHost,
		SMTPPort:      req.SMTPPort,
		IMAPHost:      req.IMAPHost,
		IMAPPort:      req.IMAPPort,
		DailyLimit:    req.DailyLimit,
		WarmupEnabled: req.WarmupEnabled,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, account)
}

// HandleList handles GET /api/accounts
func (h *Handler) HandleList(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	accounts, err := h.processor.ListAccounts(c.Request.Context(), shop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "accounts": accounts})
}

// HandleWarmup handles POST /api/accounts/:id/warmup
func (h *Handler) HandleWarmup(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	var req WarmupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	account, err := h.processor.SetWarmup(c.Request.Context(), shop, accountID, *req.Enabled)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, account)
}

// HandleAssign handles POST /api/accounts/:id/assign
func (h *Handler) HandleAssign(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	accountID, ok := h.accountID(c)
	if !ok {
		return
	}

	var req AssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	if err := h.processor.AssignToCampaign(c.Request.Context(), shop, accountID, uuid.MustParse(req.CampaignID)); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Email account assigned to campaign"})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrDomainNotFound):
		apierrors.NotFound(c, "Domain not found")
	case errors.Is(err, processor.ErrAccountNotFound):
		apierrors.NotFound(c, "Email account not found")
	case errors.Is(err, processor.ErrCampaignNotFound):
		apierrors.NotFound(c, "Campaign not found")
	case errors.Is(err, processor.ErrDuplicateEmail):
		apierrors.Conflict(c, apierrors.CodeConflict, "An email account with this address already exists")
	case errors.Is(err, processor.ErrInvalidLocalPart):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Local part may only contain letters, digits, dots, plus signs, hyphens and underscores")
	case errors.Is(err, processor.ErrOutreachNotConfigured):
		apierrors.BadRequest(c, apierrors.CodeNotConfigured, "Smartlead API key must be configured in email settings")
	case errors.Is(err, processor.ErrAccountNotRegistered):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Email account is not registered with Smartlead")
	case errors.Is(err, processor.ErrCampaignNotRegistered):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Campaign is not registered with Smartlead")
	default:
		apierrors.RespondWithError(c, err)
	}
}

func (h *Handler) accountID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid account ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) getShop(c *gin.Context) (string, bool) {
	shop := c.GetString("Shop")
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return "", false
	}
	return shop, true
}
