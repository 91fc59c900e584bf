package handler

import (
	"errors"
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/clients/cloudflare"
	"outreach-server/internal/domains/processor"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.DomainProcessor
	logger    *observability.Logger
}

func New(processor processor.DomainProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type SearchRequest struct {
	Query string `json:"query" binding:"required,min=2,max=63"`
}

type PurchaseRequest struct {
	Domain string `json:"domain" binding:"required,fqdn"`
	Years  int    `json:"years" binding:"omitempty,min=1,max=10"`
}

type ProvisionRequest struct {
	DomainID string                      `json:"domain_id" binding:"required,uuid"`
	Provider *cloudflare.ProviderProfile `json:"provider"`
}

type VerifyRequest struct {
	DomainID string `json:"domain_id" binding:"required,uuid"`
}

// HandleSearch handles POST /api/domains/search
func (h *Handler) HandleSearch(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	domains, err := h.processor.SearchDomains(c.Request.Context(), shop, req.Query)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "domains": domains})
}

// HandlePurchase handles POST /api/domains/purchase
func (h *Handler) HandlePurchase(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	domain, err := h.processor.PurchaseDomain(c.Request.Context(), shop, req.Domain, req.Years)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "domain": domain})
}

// HandleProvisionDNS handles POST /api/domains/provision-dns
func (h *Handler) HandleProvisionDNS(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req ProvisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	results, err := h.processor.ProvisionDNS(c.Request.Context(), shop, uuid.MustParse(req.DomainID), req.Provider)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "results": results})
}

// HandleVerifyDNS handles POST /api/domains/verify-dns
func (h *Handler) HandleVerifyDNS(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.VerifyDNS(c.Request.Context(), shop, uuid.MustParse(req.DomainID))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"status":        result.Status,
		"all_verified":  result.AllVerified,
		"domain_status": result.DomainStatus,
	})
}

// HandleList handles GET /api/domains/list
func (h *Handler) HandleList(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	domains, err := h.processor.ListDomains(c.Request.Context(), shop)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "domains": domains})
}

// HandleStatus handles GET /api/domains/status/:id
func (h *Handler) HandleStatus(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	domainID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid domain ID format")
		return
	}

	status, err := h.processor.GetDomainStatus(c.Request.Context(), shop, domainID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "domain": status.Domain, "accounts": status.Accounts})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrDomainNotFound):
		apierrors.NotFound(c, "Domain not found")
	case errors.Is(err, processor.ErrRegistrarNotConfigured):
		apierrors.BadRequest(c, apierrors.CodeNotConfigured, "Cloudflare account ID and API token must be configured in email settings")
	case errors.Is(err, processor.ErrMissingZone):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Domain has no DNS zone yet, provision DNS first")
	case errors.Is(err, processor.ErrInvalidProfile):
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Provider profile needs at least one MX host and an SPF include")
	default:
		apierrors.RespondWithError(c, err)
	}
}

func (h *Handler) getShop(c *gin.Context) (string, bool) {
	shop := c.GetString("Shop")
	if shop == "" {
		apierrors.Unauthorized(c, "Shop not found in context")
		return "", false
	}
	return shop, true
}
