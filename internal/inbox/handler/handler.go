package handler

import (
	"errors"
	"net/http"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/inbox/processor"
	"outreach-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.InboxProcessor
	logger    *observability.Logger
}

func New(processor processor.InboxProcessor, logger *observability.Logger) Handler {
	return Handler{processor: processor, logger: logger}
}

type ListQuery struct {
	CampaignID string `form:"campaignId" binding:"omitempty,uuid"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
}

// HandleList handles GET /api/inbox
func (h *Handler) HandleList(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	var query ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	params := processor.ListParams{Page: query.Page, Limit: query.Limit}
	if query.CampaignID != "" {
		campaignID := uuid.MustParse(query.CampaignID)
		params.CampaignID = &campaignID
	}

	page, err := h.processor.ListConversations(c.Request.Context(), shop, params)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// HandleGet handles GET /api/inbox/:id
func (h *Handler) HandleGet(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	conversation, err := h.processor.GetConversation(c.Request.Context(), shop, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "conversation": conversation})
}

// HandleMarkRead handles PUT /api/inbox/:id/read
func (h *Handler) HandleMarkRead(c *gin.Context) {
	shop, ok := h.getShop(c)
	if !ok {
		return
	}

	id, ok := h.conversationID(c)
	if !ok {
		return
	}

	if err := h.processor.MarkRead(c.Request.Context(), shop, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrConversationNotFound):
		apierrors.NotFound(c, "Conversation not found")
	default:
		apierrors.RespondWithError(c, err)
	}
}

func (h *Handler) conversationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, apierrors.CodeInvalidInput, "Invalid conversation ID format")
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
