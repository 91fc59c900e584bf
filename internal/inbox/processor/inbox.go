package processor

import (
	"context"
	"errors"

	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

var ErrConversationNotFound = errors.New("conversation not found")

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

type InboxProcessor struct {
	store  InboxStore
	logger *observability.Logger
}

func New(store InboxStore, logger *observability.Logger) InboxProcessor {
	return InboxProcessor{store: store, logger: logger}
}

type ListParams struct {
	CampaignID *uuid.UUID
	Page       int
	Limit      int
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Page struct {
	Conversations []store.Conversation `json:"conversations"`
	Pagination    Pagination           `json:"pagination"`
}

// normalize clamps page to >= 1 and limit to 1..MaxPageSize.
func (p ListParams) normalize() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p *InboxProcessor) ListConversations(ctx context.Context, shop string, params ListParams) (Page, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})
	params = params.normalize()

	conversations, total, err := p.store.ListConversations(ctx, store.ListConversationsParams{
		Shop:       shop,
		CampaignID: params.CampaignID,
		Limit:      params.Limit,
		Offset:     (params.Page - 1) * params.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list conversations", err)
		return Page{}, err
	}

	return Page{
		Conversations: conversations,
		Pagination: Pagination{
			Page:       params.Page,
			Limit:      params.Limit,
			Total:      total,
			TotalPages: (total + params.Limit - 1) / params.Limit,
		},
	}, nil
}

// GetConversation returns the conversation and marks it read.
func (p *InboxProcessor) GetConversation(ctx context.Context, shop string, id uuid.UUID) (store.Conversation, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "conversation_id", Value: id},
	)

	conversation, err := p.store.GetConversation(ctx, shop, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.Conversation{}, ErrConversationNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load conversation", err)
		return store.Conversation{}, err
	}

	if !conversation.IsRead {
		if err := p.store.MarkConversationRead(ctx, shop, id); err != nil {
			p.logger.Error(ctx, "failed to mark conversation read", err)
			return store.Conversation{}, err
		}
		conversation.IsRead = true
	}
	return conversation, nil
}

func (p *InboxProcessor) MarkRead(ctx context.Context, shop string, id uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "conversation_id", Value: id},
	)

	err := p.store.MarkConversationRead(ctx, shop, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrConversationNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to mark conversation read", err)
	}
	return err
}
