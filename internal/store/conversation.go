package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DirectionInbound  = "inbound"
	DirectionOutbound = "outbound"
)

type Conversation struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	Shop           string     `db:"shop" json:"shop"`
	CampaignID     *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	EmailAccountID *uuid.UUID `db:"email_account_id" json:"email_account_id"`
	LeadID         *string    `db:"lead_id" json:"lead_id"`
	FromEmail      string     `db:"from_email" json:"from_email"`
	ToEmail        string     `db:"to_email" json:"to_email"`
	Subject        string     `db:"subject" json:"subject"`
	BodyText       string     `db:"body_text" json:"body_text"`
	BodyHTML       string     `db:"body_html" json:"body_html"`
	Direction      string     `db:"direction" json:"direction"`
	GmailMessageID *string    `db:"gmail_message_id" json:"gmail_message_id"`
	IsRead         bool       `db:"is_read" json:"is_read"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
}

type CreateConversationParams struct {
	Shop           string
	CampaignID     *uuid.UUID
	EmailAccountID *uuid.UUID
	LeadID         *string
	FromEmail      string
	ToEmail        string
	Subject        string
	BodyText       string
	BodyHTML       string
	Direction      string
}

func (s *Store) CreateConversation(ctx context.Context, params CreateConversationParams) (Conversation, error) {
	var conversation Conversation
	err := s.Insert(ctx, &conversation, TableConversations, map[string]any{
		"shop":             params.Shop,
		"campaign_id":      params.CampaignID,
		"email_account_id": params.EmailAccountID,
		"lead_id":          params.LeadID,
		"from_email":       params.FromEmail,
		"to_email":         params.ToEmail,
		"subject":          params.Subject,
		"body_text":        params.BodyText,
		"body_html":        params.BodyHTML,
		"direction":        params.Direction,
	})
	return conversation, err
}

func (s *Store) GetConversation(ctx context.Context, shop string, id uuid.UUID) (Conversation, error) {
	var conversation Conversation
	err := s.SelectOne(ctx, &conversation, TableConversations, Filter{Eq("shop", shop), Eq("id", id)})
	return conversation, err
}

type ListConversationsParams struct {
	Shop       string
	CampaignID *uuid.UUID
	Limit      int
	Offset     int
}

const sqlListConversations = `
SELECT * FROM conversations
WHERE shop = $1 AND ($2::uuid IS NULL OR campaign_id = $2)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4`

const sqlCountConversations = `
SELECT COUNT(*) FROM conversations
WHERE shop = $1 AND ($2::uuid IS NULL OR campaign_id = $2)`

// ListConversations returns one page of the shop's conversations, newest first, and the total count.
func (s *Store) ListConversations(ctx context.Context, params ListConversationsParams) ([]Conversation, int, error) {
	var total int
	if err := s.db.GetContext(ctx, &total, sqlCountConversations, params.Shop, params.CampaignID); err != nil {
		s.logger.Error(ctx, "failed to count conversations", err)
		return nil, 0, fmt.Errorf("failed to count conversations: %w", err)
	}

	conversations := []Conversation{}
	err := s.db.SelectContext(ctx, &conversations, sqlListConversations,
		params.Shop, params.CampaignID, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list conversations", err)
		return nil, 0, fmt.Errorf("failed to list conversations: %w", err)
	}
	return conversations, total, nil
}

func (s *Store) MarkConversationRead(ctx context.Context, shop string, id uuid.UUID) error {
	n, err := s.Update(ctx, TableConversations, map[string]any{"is_read": true}, Filter{Eq("shop", shop), Eq("id", id)})
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) SetConversationGmailMessageID(ctx context.Context, shop string, id uuid.UUID, messageID string) error {
	_, err := s.Update(ctx, TableConversations, map[string]any{"gmail_message_id": messageID}, Filter{Eq("shop", shop), Eq("id", id)})
	return err
}
