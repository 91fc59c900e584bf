package processor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"outreach-server/internal/clients/gmail"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrMissingRecipient = errors.New("reply payload has no recipient")
	ErrUnknownRecipient = errors.New("reply recipient does not match any email account")
)

const DirectionInbound = "inbound"

type ReplyProcessor struct {
	store  ReplyStore
	mail   MailFactory
	now    func() time.Time
	logger *observability.Logger
}

func New(store ReplyStore, mail MailFactory, logger *observability.Logger) ReplyProcessor {
	return ReplyProcessor{store: store, mail: mail, now: time.Now, logger: logger}
}

// flexID accepts JSON strings and numbers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// Reply is the Smartlead reply webhook body.
type Reply struct {
	FromEmail  string `json:"from_email"`
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	EmailBody  string `json:"email_body"`
	CampaignID flexID `json:"campaign_id"`
	LeadID     flexID `json:"lead_id"`
}

// ProcessReply stores an inbound reply as a conversation and, when the merchant
// connected Gmail, copies it into their inbox. Forwarding never fails the reply.
func (p *ReplyProcessor) ProcessReply(ctx context.Context, payload []byte) (store.Conversation, error) {
	var reply Reply
	if err := json.Unmarshal(payload, &reply); err != nil {
		return store.Conversation{}, fmt.Errorf("failed to decode reply payload: %w", err)
	}

	to := strings.ToLower(strings.TrimSpace(reply.ToEmail))
	if to == "" {
		return store.Conversation{}, ErrMissingRecipient
	}

	account, err := p.store.FindEmailAccountByAddress(ctx, to)
	if errors.Is(err, store.ErrNotFound) {
		return store.Conversation{}, ErrUnknownRecipient
	}
	if err != nil {
		p.logger.Error(ctx, "failed to resolve reply recipient", err)
		return store.Conversation{}, err
	}

	shop := account.Shop
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "email_account_id", Value: account.ID},
	)

	var campaignID *uuid.UUID
	if reply.CampaignID != "" {
		campaignID = p.matchCampaign(ctx, shop, string(reply.CampaignID))
	}

	params := store.CreateConversationParams{
		Shop:           shop,
		CampaignID:     campaignID,
		EmailAccountID: &account.ID,
		FromEmail:      strings.TrimSpace(reply.FromEmail),
		ToEmail:        to,
		Subject:        reply.Subject,
		BodyText:       reply.EmailBody,
		Direction:      DirectionInbound,
	}
	if looksLikeHTML(reply.EmailBody) {
		params.BodyHTML = reply.EmailBody
		params.BodyText = plainText(reply.EmailBody)
	}
	if reply.LeadID != "" {
		leadID := string(reply.LeadID)
		params.LeadID = &leadID
	}

	conversation, err := p.store.CreateConversation(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to store conversation", err)
		return store.Conversation{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "conversation_id", Value: conversation.ID})

	if campaignID != nil {
		if err := p.store.IncrementCampaignReplies(ctx, shop, *campaignID); err != nil {
			p.logger.Error(ctx, "failed to increment campaign replies", err)
		}
	}

	if messageID := p.forward(ctx, shop, conversation); messageID != "" {
		conversation.GmailMessageID = &messageID
	}

	p.logger.Info(ctx, "reply stored")
	return conversation, nil
}

func (p *ReplyProcessor) matchCampaign(ctx context.Context, shop, smartleadID string) *uuid.UUID {
	id, err := strconv.ParseInt(smartleadID, 10, 64)
	if err != nil {
		p.logger.Warn(ctx, "reply campaign id is not numeric")
		return nil
	}

	campaign, err := p.store.FindCampaignBySmartleadID(ctx, shop, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to match reply campaign", err)
		}
		return nil
	}
	return &campaign.ID
}

// forward returns the Gmail message id, or "" when forwarding is off or failed.
func (p *ReplyProcessor) forward(ctx context.Context, shop string, conversation store.Conversation) string {
	if p.mail == nil {
		return ""
	}

	settings, err := p.store.GetEmailSettings(ctx, shop)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to load email settings for forwarding", err)
		}
		return ""
	}
	if !settings.GmailForwardingReady() {
		return ""
	}

	result, err := p.mail(settings.GmailAccessToken, settings.GmailRefreshToken).InsertMessage(ctx, gmail.Message{
		FromEmail: conversation.FromEmail,
		To:        settings.GmailForwardTo,
		Subject:   conversation.Subject,
		TextBody:  conversation.BodyText,
		HTMLBody:  conversation.BodyHTML,
		Date:      p.now(),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to forward reply to gmail", err)
		return ""
	}

	if result.RefreshedAccessToken != "" {
		if err := p.store.UpdateGmailAccessToken(ctx, shop, result.RefreshedAccessToken); err != nil {
			p.logger.Error(ctx, "failed to store refreshed gmail token", err)
		}
	}

	if err := p.store.SetConversationGmailMessageID(ctx, shop, conversation.ID, result.MessageID); err != nil {
		p.logger.Error(ctx, "failed to store gmail message id", err)
		return ""
	}
	return result.MessageID
}
