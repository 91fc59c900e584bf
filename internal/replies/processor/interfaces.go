package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/gmail"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// ReplyStore defines the database operations required by ReplyProcessor
type ReplyStore interface {
	FindEmailAccountByAddress(ctx context.Context, email string) (store.EmailAccount, error)
	FindCampaignBySmartleadID(ctx context.Context, shop string, smartleadID int64) (store.Campaign, error)
	CreateConversation(ctx context.Context, params store.CreateConversationParams) (store.Conversation, error)
	IncrementCampaignReplies(ctx context.Context, shop string, id uuid.UUID) error
	GetEmailSettings(ctx context.Context, shop string) (store.EmailSettings, error)
	SetConversationGmailMessageID(ctx context.Context, shop string, id uuid.UUID, messageID string) error
	UpdateGmailAccessToken(ctx context.Context, shop, accessToken string) error
}

// MailInserter copies a message into the merchant's mailbox
type MailInserter interface {
	InsertMessage(ctx context.Context, msg gmail.Message) (gmail.InsertResult, error)
}

// MailFactory builds a mailbox client from stored tokens. A nil factory disables forwarding.
type MailFactory func(accessToken, refreshToken string) MailInserter
