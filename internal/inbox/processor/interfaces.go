package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// InboxStore defines the database operations required by InboxProcessor
type InboxStore interface {
	ListConversations(ctx context.Context, params store.ListConversationsParams) ([]store.Conversation, int, error)
	GetConversation(ctx context.Context, shop string, id uuid.UUID) (store.Conversation, error)
	MarkConversationRead(ctx context.Context, shop string, id uuid.UUID) error
}
