package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	orders "outreach-server/internal/orders/processor"
	replies "outreach-server/internal/replies/processor"
	"outreach-server/internal/store"
	"outreach-server/internal/workers"
)

// JobQueue accepts acknowledged webhook payloads for background processing
type JobQueue interface {
	Submit(ctx context.Context, job workers.Job) error
}

// Purger deletes every row a shop owns
type Purger interface {
	PurgeShop(ctx context.Context, shop string) error
}

// OrderSyncer runs attribution for an orders/create payload
type OrderSyncer interface {
	SyncOrder(ctx context.Context, shop string, payload []byte) (orders.Result, error)
}

// ReplyRecorder stores an inbound reply
type ReplyRecorder interface {
	ProcessReply(ctx context.Context, payload []byte) (store.Conversation, error)
}

var (
	_ OrderSyncer   = (*orders.OrderProcessor)(nil)
	_ ReplyRecorder = (*replies.ReplyProcessor)(nil)
)
