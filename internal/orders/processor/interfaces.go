package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/attribution"
	"outreach-server/internal/store"
)

// OrderStore defines the database operations required by OrderProcessor
type OrderStore interface {
	GetShopSettings(ctx context.Context, shop string) (store.ShopSettings, error)
	GetOrderSync(ctx context.Context, shop, orderID string) (store.OrderSync, error)
	UpsertPendingOrderSync(ctx context.Context, params store.UpsertPendingOrderSyncParams) (store.OrderSync, error)
	MarkOrderSyncSent(ctx context.Context, shop, orderID string, attributionOrderID *string, commission *float64) error
	MarkOrderSyncFailed(ctx context.Context, shop, orderID, message string) error
}

// OrderSubmitter sends orders to the attribution backend
type OrderSubmitter interface {
	SubmitOrder(ctx context.Context, order attribution.Order) (attribution.OrderResult, error)
}
