package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/store"
)

// SettingsStore defines the database operations required by SettingsProcessor
type SettingsStore interface {
	EnsureShopSettings(ctx context.Context, shop string) (store.ShopSettings, error)
	UpdateShopSettings(ctx context.Context, shop string, patch map[string]any) (store.ShopSettings, error)
	GetEmailSettings(ctx context.Context, shop string) (store.EmailSettings, error)
	UpsertEmailSettings(ctx context.Context, shop string, patch map[string]any) (store.EmailSettings, error)
}

// KeyValidator checks an attribution API key against the backend
type KeyValidator interface {
	ValidateKey(ctx context.Context) error
}

// AttributionFactory builds an attribution client for one tenant key
type AttributionFactory func(apiKey string) KeyValidator

// MetafieldWriter pushes storefront-visible settings to the shop
type MetafieldWriter interface {
	SetAppMetafield(ctx context.Context, shop, accessToken, namespace, key string, value any) error
}

// TokenSource returns the shop's offline platform token
type TokenSource interface {
	AccessToken(ctx context.Context, shop string) (string, error)
}
