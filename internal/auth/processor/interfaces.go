package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/shopify"
	"outreach-server/internal/store"
)

// AuthStore defines the database operations required by AuthProcessor
type AuthStore interface {
	GetSession(ctx context.Context, shop string) (store.Session, error)
	SaveSession(ctx context.Context, shop, encryptedToken, scope string) error
	EnsureShopSettings(ctx context.Context, shop string) (store.ShopSettings, error)
	UpsertEmailSettings(ctx context.Context, shop string, patch map[string]any) (store.EmailSettings, error)
}

// ShopifyClient defines the platform OAuth operations required by AuthProcessor
type ShopifyClient interface {
	InstallURL(shop, state, redirectURI string) string
	ExchangeCode(ctx context.Context, shop, code string) (shopify.AccessToken, error)
	ExchangeSessionToken(ctx context.Context, shop, idToken string) (shopify.AccessToken, error)
	RegisterWebhook(ctx context.Context, shop, accessToken, topic, address string) error
}

// StateStore keeps single-use OAuth state nonces
type StateStore interface {
	IsEnabled() bool
	SaveOAuthState(ctx context.Context, nonce, value string) error
	ConsumeOAuthState(ctx context.Context, nonce string) (string, error)
}

// TokenCipher seals access tokens at rest
type TokenCipher interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(encoded string) (string, error)
}
