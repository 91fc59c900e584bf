package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/smartlead"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// AccountStore defines the database operations required by AccountProcessor
type AccountStore interface {
	GetEmailSettings(ctx context.Context, shop string) (store.EmailSettings, error)
	GetDomain(ctx context.Context, shop string, id uuid.UUID) (store.Domain, error)
	CreateEmailAccount(ctx context.Context, params store.CreateEmailAccountParams) (store.EmailAccount, error)
	GetEmailAccount(ctx context.Context, shop string, id uuid.UUID) (store.EmailAccount, error)
	FindEmailAccountByAddress(ctx context.Context, email string) (store.EmailAccount, error)
	ListEmailAccounts(ctx context.Context, shop string) ([]store.EmailAccount, error)
	UpdateEmailAccount(ctx context.Context, shop string, id uuid.UUID, patch map[string]any) (store.EmailAccount, error)
	GetCampaign(ctx context.Context, shop string, id uuid.UUID) (store.Campaign, error)
	AttachEmailAccount(ctx context.Context, shop string, campaignID, accountID uuid.UUID) error
}

// OutreachClient defines the Smartlead operations required by AccountProcessor
type OutreachClient interface {
	CreateEmailAccount(ctx context.Context, params smartlead.CreateEmailAccountParams) (int64, error)
	UpdateWarmup(ctx context.Context, accountID int64, enabled bool, perDay int) error
	AddEmailAccountsToCampaign(ctx context.Context, campaignID int64, accountIDs []int64) error
}

// OutreachFactory builds an outreach client from a tenant's API key
type OutreachFactory func(apiKey string) OutreachClient
