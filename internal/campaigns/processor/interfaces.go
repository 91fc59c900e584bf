package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/smartlead"
	"outreach-server/internal/store"
)

// CampaignStore defines the database operations required by CampaignProcessor
type CampaignStore interface {
	GetEmailSettings(ctx context.Context, shop string) (store.EmailSettings, error)
	CreateCampaign(ctx context.Context, shop, name string, smartleadID *int64) (store.Campaign, error)
	ListCampaigns(ctx context.Context, shop string) ([]store.Campaign, error)
}

// CampaignCreator creates campaigns on Smartlead
type CampaignCreator interface {
	CreateCampaign(ctx context.Context, name string) (smartlead.Campaign, error)
}
