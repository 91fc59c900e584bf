package processor

import (
	"context"
	"errors"
	"strings"

	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

var (
	ErrOutreachNotConfigured = errors.New("smartlead api key is not configured")
	ErrEmptyName             = errors.New("campaign name is required")
)

type CampaignProcessor struct {
	store    CampaignStore
	outreach func(apiKey string) CampaignCreator
	logger   *observability.Logger
}

func New(store CampaignStore, outreach func(apiKey string) CampaignCreator, logger *observability.Logger) CampaignProcessor {
	return CampaignProcessor{store: store, outreach: outreach, logger: logger}
}

func (p *CampaignProcessor) ListCampaigns(ctx context.Context, shop string) ([]store.Campaign, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	campaigns, err := p.store.ListCampaigns(ctx, shop)
	if err != nil {
		p.logger.Error(ctx, "failed to list campaigns", err)
		return nil, err
	}
	return campaigns, nil
}

// CreateCampaign creates the campaign on Smartlead and stores it with the vendor id.
func (p *CampaignProcessor) CreateCampaign(ctx context.Context, shop, name string) (store.Campaign, error) {
	name = strings.TrimSpace(name)
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "campaign_name", Value: name},
	)

	if name == "" {
		return store.Campaign{}, ErrEmptyName
	}

	settings, err := p.store.GetEmailSettings(ctx, shop)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load email settings", err)
		return store.Campaign{}, err
	}
	if settings.SmartleadAPIKey == "" {
		return store.Campaign{}, ErrOutreachNotConfigured
	}

	remote, err := p.outreach(settings.SmartleadAPIKey).CreateCampaign(ctx, name)
	if err != nil {
		p.logger.Error(ctx, "failed to create smartlead campaign", err)
		return store.Campaign{}, err
	}

	campaign, err := p.store.CreateCampaign(ctx, shop, name, &remote.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to store campaign", err)
		return store.Campaign{}, err
	}

	p.logger.Info(ctx, "campaign created")
	return campaign, nil
}
