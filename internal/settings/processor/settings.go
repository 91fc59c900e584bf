package processor

import (
	"context"
	"errors"

	"outreach-server/internal/observability"
	"outreach-server/internal/security"
	"outreach-server/internal/store"
)

const (
	metafieldNamespace = "oce"
	metafieldKey       = "settings"
)

type SettingsProcessor struct {
	store          SettingsStore
	attribution    AttributionFactory
	metafields     MetafieldWriter
	tokens         TokenSource
	gmailAvailable bool
	logger         *observability.Logger
}

func New(store SettingsStore, attribution AttributionFactory, metafields MetafieldWriter, tokens TokenSource,
	gmailAvailable bool, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:          store,
		attribution:    attribution,
		metafields:     metafields,
		tokens:         tokens,
		gmailAvailable: gmailAvailable,
		logger:         logger,
	}
}

// Settings is the caller-facing view of store.ShopSettings with the key masked.
type Settings struct {
	store.ShopSettings
	AttributionAPIKey    string `json:"attribution_api_key"`
	HasAttributionAPIKey bool   `json:"has_attribution_api_key"`
}

func toSettings(s store.ShopSettings) Settings {
	return Settings{
		ShopSettings:         s,
		AttributionAPIKey:    security.MaskCredential(s.AttributionAPIKey),
		HasAttributionAPIKey: s.AttributionAPIKey != "",
	}
}

// UpdateSettingsParams is a partial update; nil fields are left alone.
type UpdateSettingsParams struct {
	AttributionAPIKey     *string
	WebhookEnabled        *bool
	MetafieldSyncEnabled  *bool
	CommissionRate        *float64
	AttributionWindowDays *int
	MinWatchSeconds       *int
}

// metafieldValue is what storefront extensions read from oce/settings.
type metafieldValue struct {
	Enabled               bool    `json:"enabled"`
	CommissionRate        float64 `json:"commission_rate"`
	AttributionWindowDays int     `json:"attribution_window_days"`
	MinWatchSeconds       int     `json:"min_watch_seconds"`
}

func (p *SettingsProcessor) GetSettings(ctx context.Context, shop string) (Settings, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	settings, err := p.store.EnsureShopSettings(ctx, shop)
	if err != nil {
		p.logger.Error(ctx, "failed to load settings", err)
		return Settings{}, err
	}
	return toSettings(settings), nil
}

// UpdateSettings applies the whitelisted patch. A new attribution key is validated
// against the backend before it is stored.
func (p *SettingsProcessor) UpdateSettings(ctx context.Context, shop string, params UpdateSettingsParams) (Settings, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	if _, err := p.store.EnsureShopSettings(ctx, shop); err != nil {
		p.logger.Error(ctx, "failed to load settings", err)
		return Settings{}, err
	}

	patch := map[string]any{}
	if key := params.AttributionAPIKey; key != nil && !security.IsMasked(*key) {
		if *key != "" {
			if err := p.attribution(*key).ValidateKey(ctx); err != nil {
				p.logger.InfoWithError(ctx, "attribution api key rejected", err)
				return Settings{}, err
			}
		}
		patch["attribution_api_key"] = *key
	}
	if params.WebhookEnabled != nil {
		patch["webhook_enabled"] = *params.WebhookEnabled
	}
	if params.MetafieldSyncEnabled != nil {
		patch["metafield_sync_enabled"] = *params.MetafieldSyncEnabled
	}
	if params.CommissionRate != nil {
		patch["commission_rate"] = *params.CommissionRate
	}
	if params.AttributionWindowDays != nil {
		patch["attribution_window_days"] = *params.AttributionWindowDays
	}
	if params.MinWatchSeconds != nil {
		patch["min_watch_seconds"] = *params.MinWatchSeconds
	}

	updated, err := p.store.UpdateShopSettings(ctx, shop, patch)
	if err != nil {
		p.logger.Error(ctx, "failed to update settings", err)
		return Settings{}, err
	}

	if updated.MetafieldSyncEnabled {
		p.syncMetafield(ctx, updated)
	}

	return toSettings(updated), nil
}

// syncMetafield is best-effort: the settings are already saved.
func (p *SettingsProcessor) syncMetafield(ctx context.Context, settings store.ShopSettings) {
	token, err := p.tokens.AccessToken(ctx, settings.Shop)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to load access token for metafield sync", err)
		}
		return
	}

	value := metafieldValue{
		Enabled:               settings.WebhookEnabled && settings.AttributionAPIKey != "",
		CommissionRate:        settings.CommissionRate,
		AttributionWindowDays: settings.AttributionWindowDays,
		MinWatchSeconds:       settings.MinWatchSeconds,
	}
	if err := p.metafields.SetAppMetafield(ctx, settings.Shop, token, metafieldNamespace, metafieldKey, value); err != nil {
		p.logger.Error(ctx, "failed to sync settings metafield", err)
	}
}
