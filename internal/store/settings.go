package store

import (
	"context"
	"fmt"
	"time"
)

type ShopSettings struct {
	Shop                  string    `db:"shop" json:"shop"`
	AttributionAPIKey     string    `db:"attribution_api_key" json:"-"`
	WebhookEnabled        bool      `db:"webhook_enabled" json:"webhook_enabled"`
	MetafieldSyncEnabled  bool      `db:"metafield_sync_enabled" json:"metafield_sync_enabled"`
	CommissionRate        float64   `db:"commission_rate" json:"commission_rate"`
	AttributionWindowDays int       `db:"attribution_window_days" json:"attribution_window_days"`
	MinWatchSeconds       int       `db:"min_watch_seconds" json:"min_watch_seconds"`
	CreatedAt             time.Time `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time `db:"updated_at" json:"updated_at"`
}

const sqlEnsureShopSettings = `
INSERT INTO shop_settings (shop)
VALUES ($1)
ON CONFLICT (shop) DO NOTHING`

// EnsureShopSettings returns the tenant's settings, creating the default row on first access.
func (s *Store) EnsureShopSettings(ctx context.Context, shop string) (ShopSettings, error) {
	if _, err := s.db.ExecContext(ctx, sqlEnsureShopSettings, shop); err != nil {
		s.logger.Error(ctx, "failed to create default shop settings", err)
		return ShopSettings{}, fmt.Errorf("failed to create default shop settings: %w", err)
	}
	return s.GetShopSettings(ctx, shop)
}

func (s *Store) GetShopSettings(ctx context.Context, shop string) (ShopSettings, error) {
	var settings ShopSettings
	err := s.SelectOne(ctx, &settings, TableShopSettings, Filter{Eq("shop", shop)})
	return settings, err
}

// UpdateShopSettings applies an already whitelisted patch and returns the stored row.
func (s *Store) UpdateShopSettings(ctx context.Context, shop string, patch map[string]any) (ShopSettings, error) {
	if len(patch) > 0 {
		n, err := s.Update(ctx, TableShopSettings, patch, Filter{Eq("shop", shop)})
		if err != nil {
			return ShopSettings{}, err
		}
		if n == 0 {
			return ShopSettings{}, ErrNotFound
		}
	}
	return s.GetShopSettings(ctx, shop)
}

type EmailSettings struct {
	Shop                string    `db:"shop"`
	CloudflareAccountID string    `db:"cloudflare_account_id"`
	CloudflareAPIToken  string    `db:"cloudflare_api_token"`
	SmartleadAPIKey     string    `db:"smartlead_api_key"`
	GmailAccessToken    string    `db:"gmail_access_token"`
	GmailRefreshToken   string    `db:"gmail_refresh_token"`
	GmailForwardTo      string    `db:"gmail_forward_to"`
	ContactFirstName    string    `db:"contact_first_name"`
	ContactLastName     string    `db:"contact_last_name"`
	ContactOrganization string    `db:"contact_organization"`
	ContactAddress      string    `db:"contact_address"`
	ContactCity         string    `db:"contact_city"`
	ContactState        string    `db:"contact_state"`
	ContactZip          string    `db:"contact_zip"`
	ContactCountry      string    `db:"contact_country"`
	ContactPhone        string    `db:"contact_phone"`
	ContactEmail        string    `db:"contact_email"`
	CreatedAt           time.Time `db:"created_at"`
	UpdatedAt           time.Time `db:"updated_at"`
}

// GmailForwardingReady reports whether replies can be copied into the merchant's mailbox.
func (e EmailSettings) GmailForwardingReady() bool {
	return e.GmailAccessToken != "" && e.GmailRefreshToken != "" && e.GmailForwardTo != ""
}

// GetEmailSettings returns ErrNotFound until the tenant saves email settings once.
func (s *Store) GetEmailSettings(ctx context.Context, shop string) (EmailSettings, error) {
	var settings EmailSettings
	err := s.SelectOne(ctx, &settings, TableEmailSettings, Filter{Eq("shop", shop)})
	return settings, err
}

// UpsertEmailSettings writes the patched columns, creating the row if needed.
func (s *Store) UpsertEmailSettings(ctx context.Context, shop string, patch map[string]any) (EmailSettings, error) {
	values := make(map[string]any, len(patch)+1)
	for k, v := range patch {
		values[k] = v
	}
	values["shop"] = shop

	var settings EmailSettings
	err := s.Upsert(ctx, &settings, TableEmailSettings, values, "shop")
	return settings, err
}

const sqlUpdateGmailAccessToken = `
UPDATE email_settings SET gmail_access_token = $1, updated_at = NOW()
WHERE shop = $2`

func (s *Store) UpdateGmailAccessToken(ctx context.Context, shop, accessToken string) error {
	if _, err := s.db.ExecContext(ctx, sqlUpdateGmailAccessToken, accessToken, shop); err != nil {
		s.logger.Error(ctx, "failed to update gmail access token", err)
		return fmt.Errorf("failed to update gmail access token: %w", err)
	}
	return nil
}
