package processor

import (
	"context"
	"errors"

	"outreach-server/internal/observability"
	"outreach-server/internal/security"
	"outreach-server/internal/store"
)

// Contact is the WHOIS contact used for domain registration.
type Contact struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Organization string `json:"organization"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

// EmailSettings never carries a raw credential.
type EmailSettings struct {
	CloudflareAccountID   string  `json:"cloudflare_account_id"`
	CloudflareAPIToken    string  `json:"cloudflare_api_token"`
	SmartleadAPIKey       string  `json:"smartlead_api_key"`
	GmailForwardTo        string  `json:"gmail_forward_to"`
	HasCloudflareAPIToken bool    `json:"has_cloudflare_api_token"`
	HasSmartleadAPIKey    bool    `json:"has_smartlead_api_key"`
	GmailConnected        bool    `json:"gmail_connected"`
	GmailAvailable        bool    `json:"gmail_available"`
	Contact               Contact `json:"contact"`
}

func (p *SettingsProcessor) toEmailSettings(s store.EmailSettings) EmailSettings {
	return EmailSettings{
		CloudflareAccountID:   s.CloudflareAccountID,
		CloudflareAPIToken:    security.MaskCredential(s.CloudflareAPIToken),
		SmartleadAPIKey:       security.MaskCredential(s.SmartleadAPIKey),
		GmailForwardTo:        s.GmailForwardTo,
		HasCloudflareAPIToken: s.CloudflareAPIToken != "",
		HasSmartleadAPIKey:    s.SmartleadAPIKey != "",
		GmailConnected:        s.GmailRefreshToken != "",
		GmailAvailable:        p.gmailAvailable,
		Contact: Contact{
			FirstName:    s.ContactFirstName,
			LastName:     s.ContactLastName,
			Organization: s.ContactOrganization,
			Address:      s.ContactAddress,
			City:         s.ContactCity,
			State:        s.ContactState,
			Zip:          s.ContactZip,
			Country:      s.ContactCountry,
			Phone:        s.ContactPhone,
			Email:        s.ContactEmail,
		},
	}
}

// UpdateEmailSettingsParams is a partial update; nil fields are left alone and
// masked credentials echoed back by the UI are ignored.
type UpdateEmailSettingsParams struct {
	CloudflareAccountID *string
	CloudflareAPIToken  *string
	SmartleadAPIKey     *string
	GmailForwardTo      *string
	Contact             map[string]*string
}

// contactColumns maps Contact JSON names to email_settings columns.
var contactColumns = map[string]string{
	"first_name":   "contact_first_name",
	"last_name":    "contact_last_name",
	"organization": "contact_organization",
	"address":      "contact_address",
	"city":         "contact_city",
	"state":        "contact_state",
	"zip":          "contact_zip",
	"country":      "contact_country",
	"phone":        "contact_phone",
	"email":        "contact_email",
}

func (p *SettingsProcessor) GetEmailSettings(ctx context.Context, shop string) (EmailSettings, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	settings, err := p.store.GetEmailSettings(ctx, shop)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load email settings", err)
		return EmailSettings{}, err
	}
	return p.toEmailSettings(settings), nil
}

func (p *SettingsProcessor) UpdateEmailSettings(ctx context.Context, shop string, params UpdateEmailSettingsParams) (EmailSettings, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	patch := map[string]any{}
	setPlain := func(column string, v *string) {
		if v != nil {
			patch[column] = *v
		}
	}
	setSecret := func(column string, v *string) {
		if v != nil && !security.IsMasked(*v) {
			patch[column] = *v
		}
	}

	setPlain("cloudflare_account_id", params.CloudflareAccountID)
	setSecret("cloudflare_api_token", params.CloudflareAPIToken)
	setSecret("smartlead_api_key", params.SmartleadAPIKey)
	setPlain("gmail_forward_to", params.GmailForwardTo)
	for field, value := range params.Contact {
		if column, ok := contactColumns[field]; ok {
			setPlain(column, value)
		}
	}

	if len(patch) == 0 {
		return p.GetEmailSettings(ctx, shop)
	}

	settings, err := p.store.UpsertEmailSettings(ctx, shop, patch)
	if err != nil {
		p.logger.Error(ctx, "failed to update email settings", err)
		return EmailSettings{}, err
	}
	return p.toEmailSettings(settings), nil
}
