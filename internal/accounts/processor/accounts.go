package processor

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"outreach-server/internal/clients/smartlead"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrDomainNotFound        = errors.New("domain not found")
	ErrAccountNotFound       = errors.New("email account not found")
	ErrCampaignNotFound      = errors.New("campaign not found")
	ErrDuplicateEmail        = errors.New("email account already exists")
	ErrInvalidLocalPart      = errors.New("invalid local part")
	ErrOutreachNotConfigured = errors.New("smartlead api key is not configured")
	ErrAccountNotRegistered  = errors.New("email account has no smartlead id")
	ErrCampaignNotRegistered = errors.New("campaign has no smartlead id")
)

const (
	DefaultSMTPHost   = "smtp.zoho.com"
	DefaultSMTPPort   = 587
	DefaultIMAPHost   = "imap.zoho.com"
	DefaultIMAPPort   = 993
	DefaultDailyLimit = 20
	warmupPerDay      = 20
)

var localPartPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9._+-]*$`)

type AccountProcessor struct {
	store    AccountStore
	outreach OutreachFactory
	logger   *observability.Logger
}

func New(store AccountStore, outreach OutreachFactory, logger *observability.Logger) AccountProcessor {
	return AccountProcessor{store: store, outreach: outreach, logger: logger}
}

type CreateAccountParams struct {
	DomainID      uuid.UUID
	LocalPart     string
	Password      string
	FromName      string
	SMTPHost      string
	SMTPPort      int
	IMAPHost      string
	IMAPPort      int
	DailyLimit    int
	WarmupEnabled *bool
}

func (p *AccountProcessor) outreachFor(ctx context.Context, shop string) (OutreachClient, error) {
	settings, err := p.store.GetEmailSettings(ctx, shop)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load email settings", err)
		return nil, err
	}
	if settings.SmartleadAPIKey == "" {
		return nil, ErrOutreachNotConfigured
	}
	return p.outreach(settings.SmartleadAPIKey), nil
}

func (p *AccountProcessor) getAccount(ctx context.Context, shop string, id uuid.UUID) (store.EmailAccount, error) {
	account, err := p.store.GetEmailAccount(ctx, shop, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.EmailAccount{}, ErrAccountNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load email account", err)
	}
	return account, err
}

// CreateAccount registers localPart@domain with Smartlead and stores the mailbox.
func (p *AccountProcessor) CreateAccount(ctx context.Context, shop string, params CreateAccountParams) (store.EmailAccount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "domain_id", Value: params.DomainID},
	)

	localPart := strings.ToLower(strings.TrimSpace(params.LocalPart))
	if !localPartPattern.MatchString(localPart) {
		return store.EmailAccount{}, ErrInvalidLocalPart
	}

	domain, err := p.store.GetDomain(ctx, shop, params.DomainID)
	if errors.Is(err, store.ErrNotFound) {
		return store.EmailAccount{}, ErrDomainNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load domain", err)
		return store.EmailAccount{}, err
	}

	email := localPart + "@" + domain.Domain
	ctx = observability.WithFields(ctx, observability.Field{Key: "email", Value: email})

	_, err = p.store.FindEmailAccountByAddress(ctx, email)
	if err == nil {
		return store.EmailAccount{}, ErrDuplicateEmail
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check for existing email account", err)
		return store.EmailAccount{}, err
	}

	client, err := p.outreachFor(ctx, shop)
	if err != nil {
		return store.EmailAccount{}, err
	}

	withDefaults(&params)
	fromName := strings.TrimSpace(params.FromName)
	if fromName == "" {
		fromName = localPart
	}

	smartleadID, err := client.CreateEmailAccount(ctx, smartlead.CreateEmailAccountParams{
		FromName:       fromName,
		FromEmail:      email,
		Username:       email,
		Password:       params.Password,
		SMTPHost:       params.SMTPHost,
		SMTPPort:       params.SMTPPort,
		IMAPHost:       params.IMAPHost,
		IMAPPort:       params.IMAPPort,
		MaxEmailPerDay: params.DailyLimit,
		WarmupEnabled:  *params.WarmupEnabled,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to register email account with smartlead", err)
		return store.EmailAccount{}, err
	}

	account, err := p.store.CreateEmailAccount(ctx, store.CreateEmailAccountParams{
		Shop:               shop,
		DomainID:           domain.ID,
		Email:              email,
		FromName:           fromName,
		SMTPHost:           params.SMTPHost,
		SMTPPort:           params.SMTPPort,
		IMAPHost:           params.IMAPHost,
		IMAPPort:           params.IMAPPort,
		SmartleadAccountID: &smartleadID,
		WarmupEnabled:      *params.WarmupEnabled,
		DailyLimit:         params.DailyLimit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to store email account", err)
		return store.EmailAccount{}, err
	}

	p.logger.Info(ctx, "email account created")
	return account, nil
}

func withDefaults(params *CreateAccountParams) {
	if params.SMTPHost == "" {
		params.SMTPHost = DefaultSMTPHost
	}
	if params.SMTPPort == 0 {
		params.SMTPPort = DefaultSMTPPort
	}
	if params.IMAPHost == "" {
		params.IMAPHost = DefaultIMAPHost
	}
	if params.IMAPPort == 0 {
		params.IMAPPort = DefaultIMAPPort
	}
	if params.DailyLimit == 0 {
		params.DailyLimit = DefaultDailyLimit
	}
	if params.WarmupEnabled == nil {
		enabled := true
		params.WarmupEnabled = &enabled
	}
}

func (p *AccountProcessor) ListAccounts(ctx context.Context, shop string) ([]store.EmailAccount, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	accounts, err := p.store.ListEmailAccounts(ctx, shop)
	if err != nil {
		p.logger.Error(ctx, "failed to list email accounts", err)
		return nil, err
	}
	return accounts, nil
}

// SetWarmup toggles warmup on Smartlead first, then mirrors it locally.
func (p *AccountProcessor) SetWarmup(ctx context.Context, shop string, accountID uuid.UUID, enabled bool) (store.EmailAccount, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "email_account_id", Value: accountID},
	)

	account, err := p.getAccount(ctx, shop, accountID)
	if err != nil {
		return store.EmailAccount{}, err
	}
	if account.SmartleadAccountID == nil {
		return store.EmailAccount{}, ErrAccountNotRegistered
	}

	client, err := p.outreachFor(ctx, shop)
	if err != nil {
		return store.EmailAccount{}, err
	}

	if err := client.UpdateWarmup(ctx, *account.SmartleadAccountID, enabled, warmupPerDay); err != nil {
		p.logger.Error(ctx, "failed to update warmup", err)
		return store.EmailAccount{}, err
	}

	status := store.WarmupStatusPaused
	if enabled {
		status = store.WarmupStatusActive
	}
	updated, err := p.store.UpdateEmailAccount(ctx, shop, accountID, map[string]any{
		"warmup_enabled": enabled,
		"warmup_status":  status,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to store warmup state", err)
		return store.EmailAccount{}, err
	}
	return updated, nil
}

// AssignToCampaign adds the account to the campaign on Smartlead and records the link on both rows.
func (p *AccountProcessor) AssignToCampaign(ctx context.Context, shop string, accountID, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "email_account_id", Value: accountID},
		observability.Field{Key: "campaign_id", Value: campaignID},
	)

	account, err := p.getAccount(ctx, shop, accountID)
	if err != nil {
		return err
	}
	if account.SmartleadAccountID == nil {
		return ErrAccountNotRegistered
	}

	campaign, err := p.store.GetCampaign(ctx, shop, campaignID)
	if errors.Is(err, store.ErrNotFound) {
		return ErrCampaignNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load campaign", err)
		return err
	}
	if campaign.SmartleadCampaignID == nil {
		return ErrCampaignNotRegistered
	}

	client, err := p.outreachFor(ctx, shop)
	if err != nil {
		return err
	}

	err = client.AddEmailAccountsToCampaign(ctx, *campaign.SmartleadCampaignID, []int64{*account.SmartleadAccountID})
	if err != nil {
		p.logger.Error(ctx, "failed to add email account to smartlead campaign", err)
		return err
	}

	if err := p.store.AttachEmailAccount(ctx, shop, campaignID, accountID); err != nil {
		p.logger.Error(ctx, "failed to record campaign assignment", err)
		return err
	}

	p.logger.Info(ctx, "email account assigned to campaign")
	return nil
}
