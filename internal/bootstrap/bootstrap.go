package bootstrap

import (
	"context"
	"fmt"
	"time"

	"outreach-server/internal/clients/attribution"
	"outreach-server/internal/clients/cloudflare"
	"outreach-server/internal/clients/gmail"
	redisClient "outreach-server/internal/clients/redis"
	"outreach-server/internal/clients/shopify"
	"outreach-server/internal/clients/smartlead"
	"outreach-server/internal/config"
	"outreach-server/internal/observability"
	"outreach-server/internal/security"
	"outreach-server/internal/store"
	"outreach-server/internal/workers"

	accountHandler "outreach-server/internal/accounts/handler"
	accountProcessor "outreach-server/internal/accounts/processor"
	authHandler "outreach-server/internal/auth/handler"
	authProcessor "outreach-server/internal/auth/processor"
	campaignHandler "outreach-server/internal/campaigns/handler"
	campaignProcessor "outreach-server/internal/campaigns/processor"
	domainHandler "outreach-server/internal/domains/handler"
	domainProcessor "outreach-server/internal/domains/processor"
	inboxHandler "outreach-server/internal/inbox/handler"
	inboxProcessor "outreach-server/internal/inbox/processor"
	orderProcessor "outreach-server/internal/orders/processor"
	replyProcessor "outreach-server/internal/replies/processor"
	settingsHandler "outreach-server/internal/settings/handler"
	settingsProcessor "outreach-server/internal/settings/processor"
	webhookHandler "outreach-server/internal/webhooks/handler"
	webhookProcessor "outreach-server/internal/webhooks/processor"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  *store.Store
	Redis  *redisClient.Client
	Logger *observability.Logger

	// Handlers
	AuthHandler     authHandler.Handler
	SettingsHandler settingsHandler.Handler
	DomainHandler   domainHandler.Handler
	AccountHandler  accountHandler.Handler
	CampaignHandler campaignHandler.Handler
	InboxHandler    inboxHandler.Handler
	WebhookHandler  webhookHandler.Handler

	// Background workers
	WebhookPool workers.Pool
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	var err error
	deps.Store, err = store.New(cfg.Database.ConnectionString(), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Redis is optional; a nil client falls back to HMAC-only OAuth state
	deps.Redis, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	key, err := cfg.EncryptionKey()
	if err != nil {
		return nil, err
	}
	cipher, err := security.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create token cipher: %w", err)
	}

	// Initialize clients
	shopifyClient := shopify.New(shopify.Config{
		APIKey:     cfg.Shopify.APIKey,
		APISecret:  cfg.Shopify.APISecret,
		Scopes:     cfg.Shopify.Scopes,
		APIVersion: cfg.Shopify.APIVersion,
	})
	gmailConfig := gmail.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Services.AppURL + "/api/auth/gmail/callback",
	}

	// Vendor clients are built per call from the tenant's stored credentials
	registrarFactory := func(accountID, apiToken string) domainProcessor.Registrar {
		return cloudflare.New(cfg.Services.CloudflareAPIURL, accountID, apiToken)
	}
	accountOutreach := func(apiKey string) accountProcessor.OutreachClient {
		return smartlead.New(cfg.Services.SmartleadAPIURL, apiKey)
	}
	campaignOutreach := func(apiKey string) campaignProcessor.CampaignCreator {
		return smartlead.New(cfg.Services.SmartleadAPIURL, apiKey)
	}
	keyValidator := func(apiKey string) settingsProcessor.KeyValidator {
		return attribution.New(cfg.Services.AttributionAPIURL, apiKey)
	}
	orderSubmitter := func(apiKey string) orderProcessor.OrderSubmitter {
		return attribution.New(cfg.Services.AttributionAPIURL, apiKey)
	}
	var mailFactory replyProcessor.MailFactory
	if cfg.GmailForwardingEnabled() {
		mailFactory = func(accessToken, refreshToken string) replyProcessor.MailInserter {
			return gmail.New(gmailConfig, accessToken, refreshToken)
		}
	}

	// Initialize auth processor and handler
	authProc := authProcessor.New(deps.Store, shopifyClient, deps.Redis, cipher, authProcessor.Config{
		APIKey:       cfg.Shopify.APIKey,
		APISecret:    cfg.Shopify.APISecret,
		AppURL:       cfg.Services.AppURL,
		SharedSecret: cfg.Services.APISharedSecret,
		Gmail:        gmailConfig,
	}, logger)
	deps.AuthHandler = authHandler.New(authProc, cfg.Shopify.APIKey, logger)

	// Initialize settings processor and handler
	settingsProc := settingsProcessor.New(deps.Store, keyValidator, shopifyClient, &authProc, cfg.GmailForwardingEnabled(), logger)
	deps.SettingsHandler = settingsHandler.New(settingsProc, logger)

	// Initialize domain processor and handler
	domainProc := domainProcessor.New(deps.Store, registrarFactory, logger)
	deps.DomainHandler = domainHandler.New(domainProc, logger)

	// Initialize email account processor and handler
	accountProc := accountProcessor.New(deps.Store, accountOutreach, logger)
	deps.AccountHandler = accountHandler.New(accountProc, logger)

	// Initialize campaign processor and handler
	campaignProc := campaignProcessor.New(deps.Store, campaignOutreach, logger)
	deps.CampaignHandler = campaignHandler.New(campaignProc, logger)

	// Initialize inbox processor and handler
	inboxProc := inboxProcessor.New(deps.Store, logger)
	deps.InboxHandler = inboxHandler.New(inboxProc, logger)

	// Initialize webhook job processors and worker pool
	orderProc := orderProcessor.New(deps.Store, orderSubmitter, logger)
	replyProc := replyProcessor.New(deps.Store, mailFactory, logger)
	dispatcher := webhookProcessor.NewDispatcher(&orderProc, &replyProc, logger)

	poolConfig := workers.DefaultPoolConfig()
	poolConfig.NumWorkers = cfg.WorkerPool.WebhookWorkers
	poolConfig.QueueSize = cfg.WorkerPool.WebhookQueueSize
	poolConfig.DrainTimeout = 30 * time.Second
	poolConfig.OnResult = func(result workers.ProcessingResult) {
		logger.Metrics(context.Background(),
			observability.MetricField{Key: "job_type", Value: result.Job.Type},
			observability.MetricField{Key: "job_failed", Value: result.Error != nil},
			observability.MetricField{Key: "job_age", Value: time.Since(result.Job.ReceivedAt)},
		)
	}
	deps.WebhookPool = workers.NewPool(poolConfig, dispatcher, logger)

	webhookProc := webhookProcessor.New(deps.WebhookPool, deps.Store, webhookProcessor.Config{
		APISecret:       cfg.Shopify.APISecret,
		SmartleadSecret: cfg.Services.SmartleadWebhookSecret,
	}, logger)
	deps.WebhookHandler = webhookHandler.New(webhookProc, logger)

	return deps, nil
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	if err := d.Redis.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close redis", err)
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(context.Background(), "failed to close database", err)
	}
}
