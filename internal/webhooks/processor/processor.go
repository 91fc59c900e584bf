package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"outreach-server/internal/clients/shopify"
	"outreach-server/internal/observability"
	orders "outreach-server/internal/orders/processor"
	"outreach-server/internal/security"
	"outreach-server/internal/workers"

	"github.com/google/uuid"
)

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrInvalidShop      = errors.New("invalid shop domain")
	ErrInvalidSecret    = errors.New("invalid webhook secret")
	ErrInvalidPayload   = errors.New("webhook payload is not valid json")
)

type Config struct {
	// APISecret signs Shopify webhooks.
	APISecret string
	// SmartleadSecret is compared to the reply webhook's secret query param. Empty disables the check.
	SmartleadSecret string
}

// WebhookProcessor verifies inbound webhooks and hands their payloads to the worker pool.
type WebhookProcessor struct {
	pool   JobQueue
	purger Purger
	config Config
	now    func() time.Time
	logger *observability.Logger
}

func New(pool JobQueue, purger Purger, config Config, logger *observability.Logger) WebhookProcessor {
	return WebhookProcessor{
		pool:   pool,
		purger: purger,
		config: config,
		now:    time.Now,
		logger: logger,
	}
}

// VerifyShopify checks the base64 HMAC-SHA256 of the raw body and returns the normalized shop.
func (p *WebhookProcessor) VerifyShopify(body []byte, signature, rawShop string) (string, error) {
	if !security.VerifyWebhookHMAC(body, signature, p.config.APISecret) {
		return "", ErrInvalidSignature
	}
	shop, ok := shopify.NormalizeShop(rawShop)
	if !ok {
		return "", ErrInvalidShop
	}
	return shop, nil
}

// VerifySmartlead checks the optional shared secret on the reply webhook.
func (p *WebhookProcessor) VerifySmartlead(secret string) error {
	if p.config.SmartleadSecret == "" {
		return nil
	}
	if !security.ConstantTimeEqual(secret, p.config.SmartleadSecret) {
		return ErrInvalidSecret
	}
	return nil
}

// EnqueueOrder acknowledges an orders/create delivery by queueing it for attribution.
func (p *WebhookProcessor) EnqueueOrder(ctx context.Context, shop, deliveryID string, body []byte) error {
	return p.enqueue(ctx, workers.JobOrderCreated, shop, deliveryID, body)
}

// EnqueueReply queues a Smartlead reply. The owning shop is resolved by the worker.
func (p *WebhookProcessor) EnqueueReply(ctx context.Context, body []byte) error {
	return p.enqueue(ctx, workers.JobReplyReceived, "", "", body)
}

func (p *WebhookProcessor) enqueue(ctx context.Context, jobType, shop, id string, body []byte) error {
	if !json.Valid(body) {
		return ErrInvalidPayload
	}
	if id == "" {
		id = uuid.NewString()
	}

	job := workers.Job{
		ID:         id,
		Type:       jobType,
		Shop:       shop,
		Payload:    json.RawMessage(body),
		ReceivedAt: p.now().UTC(),
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "job_id", Value: job.ID},
		observability.Field{Key: "job_type", Value: job.Type},
	)

	if err := p.pool.Submit(ctx, job); err != nil {
		p.logger.Error(ctx, "failed to enqueue webhook job", err)
		return fmt.Errorf("failed to enqueue %s job: %w", jobType, err)
	}
	p.logger.Info(ctx, "webhook job enqueued")
	return nil
}

// Uninstall purges all of the shop's rows in one transaction.
func (p *WebhookProcessor) Uninstall(ctx context.Context, shop string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	if err := p.purger.PurgeShop(ctx, shop); err != nil {
		p.logger.Error(ctx, "failed to purge uninstalled shop", err)
		return err
	}
	p.logger.Info(ctx, "shop data purged after uninstall")
	return nil
}

// NewDispatcher binds the webhook job types to the order and reply processors.
func NewDispatcher(syncer OrderSyncer, recorder ReplyRecorder, logger *observability.Logger) *workers.Dispatcher {
	d := workers.NewDispatcher()

	d.Register(workers.JobOrderCreated, func(ctx context.Context, job workers.Job) error {
		result, err := syncer.SyncOrder(ctx, job.Shop, job.Payload)
		if err != nil {
			return err
		}
		if result.Status == orders.StatusSkipped {
			logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: result.Reason}), "order sync skipped")
		}
		return nil
	})

	d.Register(workers.JobReplyReceived, func(ctx context.Context, job workers.Job) error {
		_, err := recorder.ProcessReply(ctx, job.Payload)
		return err
	})

	return d
}
