package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"outreach-server/internal/observability"
	"outreach-server/internal/store"
)

var ErrMissingOrderID = errors.New("order payload has no id")

const (
	StatusSent    = "sent"
	StatusFailed  = "failed"
	StatusSkipped = "skipped"

	ReasonAlreadyProcessed = "already_processed"
	ReasonNotConfigured    = "not_configured"
	ReasonDisabled         = "disabled"
)

type OrderProcessor struct {
	store       OrderStore
	attribution func(apiKey string) OrderSubmitter
	logger      *observability.Logger
}

func New(store OrderStore, attribution func(apiKey string) OrderSubmitter, logger *observability.Logger) OrderProcessor {
	return OrderProcessor{store: store, attribution: attribution, logger: logger}
}

type Result struct {
	Status             string   `json:"status"`
	Reason             string   `json:"reason,omitempty"`
	AttributionOrderID string   `json:"attribution_order_id,omitempty"`
	Commission         *float64 `json:"commission,omitempty"`
	ExposureIDs        []string `json:"exposure_ids,omitempty"`
	Error              string   `json:"error,omitempty"`
}

func skipped(reason string) Result {
	return Result{Status: StatusSkipped, Reason: reason}
}

// SyncOrder submits one orders/create payload to the attribution backend at most once.
func (p *OrderProcessor) SyncOrder(ctx context.Context, shop string, payload []byte) (Result, error) {
	var order Order
	if err := json.Unmarshal(payload, &order); err != nil {
		return Result{}, fmt.Errorf("failed to decode order payload: %w", err)
	}
	if order.ID == "" {
		return Result{}, ErrMissingOrderID
	}

	orderID := order.ID.String()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "order_id", Value: orderID},
	)

	settings, err := p.store.GetShopSettings(ctx, shop)
	if errors.Is(err, store.ErrNotFound) {
		return skipped(ReasonNotConfigured), nil
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load shop settings", err)
		return Result{}, err
	}
	if settings.AttributionAPIKey == "" {
		p.logger.Info(ctx, "skipping order, attribution api key not configured")
		return skipped(ReasonNotConfigured), nil
	}
	if !settings.WebhookEnabled {
		p.logger.Info(ctx, "skipping order, webhook disabled")
		return skipped(ReasonDisabled), nil
	}

	existing, err := p.store.GetOrderSync(ctx, shop, orderID)
	switch {
	case err == nil && existing.Status == store.OrderSyncSent:
		p.logger.Info(ctx, "skipping order, already sent")
		return skipped(ReasonAlreadyProcessed), nil
	case err != nil && !errors.Is(err, store.ErrNotFound):
		p.logger.Error(ctx, "failed to load order sync", err)
		return Result{}, err
	}

	exposureIDs := ExposureIDs(order)
	ctx = observability.WithFields(ctx, observability.Field{Key: "exposure_count", Value: len(exposureIDs)})

	_, err = p.store.UpsertPendingOrderSync(ctx, store.UpsertPendingOrderSyncParams{
		Shop:        shop,
		OrderID:     orderID,
		OrderNumber: order.orderNumber(),
		Amount:      number(order.TotalPrice),
		Currency:    order.Currency,
		ExposureIDs: exposureIDs,
	})
	if errors.Is(err, store.ErrOrderAlreadySent) {
		p.logger.Info(ctx, "skipping order, sent by a concurrent delivery")
		return skipped(ReasonAlreadyProcessed), nil
	}
	if err != nil {
		return Result{}, err
	}

	result, err := p.attribution(settings.AttributionAPIKey).SubmitOrder(ctx, order.attributionOrder(shop, exposureIDs))
	if err != nil {
		p.logger.Error(ctx, "failed to submit order for attribution", err)
		if markErr := p.store.MarkOrderSyncFailed(ctx, shop, orderID, err.Error()); markErr != nil {
			p.logger.Error(ctx, "failed to mark order sync failed", markErr)
		}
		return Result{Status: StatusFailed, ExposureIDs: exposureIDs, Error: err.Error()}, err
	}

	var attributionOrderID *string
	if result.OrderID != "" {
		id := string(result.OrderID)
		attributionOrderID = &id
	}
	if err := p.store.MarkOrderSyncSent(ctx, shop, orderID, attributionOrderID, result.Commission); err != nil {
		p.logger.Error(ctx, "failed to mark order sync sent", err)
		return Result{}, err
	}

	p.logger.Info(ctx, "order submitted for attribution")
	return Result{
		Status:             StatusSent,
		AttributionOrderID: string(result.OrderID),
		Commission:         result.Commission,
		ExposureIDs:        exposureIDs,
	}, nil
}
