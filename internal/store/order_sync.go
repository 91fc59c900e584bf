package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	OrderSyncPending = "pending"
	OrderSyncSent    = "sent"
	OrderSyncFailed  = "failed"
)

// ErrOrderAlreadySent is returned when a concurrent delivery marked the order sent first.
var ErrOrderAlreadySent = errors.New("order already sent")

type OrderSync struct {
	ID                 uuid.UUID   `db:"id" json:"id"`
	Shop               string      `db:"shop" json:"shop"`
	OrderID            string      `db:"order_id" json:"order_id"`
	OrderNumber        string      `db:"order_number" json:"order_number"`
	Status             string      `db:"status" json:"status"`
	Amount             float64     `db:"amount" json:"amount"`
	Currency           string      `db:"currency" json:"currency"`
	AttributionOrderID *string     `db:"attribution_order_id" json:"attribution_order_id"`
	Commission         *float64    `db:"commission" json:"commission"`
	ErrorMessage       *string     `db:"error_message" json:"error_message"`
	ExposureIDs        StringArray `db:"exposure_ids" json:"exposure_ids"`
	CreatedAt          time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time   `db:"updated_at" json:"updated_at"`
}

func (s *Store) GetOrderSync(ctx context.Context, shop, orderID string) (OrderSync, error) {
	var sync OrderSync
	err := s.SelectOne(ctx, &sync, TableOrderSyncs, Filter{Eq("shop", shop), Eq("order_id", orderID)})
	return sync, err
}

type UpsertPendingOrderSyncParams struct {
	Shop        string
	OrderID     string
	OrderNumber string
	Amount      float64
	Currency    string
	ExposureIDs []string
}

const sqlUpsertPendingOrderSync = `
INSERT INTO order_syncs (shop, order_id, order_number, status, amount, currency, exposure_ids)
VALUES ($1, $2, $3, 'pending', $4, $5, $6)
ON CONFLICT (shop, order_id) DO UPDATE
SET status = 'pending',
    order_number = EXCLUDED.order_number,
    amount = EXCLUDED.amount,
    currency = EXCLUDED.currency,
    exposure_ids = EXCLUDED.exposure_ids,
    error_message = NULL,
    updated_at = NOW()
WHERE order_syncs.status <> 'sent'
RETURNING *`

// UpsertPendingOrderSync (re)opens the sync row for an order. Rows already marked sent are left alone.
func (s *Store) UpsertPendingOrderSync(ctx context.Context, params UpsertPendingOrderSyncParams) (OrderSync, error) {
	var sync OrderSync
	err := s.db.GetContext(ctx, &sync, sqlUpsertPendingOrderSync,
		params.Shop, params.OrderID, params.OrderNumber, params.Amount, params.Currency, StringArray(params.ExposureIDs))
	if errors.Is(err, sql.ErrNoRows) {
		return OrderSync{}, ErrOrderAlreadySent
	}
	if err != nil {
		s.logger.Error(ctx, "failed to upsert order sync", err)
		return OrderSync{}, fmt.Errorf("failed to upsert order sync: %w", err)
	}
	return sync, nil
}

func (s *Store) MarkOrderSyncSent(ctx context.Context, shop, orderID string, attributionOrderID *string, commission *float64) error {
	_, err := s.Update(ctx, TableOrderSyncs, map[string]any{
		"status":               OrderSyncSent,
		"attribution_order_id": attributionOrderID,
		"commission":           commission,
		"error_message":        nil,
	}, Filter{Eq("shop", shop), Eq("order_id", orderID)})
	return err
}

func (s *Store) MarkOrderSyncFailed(ctx context.Context, shop, orderID, message string) error {
	_, err := s.Update(ctx, TableOrderSyncs, map[string]any{
		"status":        OrderSyncFailed,
		"error_message": message,
	}, Filter{Eq("shop", shop), Eq("order_id", orderID)})
	return err
}
