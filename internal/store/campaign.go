package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	CampaignStatusDraft     = "draft"
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

type Campaign struct {
	ID                  uuid.UUID   `db:"id" json:"id"`
	Shop                string      `db:"shop" json:"shop"`
	Name                string      `db:"name" json:"name"`
	SmartleadCampaignID *int64      `db:"smartlead_campaign_id" json:"smartlead_campaign_id"`
	Status              string      `db:"status" json:"status"`
	EmailAccountIDs     StringArray `db:"email_account_ids" json:"email_account_ids"`
	SentCount           int         `db:"sent_count" json:"sent_count"`
	ReplyCount          int         `db:"reply_count" json:"reply_count"`
	CreatedAt           time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time   `db:"updated_at" json:"updated_at"`
}

func (s *Store) CreateCampaign(ctx context.Context, shop, name string, smartleadID *int64) (Campaign, error) {
	var campaign Campaign
	err := s.Insert(ctx, &campaign, TableCampaigns, map[string]any{
		"shop":                  shop,
		"name":                  name,
		"smartlead_campaign_id": smartleadID,
		"status":                CampaignStatusDraft,
	})
	return campaign, err
}

func (s *Store) GetCampaign(ctx context.Context, shop string, id uuid.UUID) (Campaign, error) {
	var campaign Campaign
	err := s.SelectOne(ctx, &campaign, TableCampaigns, Filter{Eq("shop", shop), Eq("id", id)})
	return campaign, err
}

func (s *Store) ListCampaigns(ctx context.Context, shop string) ([]Campaign, error) {
	campaigns := []Campaign{}
	err := s.SelectMany(ctx, &campaigns, TableCampaigns, Filter{Eq("shop", shop)}, "created_at DESC")
	return campaigns, err
}

func (s *Store) FindCampaignBySmartleadID(ctx context.Context, shop string, smartleadID int64) (Campaign, error) {
	var campaign Campaign
	err := s.SelectOne(ctx, &campaign, TableCampaigns, Filter{Eq("shop", shop), Eq("smartlead_campaign_id", smartleadID)})
	return campaign, err
}

const sqlAttachEmailAccount = `
UPDATE campaigns
SET email_account_ids = CASE
        WHEN $3 = ANY(email_account_ids) THEN email_account_ids
        ELSE array_append(email_account_ids, $3)
    END,
    updated_at = NOW()
WHERE shop = $1 AND id = $2`

const sqlSetAccountCampaign = `
UPDATE email_accounts SET campaign_id = $3, updated_at = NOW()
WHERE shop = $1 AND id = $2`

// AttachEmailAccount records the assignment on both sides in one transaction.
func (s *Store) AttachEmailAccount(ctx context.Context, shop string, campaignID, accountID uuid.UUID) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin assignment", err)
		return fmt.Errorf("failed to begin assignment: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	res, err := tx.ExecContext(ctx, sqlAttachEmailAccount, shop, campaignID, accountID.String())
	if err != nil {
		s.logger.Error(ctx, "failed to attach email account to campaign", err)
		return fmt.Errorf("failed to attach email account to campaign: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	res, err = tx.ExecContext(ctx, sqlSetAccountCampaign, shop, accountID, campaignID)
	if err != nil {
		s.logger.Error(ctx, "failed to set email account campaign", err)
		return fmt.Errorf("failed to set email account campaign: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit assignment", err)
		return fmt.Errorf("failed to commit assignment: %w", err)
	}
	return nil
}

const sqlIncrementCampaignReplies = `
UPDATE campaigns SET reply_count = reply_count + 1, updated_at = NOW()
WHERE shop = $1 AND id = $2`

func (s *Store) IncrementCampaignReplies(ctx context.Context, shop string, id uuid.UUID) error {
	if _, err := s.db.ExecContext(ctx, sqlIncrementCampaignReplies, shop, id); err != nil {
		s.logger.Error(ctx, "failed to increment campaign replies", err)
		return fmt.Errorf("failed to increment campaign replies: %w", err)
	}
	return nil
}
