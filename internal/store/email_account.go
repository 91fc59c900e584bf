package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	WarmupStatusPending   = "pending"
	WarmupStatusActive    = "active"
	WarmupStatusCompleted = "completed"
	WarmupStatusPaused    = "paused"
)

type EmailAccount struct {
	ID                 uuid.UUID  `db:"id" json:"id"`
	Shop               string     `db:"shop" json:"shop"`
	DomainID           uuid.UUID  `db:"domain_id" json:"domain_id"`
	CampaignID         *uuid.UUID `db:"campaign_id" json:"campaign_id"`
	Email              string     `db:"email" json:"email"`
	FromName           string     `db:"from_name" json:"from_name"`
	SMTPHost           string     `db:"smtp_host" json:"smtp_host"`
	SMTPPort           int        `db:"smtp_port" json:"smtp_port"`
	IMAPHost           string     `db:"imap_host" json:"imap_host"`
	IMAPPort           int        `db:"imap_port" json:"imap_port"`
	SmartleadAccountID *int64     `db:"smartlead_account_id" json:"smartlead_account_id"`
	WarmupEnabled      bool       `db:"warmup_enabled" json:"warmup_enabled"`
	WarmupStatus       string     `db:"warmup_status" json:"warmup_status"`
	DailyLimit         int        `db:"daily_limit" json:"daily_limit"`
	CreatedAt          time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at" json:"updated_at"`
}

type CreateEmailAccountParams struct {
	Shop               string
	DomainID           uuid.UUID
	Email              string
	FromName           string
	SMTPHost           string
	SMTPPort           int
	IMAPHost           string
	IMAPPort           int
	SmartleadAccountID *int64
	WarmupEnabled      bool
	DailyLimit         int
}

func (s *Store) CreateEmailAccount(ctx context.Context, params CreateEmailAccountParams) (EmailAccount, error) {
	status := WarmupStatusPaused
	if params.WarmupEnabled {
		status = WarmupStatusPending
	}

	var account EmailAccount
	err := s.Insert(ctx, &account, TableEmailAccounts, map[string]any{
		"shop":                 params.Shop,
		"domain_id":            params.DomainID,
		"email":                params.Email,
		"from_name":            params.FromName,
		"smtp_host":            params.SMTPHost,
		"smtp_port":            params.SMTPPort,
		"imap_host":            params.IMAPHost,
		"imap_port":            params.IMAPPort,
		"smartlead_account_id": params.SmartleadAccountID,
		"warmup_enabled":       params.WarmupEnabled,
		"warmup_status":        status,
		"daily_limit":          params.DailyLimit,
	})
	return account, err
}

func (s *Store) GetEmailAccount(ctx context.Context, shop string, id uuid.UUID) (EmailAccount, error) {
	var account EmailAccount
	err := s.SelectOne(ctx, &account, TableEmailAccounts, Filter{Eq("shop", shop), Eq("id", id)})
	return account, err
}

// FindEmailAccountByAddress looks an address up across all tenants. Addresses are globally unique,
// which is how inbound replies are routed to their owner.
func (s *Store) FindEmailAccountByAddress(ctx context.Context, email string) (EmailAccount, error) {
	var account EmailAccount
	err := s.SelectOne(ctx, &account, TableEmailAccounts, Filter{Eq("email", email)})
	return account, err
}

func (s *Store) ListEmailAccounts(ctx context.Context, shop string) ([]EmailAccount, error) {
	accounts := []EmailAccount{}
	err := s.SelectMany(ctx, &accounts, TableEmailAccounts, Filter{Eq("shop", shop)}, "created_at DESC")
	return accounts, err
}

func (s *Store) ListEmailAccountsByDomain(ctx context.Context, shop string, domainID uuid.UUID) ([]EmailAccount, error) {
	accounts := []EmailAccount{}
	err := s.SelectMany(ctx, &accounts, TableEmailAccounts, Filter{Eq("shop", shop), Eq("domain_id", domainID)}, "created_at")
	return accounts, err
}

func (s *Store) UpdateEmailAccount(ctx context.Context, shop string, id uuid.UUID, patch map[string]any) (EmailAccount, error) {
	n, err := s.Update(ctx, TableEmailAccounts, patch, Filter{Eq("shop", shop), Eq("id", id)})
	if err != nil {
		return EmailAccount{}, err
	}
	if n == 0 {
		return EmailAccount{}, ErrNotFound
	}
	return s.GetEmailAccount(ctx, shop, id)
}
