package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	DomainStatusPurchased  = "purchased"
	DomainStatusDNSPending = "dns_pending"
	DomainStatusActive     = "active"
	DomainStatusFailed     = "failed"
)

type Domain struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	Shop             string     `db:"shop" json:"shop"`
	Domain           string     `db:"domain" json:"domain"`
	CloudflareZoneID *string    `db:"cloudflare_zone_id" json:"cloudflare_zone_id"`
	RegistrarStatus  string     `db:"registrar_status" json:"registrar_status"`
	Status           string     `db:"status" json:"status"`
	StatusReason     *string    `db:"status_reason" json:"status_reason"`
	DNSConfigured    bool       `db:"dns_configured" json:"dns_configured"`
	MXVerified       bool       `db:"mx_verified" json:"mx_verified"`
	SPFVerified      bool       `db:"spf_verified" json:"spf_verified"`
	DKIMVerified     bool       `db:"dkim_verified" json:"dkim_verified"`
	DMARCVerified    bool       `db:"dmarc_verified" json:"dmarc_verified"`
	PurchasedAt      *time.Time `db:"purchased_at" json:"purchased_at"`
	ExpiresAt        *time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

type DomainWithAccountCount struct {
	Domain
	AccountCount int `db:"account_count" json:"account_count"`
}

type CreateDomainParams struct {
	Shop             string
	Domain           string
	CloudflareZoneID *string
	RegistrarStatus  string
	PurchasedAt      time.Time
	ExpiresAt        time.Time
}

func (s *Store) CreateDomain(ctx context.Context, params CreateDomainParams) (Domain, error) {
	var domain Domain
	err := s.Insert(ctx, &domain, TableDomains, map[string]any{
		"shop":               params.Shop,
		"domain":             params.Domain,
		"cloudflare_zone_id": params.CloudflareZoneID,
		"registrar_status":   params.RegistrarStatus,
		"status":             DomainStatusPurchased,
		"purchased_at":       params.PurchasedAt,
		"expires_at":         params.ExpiresAt,
	})
	return domain, err
}

func (s *Store) GetDomain(ctx context.Context, shop string, id uuid.UUID) (Domain, error) {
	var domain Domain
	err := s.SelectOne(ctx, &domain, TableDomains, Filter{Eq("shop", shop), Eq("id", id)})
	return domain, err
}

// UpdateDomain applies patch to one of the shop's domains and returns the stored row.
func (s *Store) UpdateDomain(ctx context.Context, shop string, id uuid.UUID, patch map[string]any) (Domain, error) {
	n, err := s.Update(ctx, TableDomains, patch, Filter{Eq("shop", shop), Eq("id", id)})
	if err != nil {
		return Domain{}, err
	}
	if n == 0 {
		return Domain{}, ErrNotFound
	}
	return s.GetDomain(ctx, shop, id)
}

const sqlListDomainsWithAccountCount = `
SELECT d.*, COUNT(a.id) AS account_count
FROM domains d
LEFT JOIN email_accounts a ON a.domain_id = d.id AND a.shop = d.shop
WHERE d.shop = $1
GROUP BY d.id
ORDER BY d.created_at DESC`

func (s *Store) ListDomainsWithAccountCount(ctx context.Context, shop string) ([]DomainWithAccountCount, error) {
	domains := []DomainWithAccountCount{}
	if err := s.db.SelectContext(ctx, &domains, sqlListDomainsWithAccountCount, shop); err != nil {
		s.logger.Error(ctx, "failed to list domains", err)
		return nil, fmt.Errorf("failed to list domains: %w", err)
	}
	return domains, nil
}
