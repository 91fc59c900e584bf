package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"outreach-server/internal/clients/cloudflare"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

// DomainStore defines the database operations required by DomainProcessor
type DomainStore interface {
	GetEmailSettings(ctx context.Context, shop string) (store.EmailSettings, error)
	CreateDomain(ctx context.Context, params store.CreateDomainParams) (store.Domain, error)
	GetDomain(ctx context.Context, shop string, id uuid.UUID) (store.Domain, error)
	UpdateDomain(ctx context.Context, shop string, id uuid.UUID, patch map[string]any) (store.Domain, error)
	ListDomainsWithAccountCount(ctx context.Context, shop string) ([]store.DomainWithAccountCount, error)
	ListEmailAccountsByDomain(ctx context.Context, shop string, domainID uuid.UUID) ([]store.EmailAccount, error)
}

// Registrar defines the registrar and DNS operations required by DomainProcessor
type Registrar interface {
	SearchDomains(ctx context.Context, query string) ([]cloudflare.DomainAvailability, error)
	PurchaseDomain(ctx context.Context, domain string, years int, contact cloudflare.Contact) (cloudflare.Registration, error)
	FindZoneID(ctx context.Context, domain string) (string, error)
	CreateZone(ctx context.Context, domain string) (string, error)
	ProvisionEmailDNS(ctx context.Context, zoneID, domain string, profile cloudflare.ProviderProfile) cloudflare.ProvisionResult
	VerifyEmailDNS(ctx context.Context, zoneID, domain string) (cloudflare.VerificationStatus, error)
}

// RegistrarFactory builds a registrar client from a tenant's credentials
type RegistrarFactory func(accountID, apiToken string) Registrar
