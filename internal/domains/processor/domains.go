package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"outreach-server/internal/apierrors"
	"outreach-server/internal/clients/cloudflare"
	"outreach-server/internal/observability"
	"outreach-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrDomainNotFound         = errors.New("domain not found")
	ErrRegistrarNotConfigured = errors.New("cloudflare credentials are not configured")
	ErrMissingZone            = errors.New("domain has no dns zone")
	ErrInvalidProfile         = errors.New("provider profile needs at least one mx host and an spf include")
)

const (
	defaultYears = 1
	maxYears     = 10
	daysPerYear  = 365
)

type DomainProcessor struct {
	store     DomainStore
	registrar RegistrarFactory
	now       func() time.Time
	logger    *observability.Logger
}

func New(store DomainStore, registrar RegistrarFactory, logger *observability.Logger) DomainProcessor {
	return DomainProcessor{
		store:     store,
		registrar: registrar,
		now:       time.Now,
		logger:    logger,
	}
}

// registrarFor loads the tenant's registrar credentials and WHOIS contact.
func (p *DomainProcessor) registrarFor(ctx context.Context, shop string) (Registrar, store.EmailSettings, error) {
	settings, err := p.store.GetEmailSettings(ctx, shop)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to load email settings", err)
		return nil, store.EmailSettings{}, err
	}
	if settings.CloudflareAccountID == "" || settings.CloudflareAPIToken == "" {
		return nil, store.EmailSettings{}, ErrRegistrarNotConfigured
	}
	return p.registrar(settings.CloudflareAccountID, settings.CloudflareAPIToken), settings, nil
}

func (p *DomainProcessor) getDomain(ctx context.Context, shop string, id uuid.UUID) (store.Domain, error) {
	domain, err := p.store.GetDomain(ctx, shop, id)
	if errors.Is(err, store.ErrNotFound) {
		return store.Domain{}, ErrDomainNotFound
	}
	if err != nil {
		p.logger.Error(ctx, "failed to load domain", err)
	}
	return domain, err
}

func (p *DomainProcessor) SearchDomains(ctx context.Context, shop, query string) ([]cloudflare.DomainAvailability, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "query", Value: query},
	)

	registrar, _, err := p.registrarFor(ctx, shop)
	if err != nil {
		return nil, err
	}

	domains, err := registrar.SearchDomains(ctx, strings.TrimSpace(query))
	if err != nil {
		p.logger.Error(ctx, "failed to search domains", err)
		return nil, err
	}
	return domains, nil
}

// whoisContact returns the contact and the names of every missing required field, in form order.
func whoisContact(s store.EmailSettings) (cloudflare.Contact, []string) {
	contact := cloudflare.Contact{
		FirstName:    strings.TrimSpace(s.ContactFirstName),
		LastName:     strings.TrimSpace(s.ContactLastName),
		Organization: strings.TrimSpace(s.ContactOrganization),
		Address:      strings.TrimSpace(s.ContactAddress),
		City:         strings.TrimSpace(s.ContactCity),
		State:        strings.TrimSpace(s.ContactState),
		Zip:          strings.TrimSpace(s.ContactZip),
		Country:      strings.TrimSpace(s.ContactCountry),
		Phone:        strings.TrimSpace(s.ContactPhone),
		Email:        strings.TrimSpace(s.ContactEmail),
	}

	required := []struct {
		name  string
		value string
	}{
		{"first_name", contact.FirstName},
		{"last_name", contact.LastName},
		{"address", contact.Address},
		{"city", contact.City},
		{"state", contact.State},
		{"zip", contact.Zip},
		{"country", contact.Country},
		{"phone", contact.Phone},
		{"email", contact.Email},
	}

	var missing []string
	for _, f := range required {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return contact, missing
}

// PurchaseDomain registers name and stores the domain row. The zone id lookup
// afterwards is best-effort; provisioning backfills it.
func (p *DomainProcessor) PurchaseDomain(ctx context.Context, shop, name string, years int) (store.Domain, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "domain", Value: name},
	)

	if name == "" {
		return store.Domain{}, apierrors.Invalid("domain is required")
	}
	if years == 0 {
		years = defaultYears
	}
	if years < 1 || years > maxYears {
		return store.Domain{}, apierrors.Invalid("years must be between 1 and 10")
	}

	registrar, settings, err := p.registrarFor(ctx, shop)
	if err != nil {
		return store.Domain{}, err
	}

	contact, missing := whoisContact(settings)
	if len(missing) > 0 {
		return store.Domain{}, apierrors.Invalid("Missing WHOIS contact fields: " + strings.Join(missing, ", "))
	}

	registration, err := registrar.PurchaseDomain(ctx, name, years, contact)
	if err != nil {
		p.logger.Error(ctx, "failed to purchase domain", err)
		return store.Domain{}, err
	}

	var zoneID *string
	if id, err := registrar.FindZoneID(ctx, name); err != nil {
		p.logger.Error(ctx, "failed to look up zone after purchase", err)
	} else if id == "" {
		p.logger.Warn(ctx, "no zone found after purchase")
	} else {
		zoneID = &id
	}

	registrarStatus := registration.Status
	if registrarStatus == "" {
		registrarStatus = store.DomainStatusPurchased
	}

	purchasedAt := p.now().UTC()
	domain, err := p.store.CreateDomain(ctx, store.CreateDomainParams{
		Shop:             shop,
		Domain:           name,
		CloudflareZoneID: zoneID,
		RegistrarStatus:  registrarStatus,
		PurchasedAt:      purchasedAt,
		ExpiresAt:        purchasedAt.Add(time.Duration(years*daysPerYear) * 24 * time.Hour),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to store purchased domain", err)
		return store.Domain{}, err
	}

	p.logger.Info(ctx, "domain purchased")
	return domain, nil
}

// ensureZone returns the domain's zone id, looking it up or creating it when the row has none.
func (p *DomainProcessor) ensureZone(ctx context.Context, registrar Registrar, domain store.Domain) (string, error) {
	if domain.CloudflareZoneID != nil && *domain.CloudflareZoneID != "" {
		return *domain.CloudflareZoneID, nil
	}

	zoneID, err := registrar.FindZoneID(ctx, domain.Domain)
	if err != nil {
		p.logger.Error(ctx, "failed to look up zone", err)
		return "", err
	}
	if zoneID == "" {
		if zoneID, err = registrar.CreateZone(ctx, domain.Domain); err != nil {
			p.logger.Error(ctx, "failed to create zone", err)
			return "", err
		}
		p.logger.Info(ctx, "created dns zone")
	}

	if _, err := p.store.UpdateDomain(ctx, domain.Shop, domain.ID, map[string]any{"cloudflare_zone_id": zoneID}); err != nil {
		p.logger.Error(ctx, "failed to store zone id", err)
		return "", err
	}
	return zoneID, nil
}

// ProvisionDNS creates the mailbox provider's records. Individual record failures
// are collected in the result and mark the domain failed.
func (p *DomainProcessor) ProvisionDNS(ctx context.Context, shop string, domainID uuid.UUID, profile *cloudflare.ProviderProfile) (cloudflare.ProvisionResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "domain_id", Value: domainID},
	)

	domain, err := p.getDomain(ctx, shop, domainID)
	if err != nil {
		return cloudflare.ProvisionResult{}, err
	}

	selected := cloudflare.DefaultProviderProfile()
	if profile != nil {
		if len(profile.MX) == 0 || profile.SPFInclude == "" {
			return cloudflare.ProvisionResult{}, ErrInvalidProfile
		}
		selected = *profile
	}

	registrar, _, err := p.registrarFor(ctx, shop)
	if err != nil {
		return cloudflare.ProvisionResult{}, err
	}

	zoneID, err := p.ensureZone(ctx, registrar, domain)
	if err != nil {
		return cloudflare.ProvisionResult{}, err
	}

	result := registrar.ProvisionEmailDNS(ctx, zoneID, domain.Domain, selected)

	patch := map[string]any{
		"dns_configured": true,
		"mx_verified":    len(result.MX) > 0,
		"spf_verified":   result.SPF != nil,
		"dmarc_verified": result.DMARC != nil,
	}
	if len(result.DKIM) > 0 {
		patch["dkim_verified"] = true
	}
	if len(result.Errors) == 0 {
		patch["status"] = store.DomainStatusDNSPending
		patch["status_reason"] = nil
	} else {
		patch["status"] = store.DomainStatusFailed
		patch["status_reason"] = strings.Join(result.Errors, "; ")
		p.logger.Warn(ctx, "dns provisioning finished with errors")
	}

	if _, err := p.store.UpdateDomain(ctx, shop, domainID, patch); err != nil {
		p.logger.Error(ctx, "failed to store provisioning result", err)
		return cloudflare.ProvisionResult{}, err
	}
	return result, nil
}

type VerifyResult struct {
	Status       cloudflare.VerificationStatus `json:"status"`
	AllVerified  bool                          `json:"all_verified"`
	DomainStatus string                        `json:"domain_status"`
}

// VerifyDNS re-reads the zone and overwrites all four flags. Only a fully verified
// domain becomes active.
func (p *DomainProcessor) VerifyDNS(ctx context.Context, shop string, domainID uuid.UUID) (VerifyResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "domain_id", Value: domainID},
	)

	domain, err := p.getDomain(ctx, shop, domainID)
	if err != nil {
		return VerifyResult{}, err
	}
	if domain.CloudflareZoneID == nil || *domain.CloudflareZoneID == "" {
		return VerifyResult{}, ErrMissingZone
	}

	registrar, _, err := p.registrarFor(ctx, shop)
	if err != nil {
		return VerifyResult{}, err
	}

	status, err := registrar.VerifyEmailDNS(ctx, *domain.CloudflareZoneID, domain.Domain)
	if err != nil {
		p.logger.Error(ctx, "failed to verify dns", err)
		return VerifyResult{}, err
	}

	domainStatus := store.DomainStatusDNSPending
	if status.AllVerified() {
		domainStatus = store.DomainStatusActive
	}

	_, err = p.store.UpdateDomain(ctx, shop, domainID, map[string]any{
		"mx_verified":    status.MX,
		"spf_verified":   status.SPF,
		"dkim_verified":  status.DKIM,
		"dmarc_verified": status.DMARC,
		"status":         domainStatus,
		"status_reason":  nil,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to store verification result", err)
		return VerifyResult{}, err
	}

	return VerifyResult{Status: status, AllVerified: status.AllVerified(), DomainStatus: domainStatus}, nil
}

func (p *DomainProcessor) ListDomains(ctx context.Context, shop string) ([]store.DomainWithAccountCount, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	domains, err := p.store.ListDomainsWithAccountCount(ctx, shop)
	if err != nil {
		p.logger.Error(ctx, "failed to list domains", err)
		return nil, err
	}
	return domains, nil
}

type DomainStatus struct {
	Domain   store.Domain         `json:"domain"`
	Accounts []store.EmailAccount `json:"accounts"`
}

func (p *DomainProcessor) GetDomainStatus(ctx context.Context, shop string, domainID uuid.UUID) (DomainStatus, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "shop", Value: shop},
		observability.Field{Key: "domain_id", Value: domainID},
	)

	domain, err := p.getDomain(ctx, shop, domainID)
	if err != nil {
		return DomainStatus{}, err
	}

	accounts, err := p.store.ListEmailAccountsByDomain(ctx, shop, domainID)
	if err != nil {
		p.logger.Error(ctx, "failed to list domain accounts", err)
		return DomainStatus{}, err
	}
	return DomainStatus{Domain: domain, Accounts: accounts}, nil
}
