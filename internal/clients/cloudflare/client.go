// Package cloudflare wraps the registrar and DNS endpoints of Cloudflare API v4.
package cloudflare

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"outreach-server/internal/clients/vendor"

	"github.com/go-resty/resty/v2"
)

const vendorName = "cloudflare"

type Client struct {
	http      *resty.Client
	accountID string
}

// New builds a client for one tenant's Cloudflare account.
func New(baseURL, accountID, apiToken string) *Client {
	return &Client{
		http:      vendor.NewRestyClient(baseURL).SetAuthToken(apiToken),
		accountID: accountID,
	}
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type envelope struct {
	Success bool            `json:"success"`
	Errors  []apiError      `json:"errors"`
	Result  json.RawMessage `json:"result"`
}

// do sends one request and decodes envelope.result into out.
func (c *Client) do(ctx context.Context, method, path string, query map[string]string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return vendor.NewError(vendorName, vendor.StatusOrBadGateway(resp), err.Error(), nil)
	}

	var env envelope
	decodeErr := vendor.Decode(resp, &env)

	msg := ""
	if len(env.Errors) > 0 {
		msg = env.Errors[0].Message
	}
	switch {
	case resp.IsError():
		return vendor.NewError(vendorName, resp.StatusCode(), msg, resp.Body())
	case decodeErr != nil:
		return vendor.DecodeError(vendorName, resp, decodeErr)
	case !env.Success:
		return vendor.NewError(vendorName, http.StatusBadGateway, msg, resp.Body())
	}

	if out == nil || len(env.Result) == 0 || string(env.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return vendor.DecodeError(vendorName, resp, err)
	}
	return nil
}

// DomainAvailability is one registrar search hit.
type DomainAvailability struct {
	Name        string   `json:"name"`
	Available   bool     `json:"available"`
	CanRegister bool     `json:"can_register"`
	Premium     bool     `json:"premium"`
	Price       *float64 `json:"price,omitempty"`
	Currency    string   `json:"currency,omitempty"`
}

// SearchDomains queries the registrar for names matching query.
func (c *Client) SearchDomains(ctx context.Context, query string) ([]DomainAvailability, error) {
	var raw json.RawMessage
	err := c.do(ctx, http.MethodGet, "/accounts/"+c.accountID+"/registrar/domain-search",
		map[string]string{"q": query}, nil, &raw)
	if err != nil {
		return nil, err
	}

	domains := []DomainAvailability{}
	if len(raw) == 0 {
		return domains, nil
	}
	if strings.HasPrefix(strings.TrimSpace(string(raw)), "[") {
		err = json.Unmarshal(raw, &domains)
	} else {
		var wrapped struct {
			Domains []DomainAvailability `json:"domains"`
		}
		err = json.Unmarshal(raw, &wrapped)
		if wrapped.Domains != nil {
			domains = wrapped.Domains
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode domain search: %w", err)
	}
	return domains, nil
}

// Contact is the WHOIS record used for every registration role.
type Contact struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
}

type contacts struct {
	Registrant    Contact `json:"registrant"`
	Administrator Contact `json:"administrator"`
	Technical     Contact `json:"technical"`
	Billing       Contact `json:"billing"`
}

type purchaseRequest struct {
	Name      string   `json:"name"`
	Years     int      `json:"years"`
	AutoRenew bool     `json:"auto_renew"`
	Privacy   bool     `json:"privacy"`
	Contacts  contacts `json:"contacts"`
}

// Registration is the registrar's view of a purchased domain.
type Registration struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// PurchaseDomain registers domain for years, applying contact to all four roles.
func (c *Client) PurchaseDomain(ctx context.Context, domain string, years int, contact Contact) (Registration, error) {
	body := purchaseRequest{
		Name:    domain,
		Years:   years,
		Privacy: true,
		Contacts: contacts{
			Registrant:    contact,
			Administrator: contact,
			Technical:     contact,
			Billing:       contact,
		},
	}

	var reg Registration
	err := c.do(ctx, http.MethodPost, "/accounts/"+c.accountID+"/registrar/domains", nil, body, &reg)
	if reg.Name == "" {
		reg.Name = domain
	}
	return reg, err
}

type zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FindZoneID returns the zone id for domain, or "" when the account has no such zone.
func (c *Client) FindZoneID(ctx context.Context, domain string) (string, error) {
	var zones []zone
	err := c.do(ctx, http.MethodGet, "/zones",
		map[string]string{"name": domain, "account.id": c.accountID}, nil, &zones)
	if err != nil {
		return "", err
	}
	for _, z := range zones {
		if strings.EqualFold(z.Name, domain) {
			return z.ID, nil
		}
	}
	return "", nil
}

// CreateZone creates a full-setup zone for domain and returns its id.
func (c *Client) CreateZone(ctx context.Context, domain string) (string, error) {
	body := map[string]any{
		"name":    domain,
		"account": map[string]string{"id": c.accountID},
		"type":    "full",
	}

	var z zone
	if err := c.do(ctx, http.MethodPost, "/zones", nil, body, &z); err != nil {
		return "", err
	}
	return z.ID, nil
}

type DNSRecord struct {
	ID       string `json:"id,omitempty"`
	Type     string `json:"type"`
	Name     string `json:"name"`
	Content  string `json:"content"`
	Priority *int   `json:"priority,omitempty"`
	TTL      int    `json:"ttl,omitempty"`
}

// ListDNSRecords returns the first 100 records of a zone.
func (c *Client) ListDNSRecords(ctx context.Context, zoneID string) ([]DNSRecord, error) {
	records := []DNSRecord{}
	err := c.do(ctx, http.MethodGet, "/zones/"+zoneID+"/dns_records",
		map[string]string{"per_page": "100"}, nil, &records)
	return records, err
}

// CreateDNSRecord creates rec with automatic TTL.
func (c *Client) CreateDNSRecord(ctx context.Context, zoneID string, rec DNSRecord) (DNSRecord, error) {
	rec.TTL = 1
	var created DNSRecord
	if err := c.do(ctx, http.MethodPost, "/zones/"+zoneID+"/dns_records", nil, rec, &created); err != nil {
		return DNSRecord{}, err
	}
	return created, nil
}
