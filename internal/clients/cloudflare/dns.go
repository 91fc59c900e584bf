package cloudflare

import (
	"context"
	"fmt"
	"strings"
)

type MXHost struct {
	Host     string `json:"host" binding:"required"`
	Priority int    `json:"priority"`
}

type DKIMEntry struct {
	Name    string `json:"name" binding:"required"`
	Content string `json:"content" binding:"required"`
	// Type is TXT unless the mailbox provider issues CNAME-delegated keys.
	Type string `json:"type,omitempty"`
}

// ProviderProfile describes the records a mailbox provider needs.
type ProviderProfile struct {
	Name       string      `json:"name,omitempty"`
	MX         []MXHost    `json:"mx"`
	SPFInclude string      `json:"spf_include"`
	DKIM       []DKIMEntry `json:"dkim,omitempty"`
}

// DefaultProviderProfile is used when the caller does not send one. DKIM is
// left empty until the mailbox provider issues keys.
func DefaultProviderProfile() ProviderProfile {
	return ProviderProfile{
		Name: "zoho",
		MX: []MXHost{
			{Host: "mx.zoho.com", Priority: 10},
			{Host: "mx2.zoho.com", Priority: 20},
			{Host: "mx3.zoho.com", Priority: 50},
		},
		SPFInclude: "zohomail.com",
	}
}

// ProvisionResult lists what was created. Errors holds one entry per failed record.
type ProvisionResult struct {
	MX     []DNSRecord `json:"mx"`
	SPF    *DNSRecord  `json:"spf"`
	DKIM   []DNSRecord `json:"dkim"`
	DMARC  *DNSRecord  `json:"dmarc"`
	Errors []string    `json:"errors"`
}

func SPFContent(include string) string {
	return "v=spf1 include:" + include + " -all"
}

func DMARCContent(domain string) string {
	return "v=DMARC1; p=quarantine; rua=mailto:dmarc@" + domain
}

// ProvisionEmailDNS creates MX, SPF, DKIM and DMARC records for domain.
// A failed record does not stop the rest; its error is appended to Errors.
func (c *Client) ProvisionEmailDNS(ctx context.Context, zoneID, domain string, profile ProviderProfile) ProvisionResult {
	result := ProvisionResult{MX: []DNSRecord{}, DKIM: []DNSRecord{}, Errors: []string{}}

	for _, mx := range profile.MX {
		priority := mx.Priority
		rec, err := c.CreateDNSRecord(ctx, zoneID, DNSRecord{Type: "MX", Name: domain, Content: mx.Host, Priority: &priority})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("MX %s: %v", mx.Host, err))
			continue
		}
		result.MX = append(result.MX, rec)
	}

	if profile.SPFInclude != "" {
		rec, err := c.CreateDNSRecord(ctx, zoneID, DNSRecord{Type: "TXT", Name: domain, Content: SPFContent(profile.SPFInclude)})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("SPF: %v", err))
		} else {
			result.SPF = &rec
		}
	}

	for _, dkim := range profile.DKIM {
		recType := strings.ToUpper(dkim.Type)
		if recType == "" {
			recType = "TXT"
		}
		rec, err := c.CreateDNSRecord(ctx, zoneID, DNSRecord{Type: recType, Name: qualify(dkim.Name, domain), Content: dkim.Content})
		if err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("DKIM %s: %v", dkim.Name, err))
			continue
		}
		result.DKIM = append(result.DKIM, rec)
	}

	rec, err := c.CreateDNSRecord(ctx, zoneID, DNSRecord{Type: "TXT", Name: "_dmarc." + domain, Content: DMARCContent(domain)})
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("DMARC: %v", err))
	} else {
		result.DMARC = &rec
	}

	return result
}

func qualify(name, domain string) string {
	name = strings.TrimSuffix(name, ".")
	if name == domain || strings.HasSuffix(name, "."+domain) {
		return name
	}
	return name + "." + domain
}

// VerificationStatus holds the four independent email DNS checks.
type VerificationStatus struct {
	MX    bool `json:"mx"`
	SPF   bool `json:"spf"`
	DKIM  bool `json:"dkim"`
	DMARC bool `json:"dmarc"`
}

func (v VerificationStatus) AllVerified() bool {
	return v.MX && v.SPF && v.DKIM && v.DMARC
}

// VerifyEmailDNS lists the zone and evaluates it.
func (c *Client) VerifyEmailDNS(ctx context.Context, zoneID, domain string) (VerificationStatus, error) {
	records, err := c.ListDNSRecords(ctx, zoneID)
	if err != nil {
		return VerificationStatus{}, err
	}
	return EvaluateRecords(domain, records), nil
}

// EvaluateRecords scans records once and sets each flag on its own.
func EvaluateRecords(domain string, records []DNSRecord) VerificationStatus {
	domain = normalizeName(domain)
	dmarcName := "_dmarc." + domain

	var status VerificationStatus
	for _, r := range records {
		name := normalizeName(r.Name)
		recType := strings.ToUpper(r.Type)
		content := strings.Trim(r.Content, `"`)

		switch {
		case recType == "MX" && name == domain:
			status.MX = true
		case recType == "TXT" && name == domain && strings.HasPrefix(content, "v=spf1"):
			status.SPF = true
		case (recType == "TXT" || recType == "CNAME") && strings.Contains(name, "._domainkey."):
			status.DKIM = true
		case recType == "TXT" && name == dmarcName && strings.HasPrefix(content, "v=DMARC1"):
			status.DMARC = true
		}
	}
	return status
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSuffix(name, "."))
}
