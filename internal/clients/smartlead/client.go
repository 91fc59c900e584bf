// Package smartlead wraps the Smartlead.ai outreach API.
package smartlead

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"outreach-server/internal/clients/vendor"

	"github.com/go-resty/resty/v2"
)

const vendorName = "smartlead"

type Client struct {
	http *resty.Client
}

// New authenticates every call with the api_key query parameter.
func New(baseURL, apiKey string) *Client {
	return &Client{http: vendor.NewRestyClient(baseURL).SetQueryParam("api_key", apiKey)}
}

type status struct {
	OK      *bool  `json:"ok"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	resp, err := c.http.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return vendor.NewError(vendorName, vendor.StatusOrBadGateway(resp), err.Error(), nil)
	}

	var st status
	statusErr := vendor.Decode(resp, &st)

	msg := st.Error
	if msg == "" {
		msg = st.Message
	}

	if resp.IsError() {
		return vendor.NewError(vendorName, resp.StatusCode(), msg, resp.Body())
	}
	// Some endpoints answer with a bare array; only a body that is not JSON at all fails here.
	if statusErr != nil && !json.Valid(resp.Body()) {
		return vendor.DecodeError(vendorName, resp, statusErr)
	}
	if st.OK != nil && !*st.OK {
		return vendor.NewError(vendorName, http.StatusBadGateway, msg, resp.Body())
	}

	if out != nil {
		if err := vendor.Decode(resp, out); err != nil {
			return vendor.DecodeError(vendorName, resp, err)
		}
	}
	return nil
}

type CreateEmailAccountParams struct {
	FromName       string `json:"from_name"`
	FromEmail      string `json:"from_email"`
	Username       string `json:"user_name"`
	Password       string `json:"password"`
	SMTPHost       string `json:"smtp_host"`
	SMTPPort       int    `json:"smtp_port"`
	IMAPHost       string `json:"imap_host"`
	IMAPPort       int    `json:"imap_port"`
	MaxEmailPerDay int    `json:"max_email_per_day"`
	WarmupEnabled  bool   `json:"warmup_enabled"`
	Type           string `json:"type"`
}

// CreateEmailAccount registers an SMTP/IMAP mailbox and returns its Smartlead id.
func (c *Client) CreateEmailAccount(ctx context.Context, params CreateEmailAccountParams) (int64, error) {
	if params.Type == "" {
		params.Type = "SMTP"
	}

	var out struct {
		ID             *int64 `json:"id"`
		EmailAccountID *int64 `json:"emailAccountId"`
	}
	if err := c.post(ctx, "/email-accounts/save", params, &out); err != nil {
		return 0, err
	}

	switch {
	case out.EmailAccountID != nil:
		return *out.EmailAccountID, nil
	case out.ID != nil:
		return *out.ID, nil
	}
	return 0, vendor.NewError(vendorName, http.StatusBadGateway, "response did not include an email account id", nil)
}

// UpdateWarmup turns warmup on or off for a mailbox.
func (c *Client) UpdateWarmup(ctx context.Context, accountID int64, enabled bool, perDay int) error {
	body := map[string]any{
		"warmup_enabled":       enabled,
		"total_warmup_per_day": perDay,
	}
	return c.post(ctx, "/email-accounts/"+strconv.FormatInt(accountID, 10)+"/warmup", body, nil)
}

type Campaign struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CreateCampaign creates an empty campaign.
func (c *Client) CreateCampaign(ctx context.Context, name string) (Campaign, error) {
	var out Campaign
	if err := c.post(ctx, "/campaigns/create", map[string]string{"name": name}, &out); err != nil {
		return Campaign{}, err
	}
	if out.ID == 0 {
		return Campaign{}, vendor.NewError(vendorName, http.StatusBadGateway, "response did not include a campaign id", nil)
	}
	if out.Name == "" {
		out.Name = name
	}
	return out, nil
}

// AddEmailAccountsToCampaign attaches mailboxes to a campaign.
func (c *Client) AddEmailAccountsToCampaign(ctx context.Context, campaignID int64, accountIDs []int64) error {
	body := map[string][]int64{"email_account_ids": accountIDs}
	return c.post(ctx, "/campaigns/"+strconv.FormatInt(campaignID, 10)+"/email-accounts", body, nil)
}
