// Package attribution talks to the commission-attribution backend.
package attribution

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"outreach-server/internal/clients/vendor"

	"github.com/go-resty/resty/v2"
)

const vendorName = "attribution"

type Client struct {
	http *resty.Client
}

func New(baseURL, apiKey string) *Client {
	return &Client{http: vendor.NewRestyClient(baseURL).SetHeader("X-API-Key", apiKey)}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

// errorMessage accepts "error":"text" and "error":{"message":"text"}.
func errorMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if json.Unmarshal(raw, &s) == nil {
		return s
	}
	var obj struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(raw, &obj) == nil {
		return obj.Message
	}
	return ""
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req := c.http.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return vendor.NewError(vendorName, vendor.StatusOrBadGateway(resp), err.Error(), nil)
	}

	var env envelope
	decodeErr := vendor.Decode(resp, &env)
	if resp.IsError() {
		return vendor.NewError(vendorName, resp.StatusCode(), errorMessage(env.Error), resp.Body())
	}
	if decodeErr != nil || !env.Success {
		return vendor.NewError(vendorName, http.StatusBadGateway, errorMessage(env.Error), resp.Body())
	}

	if out != nil && len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("failed to decode attribution response: %w", err)
		}
	}
	return nil
}

type LineItem struct {
	ProductID string  `json:"product_id"`
	VariantID string  `json:"variant_id,omitempty"`
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	Shop          string     `json:"shop_domain"`
	OrderID       string     `json:"order_id"`
	OrderNumber   string     `json:"order_number,omitempty"`
	TotalPrice    float64    `json:"total_price"`
	Currency      string     `json:"currency"`
	CustomerEmail string     `json:"customer_email,omitempty"`
	CreatedAt     string     `json:"created_at,omitempty"`
	ExposureIDs   []string   `json:"exposure_ids"`
	LineItems     []LineItem `json:"line_items"`
}

// ID accepts both JSON strings and numbers.
type ID string

func (i *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = ID(n.String())
	return nil
}

type OrderResult struct {
	OrderID    ID       `json:"order_id"`
	Commission *float64 `json:"commission"`
}

// SubmitOrder relays one order with its exposure ids.
func (c *Client) SubmitOrder(ctx context.Context, order Order) (OrderResult, error) {
	if order.ExposureIDs == nil {
		order.ExposureIDs = []string{}
	}
	var result OrderResult
	err := c.do(ctx, http.MethodPost, "/v1/orders", order, &result)
	return result, err
}

// ValidateKey checks the configured API key against the account endpoint.
func (c *Client) ValidateKey(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/v1/account", nil, nil)
}
