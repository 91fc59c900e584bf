// Package shopify wraps the Shopify OAuth and Admin API calls the app needs.
package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"outreach-server/internal/clients/vendor"

	"github.com/go-resty/resty/v2"
)

const vendorName = "shopify"

var shopDomainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*\.myshopify\.com$`)

// NormalizeShop lower-cases and validates a shop domain. ok is false for anything
// that is not <name>.myshopify.com.
func NormalizeShop(shop string) (string, bool) {
	shop = strings.ToLower(strings.TrimSpace(shop))
	shop = strings.TrimPrefix(shop, "https://")
	shop = strings.TrimSuffix(shop, "/")
	return shop, shopDomainPattern.MatchString(shop)
}

type Config struct {
	APIKey     string
	APISecret  string
	Scopes     string
	APIVersion string
	// BaseURL maps a shop to its origin; nil means https://<shop>.
	BaseURL func(shop string) string
}

type Client struct {
	cfg  Config
	http *resty.Client
}

func New(cfg Config) *Client {
	return &Client{cfg: cfg, http: vendor.NewRestyClient("")}
}

func (c *Client) origin(shop string) string {
	if c.cfg.BaseURL != nil {
		return c.cfg.BaseURL(shop)
	}
	return "https://" + shop
}

func (c *Client) adminPath(shop, path string) string {
	return fmt.Sprintf("%s/admin/api/%s/%s", c.origin(shop), c.cfg.APIVersion, path)
}

// InstallURL is the OAuth consent URL for shop.
func (c *Client) InstallURL(shop, state, redirectURI string) string {
	q := url.Values{}
	q.Set("client_id", c.cfg.APIKey)
	q.Set("scope", c.cfg.Scopes)
	q.Set("redirect_uri", redirectURI)
	q.Set("state", state)
	return "https://" + shop + "/admin/oauth/authorize?" + q.Encode()
}

func shopifyMessage(body []byte) string {
	var payload struct {
		Errors           json.RawMessage `json:"errors"`
		Error            string          `json:"error"`
		ErrorDescription string          `json:"error_description"`
	}
	if json.Unmarshal(body, &payload) != nil {
		return ""
	}
	if payload.ErrorDescription != "" {
		return payload.ErrorDescription
	}
	if payload.Error != "" {
		return payload.Error
	}
	if len(payload.Errors) > 0 {
		var s string
		if json.Unmarshal(payload.Errors, &s) == nil {
			return s
		}
		return string(payload.Errors)
	}
	return ""
}

func (c *Client) send(req *resty.Request, method, target string, out any) (*resty.Response, error) {
	resp, err := req.Execute(method, target)
	if err != nil {
		return resp, vendor.NewError(vendorName, vendor.StatusOrBadGateway(resp), err.Error(), nil)
	}
	if resp.IsError() {
		return resp, vendor.NewError(vendorName, resp.StatusCode(), shopifyMessage(resp.Body()), resp.Body())
	}
	if out != nil {
		if err := vendor.Decode(resp, out); err != nil {
			return resp, fmt.Errorf("failed to decode shopify response: %w", err)
		}
	}
	return resp, nil
}

type AccessToken struct {
	AccessToken string `json:"access_token"`
	Scope       string `json:"scope"`
}

// ExchangeCode trades an OAuth authorization code for an offline token.
func (c *Client) ExchangeCode(ctx context.Context, shop, code string) (AccessToken, error) {
	body := map[string]string{
		"client_id":     c.cfg.APIKey,
		"client_secret": c.cfg.APISecret,
		"code":          code,
	}
	var tok AccessToken
	_, err := c.send(c.http.R().SetContext(ctx).SetBody(body), http.MethodPost, c.origin(shop)+"/admin/oauth/access_token", &tok)
	return tok, err
}

// ExchangeSessionToken upgrades an App Bridge id token to an offline access token.
func (c *Client) ExchangeSessionToken(ctx context.Context, shop, idToken string) (AccessToken, error) {
	body := map[string]string{
		"client_id":            c.cfg.APIKey,
		"client_secret":        c.cfg.APISecret,
		"grant_type":           "urn:ietf:params:oauth:grant-type:token-exchange",
		"subject_token":        idToken,
		"subject_token_type":   "urn:ietf:params:oauth:token-type:id_token",
		"requested_token_type": "urn:shopify:params:oauth:token-type:offline-access-token",
	}
	var tok AccessToken
	_, err := c.send(c.http.R().SetContext(ctx).SetBody(body), http.MethodPost, c.origin(shop)+"/admin/oauth/access_token", &tok)
	return tok, err
}

// RegisterWebhook subscribes address to topic. An existing subscription counts as success.
func (c *Client) RegisterWebhook(ctx context.Context, shop, accessToken, topic, address string) error {
	body := map[string]any{
		"webhook": map[string]string{
			"topic":   topic,
			"address": address,
			"format":  "json",
		},
	}

	req := c.http.R().SetContext(ctx).SetHeader("X-Shopify-Access-Token", accessToken).SetBody(body)
	_, err := c.send(req, http.MethodPost, c.adminPath(shop, "webhooks.json"), nil)
	if vErr, ok := vendor.AsError(err); ok && vErr.Status == http.StatusUnprocessableEntity &&
		strings.Contains(strings.ToLower(string(vErr.Raw)), "already been taken") {
		return nil
	}
	return err
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) graphQL(ctx context.Context, shop, accessToken, query string, variables map[string]any, out any) error {
	req := c.http.R().SetContext(ctx).
		SetHeader("X-Shopify-Access-Token", accessToken).
		SetBody(map[string]any{"query": query, "variables": variables})

	var resp graphQLResponse
	if _, err := c.send(req, http.MethodPost, c.adminPath(shop, "graphql.json"), &resp); err != nil {
		return err
	}
	if len(resp.Errors) > 0 {
		return vendor.NewError(vendorName, http.StatusBadGateway, resp.Errors[0].Message, nil)
	}
	if out != nil {
		return json.Unmarshal(resp.Data, out)
	}
	return nil
}

const queryAppInstallation = `{ currentAppInstallation { id } }`

const mutationMetafieldsSet = `mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
  metafieldsSet(metafields: $metafields) {
    userErrors { field message }
  }
}`

// SetAppMetafield writes a JSON metafield on the app installation, readable by storefront extensions.
func (c *Client) SetAppMetafield(ctx context.Context, shop, accessToken, namespace, key string, value any) error {
	var installation struct {
		CurrentAppInstallation struct {
			ID string `json:"id"`
		} `json:"currentAppInstallation"`
	}
	if err := c.graphQL(ctx, shop, accessToken, queryAppInstallation, nil, &installation); err != nil {
		return err
	}

	encoded, err := json.Marshal(value)
	if err != nil {
		return err
	}

	variables := map[string]any{
		"metafields": []map[string]string{{
			"ownerId":   installation.CurrentAppInstallation.ID,
			"namespace": namespace,
			"key":       key,
			"type":      "json",
			"value":     string(encoded),
		}},
	}

	var result struct {
		MetafieldsSet struct {
			UserErrors []struct {
				Message string `json:"message"`
			} `json:"userErrors"`
		} `json:"metafieldsSet"`
	}
	if err := c.graphQL(ctx, shop, accessToken, mutationMetafieldsSet, variables, &result); err != nil {
		return err
	}
	if errs := result.MetafieldsSet.UserErrors; len(errs) > 0 {
		return vendor.NewError(vendorName, http.StatusUnprocessableEntity, errs[0].Message, nil)
	}
	return nil
}
