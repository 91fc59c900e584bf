package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
)

// VerifyQueryHMAC checks the hex HMAC-SHA256 Shopify attaches to OAuth redirects.
// The message is every query parameter except hmac and signature, sorted by key
// and joined as k=v pairs with '&'.
func VerifyQueryHMAC(query url.Values, secret string) bool {
	given := query.Get("hmac")
	if given == "" || secret == "" {
		return false
	}

	expected := SignQuery(query, secret)
	return hmac.Equal([]byte(strings.ToLower(given)), []byte(expected))
}

// SignQuery computes the hex HMAC over the canonical form of query.
func SignQuery(query url.Values, secret string) string {
	keys := make([]string, 0, len(query))
	for k := range query {
		if k == "hmac" || k == "signature" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strings.Join(query[k], ","))
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strings.Join(parts, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookHMAC checks the base64 HMAC-SHA256 of a raw webhook body
// (X-Shopify-Hmac-Sha256).
func VerifyWebhookHMAC(body []byte, header, secret string) bool {
	if header == "" || secret == "" {
		return false
	}
	return hmac.Equal([]byte(header), []byte(SignWebhook(body, secret)))
}

// SignWebhook computes the base64 HMAC of body.
func SignWebhook(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ConstantTimeEqual compares two shared secrets.
func ConstantTimeEqual(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
