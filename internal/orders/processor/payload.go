package processor

import (
	"bytes"
	"encoding/json"
	"strings"

	"outreach-server/internal/clients/attribution"
)

// Attribute names that carry exposure ids on a storefront order.
const (
	NoteExposureIDs         = "_oce_exposure_ids"
	NoteExposureIDsFallback = "oce_exposure_ids"
	LineItemExposureID      = "_oce_exposure_id"
)

// Order is the subset of the orders/create webhook payload used for attribution.
type Order struct {
	ID             json.Number     `json:"id"`
	Name           string          `json:"name"`
	OrderNumber    json.Number     `json:"order_number"`
	TotalPrice     json.Number     `json:"total_price"`
	Currency       string          `json:"currency"`
	Email          string          `json:"email"`
	CreatedAt      string          `json:"created_at"`
	NoteAttributes []Attribute     `json:"note_attributes"`
	LineItems      []OrderLineItem `json:"line_items"`
}

type OrderLineItem struct {
	ProductID  json.Number `json:"product_id"`
	VariantID  json.Number `json:"variant_id"`
	Title      string      `json:"title"`
	Quantity   int         `json:"quantity"`
	Price      json.Number `json:"price"`
	Properties []Attribute `json:"properties"`
}

// Attribute is a name/value pair. Values arrive as strings, numbers or arrays
// and are kept raw so numeric ids keep every digit.
type Attribute struct {
	Name  string          `json:"name"`
	Value json.RawMessage `json:"value"`
}

func (a Attribute) text() string {
	return rawText(a.Value)
}

// rawText renders a JSON value as an id: strings unquoted, numbers verbatim,
// anything else compacted.
func rawText(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}

// ExposureIDs collects exposure ids from the note attributes and line item
// properties, deduplicated in first-seen order.
func ExposureIDs(order Order) []string {
	var ids []string
	for _, attr := range order.NoteAttributes {
		if attr.Name == NoteExposureIDs || attr.Name == NoteExposureIDsFallback {
			ids = append(ids, parseExposureValue(attr.text())...)
		}
	}
	for _, item := range order.LineItems {
		for _, prop := range item.Properties {
			if prop.Name == LineItemExposureID {
				if id := strings.TrimSpace(prop.text()); id != "" {
					ids = append(ids, id)
				}
			}
		}
	}
	return dedupe(ids)
}

// parseExposureValue accepts a JSON array, a comma separated list or a single id.
func parseExposureValue(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	if strings.HasPrefix(value, "[") {
		var list []json.RawMessage
		if err := json.Unmarshal([]byte(value), &list); err == nil {
			out := make([]string, 0, len(list))
			for _, v := range list {
				if id := strings.TrimSpace(rawText(v)); id != "" {
					out = append(out, id)
				}
			}
			return out
		}
	}

	if strings.Contains(value, ",") {
		var out []string
		for _, part := range strings.Split(value, ",") {
			if id := strings.TrimSpace(part); id != "" {
				out = append(out, id)
			}
		}
		return out
	}

	return []string{value}
}

func dedupe(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func number(n json.Number) float64 {
	f, _ := n.Float64()
	return f
}

// orderNumber prefers the display name ("#1001") over the bare sequence number.
func (o Order) orderNumber() string {
	if o.Name != "" {
		return o.Name
	}
	return o.OrderNumber.String()
}

func (o Order) attributionOrder(shop string, exposureIDs []string) attribution.Order {
	items := make([]attribution.LineItem, 0, len(o.LineItems))
	for _, item := range o.LineItems {
		items = append(items, attribution.LineItem{
			ProductID: item.ProductID.String(),
			VariantID: item.VariantID.String(),
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     number(item.Price),
		})
	}

	return attribution.Order{
		Shop:          shop,
		OrderID:       o.ID.String(),
		OrderNumber:   o.orderNumber(),
		TotalPrice:    number(o.TotalPrice),
		Currency:      o.Currency,
		CustomerEmail: o.Email,
		CreatedAt:     o.CreatedAt,
		ExposureIDs:   exposureIDs,
		LineItems:     items,
	}
}
