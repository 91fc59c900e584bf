// Package gmail copies inbound replies into a merchant's Gmail inbox.
package gmail

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"outreach-server/internal/clients/vendor"

	"github.com/emersion/go-message/mail"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const vendorName = "gmail"

// ErrMailAuth means the mailbox rejected a freshly refreshed token.
var ErrMailAuth = errors.New("gmail authorization failed after token refresh")

// Config identifies the Google OAuth app.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// TokenURL and Endpoint override Google's defaults; empty means production.
	TokenURL string
	Endpoint string
}

// OAuthConfig is the consent/exchange configuration for connecting a mailbox.
func (c Config) OAuthConfig() *oauth2.Config {
	endpoint := google.Endpoint
	if c.TokenURL != "" {
		endpoint.TokenURL = c.TokenURL
	}
	return &oauth2.Config{
		ClientID:     c.ClientID,
		ClientSecret: c.ClientSecret,
		RedirectURL:  c.RedirectURL,
		Endpoint:     endpoint,
		Scopes:       []string{gmailapi.GmailInsertScope},
	}
}

type Client struct {
	cfg          Config
	accessToken  string
	refreshToken string
}

func New(cfg Config, accessToken, refreshToken string) *Client {
	return &Client{cfg: cfg, accessToken: accessToken, refreshToken: refreshToken}
}

type Message struct {
	FromName  string
	FromEmail string
	To        string
	Subject   string
	TextBody  string
	HTMLBody  string
	Date      time.Time
}

type InsertResult struct {
	MessageID string
	// RefreshedAccessToken is set when the stored token was rotated and must be persisted.
	RefreshedAccessToken string
}

// InsertMessage places msg in the inbox as unread. A 401 triggers one token
// refresh and one retry.
func (c *Client) InsertMessage(ctx context.Context, msg Message) (InsertResult, error) {
	raw, err := BuildRawMessage(msg)
	if err != nil {
		return InsertResult{}, fmt.Errorf("failed to build message: %w", err)
	}

	id, err := c.insert(ctx, c.accessToken, raw)
	if err == nil {
		return InsertResult{MessageID: id}, nil
	}
	if !isUnauthorized(err) {
		return InsertResult{}, toVendorError(err)
	}

	token, err := c.refresh(ctx)
	if err != nil {
		return InsertResult{}, err
	}

	id, err = c.insert(ctx, token, raw)
	if err != nil {
		if isUnauthorized(err) {
			return InsertResult{}, ErrMailAuth
		}
		return InsertResult{}, toVendorError(err)
	}
	c.accessToken = token
	return InsertResult{MessageID: id, RefreshedAccessToken: token}, nil
}

func (c *Client) insert(ctx context.Context, accessToken string, raw []byte) (string, error) {
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}))
	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if c.cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(c.cfg.Endpoint))
	}

	svc, err := gmailapi.NewService(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to create gmail service: %w", err)
	}

	message := &gmailapi.Message{
		Raw:      base64.URLEncoding.EncodeToString(raw),
		LabelIds: []string{"INBOX", "UNREAD"},
	}
	inserted, err := svc.Users.Messages.Insert("me", message).InternalDateSource("dateHeader").Context(ctx).Do()
	if err != nil {
		return "", err
	}
	return inserted.Id, nil
}

func (c *Client) refresh(ctx context.Context) (string, error) {
	if c.refreshToken == "" {
		return "", ErrMailAuth
	}

	tok, err := c.cfg.OAuthConfig().TokenSource(ctx, &oauth2.Token{RefreshToken: c.refreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			return "", vendor.NewError(vendorName, retrieveErr.Response.StatusCode, "token refresh failed", retrieveErr.Body)
		}
		return "", fmt.Errorf("failed to refresh gmail token: %w", err)
	}
	return tok.AccessToken, nil
}

func isUnauthorized(err error) bool {
	var gErr *googleapi.Error
	return errors.As(err, &gErr) && gErr.Code == http.StatusUnauthorized
}

func toVendorError(err error) error {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return vendor.NewError(vendorName, gErr.Code, gErr.Message, []byte(gErr.Body))
	}
	return vendor.NewError(vendorName, http.StatusBadGateway, err.Error(), nil)
}

// BuildRawMessage renders msg as an RFC 5322 message, multipart/alternative when HTML is present.
func BuildRawMessage(msg Message) ([]byte, error) {
	var h mail.Header
	date := msg.Date
	if date.IsZero() {
		date = time.Now()
	}
	h.SetDate(date)
	h.SetAddressList("From", []*mail.Address{{Name: msg.FromName, Address: msg.FromEmail}})
	h.SetAddressList("To", []*mail.Address{{Address: msg.To}})
	h.SetSubject(msg.Subject)
	if err := h.GenerateMessageID(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if msg.HTMLBody == "" {
		h.Set("Content-Type", "text/plain; charset=utf-8")
		w, err := mail.CreateSingleInlineWriter(&buf, h)
		if err != nil {
			return nil, err
		}
		if _, err := io.WriteString(w, msg.TextBody); err != nil {
			return nil, err
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}

	w, err := mail.CreateInlineWriter(&buf, h)
	if err != nil {
		return nil, err
	}
	if err := writePart(w, "text/plain", msg.TextBody); err != nil {
		return nil, err
	}
	if err := writePart(w, "text/html", msg.HTMLBody); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writePart(w *mail.InlineWriter, contentType, body string) error {
	var ph mail.InlineHeader
	ph.Set("Content-Type", contentType+"; charset=utf-8")
	pw, err := w.CreatePart(ph)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(pw, body); err != nil {
		return err
	}
	return pw.Close()
}
