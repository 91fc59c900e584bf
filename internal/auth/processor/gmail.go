package processor

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"outreach-server/internal/clients/shopify"
	"outreach-server/internal/clients/vendor"
	"outreach-server/internal/observability"
	"outreach-server/internal/security"

	"golang.org/x/oauth2"
)

const gmailStatePrefix = "gmail:"

func (p *AuthProcessor) gmailEnabled() bool {
	return p.config.Gmail.ClientID != "" && p.config.Gmail.ClientSecret != ""
}

// signGmailState binds the state parameter to shop so the callback needs no session.
func (p *AuthProcessor) signGmailState(shop, nonce string) string {
	payload := shop + ":" + nonce
	return payload + ":" + security.SignWebhook([]byte(payload), p.config.APISecret)
}

func (p *AuthProcessor) parseGmailState(state string) (shop, nonce string, ok bool) {
	parts := strings.SplitN(state, ":", 3)
	if len(parts) != 3 {
		return "", "", false
	}
	if !security.ConstantTimeEqual(parts[2], security.SignWebhook([]byte(parts[0]+":"+parts[1]), p.config.APISecret)) {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// GmailConnectURL returns the Google consent URL for linking the shop's mailbox.
func (p *AuthProcessor) GmailConnectURL(ctx context.Context, shop string) (string, error) {
	if !p.gmailEnabled() {
		return "", ErrGmailNotConfigured
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	nonce, err := randomNonce()
	if err != nil {
		return "", err
	}
	if p.statesEnabled() {
		if err := p.states.SaveOAuthState(ctx, nonce, gmailStatePrefix+shop); err != nil {
			p.logger.Error(ctx, "failed to save gmail oauth state", err)
			return "", err
		}
	}

	cfg := p.config.Gmail.OAuthConfig()
	return cfg.AuthCodeURL(p.signGmailState(shop, nonce), oauth2.AccessTypeOffline, oauth2.ApprovalForce), nil
}

// CompleteGmailConnect exchanges the Google authorization code and stores the token pair.
func (p *AuthProcessor) CompleteGmailConnect(ctx context.Context, state, code string) (string, error) {
	if !p.gmailEnabled() {
		return "", ErrGmailNotConfigured
	}
	if code == "" {
		return "", ErrMissingCode
	}

	shop, nonce, ok := p.parseGmailState(state)
	if !ok {
		return "", ErrInvalidState
	}
	if _, valid := shopify.NormalizeShop(shop); !valid {
		return "", ErrInvalidState
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	if p.statesEnabled() {
		stored, err := p.states.ConsumeOAuthState(ctx, nonce)
		if err != nil || stored != gmailStatePrefix+shop {
			p.logger.Warn(ctx, "gmail oauth state did not match")
			return "", ErrInvalidState
		}
	}

	token, err := p.config.Gmail.OAuthConfig().Exchange(ctx, code)
	if err != nil {
		p.logger.Error(ctx, "failed to exchange gmail authorization code", err)
		status := http.StatusBadGateway
		var rErr *oauth2.RetrieveError
		if errors.As(err, &rErr) && rErr.Response != nil {
			status = rErr.Response.StatusCode
		}
		return "", vendor.NewError("gmail", status, err.Error(), nil)
	}

	patch := map[string]any{"gmail_access_token": token.AccessToken}
	if token.RefreshToken != "" {
		patch["gmail_refresh_token"] = token.RefreshToken
	}
	if _, err := p.store.UpsertEmailSettings(ctx, shop, patch); err != nil {
		p.logger.Error(ctx, "failed to store gmail tokens", err)
		return "", err
	}

	p.logger.Info(ctx, "gmail mailbox connected")
	return shop, nil
}
