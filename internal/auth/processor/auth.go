package processor

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"

	"outreach-server/internal/clients/gmail"
	"outreach-server/internal/clients/shopify"
	"outreach-server/internal/observability"
	"outreach-server/internal/security"
	"outreach-server/internal/store"
)

var (
	ErrInvalidShop         = errors.New("invalid shop domain")
	ErrInvalidHMAC         = errors.New("invalid hmac signature")
	ErrInvalidState        = errors.New("invalid or expired oauth state")
	ErrMissingCode         = errors.New("authorization code is missing")
	ErrMissingTenant       = errors.New("missing shop identity")
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrInvalidAPISecret    = errors.New("invalid api secret")
	ErrGmailNotConfigured  = errors.New("gmail forwarding is not configured on this server")
	ErrFailedInstall       = errors.New("failed to complete installation")
)

// ReauthorizationError means the shop has no usable offline token and must go
// through the install flow again.
type ReauthorizationError struct {
	Shop string
	URL  string
}

func (e *ReauthorizationError) Error() string {
	return "reauthorization required for " + e.Shop
}

// Webhook topics registered on every install.
var webhookTopics = map[string]string{
	"orders/create":   "/webhooks/orders/create",
	"app/uninstalled": "/webhooks/app/uninstalled",
}

type Config struct {
	APIKey       string
	APISecret    string
	AppURL       string
	SharedSecret string
	Gmail        gmail.Config
}

type AuthProcessor struct {
	store   AuthStore
	shopify ShopifyClient
	states  StateStore
	cipher  TokenCipher
	config  Config
	logger  *observability.Logger
}

func New(store AuthStore, shopify ShopifyClient, states StateStore, cipher TokenCipher, config Config,
	logger *observability.Logger) AuthProcessor {
	return AuthProcessor{
		store:   store,
		shopify: shopify,
		states:  states,
		cipher:  cipher,
		config:  config,
		logger:  logger,
	}
}

func randomNonce() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func (p *AuthProcessor) statesEnabled() bool {
	return p.states != nil && p.states.IsEnabled()
}

// ReauthorizeURL is where an embedded app is sent when the shop needs a fresh install.
func (p *AuthProcessor) ReauthorizeURL(shop string) string {
	return p.config.AppURL + "/api/auth/install?shop=" + url.QueryEscape(shop)
}

// InstallURL issues the OAuth consent URL for shop and remembers the state nonce.
func (p *AuthProcessor) InstallURL(ctx context.Context, rawShop string) (string, error) {
	shop, ok := shopify.NormalizeShop(rawShop)
	if !ok {
		return "", ErrInvalidShop
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	nonce, err := randomNonce()
	if err != nil {
		p.logger.Error(ctx, "failed to generate oauth state", err)
		return "", err
	}

	if p.statesEnabled() {
		if err := p.states.SaveOAuthState(ctx, nonce, shop); err != nil {
			p.logger.Error(ctx, "failed to save oauth state", err)
			return "", err
		}
	}

	return p.shopify.InstallURL(shop, nonce, p.config.AppURL+"/api/auth/callback"), nil
}

// CompleteInstall handles the signed OAuth callback and returns the installed shop.
func (p *AuthProcessor) CompleteInstall(ctx context.Context, query url.Values) (string, error) {
	if !security.VerifyQueryHMAC(query, p.config.APISecret) {
		return "", ErrInvalidHMAC
	}

	shop, ok := shopify.NormalizeShop(query.Get("shop"))
	if !ok {
		return "", ErrInvalidShop
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})

	code := query.Get("code")
	if code == "" {
		return "", ErrMissingCode
	}

	if p.statesEnabled() {
		stored, err := p.states.ConsumeOAuthState(ctx, query.Get("state"))
		if err != nil || stored != shop {
			p.logger.Warn(ctx, "oauth state did not match")
			return "", ErrInvalidState
		}
	}

	token, err := p.shopify.ExchangeCode(ctx, shop, code)
	if err != nil {
		p.logger.Error(ctx, "failed to exchange authorization code", err)
		return "", err
	}

	if err := p.storeOfflineToken(ctx, shop, token); err != nil {
		return "", ErrFailedInstall
	}

	p.logger.Info(ctx, "shop installed")
	return shop, nil
}

// storeOfflineToken persists token, creates default settings and registers webhooks.
// Webhook registration is best-effort.
func (p *AuthProcessor) storeOfflineToken(ctx context.Context, shop string, token shopify.AccessToken) error {
	sealed, err := p.cipher.Encrypt(token.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to encrypt access token", err)
		return err
	}
	if err := p.store.SaveSession(ctx, shop, sealed, token.Scope); err != nil {
		p.logger.Error(ctx, "failed to save session", err)
		return err
	}
	if _, err := p.store.EnsureShopSettings(ctx, shop); err != nil {
		p.logger.Error(ctx, "failed to create default settings", err)
		return err
	}

	for topic, path := range webhookTopics {
		if err := p.shopify.RegisterWebhook(ctx, shop, token.AccessToken, topic, p.config.AppURL+path); err != nil {
			p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "topic", Value: topic}),
				"failed to register webhook", err)
		}
	}
	return nil
}

// AccessToken returns the decrypted offline token for shop.
func (p *AuthProcessor) AccessToken(ctx context.Context, shop string) (string, error) {
	session, err := p.store.GetSession(ctx, shop)
	if err != nil {
		return "", err
	}
	token, err := p.cipher.Decrypt(session.AccessToken)
	if err != nil {
		p.logger.Error(ctx, "failed to decrypt access token", err)
		return "", fmt.Errorf("failed to decrypt access token: %w", err)
	}
	return token, nil
}

// TenantRequest carries the identity material found on an API request.
type TenantRequest struct {
	BearerToken string
	Shop        string
	APISecret   string
}

// ResolveTenant authenticates an API request and returns its shop. A valid session
// token for a shop without a stored offline token is exchanged on the spot.
func (p *AuthProcessor) ResolveTenant(ctx context.Context, req TenantRequest) (string, error) {
	if req.BearerToken != "" {
		claims, err := p.VerifySessionToken(req.BearerToken)
		if err != nil {
			p.logger.InfoWithError(ctx, "rejected session token", err)
			return "", ErrInvalidSessionToken
		}
		shop := claims.Shop()
		ctx = observability.WithFields(ctx, observability.Field{Key: "shop", Value: shop})
		return shop, p.ensureOfflineToken(ctx, shop, req.BearerToken)
	}

	if req.Shop == "" {
		return "", ErrMissingTenant
	}
	if p.config.SharedSecret == "" || !security.ConstantTimeEqual(req.APISecret, p.config.SharedSecret) {
		return "", ErrInvalidAPISecret
	}
	shop, ok := shopify.NormalizeShop(req.Shop)
	if !ok {
		return "", ErrInvalidShop
	}

	if _, err := p.store.GetSession(ctx, shop); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", &ReauthorizationError{Shop: shop, URL: p.ReauthorizeURL(shop)}
		}
		return "", err
	}
	return shop, nil
}

func (p *AuthProcessor) ensureOfflineToken(ctx context.Context, shop, idToken string) error {
	_, err := p.store.GetSession(ctx, shop)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return err
	}

	token, err := p.shopify.ExchangeSessionToken(ctx, shop, idToken)
	if err != nil {
		p.logger.Error(ctx, "failed to exchange session token", err)
		return &ReauthorizationError{Shop: shop, URL: p.ReauthorizeURL(shop)}
	}
	if err := p.storeOfflineToken(ctx, shop, token); err != nil {
		return err
	}

	p.logger.Info(ctx, "exchanged session token for offline token")
	return nil
}
