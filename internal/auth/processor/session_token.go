package processor

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"outreach-server/internal/clients/shopify"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims are the claims of an App Bridge session token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Dest string `json:"dest"`
	Sid  string `json:"sid,omitempty"`
}

// Shop is the host of the dest claim.
func (c SessionClaims) Shop() string {
	u, err := url.Parse(c.Dest)
	if err != nil {
		return ""
	}
	return strings.ToLower(u.Host)
}

// VerifySessionToken validates an HS256 session token signed with the app secret
// and addressed to the app's API key.
func (p *AuthProcessor) VerifySessionToken(token string) (SessionClaims, error) {
	var claims SessionClaims
	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(p.config.APISecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(p.config.APIKey),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(5*time.Second),
	)
	if err != nil {
		return SessionClaims{}, err
	}
	if !t.Valid {
		return SessionClaims{}, ErrInvalidSessionToken
	}

	if _, ok := shopify.NormalizeShop(claims.Shop()); !ok {
		return SessionClaims{}, fmt.Errorf("dest %q is not a shop domain", claims.Dest)
	}
	return claims, nil
}
