package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// defaultRole is assigned when the identity provider reports no role
const defaultRole = "USER"

// ErrMissingIDToken is returned when the token response carries no id_token
var ErrMissingIDToken = errors.New("token response has no id_token")

// GoogleConfig configures the identity-provider strategy
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	Issuer       string
	RedirectURL  string
}

// GoogleProvider runs the OpenID Connect authorization-code flow
type GoogleProvider struct {
	oauth    oauth2.Config
	verifier *oidc.IDTokenVerifier
}

// NewGoogleProvider discovers the issuer's endpoints and keys
func NewGoogleProvider(ctx context.Context, cfg GoogleConfig) (*GoogleProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init OIDC provider: %w", err)
	}
	verifier := provider.Verifier(&oidc.Config{ClientID: cfg.ClientID})
	return newGoogleProvider(cfg, provider.Endpoint(), verifier), nil
}

func newGoogleProvider(cfg GoogleConfig, endpoint oauth2.Endpoint, verifier *oidc.IDTokenVerifier) *GoogleProvider {
	return &GoogleProvider{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     endpoint,
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
		verifier: verifier,
	}
}

// Info returns the provider map entry
func (g *GoogleProvider) Info() ProviderInfo {
	return ProviderInfo{ID: ProviderGoogle, Name: "Google"}
}

// AuthCodeURL returns the consent page URL. Consent is always prompted and
// offline access is requested so a refresh token comes back.
func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("prompt", "consent"),
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("response_type", "code"),
	)
}

// Exchange swaps an authorization code for tokens and verifies the id_token
func (g *GoogleProvider) Exchange(ctx context.Context, code string) (*Account, *Profile, error) {
	token, err := g.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to exchange token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, nil, ErrMissingIDToken
	}

	idToken, err := g.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, nil, fmt.Errorf("ID token verification failed: %w", err)
	}

	var profile Profile
	if err := idToken.Claims(&profile); err != nil {
		return nil, nil, fmt.Errorf("failed to read ID token claims: %w", err)
	}

	account := &Account{
		Provider:          ProviderGoogle,
		Type:              "oidc",
		ProviderAccountID: idToken.Subject,
		AccessToken:       token.AccessToken,
		RefreshToken:      token.RefreshToken,
		TokenType:         token.TokenType,
		IDToken:           rawIDToken,
	}
	if !token.Expiry.IsZero() {
		account.ExpiresAt = token.Expiry.Unix()
	}
	if scope, ok := token.Extra("scope").(string); ok {
		account.Scope = scope
	}
	return account, &profile, nil
}

// MapProfile maps provider claims onto the internal user shape
func MapProfile(p Profile) User {
	image := p.Picture
	if image == "" {
		image = p.Image
	}
	role := p.Role
	if role == "" {
		role = defaultRole
	}
	return User{
		ID:            ID(p.Subject),
		Email:         p.Email,
		Name:          p.Name,
		Image:         image,
		EmailVerified: p.EmailVerified,
		Role:          role,
	}
}
