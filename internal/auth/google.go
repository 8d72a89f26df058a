package auth

import (
	"context"
	"fmt"

	apperrors "cricauction-backend/internal/errors"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// Profile is the verified identity returned by the provider
type Profile struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// IdentityProvider drives the authorization code flow against an external provider
type IdentityProvider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*Profile, error)
}

// GoogleProvider verifies Google sign-ins through OpenID Connect
type GoogleProvider struct {
	*oidc.Provider
	oauth2.Config
}

// NewGoogleProvider discovers the issuer's endpoints and builds the oauth2 config
func NewGoogleProvider(ctx context.Context, cfg ProviderConfig, redirectURL string) (*GoogleProvider, error) {
	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to discover oidc provider %s: %w", cfg.Issuer, err)
	}

	return &GoogleProvider{
		Provider: provider,
		Config: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  redirectURL,
			Scopes:       []string{oidc.ScopeOpenID, "email", "profile"},
		},
	}, nil
}

// AuthCodeURL returns the consent page URL for state
func (g *GoogleProvider) AuthCodeURL(state string) string {
	return g.Config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for a verified profile
func (g *GoogleProvider) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := g.Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, apperrors.ErrMissingIDToken
	}

	idToken, err := g.Verifier(&oidc.Config{ClientID: g.ClientID}).Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("failed to verify id token: %w", err)
	}

	var profile Profile
	if err := idToken.Claims(&profile); err != nil {
		return nil, fmt.Errorf("invalid id token claims: %w", err)
	}
	if profile.Subject == "" {
		profile.Subject = idToken.Subject
	}
	return &profile, nil
}
