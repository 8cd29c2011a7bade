// Package oauth implements the Google sign-in redirect flow.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"cvcraft-backend/internal/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type googleProvider struct {
	config      *oauth2.Config
	userInfoURL string
}

func NewGoogleProvider(cfg GoogleConfig) domain.OAuthProvider {
	return newGoogleProvider(cfg, google.Endpoint, googleUserInfoURL)
}

// NewGoogleProviderWithEndpoint points the flow at another token and
// userinfo server.
func NewGoogleProviderWithEndpoint(cfg GoogleConfig, endpoint oauth2.Endpoint, userInfoURL string) domain.OAuthProvider {
	return newGoogleProvider(cfg, endpoint, userInfoURL)
}

func newGoogleProvider(cfg GoogleConfig, endpoint oauth2.Endpoint, userInfoURL string) *googleProvider {
	return &googleProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: endpoint,
		},
		userInfoURL: userInfoURL,
	}
}

func (p *googleProvider) Name() string { return "google" }

func (p *googleProvider) AuthCodeURL(state string) string {
	return p.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (p *googleProvider) Exchange(ctx context.Context, code string) (*domain.OAuthUser, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := p.config.Client(ctx, token).Get(p.userInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info request returned %d", resp.StatusCode)
	}

	var user domain.OAuthUser
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed decoding user info: %w", err)
	}
	if user.ID == "" {
		return nil, fmt.Errorf("user info has no id")
	}
	return &user, nil
}
