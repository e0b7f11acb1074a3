package auth

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Scopes required by the two Google APIs this tool talks to.
var scopes = []string{
	"https://www.googleapis.com/auth/adwords",
	"https://www.googleapis.com/auth/spreadsheets",
}

// Config holds the OAuth2 client credentials.
type Config struct {
	// ClientID is the OAuth2 client id.
	ClientID string `mapstructure:"client_id" default:""`
	// ClientSecret is the OAuth2 client secret.
	ClientSecret string `mapstructure:"client_secret" default:""`
	// RefreshToken is the long-lived refresh token minted for the account.
	RefreshToken string `mapstructure:"refresh_token" default:""`
}

// TokenSource returns a self-refreshing token source for the configured
// credentials.
func TokenSource(ctx context.Context, cfg Config) (oauth2.TokenSource, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, fmt.Errorf("incomplete oauth configuration: client id, client secret and refresh token are required")
	}

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       scopes,
	}

	return conf.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken}), nil
}
