package api

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// ClientCredentials returns the client_credentials configuration for creds
// against the token endpoint under baseURL.
func ClientCredentials(baseURL string, creds Credentials) *clientcredentials.Config {
	return &clientcredentials.Config{
		ClientID:     creds.ClientID,
		ClientSecret: creds.ClientSecret,
		TokenURL:     NewClient(baseURL, nil).url("access_token"),
		Scopes:       creds.Scopes,
		AuthStyle:    oauth2.AuthStyleInParams,
	}
}

// FetchToken requests a token outside of any browser session
func FetchToken(ctx context.Context, baseURL string, creds Credentials) (*oauth2.Token, error) {
	token, err := ClientCredentials(baseURL, creds).Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token: %w", err)
	}
	return token, nil
}
