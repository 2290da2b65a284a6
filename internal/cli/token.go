package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/themizzi/shopcheck/internal/api"
)

// PrintToken fetches an access token for creds and writes it to out
func PrintToken(ctx context.Context, out io.Writer, baseURL string, creds api.Credentials) error {
	token, err := api.FetchToken(ctx, baseURL, creds)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "token_type: %s\n", token.Type())
	if !token.Expiry.IsZero() {
		fmt.Fprintf(out, "expires_in: %s\n", time.Until(token.Expiry).Round(time.Second))
	}
	fmt.Fprintf(out, "access_token: %s\n", token.AccessToken)
	return nil
}
