// Package api exchanges client credentials for access tokens and calls the
// admin API of the shop under test.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

// Token exchange errors
var (
	ErrUnexpectedStatus      = errors.New("unexpected status code")
	ErrUnexpectedContentType = errors.New("unexpected content type")
	ErrMissingToken          = errors.New("access_token missing from response")
	ErrInvalidTokenType      = errors.New("token_type is not a string")
)

// Response is a fully read HTTP response
type Response struct {
	Status  int
	Headers map[string]string
	Body    []byte
}

// Header returns the value of the named header, matching case-insensitively
func (r *Response) Header(name string) (string, bool) {
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}

// Requester issues HTTP requests on behalf of a test session
type Requester interface {
	PostForm(url string, form map[string]string) (*Response, error)
	Delete(url string, headers map[string]string) (*Response, error)
}

// Credentials identify an API client
type Credentials struct {
	ClientID     string
	ClientSecret string
	Scopes       []string
}

// TokenResponse is the outcome of an access token request
type TokenResponse struct {
	Status      int
	ContentType string
	AccessToken string
	TokenType   string
	ExpiresIn   int

	hasToken         bool
	tokenTypeIsValid bool
}

// Validate checks the response is a successful JSON token grant
func (r *TokenResponse) Validate() error {
	if r.Status != http.StatusOK {
		return fmt.Errorf("%w: %d", ErrUnexpectedStatus, r.Status)
	}
	if !strings.Contains(r.ContentType, "application/json") {
		return fmt.Errorf("%w: %q", ErrUnexpectedContentType, r.ContentType)
	}
	if !r.hasToken || r.AccessToken == "" {
		return ErrMissingToken
	}
	if !r.tokenTypeIsValid {
		return ErrInvalidTokenType
	}
	return nil
}

// OAuth2Token converts the response into an oauth2 token
func (r *TokenResponse) OAuth2Token() *oauth2.Token {
	token := &oauth2.Token{
		AccessToken: r.AccessToken,
		TokenType:   r.TokenType,
	}
	if r.ExpiresIn > 0 {
		token.Expiry = time.Now().Add(time.Duration(r.ExpiresIn) * time.Second)
	}
	return token
}

// Client calls the admin API through a Requester
type Client struct {
	baseURL   string
	requester Requester
}

// NewClient creates a client rooted at baseURL
func NewClient(baseURL string, requester Requester) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &Client{baseURL: baseURL, requester: requester}
}

func (c *Client) url(path string) string {
	return c.baseURL + strings.TrimPrefix(path, "/")
}

// RequestAccessToken exchanges creds for an access token using the
// client_credentials grant. Transport failures are returned as errors; the
// content of the response is checked by TokenResponse.Validate.
func (c *Client) RequestAccessToken(creds Credentials) (*TokenResponse, error) {
	resp, err := c.requester.PostForm(c.url("access_token"), map[string]string{
		"client_id":     creds.ClientID,
		"client_secret": creds.ClientSecret,
		"grant_type":    "client_credentials",
		"scope":         strings.Join(creds.Scopes, " "),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request access token: %w", err)
	}

	token := &TokenResponse{Status: resp.Status}
	token.ContentType, _ = resp.Header("Content-Type")
	if resp.Status != http.StatusOK || !strings.Contains(token.ContentType, "application/json") {
		return token, nil
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if v, ok := body["access_token"]; ok {
		token.hasToken = true
		token.AccessToken, _ = v.(string)
	}
	token.TokenType, token.tokenTypeIsValid = body["token_type"].(string)
	if v, ok := body["expires_in"].(float64); ok {
		token.ExpiresIn = int(v)
	}

	return token, nil
}

// DeleteCustomerGroup deletes a customer group and returns the response status
func (c *Client) DeleteCustomerGroup(id int, accessToken string) (int, error) {
	resp, err := c.requester.Delete(c.url(fmt.Sprintf("customers/group/%d", id)), bearer(accessToken))
	if err != nil {
		return 0, fmt.Errorf("failed to delete customer group %d: %w", id, err)
	}
	return resp.Status, nil
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
