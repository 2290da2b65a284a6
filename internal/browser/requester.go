package browser

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/shopcheck/internal/api"
)

// Requester adapts a playwright request context to api.Requester
type Requester struct {
	request playwright.APIRequestContext
}

var _ api.Requester = (*Requester)(nil)

func (r *Requester) PostForm(url string, form map[string]string) (*api.Response, error) {
	fields := make(map[string]interface{}, len(form))
	for k, v := range form {
		fields[k] = v
	}
	resp, err := r.request.Post(url, playwright.APIRequestContextPostOptions{Form: fields})
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", url, translate(err))
	}
	return read(resp)
}

func (r *Requester) Delete(url string, headers map[string]string) (*api.Response, error) {
	resp, err := r.request.Delete(url, playwright.APIRequestContextDeleteOptions{Headers: headers})
	if err != nil {
		return nil, fmt.Errorf("DELETE %s: %w", url, translate(err))
	}
	return read(resp)
}

func read(resp playwright.APIResponse) (*api.Response, error) {
	defer resp.Dispose()

	body, err := resp.Body()
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return &api.Response{
		Status:  resp.Status(),
		Headers: resp.Headers(),
		Body:    body,
	}, nil
}
