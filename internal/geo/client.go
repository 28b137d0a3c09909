package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ipwhere/ipwhere/internal/models"
)

type Client struct {
	client  *http.Client
	baseURL string
}

// New creates a geolocation client querying baseURL.
// An empty baseURL is valid and means same-origin relative requests.
func New(client *http.Client, baseURL string) *Client {
	return &Client{
		client:  client,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Lookup resolves the given address to geolocation data using
// the remote geolocation service. On a rejection by the remote
// service, the returned error message is the normalized message
// from [ResolveErrorMessage].
func (c *Client) Lookup(ctx context.Context, address string) (
	result models.LookupResult, err error) {
	lookupURL := c.baseURL + "/geo?ip=" + url.QueryEscape(address)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return result, fmt.Errorf("creating request: %w", err)
	}

	response, err := c.client.Do(request)
	if err != nil {
		return result, err
	}

	body, err := io.ReadAll(response.Body)
	_ = response.Body.Close()
	if err != nil {
		return result, fmt.Errorf("reading response body: %w", err)
	}

	ok := response.StatusCode >= http.StatusOK &&
		response.StatusCode < http.StatusMultipleChoices
	if !ok {
		return result, &RejectionError{
			StatusCode: response.StatusCode,
			Message:    ResolveErrorMessage(response.StatusCode, body),
		}
	}

	err = json.Unmarshal(body, &result)
	if err != nil {
		return result, fmt.Errorf("decoding response body: %w", err)
	}

	return result, nil
}
