package inventory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// defaultTimeout bounds a single fetch when the caller does not set one.
const defaultTimeout = 10 * time.Second

// FetchError is the single failure signal for a product fetch. Not-found,
// transport errors, and malformed payloads all collapse into it; callers
// render it as "product not found or API error" and do not distinguish the
// causes. StatusCode is zero when the request never got a response.
type FetchError struct {
	ProductID  string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching product %s: API returned status %d", e.ProductID, e.StatusCode)
	}
	return fmt.Sprintf("fetching product %s: %v", e.ProductID, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Client fetches product records from the inventory API.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the given base URL. A zero timeout falls
// back to the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Product fetches the maintenance record for the given product ID from
// GET {base}/api/products/{id}. Every failure mode returns a *FetchError.
func (c *Client) Product(ctx context.Context, productID string) (*ProductRecord, error) {
	url := fmt.Sprintf("%s/api/products/%s", c.baseURL, productID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{ProductID: productID, Err: err}
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{ProductID: productID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{ProductID: productID, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{
			ProductID:  productID,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %d: %.200s", resp.StatusCode, body),
		}
	}

	var rec ProductRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, &FetchError{ProductID: productID, Err: fmt.Errorf("decoding response: %w", err)}
	}

	return &rec, nil
}
