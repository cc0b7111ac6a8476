// Package orderapi is the HTTP client for the order and payment
// endpoints used by the checkout service.
package orderapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/canso2044/developer-store/internal/models"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Client implements service.OrderGateway over HTTP. A returned error
// always means the request never completed; any completed exchange is
// reported through the parsed response body instead, because the body's
// own success flag is authoritative.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (c *Client) postJSON(ctx context.Context, path string, payload any) (*http.Response, error) {

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	return c.http.Do(req)
}

// SubmitOrder posts the order and decodes the body whatever the status
// code was: 201, 400, 402 and 500 all carry the same result shape.
func (c *Client) SubmitOrder(ctx context.Context, order *models.OrderSubmission) (*models.OrderResult, error) {

	resp, err := c.postJSON(ctx, "/api/orders", order)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	return &result, nil
}

// GetOrderStatus returns nil without error on 404, fails on any other
// non-OK status and decodes the status object otherwise.
func (c *Client) GetOrderStatus(ctx context.Context, orderID string) (*models.OrderStatusInfo, error) {

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/orders/"+orderID, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, nil
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("failed to fetch order status: %s", resp.Status)
	}

	var status models.OrderStatusInfo
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("failed to decode order status: %w", err)
	}

	return &status, nil
}

func (c *Client) ProcessCreditCard(ctx context.Context, payment *models.PaymentData) (*models.OrderResult, error) {

	resp, err := c.postJSON(ctx, "/api/payments/creditcard", payment)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result models.OrderResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode payment response: %w", err)
	}

	return &result, nil
}
