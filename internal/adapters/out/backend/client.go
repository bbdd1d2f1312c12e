// Package backend is the HTTP client of the remote order backend. It
// implements ports.OrderBackend.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orderdesk/internal/core/domain/model/board"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultTimeout = 15 * time.Second

	maxErrorBody = 4 << 10
	webhookPath  = "/api/webhook/shopify"
)

// errorText reduces error pages, such as a proxy's HTML 502, to their text
// before they end up in alerts.
var errorText = bluemonday.StrictPolicy()

// Client talks JSON to the order backend. Every call is bounded by the
// client timeout in addition to the caller's context.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
	now     func() time.Time
}

// NewClient builds a client for baseURL, e.g. "http://localhost:8001". A
// non-positive timeout selects DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger.With("component", "order_backend"),
		now:     time.Now,
	}
}

// WebhookURL is where the upstream platform delivers new orders.
func (c *Client) WebhookURL() string {
	return c.baseURL + webhookPath
}

// FetchOrders returns every order the backend lists, in its order. Rows
// without an order_id are skipped and logged.
func (c *Client) FetchOrders(ctx context.Context) ([]*order.Order, error) {
	var payload ordersPayload
	if err := c.do(ctx, http.MethodGet, []string{"api", "orders"}, nil, &payload); err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(payload.Orders))
	for i, p := range payload.Orders {
		o, err := order.RestoreOrder(p.toSnapshot())
		if err != nil {
			c.logger.WarnContext(ctx, "Skipping malformed order", "index", i, "id", p.ID, "error", err)
			continue
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (c *Client) FetchStats(ctx context.Context) (board.Stats, error) {
	var payload statsPayload
	if err := c.do(ctx, http.MethodGet, []string{"api", "orders", "stats"}, nil, &payload); err != nil {
		return board.Stats{}, err
	}
	return board.NewStats(payload.Stats), nil
}

func (c *Client) Sync(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, []string{"api", "orders", "sync"}, nil, nil)
}

// UpdateStatus stamps updated_at with the time the request is issued.
func (c *Client) UpdateStatus(ctx context.Context, id kernel.OrderID, status order.Status) error {
	body := statusUpdatePayload{
		OrderID:   id.String(),
		Status:    status.String(),
		UpdatedAt: c.now().UTC().Format(time.RFC3339),
	}
	return c.do(ctx, http.MethodPut, []string{"api", "orders", orderSegment(id), "status"}, body, nil)
}

func (c *Client) UpdateNote(ctx context.Context, id kernel.OrderID, note string) error {
	body := noteUpdatePayload{OrderID: id.String(), Note: note}
	return c.do(ctx, http.MethodPut, []string{"api", "orders", orderSegment(id), "note"}, body, nil)
}

func (c *Client) Delete(ctx context.Context, id kernel.OrderID) error {
	return c.do(ctx, http.MethodDelete, []string{"api", "orders", orderSegment(id)}, nil, nil)
}

func (c *Client) ClearDemo(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, []string{"api", "orders", "demo", "clear"}, nil, nil)
}

func (c *Client) Health(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, []string{"api", "health"}, nil, nil)
}

// orderSegment escapes id as a single path segment. JoinPath takes its
// elements as already escaped, so a slash in an id stays inside the segment.
func orderSegment(id kernel.OrderID) string {
	return url.PathEscape(id.String())
}

// do sends one request. Segments are escaped path elements. A nil in skips
// the body; a nil out discards the response body.
func (c *Client) do(ctx context.Context, method string, segments []string, in, out any) error {
	endpoint, err := url.JoinPath(c.baseURL, segments...)
	if err != nil {
		return fmt.Errorf("build %s url: %w", strings.Join(segments, "/"), err)
	}

	var body io.Reader
	if in != nil {
		payload, marshalErr := json.Marshal(in)
		if marshalErr != nil {
			return marshalErr
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrTransport, method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RejectedError{
			Method:     method,
			Path:       req.URL.Path,
			StatusCode: resp.StatusCode,
			Detail:     drainError(resp.Body),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %w", ErrTransport, method, req.URL.Path, err)
	}
	return nil
}

func drainError(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}
	var payload errorPayload
	if json.Unmarshal(raw, &payload) == nil {
		if reason := payload.reason(); reason != "" {
			return reason
		}
	}
	return strings.Join(strings.Fields(html.UnescapeString(errorText.Sanitize(string(raw)))), " ")
}
