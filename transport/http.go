package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"
)

const (
	defaultRequestTimeout = 60 * time.Second
	defaultDialTimeout    = 5 * time.Second
	defaultTLSTimeout     = 5 * time.Second

	// how much of a non-2xx body is retained for diagnosis
	maxErrBody = 4 << 10
)

// HTTP is the default Transport: one POST per exchange, JSON request and
// response bodies.
type HTTP struct {
	client *http.Client
}

var _ Transport = (*HTTP)(nil)

// NewHTTP builds the default transport. Passing nil installs a client with
// dial, TLS handshake and overall request timeouts suited to interactive
// callers.
func NewHTTP(client *http.Client) *HTTP {
	if client == nil {
		client = &http.Client{
			Timeout: defaultRequestTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: defaultDialTimeout,
				}).DialContext,
				TLSHandshakeTimeout: defaultTLSTimeout,
			},
		}
	}
	return &HTTP{client: client}
}

// StatusError reports a non-2xx HTTP response.
type StatusError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("transport: unexpected status %s", e.Status)
}

func (h *HTTP) Exchange(ctx context.Context, endpoint string, body []byte, header http.Header) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	// caller headers win on conflict
	for k, vs := range header {
		req.Header.Del(k)
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return nil, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: b}
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("transport: decode response: %w", err)
	}
	return &out, nil
}
