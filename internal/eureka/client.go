// Package eureka is a client for the upstream cohort REST API.
package eureka

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

const (
	defaultTimeout = 15 * time.Second
	maxErrorBody   = 64 << 10
)

// Client provides typed access to the upstream API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

// Option customises client instantiation.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client. The client is used as
// given; WithTimeout does not apply to it.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithTimeout sets the timeout of the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// New constructs a Client pointing at the provided API base URL.
func New(base string, opts ...Option) (*Client, error) {
	trimmed := strings.TrimSpace(base)
	if trimmed == "" {
		return nil, fmt.Errorf("empty api base url")
	}
	if !strings.HasPrefix(trimmed, "http://") && !strings.HasPrefix(trimmed, "https://") {
		trimmed = "http://" + trimmed
	}
	if _, err := url.Parse(trimmed); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	cli := &Client{
		baseURL: strings.TrimRight(trimmed, "/"),
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(cli)
	}
	if cli.httpClient == nil {
		cli.httpClient = &http.Client{Timeout: cli.timeout}
	}
	return cli, nil
}

// Records carrying expression trees bring their own codec: a tree nests one
// level per member, beyond what the generic codecs accept.
type (
	bodyEncoder interface {
		EncodeJSON() ([]byte, error)
	}
	bodyDecoder interface {
		DecodeJSON(r io.Reader) error
	}
)

func encodeBody(body any) ([]byte, error) {
	if e, ok := body.(bodyEncoder); ok {
		return e.EncodeJSON()
	}
	return json.Marshal(body)
}

func decodeBody(data []byte, v any) error {
	if d, ok := v.(bodyDecoder); ok {
		return d.DecodeJSON(bytes.NewReader(data))
	}
	return json.Unmarshal(data, v)
}

// response describes a successful upstream reply.
type response struct {
	Header http.Header
	Empty  bool
}

func (c *Client) do(ctx context.Context, method, path string, body, v any) (*response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reader io.Reader
	if body != nil {
		payload, err := encodeBody(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	endpoint := endpointLabel(path)
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		observe(method, endpoint, 0, time.Since(start))
		log.Error().Str("module", "eureka").Str("method", method).Str("path", path).Err(err).Msg("upstream request failed")
		return nil, &RemoteError{Message: serverDownMessage, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()
	observe(method, endpoint, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= http.StatusBadRequest {
		rerr := newRemoteError(resp)
		log.Warn().Str("module", "eureka").Str("method", method).Str("path", path).
			Int("status", resp.StatusCode).Str("message", rerr.Message).Msg("upstream returned error")
		return nil, rerr
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RemoteError{Status: resp.StatusCode, Message: serverDownMessage, Err: err}
	}

	out := &response{Header: resp.Header, Empty: len(bytes.TrimSpace(data)) == 0}
	if v == nil || out.Empty {
		return out, nil
	}
	if err := decodeBody(data, v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return out, nil
}

// endpointLabel reduces a request path to its collection name for metrics.
func endpointLabel(path string) string {
	p := strings.TrimLeft(path, "/")
	if i := strings.IndexAny(p, "/?"); i >= 0 {
		p = p[:i]
	}
	if p == "" {
		return "root"
	}
	return p
}

// lastPathSegment returns the final segment of a Location header value.
func lastPathSegment(location string) string {
	if u, err := url.Parse(location); err == nil {
		location = u.Path
	}
	location = strings.TrimRight(location, "/")
	if i := strings.LastIndex(location, "/"); i >= 0 {
		location = location[i+1:]
	}
	if unescaped, err := url.PathUnescape(location); err == nil {
		return unescaped
	}
	return location
}
