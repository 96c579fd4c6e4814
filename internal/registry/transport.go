package registry

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Transport defaults.
const (
	DefaultTimeout          = 30 * time.Second
	DefaultMaxResponseBytes = 8 << 20 // 8MB
)

// Transport performs a single GET against a resolved registry URL and
// returns the whole response body.
type Transport interface {
	Get(ctx context.Context, url string) ([]byte, error)
}

// TransportOptions configures the HTTP transport.
type TransportOptions struct {
	Timeout          time.Duration // HTTP client timeout (default 30s)
	MaxResponseBytes int64         // response size limit (default 8MB)
	UserAgent        string
}

// HTTPTransport is the net/http implementation of Transport. The proxy and
// its credentials come from the environment (HTTP_PROXY, HTTPS_PROXY,
// NO_PROXY). Connection reuse is left to the underlying http.Client.
type HTTPTransport struct {
	client           *http.Client
	maxResponseBytes int64
	userAgent        string
}

// NewHTTPTransport creates a transport. Zero-value or negative fields in opts
// receive defaults.
func NewHTTPTransport(opts TransportOptions) *HTTPTransport {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxResponseBytes <= 0 {
		opts.MaxResponseBytes = DefaultMaxResponseBytes
	}

	base := http.DefaultTransport.(*http.Transport).Clone()
	base.Proxy = http.ProxyFromEnvironment

	return &HTTPTransport{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: base,
		},
		maxResponseBytes: opts.MaxResponseBytes,
		userAgent:        opts.UserAgent,
	}
}

// Get issues the request. Any failure is returned as a *FetchError; a 2xx
// response with an empty body returns an empty slice and no error.
func (t *HTTPTransport) Get(ctx context.Context, url string) ([]byte, error) {
	ctx, span := otel.Tracer("cadastre/registry").Start(ctx, "registry.get")
	defer span.End()
	span.SetAttributes(attribute.String("http.url", url))

	body, status, err := t.get(ctx, url)
	if status != 0 {
		span.SetAttributes(attribute.Int("http.status_code", status))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, string(CategoryOf(err)))
		return nil, err
	}
	span.SetAttributes(attribute.Int("http.response_size", len(body)))
	span.SetStatus(codes.Ok, "")
	return body, nil
}

func (t *HTTPTransport) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, &FetchError{Category: CategoryBadRequest, URL: url, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if t.userAgent != "" {
		req.Header.Set("User-Agent", t.userAgent)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, 0, &FetchError{Category: errorCategory(err), URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, t.maxResponseBytes))
		return nil, resp.StatusCode, &FetchError{
			Category: statusCategory(resp.StatusCode),
			URL:      url,
			Status:   resp.StatusCode,
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, t.maxResponseBytes+1))
	if err != nil {
		return nil, resp.StatusCode, &FetchError{Category: errorCategory(err), URL: url, Err: err}
	}
	if int64(len(body)) > t.maxResponseBytes {
		return nil, resp.StatusCode, &FetchError{
			Category: CategoryTooLarge,
			URL:      url,
			Err:      fmt.Errorf("response exceeds %d bytes", t.maxResponseBytes),
		}
	}
	return body, resp.StatusCode, nil
}
