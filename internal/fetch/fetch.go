// Package fetch retrieves remote token sources over HTTP.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/jmylchreest/wex/internal/security"
	"github.com/jmylchreest/wex/internal/version"
)

const (
	// UserAgentName prefixes the User-Agent header.
	UserAgentName = "wex"

	// DefaultTimeout applies when Options.Timeout is zero.
	DefaultTimeout = 10 * time.Second

	// DefaultMaxSize applies when Options.MaxSize is zero.
	DefaultMaxSize = 8 << 20
)

// ErrStatus is wrapped by errors for non-200 responses.
var ErrStatus = errors.New("unexpected HTTP status")

// Options configures a request.
type Options struct {
	Timeout time.Duration
	Headers map[string]string
	// MaxSize caps the response body.
	MaxSize int64
	// Client overrides the HTTP client. Timeout is ignored when set.
	Client *http.Client
}

// IsURL reports whether s is an absolute http or https URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// UserAgent returns the User-Agent header sent with every request.
func UserAgent() string {
	return UserAgentName + "/" + version.Version
}

// Fetch retrieves rawURL and returns the response body.
func Fetch(ctx context.Context, rawURL string, opts Options) ([]byte, error) {
	if !IsURL(rawURL) {
		return nil, fmt.Errorf("not an http(s) URL: %q", rawURL)
	}

	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	maxSize := opts.MaxSize
	if maxSize == 0 {
		maxSize = DefaultMaxSize
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent())
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrStatus, resp.Status)
	}

	data, err := io.ReadAll(security.LimitReader(resp.Body, maxSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}
