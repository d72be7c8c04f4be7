// Package fetch retrieves raw page content with bounded retries and
// exponential backoff. Exhausting all attempts is a normal outcome the
// pipeline handles, not a fault.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hyperifyio/gostryker/internal/runlog"
)

const (
	// DefaultUserAgent identifies the fetcher to origin servers.
	DefaultUserAgent = "Mozilla/5.0 (compatible; gostryker/1.0)"

	// DefaultMaxAttempts includes the initial attempt.
	DefaultMaxAttempts = 3

	// DefaultTimeout bounds each request, not the whole retry loop.
	DefaultTimeout = 30 * time.Second

	acceptHeader   = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
	acceptLanguage = "en-US,en;q=0.5"

	initialBackoff = 1 * time.Second
	maxBackoff     = 60 * time.Second
)

// Client wraps http.Client with retry, per-request timeout and per-attempt
// error logging. The zero value works with defaults applied on first use.
type Client struct {
	HTTPClient *http.Client
	UserAgent  string
	// MaxAttempts is the total attempt budget, minimum 1.
	MaxAttempts int
	// PerRequestTimeout bounds each attempt.
	PerRequestTimeout time.Duration
	// Log receives one FetchError event per failed attempt.
	Log *runlog.Recorder
	// NewBackOff overrides the retry delay policy. Tests inject a zero
	// backoff to avoid real sleeps.
	NewBackOff func() backoff.BackOff
}

func (c *Client) log() *runlog.Recorder {
	if c.Log != nil {
		return c.Log
	}
	return runlog.Default()
}

func (c *Client) newBackOff() backoff.BackOff {
	if c.NewBackOff != nil {
		return c.NewBackOff()
	}
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = initialBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0.5
	b.MaxInterval = maxBackoff
	b.MaxElapsedTime = 0
	return b
}

// Fetch issues GETs for url until one returns HTTP 200 or the attempt budget
// is exhausted. Every failed attempt is logged with the run id; success logs
// nothing. Any non-200 status counts as a failed attempt.
func (c *Client) Fetch(ctx context.Context, url, runID string) ([]byte, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), uint64(attempts-1)), ctx)

	var body []byte
	attempt := 0
	op := func() error {
		attempt++
		b, err := c.tryOnce(ctx, url)
		if err != nil {
			c.log().Error(url, runID, runlog.CategoryFetch,
				fmt.Sprintf("fetch attempt %d failed: %v", attempt, err))
			return err
		}
		body = b
		return nil
	}

	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("fetch %s: no content after %d attempts: %w", url, attempt, err)
	}
	return body, nil
}

func (c *Client) tryOnce(ctx context.Context, url string) ([]byte, error) {
	if c.PerRequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.PerRequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set("Accept-Language", acceptLanguage)

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return b, nil
}
