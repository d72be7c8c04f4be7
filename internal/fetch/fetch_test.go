package fetch

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyperifyio/gostryker/internal/runlog"
)

// newTestClient returns a client with instant retries and a log buffer.
func newTestClient(attempts int) (*Client, *bytes.Buffer) {
	var buf bytes.Buffer
	c := &Client{
		MaxAttempts:       attempts,
		PerRequestTimeout: 2 * time.Second,
		Log:               runlog.New(zerolog.New(&buf)),
		NewBackOff:        func() backoff.BackOff { return &backoff.ZeroBackOff{} },
	}
	return c, &buf
}

func countLogLines(buf *bytes.Buffer, substr string) int {
	n := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

func TestFetch_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		assert.Contains(t, r.Header.Get("Accept"), "text/html")
		w.WriteHeader(200)
		_, _ = w.Write([]byte("<html><body>ok</body></html>"))
	}))
	defer srv.Close()

	c, buf := newTestClient(3)
	body, err := c.Fetch(context.Background(), srv.URL, "run-1")
	require.NoError(t, err)
	assert.Contains(t, string(body), "ok")
	// Success emits no error log.
	assert.Equal(t, 0, countLogLines(buf, "FetchError"))
}

func TestFetch_RetriesThenSucceeds(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls <= 2 {
			w.WriteHeader(503)
			return
		}
		w.WriteHeader(200)
		_, _ = w.Write([]byte("third time"))
	}))
	defer srv.Close()

	c, buf := newTestClient(3)
	body, err := c.Fetch(context.Background(), srv.URL, "run-2")
	require.NoError(t, err)
	assert.Equal(t, "third time", string(body))
	assert.Equal(t, 3, calls)
	// Exactly one error entry per failed attempt.
	assert.Equal(t, 2, countLogLines(buf, "FetchError"))
}

func TestFetch_ExhaustsAttempts(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(500)
	}))
	defer srv.Close()

	c, buf := newTestClient(3)
	_, err := c.Fetch(context.Background(), srv.URL, "run-3")
	require.Error(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, countLogLines(buf, "FetchError"))
	assert.Contains(t, err.Error(), "no content")
}

func TestFetch_NonOKStatusIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(404)
	}))
	defer srv.Close()

	c, _ := newTestClient(1)
	_, err := c.Fetch(context.Background(), srv.URL, "run-4")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 404")
}

func TestFetch_TransportErrorRetried(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	c, buf := newTestClient(2)
	_, err := c.Fetch(context.Background(), srv.URL, "run-5")
	require.Error(t, err)
	assert.Equal(t, 2, countLogLines(buf, "FetchError"))
}

func TestFetch_ContextCancelStopsRetrying(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(500)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c, _ := newTestClient(3)
	_, err := c.Fetch(ctx, srv.URL, "run-6")
	require.Error(t, err)
}
