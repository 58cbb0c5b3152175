package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-patro/internal/config"
)

var (
	testICS   = []byte("BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR")
	testPages = []byte(`[{"system":"BS","year":2081,"month":1}]`)
)

// serve runs one request through the server router.
func serve(srv *CalendarServer, req *http.Request) *http.Response {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w.Result()
}

// -----------------------------------------------------------------------------
// Unit Tests (White-Box Testing of Handler Logic)
// -----------------------------------------------------------------------------

// TestHandler_ServingContent verifies headers and body of both routes.
func TestHandler_ServingContent(t *testing.T) {
	srv := NewCalendarServer("0") // Port irrelevant for handler test
	srv.Update(testICS, testPages)

	tests := []struct {
		route    string
		mime     string
		expected []byte
	}{
		{config.RouteRoot, config.MimeTextCalendar, testICS},
		{config.RoutePages, config.MimeJSON, testPages},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			resp := serve(srv, httptest.NewRequest(http.MethodGet, tt.route, nil))
			defer func() { _ = resp.Body.Close() }()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			assert.Equal(t, tt.mime, resp.Header.Get(config.HeaderContentType))
			assert.Equal(t, config.MimeNoSniff, resp.Header.Get(config.HeaderXContentType))
			assert.Equal(t, config.ServerHeader, resp.Header.Get(config.HeaderServer))
			assert.Contains(t, resp.Header.Get(config.HeaderCacheControl), "no-cache")
			assert.NotEmpty(t, resp.Header.Get(config.HeaderETag))
			assert.NotEmpty(t, resp.Header.Get(config.HeaderLastModified))

			body, _ := io.ReadAll(resp.Body)
			assert.Equal(t, tt.expected, body)
		})
	}
}

// TestHandler_Head returns headers without a body.
func TestHandler_Head(t *testing.T) {
	srv := NewCalendarServer("0")
	srv.Update(testICS, testPages)

	resp := serve(srv, httptest.NewRequest(http.MethodHead, config.RoutePages, nil))
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Empty(t, body)
}

// TestHandler_Caching verifies that the server respects ETag headers (If-None-Match)
// and returns 304 Not Modified to save bandwidth.
func TestHandler_Caching(t *testing.T) {
	srv := NewCalendarServer("0")
	srv.Update([]byte("DATA_VERSION_1"), testPages)

	// Step 1: Initial Request to get the ETag
	resp1 := serve(srv, httptest.NewRequest(http.MethodGet, "/", nil))
	_ = resp1.Body.Close()
	etag := resp1.Header.Get(config.HeaderETag)
	require.NotEmpty(t, etag, "Server must provide an ETag")

	// Step 2: Second Request providing the known ETag
	req2 := httptest.NewRequest(http.MethodGet, "/", nil)
	req2.Header.Set(config.HeaderIfNoneMatch, etag)
	resp2 := serve(srv, req2)
	defer func() { _ = resp2.Body.Close() }()

	assert.Equal(t, http.StatusNotModified, resp2.StatusCode)
	body, _ := io.ReadAll(resp2.Body)
	assert.Empty(t, body, "Body must be empty on 304 Not Modified")

	// Step 3: The pages document has its own ETag
	req3 := httptest.NewRequest(http.MethodGet, config.RoutePages, nil)
	req3.Header.Set(config.HeaderIfNoneMatch, etag)
	resp3 := serve(srv, req3)
	defer func() { _ = resp3.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp3.StatusCode)
}

// TestHandler_IfModifiedSince returns 304 for clients holding the current version.
func TestHandler_IfModifiedSince(t *testing.T) {
	srv := NewCalendarServer("0")
	srv.Update(testICS, testPages)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfModifiedSince, time.Now().Add(time.Hour).UTC().Format(http.TimeFormat))
	resp := serve(srv, req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNotModified, resp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(config.HeaderIfModifiedSince, time.Now().Add(-time.Hour).UTC().Format(http.TimeFormat))
	resp = serve(srv, req)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestHandler_MethodNotAllowed ensures strictly GET and HEAD are accepted.
func TestHandler_MethodNotAllowed(t *testing.T) {
	srv := NewCalendarServer("0")

	for _, route := range []string{config.RouteRoot, config.RoutePages} {
		resp := serve(srv, httptest.NewRequest(http.MethodPost, route, nil))
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
		assert.Equal(t, config.AllowedMethods, resp.Header.Get(config.HeaderAllow))
	}
}

// TestHandler_Initializing verifies the 503 behavior when data is not yet ready.
func TestHandler_Initializing(t *testing.T) {
	srv := NewCalendarServer("0")
	// Note: We intentionally do NOT call srv.Update() here.

	for _, route := range []string{config.RouteRoot, config.RoutePages} {
		resp := serve(srv, httptest.NewRequest(http.MethodGet, route, nil))
		_ = resp.Body.Close()

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, config.RetryAfterSeconds, resp.Header.Get(config.HeaderRetryAfter))
	}
}

// -----------------------------------------------------------------------------
// Concurrency Tests (Race Detection)
// -----------------------------------------------------------------------------

// TestServer_RaceCondition validates the thread-safety of atomic.Pointer usage.
// Run this with `go test -race`.
func TestServer_RaceCondition(t *testing.T) {
	srv := NewCalendarServer("0")
	handler := srv.Handler()
	var wg sync.WaitGroup

	end := time.Now().Add(500 * time.Millisecond)

	// Writer Routines: Stress atomic.Pointer.Store
	for w := 0; w < 5; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			i := 0
			for time.Now().Before(end) {
				data := fmt.Sprintf("VERSION:%d-%d", id, i)
				srv.Update([]byte(data), []byte(data))
				i++
				time.Sleep(1 * time.Microsecond)
			}
		}(w)
	}

	// Reader Routines: Stress atomic.Pointer.Load through the handler
	for r := 0; r < 20; r++ {
		wg.Add(1)
		go func(r int) {
			defer wg.Done()
			route := config.RouteRoot
			if r%2 == 1 {
				route = config.RoutePages
			}
			for time.Now().Before(end) {
				w := httptest.NewRecorder()
				handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, route, nil))

				code := w.Code
				if code != http.StatusOK && code != http.StatusServiceUnavailable {
					t.Errorf("Unexpected status code during race test: %d", code)
				}
			}
		}(r)
	}

	wg.Wait()
}

// -----------------------------------------------------------------------------
// Integration Tests (Real TCP Lifecycle)
// -----------------------------------------------------------------------------

// TestServer_Lifecycle spins up the actual TCP listener to verify network binding
// and graceful shutdown logic.
func TestServer_Lifecycle(t *testing.T) {
	const port = "18199"

	srv := NewCalendarServer(port)
	ctx, cancel := context.WithCancel(context.Background())
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start(ctx)
	}()

	base := "http://127.0.0.1:" + port

	// Wait for server to be responsive (TCP bind takes a few milliseconds)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + config.RouteRoot)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return true
	}, 2*time.Second, 50*time.Millisecond, "Server failed to bind/listen in time")

	// 1. Check Initial State (503)
	resp, err := http.Get(base + config.RouteRoot)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	_ = resp.Body.Close()

	// 2. Update Data
	srv.Update(testICS, testPages)

	// 3. Check Served Content (200)
	resp, err = http.Get(base + config.RoutePages)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, config.MimeJSON, resp.Header.Get(config.HeaderContentType))
	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.JSONEq(t, string(testPages), string(body))

	// 4. Test Shutdown
	cancel()

	select {
	case err := <-errChan:
		assert.NoError(t, err, "Server should shutdown gracefully without error")
	case <-time.After(5 * time.Second):
		t.Fatal("Server shutdown timed out")
	}
}

func TestServer_PortRequired(t *testing.T) {
	err := NewCalendarServer("").Start(context.Background())
	assert.EqualError(t, err, config.ErrPortRequired)
}
