package pastebin

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient builds a client pointed at a canned-response handler.
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return New("devkey123", WithBaseURL(ts.URL))
}

// textResponse answers every request with a fixed status and body.
func textResponse(status int, body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	})
}

func TestNewDefaults(t *testing.T) {
	c := New("devkey123")

	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, "devkey123", c.devKey)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.Empty(t, c.SessionKey())
}

func TestWithBaseURLTrimsTrailingSlash(t *testing.T) {
	c := New("devkey123", WithBaseURL("https://mirror.example.com/"))
	assert.Equal(t, "https://mirror.example.com", c.baseURL)
}

func TestWithTimeout(t *testing.T) {
	c := New("devkey123", WithTimeout(5*time.Second))
	assert.Equal(t, 5*time.Second, c.httpClient.Timeout)
}

func TestWithHTTPClient(t *testing.T) {
	hc := &http.Client{Timeout: time.Second}
	c := New("devkey123", WithHTTPClient(hc))
	assert.Same(t, hc, c.httpClient)
}

func TestPostFormSendsURLEncodedForm(t *testing.T) {
	var gotContentType, gotDevKey string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotDevKey = r.FormValue("api_dev_key")
		fmt.Fprint(w, "ok")
	})

	c := newTestClient(t, handler)
	_, err := c.FetchSessionKey(context.Background(), "user", "pass")

	require.NoError(t, err)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "devkey123", gotDevKey)
}

func TestNon2xxBecomesTransportError(t *testing.T) {
	c := newTestClient(t, textResponse(http.StatusBadGateway, "upstream down"))

	_, err := c.FetchSessionKey(context.Background(), "user", "pass")

	require.Error(t, err)
	assert.True(t, IsTransport(err))

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.Status)
	assert.Contains(t, apiErr.Message, "unexpected status 502")
	assert.Contains(t, apiErr.Message, "upstream down")
}

func TestNetworkFailureIsNotTaxonomyError(t *testing.T) {
	ts := httptest.NewServer(textResponse(http.StatusOK, "ok"))
	ts.Close() // connection refused from here on

	c := New("devkey123", WithBaseURL(ts.URL))
	_, err := c.FetchSessionKey(context.Background(), "user", "pass")

	require.Error(t, err)
	assert.False(t, IsTransport(err))
	assert.Contains(t, err.Error(), "making request")
}

func TestContextCancellation(t *testing.T) {
	block := make(chan struct{})
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	})
	defer close(block)

	c := newTestClient(t, handler)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := c.FetchSessionKey(ctx, "user", "pass")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
