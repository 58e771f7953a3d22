// Package pastebin provides a Go client for the Pastebin web API.
//
// Basic usage:
//
//	c := pastebin.New("your-developer-key")
//	err := c.Login(ctx, "username", "password")
//	paste, err := c.CreatePaste(ctx, "hello world")
package pastebin

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public Pastebin endpoint.
	DefaultBaseURL = "https://pastebin.com"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second
)

// Service paths under the base URL.
const (
	loginPath     = "/api/api_login.php"
	postPath      = "/api/api_post.php"
	rawPath       = "/api/api_raw.php"
	publicRawPath = "/raw/"
)

// Client is a Pastebin API client.
//
// Login is the only method that writes client state (the session key and the
// account's paste defaults); every other method only reads it.
type Client struct {
	baseURL    string
	devKey     string
	httpClient *http.Client
	log        zerolog.Logger

	// Session defaults stored by Login. Per-call options override them.
	sessionKey          string
	defaultHighlighting string
	defaultExpiration   Lifespan
	defaultVisibility   Visibility
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL, e.g. a self-hosted mirror or a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithLogger sets a logger for request-level debug events. The client never
// logs credentials or paste content.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a new Pastebin client with the given developer key and options.
func New(devKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		devKey:  devKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		log: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SessionKey returns the session key stored by the last successful Login,
// or "" before login.
func (c *Client) SessionKey() string {
	return c.sessionKey
}

// sessionKeyOr resolves a per-call session key override against the stored
// default.
func (c *Client) sessionKeyOr(override string) string {
	if override != "" {
		return override
	}
	return c.sessionKey
}

// postForm issues a form-encoded POST and returns the raw response body.
// A non-2xx status becomes an *Error with code ErrTransport.
func (c *Client) postForm(ctx context.Context, path string, form url.Values) (string, error) {
	endpoint := c.baseURL + path

	c.log.Debug().
		Str("endpoint", endpoint).
		Str("option", form.Get("api_option")).
		Msg("dispatching api request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req)
}

// get issues a plain GET with the same response handling as postForm.
func (c *Client) get(ctx context.Context, path string) (string, error) {
	endpoint := c.baseURL + path

	c.log.Debug().Str("endpoint", endpoint).Msg("dispatching raw request")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}

	return c.do(req)
}

func (c *Client) do(req *http.Request) (string, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &Error{
			Code:    ErrTransport,
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}
	return string(body), nil
}
