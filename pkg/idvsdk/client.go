package idvsdk

import (
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client holds the endpoint configuration for one Attestra environment.
// It provides access to unauthenticated operations and creates authenticated
// Connections. A Client is immutable after construction and safe for
// concurrent use.
type Client struct {
	BaseURL    string
	TokenURL   string
	HTTPClient *http.Client

	// now is the clock used for token expiry decisions. Injectable so expiry
	// behaviour is deterministic in tests.
	now func() time.Time

	// logger receives debug-level wire diagnostics (token lifecycle, retries).
	// Discards by default; the SDK never logs unless asked to.
	logger *slog.Logger
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithBaseURL overrides the API base URL resolved from the network name.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.BaseURL = u }
}

// WithTokenURL overrides the token-issuing URL resolved from the network name.
func WithTokenURL(u string) Option {
	return func(c *Client) { c.TokenURL = u }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.HTTPClient = hc }
}

// WithClock replaces the wall clock used for token expiry decisions.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// WithLogger enables debug diagnostics (token lifecycle, auth retries) on
// the given structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a client for the named network ("mainnet" or "devnet";
// unrecognized names fall back to mainnet). URL options bypass network-based
// resolution entirely.
func NewClient(network string, opts ...Option) *Client {
	ep := resolveNetwork(network)

	c := &Client{
		BaseURL:  ep.baseURL,
		TokenURL: ep.tokenURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")
	return c
}

// Connection is an authenticated connection for one credential pair. All
// Connection methods transparently acquire and refresh the access token and
// retry an API call exactly once when it is rejected with 401 or 403.
//
// Construction performs no I/O; the token is acquired lazily by the first
// authenticated call.
type Connection struct {
	client *Client
	tokens *tokenManager
}

// NewConnection creates an authenticated connection using the OAuth2
// client_credentials grant with the given credential pair.
func (c *Client) NewConnection(clientID, clientSecret string) *Connection {
	return &Connection{
		client: c,
		tokens: newTokenManager(c, clientID, clientSecret),
	}
}
