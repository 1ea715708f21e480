package idvsdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenExpiryBuffer is subtracted from the advertised token lifetime so a
// cached token is never presented right at its real expiry.
const tokenExpiryBuffer = 60 * time.Second

// tokenManager owns the cached access token for one Connection. It acquires
// tokens via the client_credentials grant, reuses them until their effective
// expiry, and performs no retries of its own; retry policy lives entirely in
// the dispatch layer.
type tokenManager struct {
	client       *Client
	clientID     string
	clientSecret string

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func newTokenManager(client *Client, clientID, clientSecret string) *tokenManager {
	return &tokenManager{
		client:       client,
		clientID:     clientID,
		clientSecret: clientSecret,
	}
}

// Token returns a valid access token, acquiring a fresh one if the cache is
// empty or past its effective expiry. A cached valid token is returned
// without any network call.
func (tm *tokenManager) Token(ctx context.Context) (string, error) {
	tm.mu.RLock()
	if tm.valid() {
		token := tm.accessToken
		tm.mu.RUnlock()
		return token, nil
	}
	tm.mu.RUnlock()

	tm.mu.Lock()
	defer tm.mu.Unlock()

	// Double-check after acquiring the write lock; a concurrent caller may
	// have acquired a token already, so acquisitions coalesce here.
	if tm.valid() {
		return tm.accessToken, nil
	}

	tokenResp, err := tm.exchange(ctx)
	if err != nil {
		return "", err
	}

	tm.accessToken = tokenResp.AccessToken
	tm.expiresAt = tm.client.now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenExpiryBuffer)

	tm.client.logger.Debug("acquired access token",
		"expires_in", tokenResp.ExpiresIn,
		"effective_expiry", tm.expiresAt,
	)

	return tm.accessToken, nil
}

// Invalidate unconditionally drops the cached token, forcing the next Token
// call to acquire fresh credentials. Used by the dispatch layer's single
// retry path; the cleared cache is visible to concurrent callers so a stale
// token is never reused.
func (tm *tokenManager) Invalidate() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	tm.accessToken = ""
	tm.expiresAt = time.Time{}

	tm.client.logger.Debug("invalidated cached access token")
}

// valid reports whether the cached token exists and is before its effective
// expiry. Callers must hold at least the read lock.
func (tm *tokenManager) valid() bool {
	return tm.accessToken != "" && tm.client.now().Before(tm.expiresAt)
}

// exchange performs the client_credentials token exchange against the
// token-issuing endpoint.
func (tm *tokenManager) exchange(ctx context.Context) (*TokenResponse, error) {
	data := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {tm.clientID},
		"client_secret": {tm.clientSecret},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		tm.client.TokenURL,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := tm.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send token request: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		// Credentials are invalid; terminal for this acquisition attempt.
		return nil, &AuthenticationError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &TokenAcquisitionError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(bodyBytes, &tokenResp); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token response is missing access_token")
	}

	return &tokenResp, nil
}
