package idvsdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/attestra/attestra-go/pkg/idx"
)

// buildURL appends path to the base URL. An already-absolute path is passed
// through untouched; this supports endpoints hosted away from the API base.
func (c *Client) buildURL(path string, query url.Values) string {
	u := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		u = c.BaseURL + path
	}
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doRequest performs an unauthenticated request against the API. No
// Authorization header is attached and the token manager is never consulted.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", idx.New().String())

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	return decodeResponse(resp, out)
}

// do executes one logical authenticated API call with at-most-one-retry-on-
// auth-failure semantics:
//
//  1. obtain a valid token (cached, or freshly acquired)
//  2. issue the request
//  3. on 401/403, invalidate the cached token, acquire a fresh one, and
//     re-issue the identical request exactly once
//  4. a 401/403 on the retry is terminal authentication failure; any other
//     non-2xx status (on either attempt) is an API failure and is never
//     retried
//
// The request body is marshalled once so the retry resends identical bytes.
func (conn *Connection) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	token, err := conn.tokens.Token(ctx)
	if err != nil {
		return err
	}

	resp, err := conn.send(ctx, method, path, query, payload, token)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		// The one recoverable condition: the token was likely revoked or
		// expired server-side. Drop it and retry once with a fresh one.
		_ = resp.Body.Close()

		conn.client.logger.Debug("auth failure, retrying once with a fresh token",
			"status", resp.StatusCode,
			"method", method,
			"path", path,
		)

		conn.tokens.Invalidate()
		if token, err = conn.tokens.Token(ctx); err != nil {
			return err
		}

		if resp, err = conn.send(ctx, method, path, query, payload, token); err != nil {
			return err
		}

		if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
			defer resp.Body.Close()
			bodyBytes, _ := io.ReadAll(resp.Body)
			return &AuthenticationError{StatusCode: resp.StatusCode, Body: string(bodyBytes)}
		}
	}

	return decodeResponse(resp, out)
}

// send issues a single HTTP exchange carrying the standard headers and the
// bearer token.
func (conn *Connection) send(
	ctx context.Context,
	method, path string,
	query url.Values,
	payload []byte,
	token string,
) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, conn.client.buildURL(path, query), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("X-Request-ID", idx.New().String())

	resp, err := conn.client.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	return resp, nil
}

// decodeResponse consumes the response body and decodes it into out. A 204
// status, an empty body, or a nil target all resolve to an empty result; any
// non-2xx status becomes an APIError carrying status and body.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp.StatusCode, bodyBytes)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent || len(bodyBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
