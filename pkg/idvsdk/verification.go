package idvsdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
)

// MaxBatchLinkRequests is the cap on one batch link generation call.
// Exceeding it fails locally before any network call.
const MaxBatchLinkRequests = 100

// GenerateVerificationLink generates a verification link for one credential
// contract.
func (conn *Connection) GenerateVerificationLink(ctx context.Context, contractID string) (*VerificationLink, error) {
	if contractID == "" {
		return nil, newValidationError("contract ID is required")
	}

	var out VerificationLink
	body := VerificationLinkRequest{ContractID: contractID}
	if err := conn.do(ctx, http.MethodPost, "/verification/generate-link", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GenerateVerificationLinksBatch generates verification links for up to
// MaxBatchLinkRequests contracts in one call.
func (conn *Connection) GenerateVerificationLinksBatch(
	ctx context.Context,
	requests []VerificationLinkRequest,
) (*VerificationLinksBatchResponse, error) {
	if len(requests) == 0 {
		return nil, newValidationError("at least one link request is required")
	}
	if len(requests) > MaxBatchLinkRequests {
		return nil, newValidationError(
			"batch of %d link requests exceeds the maximum of %d",
			len(requests), MaxBatchLinkRequests,
		)
	}
	for _, req := range requests {
		if req.ContractID == "" {
			return nil, newValidationError("every link request needs a contract ID")
		}
	}

	var out VerificationLinksBatchResponse
	body := verificationLinksBatchRequest{Requests: requests}
	if err := conn.do(ctx, http.MethodPost, "/verification/generate-links-batch", nil, body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// CheckVerificationStatus checks the state of a verification attempt. The
// endpoint is unauthenticated: no Authorization header is sent and the token
// manager is never consulted. A 404 answer maps to ErrVerificationNotFound.
func (c *Client) CheckVerificationStatus(ctx context.Context, token string) (*VerificationStatus, error) {
	if strings.TrimSpace(token) == "" {
		return nil, newValidationError("verification token is required")
	}

	var out VerificationStatus
	path := "/verification/check/" + url.PathEscape(token)
	if err := c.doRequest(ctx, http.MethodGet, path, nil, &out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
			return nil, ErrVerificationNotFound
		}
		return nil, err
	}

	return &out, nil
}

// CheckVerificationStatus on a Connection delegates to the underlying Client;
// the request stays unauthenticated.
func (conn *Connection) CheckVerificationStatus(ctx context.Context, token string) (*VerificationStatus, error) {
	return conn.client.CheckVerificationStatus(ctx, token)
}
