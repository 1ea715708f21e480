package idvsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListCredentials lists credentials across the institution, paginated or
// filtered to specific parties via opts.PartyIDs.
func (conn *Connection) ListCredentials(ctx context.Context, opts *ListOptions) (*ListCredentialsResponse, error) {
	var out ListCredentialsResponse
	if err := conn.do(ctx, http.MethodGet, "/institutions/me/credentials", opts.query(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetCredentials retrieves all credentials held by a single party.
func (conn *Connection) GetCredentials(ctx context.Context, partyID string) (*PartyCredentials, error) {
	if partyID == "" {
		return nil, newValidationError("party ID is required")
	}

	var out PartyCredentials
	path := "/institutions/me/credentials/" + url.PathEscape(partyID)
	if err := conn.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// ResolveCredentials resolves credentials either forward (free-text query,
// e.g. email or username) or reverse (party ID). The request must carry
// exactly one of the two; violations fail locally before any network call.
func (conn *Connection) ResolveCredentials(ctx context.Context, req ResolveRequest) (*ResolveCredentialsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var out ResolveCredentialsResponse
	if err := conn.do(ctx, http.MethodGet, "/institutions/me/credentials/resolve", req.query(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RequestCredentialsAccess asks the listed providers to share their
// credentials for the party with the institution. The service answers 204;
// a nil error means the request was accepted.
func (conn *Connection) RequestCredentialsAccess(ctx context.Context, partyID string, providers []string) error {
	if partyID == "" {
		return newValidationError("party ID is required")
	}
	if len(providers) == 0 {
		return newValidationError("at least one provider is required")
	}

	body := credentialsAccessRequest{PartyID: partyID, Providers: providers}
	return conn.do(ctx, http.MethodPost, "/institutions/me/credentials/request", nil, body, nil)
}
