package idvsdk

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// Token Types
// ============================================================================

// TokenResponse represents the token-issuing endpoint response per RFC 6749.
type TokenResponse struct {
	// AccessToken is the opaque bearer string used to authenticate API requests
	AccessToken string `json:"access_token"`

	// TokenType is always "Bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int `json:"expires_in"`

	// Scope is the space-delimited list of scopes granted to this token
	Scope string `json:"scope,omitempty"`
}

// ============================================================================
// List Options
// ============================================================================

// ListOptions carries pagination or a party-ID filter for list endpoints.
// Page numbering starts at 1; zero values are omitted from the request.
type ListOptions struct {
	Page    int
	PerPage int

	// PartyIDs filters the listing to the given parties instead of paging
	// through the full institution data set.
	PartyIDs []string
}

func (o *ListOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(o.PerPage))
	}
	if len(o.PartyIDs) > 0 {
		q.Set("partyIds", strings.Join(o.PartyIDs, ","))
	}
	return q
}

// ListUsersOptions carries pagination and filters for the user listing.
type ListUsersOptions struct {
	Page    int
	PerPage int

	// Email filters users by (exact) email address.
	Email string
}

func (o *ListUsersOptions) query() url.Values {
	q := url.Values{}
	if o == nil {
		return q
	}
	if o.Page > 0 {
		q.Set("page", strconv.Itoa(o.Page))
	}
	if o.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(o.PerPage))
	}
	if o.Email != "" {
		q.Set("email", o.Email)
	}
	return q
}

// ============================================================================
// User Types
// ============================================================================

// InstitutionUser represents one user enrolled with the institution.
type InstitutionUser struct {
	// ID is the institution-scoped identifier of the user
	ID string `json:"id"`

	// PartyID is the ledger-level identifier of the verified entity, empty
	// until verification completes
	PartyID string `json:"partyId,omitempty"`

	// Email is the user's registered email address
	Email string `json:"email,omitempty"`

	// CreatedAt is the enrolment timestamp
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// ListUsersResponse contains one page of institution users.
type ListUsersResponse struct {
	Users []InstitutionUser `json:"users"`

	// TotalCount is the total number of users matching the filters
	TotalCount int `json:"totalCount,omitempty"`
}

// ============================================================================
// Human Score Types
// ============================================================================

// HumanScore is the derived trust/authenticity metric computed for a party
// from its linked-provider account signals.
type HumanScore struct {
	PartyID string `json:"partyId"`

	// Score is the aggregate metric in the range the service defines
	Score int `json:"score"`

	// Signals holds per-provider inputs to the score. The shape is
	// provider-specific, so it stays an open mapping.
	Signals map[string]any `json:"signals,omitempty"`

	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// ListHumanScoresResponse contains one page of human scores.
type ListHumanScoresResponse struct {
	Scores     []HumanScore `json:"humanScores"`
	TotalCount int          `json:"totalCount,omitempty"`
}

// ============================================================================
// Credential Types
// ============================================================================

// Credential represents one on-ledger credential record.
type Credential struct {
	// ContractID identifies the on-ledger credential record
	ContractID string `json:"contractId"`

	// PartyID is the holder of the credential
	PartyID string `json:"partyId"`

	// Provider is the issuing provider (e.g. "github", "bank-kyc")
	Provider string `json:"provider"`

	// Freshness classifies staleness relative to issuance/expiry
	// (e.g. "fresh", "stale", "expired")
	Freshness string `json:"freshness,omitempty"`

	IssuedAt  time.Time `json:"issuedAt,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitempty"`

	// Metadata holds provider-specific fields. Kept as an open mapping for
	// forward compatibility with new providers.
	Metadata map[string]any `json:"metadata,omitempty"`

	// Claims holds the credential's claim blob, shape defined by the provider.
	Claims map[string]any `json:"claims,omitempty"`
}

// ListCredentialsResponse contains one page of credentials.
type ListCredentialsResponse struct {
	Credentials []Credential `json:"credentials"`
	TotalCount  int          `json:"totalCount,omitempty"`
}

// PartyCredentials contains all credentials held by one party.
type PartyCredentials struct {
	PartyID     string       `json:"partyId"`
	Credentials []Credential `json:"credentials"`
}

// ResolveRequest selects exactly one lookup mode for credential resolution:
// a free-text Query (forward lookup: email/username to credentials) or a
// PartyID (reverse lookup). Supplying both or neither is rejected locally
// before any network call.
type ResolveRequest struct {
	Query   string
	PartyID string
}

// ResolveByQuery constructs a forward-lookup resolve request.
func ResolveByQuery(q string) ResolveRequest {
	return ResolveRequest{Query: q}
}

// ResolveByPartyID constructs a reverse-lookup resolve request.
func ResolveByPartyID(partyID string) ResolveRequest {
	return ResolveRequest{PartyID: partyID}
}

// Validate enforces the exactly-one-of rule.
func (r ResolveRequest) Validate() error {
	switch {
	case r.Query == "" && r.PartyID == "":
		return newValidationError("resolve requires exactly one of Query or PartyID, got neither")
	case r.Query != "" && r.PartyID != "":
		return newValidationError("resolve requires exactly one of Query or PartyID, got both")
	}
	return nil
}

func (r ResolveRequest) query() url.Values {
	q := url.Values{}
	if r.Query != "" {
		q.Set("q", r.Query)
	}
	if r.PartyID != "" {
		q.Set("partyId", r.PartyID)
	}
	return q
}

// ResolveCredentialsResponse contains the credentials of the resolved party.
type ResolveCredentialsResponse struct {
	PartyID     string       `json:"partyId"`
	Credentials []Credential `json:"credentials"`
}

// credentialsAccessRequest is the body of the credentials access request.
type credentialsAccessRequest struct {
	PartyID   string   `json:"partyId"`
	Providers []string `json:"providers"`
}

// ============================================================================
// Verification Types
// ============================================================================

// VerificationLinkRequest asks for a verification link for one credential
// contract.
type VerificationLinkRequest struct {
	ContractID string `json:"contractId"`
}

// VerificationLink is a generated link a user follows to complete
// verification.
type VerificationLink struct {
	ContractID string `json:"contractId"`

	// URL is the user-facing verification URL
	URL string `json:"url"`

	// Token identifies the verification attempt; pass it to
	// CheckVerificationStatus
	Token string `json:"token"`

	ExpiresAt time.Time `json:"expiresAt,omitempty"`
}

// verificationLinksBatchRequest is the body of the batch link generation call.
type verificationLinksBatchRequest struct {
	Requests []VerificationLinkRequest `json:"requests"`
}

// VerificationLinksBatchResponse contains the generated links in request
// order.
type VerificationLinksBatchResponse struct {
	Links []VerificationLink `json:"links"`
}

// VerificationStatus reports the state of one verification attempt.
type VerificationStatus struct {
	// Status is the attempt state (e.g. "pending", "completed", "failed")
	Status string `json:"status"`

	// PartyID is set once verification has completed
	PartyID string `json:"partyId,omitempty"`

	CompletedAt *time.Time `json:"completedAt,omitempty"`
}
