package idvsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrVerificationNotFound is returned by the verification status check when
// the service answers 404: the verification token does not exist or has
// expired. This is a distinguished condition, not a generic API failure.
var ErrVerificationNotFound = errors.New("idvsdk: verification token not found or expired")

// ============================================================================
// AuthenticationError
// ============================================================================

// AuthenticationError reports rejected credentials: either the token-issuing
// endpoint refused the client_credentials exchange, or both the original API
// call and its single retry were rejected with 401/403. Terminal; the SDK
// never retries past it.
type AuthenticationError struct {
	// StatusCode is the HTTP status of the rejecting response (401 or 403).
	StatusCode int

	// Body is the raw response body, kept for diagnostics.
	Body string
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("idvsdk: authentication failed with status %d", e.StatusCode)
}

// ============================================================================
// TokenAcquisitionError
// ============================================================================

// TokenAcquisitionError reports a non-2xx, non-auth status from the
// token-issuing endpoint.
type TokenAcquisitionError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *TokenAcquisitionError) Error() string {
	return fmt.Sprintf("idvsdk: token acquisition failed with status %d: %s", e.StatusCode, e.Body)
}

// ============================================================================
// APIError
// ============================================================================

// APIError reports a non-2xx, non-auth status from an API endpoint. It
// carries the status code and raw body so callers can branch on either.
type APIError struct {
	StatusCode int

	// Code and Message are filled on a best-effort basis when the body is a
	// structured service error.
	Code    string
	Message string

	// Body is the raw response body text.
	Body string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("idvsdk: api error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("idvsdk: api error (status %d): %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// serviceErrorBody is the structured error shape the service uses for non-2xx
// responses. Used internally for best-effort parsing.
type serviceErrorBody struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// newAPIError builds an APIError from a response status and body, parsing the
// structured error shape when present.
func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Body:       string(body),
	}

	var svcErr serviceErrorBody
	if err := json.Unmarshal(body, &svcErr); err == nil {
		apiErr.Message = svcErr.Message
		apiErr.Code = svcErr.Code
		if apiErr.Code == "" {
			apiErr.Code = svcErr.Error
		}
	}

	return apiErr
}

// ============================================================================
// ValidationError
// ============================================================================

// ValidationError reports a locally rejected request (batch cap exceeded,
// missing/conflicting parameters). It is raised before any network I/O.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return "idvsdk: invalid request: " + e.Message
}

func newValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
