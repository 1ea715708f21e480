package idv_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/attestra/attestra-go/pkg/idvsdk"
)

/*
 * Common helpers for identity-verification end-to-end tests. The tests run
 * the full SDK stack (token lifecycle, dispatch, typed endpoints) against an
 * in-process stateful fake of the remote service.
 */

const (
	testClientID     = "e2e-institution"
	testClientSecret = "e2e-secret-12345"

	knownPartyID  = "party-0001"
	knownEmail    = "alice@example.com"
	knownContract = "contract-0001"
)

// fakeNetwork is a stateful in-process stand-in for one Attestra network:
// it issues bearer tokens, authenticates API calls against them, and serves
// a small fixed data set for one institution.
type fakeNetwork struct {
	srv *httptest.Server

	mu            sync.Mutex
	tokenAttempts int
	tokensIssued  int
	validTokens   map[string]bool
	verifications map[string]string // verification token -> status
	linksIssued   int
}

func startFakeNetwork(t *testing.T) *fakeNetwork {
	t.Helper()

	fn := &fakeNetwork{
		validTokens:   make(map[string]bool),
		verifications: make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /oauth2/token", fn.handleToken)
	mux.HandleFunc("GET /institutions/me/users", fn.authenticated(fn.handleListUsers))
	mux.HandleFunc("GET /institutions/me/human-scores/{partyId}", fn.authenticated(fn.handleHumanScore))
	mux.HandleFunc("GET /institutions/me/credentials/resolve", fn.authenticated(fn.handleResolve))
	mux.HandleFunc("POST /institutions/me/credentials/request", fn.authenticated(fn.handleAccessRequest))
	mux.HandleFunc("POST /verification/generate-link", fn.authenticated(fn.handleGenerateLink))
	mux.HandleFunc("GET /verification/check/{token}", fn.handleCheck)

	fn.srv = httptest.NewServer(mux)
	t.Cleanup(fn.srv.Close)

	return fn
}

// client returns an SDK client pointed at the fake network.
func (fn *fakeNetwork) client() *idvsdk.Client {
	return idvsdk.NewClient(idvsdk.NetworkDevnet,
		idvsdk.WithBaseURL(fn.srv.URL),
		idvsdk.WithTokenURL(fn.srv.URL+"/oauth2/token"),
	)
}

func (fn *fakeNetwork) connection() *idvsdk.Connection {
	return fn.client().NewConnection(testClientID, testClientSecret)
}

// revokeAllTokens invalidates every issued token server-side, so the next
// authenticated SDK call runs into a 401 and must re-acquire.
func (fn *fakeNetwork) revokeAllTokens() {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	fn.validTokens = make(map[string]bool)
}

// completeVerification flips a pending verification to completed, as the
// remote service would after the user finishes the flow.
func (fn *fakeNetwork) completeVerification(token string) {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	fn.verifications[token] = "completed"
}

func (fn *fakeNetwork) tokenCount() int {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return fn.tokensIssued
}

func (fn *fakeNetwork) tokenAttemptCount() int {
	fn.mu.Lock()
	defer fn.mu.Unlock()
	return fn.tokenAttempts
}

// ============================================================================
// Handlers
// ============================================================================

func (fn *fakeNetwork) handleToken(w http.ResponseWriter, r *http.Request) {
	_ = r.ParseForm()

	fn.mu.Lock()
	fn.tokenAttempts++
	fn.mu.Unlock()

	if r.PostForm.Get("grant_type") != "client_credentials" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unsupported_grant_type"})
		return
	}
	if r.PostForm.Get("client_id") != testClientID || r.PostForm.Get("client_secret") != testClientSecret {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_client"})
		return
	}

	fn.mu.Lock()
	fn.tokensIssued++
	token := fmt.Sprintf("e2e-token-%d", fn.tokensIssued)
	fn.validTokens[token] = true
	fn.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   3600,
	})
}

// authenticated rejects requests whose bearer token is not currently valid.
func (fn *fakeNetwork) authenticated(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		fn.mu.Lock()
		ok := token != "" && fn.validTokens[token]
		fn.mu.Unlock()

		if !ok {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid_token"})
			return
		}
		next(w, r)
	}
}

func (fn *fakeNetwork) handleListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"users": []map[string]any{
			{"id": "user-1", "partyId": knownPartyID, "email": knownEmail},
			{"id": "user-2", "email": "bob@example.com"},
		},
		"totalCount": 2,
	})
}

func (fn *fakeNetwork) handleHumanScore(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("partyId") != knownPartyID {
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found", "message": "unknown party"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"partyId": knownPartyID,
		"score":   91,
		"signals": map[string]any{"github": map[string]any{"account_age_days": 2100}},
	})
}

func (fn *fakeNetwork) handleResolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var matched bool
	switch {
	case q.Has("q") && !q.Has("partyId"):
		matched = q.Get("q") == knownEmail
	case q.Has("partyId") && !q.Has("q"):
		matched = q.Get("partyId") == knownPartyID
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "bad_request", "message": "exactly one of q and partyId required"})
		return
	}

	if !matched {
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found", "message": "no matching party"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"partyId": knownPartyID,
		"credentials": []map[string]any{
			{"contractId": knownContract, "partyId": knownPartyID, "provider": "github", "freshness": "fresh"},
		},
	})
}

func (fn *fakeNetwork) handleAccessRequest(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PartyID   string   `json:"partyId"`
		Providers []string `json:"providers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.PartyID == "" || len(body.Providers) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "bad_request", "message": "partyId and providers required"})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (fn *fakeNetwork) handleGenerateLink(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ContractID string `json:"contractId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ContractID == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"code": "bad_request", "message": "contractId required"})
		return
	}

	fn.mu.Lock()
	fn.linksIssued++
	token := fmt.Sprintf("vt-%d", fn.linksIssued)
	fn.verifications[token] = "pending"
	fn.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"contractId": body.ContractID,
		"url":        fn.srv.URL + "/v/" + token,
		"token":      token,
	})
}

func (fn *fakeNetwork) handleCheck(w http.ResponseWriter, r *http.Request) {
	token := r.PathValue("token")

	fn.mu.Lock()
	status, ok := fn.verifications[token]
	fn.mu.Unlock()

	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"code": "not_found", "message": "unknown verification token"})
		return
	}

	resp := map[string]any{"status": status}
	if status == "completed" {
		resp["partyId"] = knownPartyID
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
