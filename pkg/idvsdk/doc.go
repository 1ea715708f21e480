/*
Package idvsdk provides a typed client for the Attestra identity-verification
service.

# Overview

The package is organized around two types:

  - Client: endpoint configuration plus unauthenticated operations
  - Connection: authenticated operations for one credential pair, with
    transparent token acquisition, caching and refresh

Create a Client for a network, then open a Connection with your institution's
credential pair:

	client := idvsdk.NewClient(idvsdk.NetworkMainnet)
	conn := client.NewConnection(clientID, clientSecret)

	users, err := conn.ListUsers(ctx, nil)
	score, err := conn.GetHumanScore(ctx, partyID)

Opening a Connection performs no I/O. The first authenticated call acquires a
bearer token via the OAuth2 client_credentials grant; the token is cached and
reused until shortly before its advertised expiry, then re-acquired
transparently.

# Networks

NewClient resolves the API base URL and token-issuing URL from the network
name ("mainnet" or "devnet"; unrecognized names fall back to mainnet). Both
URLs can be overridden explicitly, bypassing network resolution:

	client := idvsdk.NewClient(idvsdk.NetworkDevnet,
		idvsdk.WithBaseURL("https://api.example.test/v1"),
		idvsdk.WithTokenURL("https://auth.example.test/oauth2/token"),
	)

# Authentication and retries

When an API call is rejected with 401 or 403, the Connection drops its cached
token, acquires a fresh one, and re-issues the identical request exactly once.
A second rejection surfaces as *AuthenticationError. No other status is ever
retried; broader retry and backoff policy belongs to the calling application.

# Errors

Failures are typed so callers can branch:

	_, err := conn.ListCredentials(ctx, nil)
	var apiErr *idvsdk.APIError
	if errors.As(err, &apiErr) {
		log.Printf("service answered %d: %s", apiErr.StatusCode, apiErr.Body)
	}

  - *AuthenticationError: credentials rejected, terminal
  - *TokenAcquisitionError: token endpoint failed with a non-auth status
  - *APIError: API endpoint failed with a non-auth status
  - *ValidationError: request rejected locally before any network I/O
  - ErrVerificationNotFound: verification token unknown or expired (check
    with errors.Is)

# Verification flow

Verification links are generated per credential contract, singly or in
batches of up to MaxBatchLinkRequests:

	link, err := conn.GenerateVerificationLink(ctx, contractID)

The status check is unauthenticated and also available directly on Client, so
it can run without any credential pair:

	status, err := client.CheckVerificationStatus(ctx, link.Token)
	if errors.Is(err, idvsdk.ErrVerificationNotFound) {
		// token expired or never existed
	}

# Concurrency

A Connection is safe for concurrent use. The cached token is the only shared
mutable state; concurrent acquisitions coalesce behind a single exchange.
*/
package idvsdk
