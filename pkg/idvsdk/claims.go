package idvsdk

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// DecodeTokenClaims decodes the claim set of a JWT access token WITHOUT
// verifying its signature. The SDK treats tokens as opaque everywhere else;
// this exists purely for diagnostics (inspecting subject, expiry, granted
// scopes). Opaque non-JWT tokens return an error.
func DecodeTokenClaims(raw string) (map[string]any, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("idvsdk: access token is not a decodable JWT: %w", err)
	}

	return claims, nil
}

// AccessTokenClaims acquires a valid access token for the connection and
// decodes its claims. See DecodeTokenClaims for the caveats.
func (conn *Connection) AccessTokenClaims(ctx context.Context) (map[string]any, error) {
	token, err := conn.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	return DecodeTokenClaims(token)
}
