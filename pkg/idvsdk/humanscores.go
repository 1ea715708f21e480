package idvsdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListHumanScores lists human scores across the institution, paginated or
// filtered to specific parties via opts.PartyIDs.
func (conn *Connection) ListHumanScores(ctx context.Context, opts *ListOptions) (*ListHumanScoresResponse, error) {
	var out ListHumanScoresResponse
	if err := conn.do(ctx, http.MethodGet, "/institutions/me/human-scores", opts.query(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetHumanScore retrieves the human score of a single party.
func (conn *Connection) GetHumanScore(ctx context.Context, partyID string) (*HumanScore, error) {
	if partyID == "" {
		return nil, newValidationError("party ID is required")
	}

	var out HumanScore
	path := "/institutions/me/human-scores/" + url.PathEscape(partyID)
	if err := conn.do(ctx, http.MethodGet, path, nil, nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
