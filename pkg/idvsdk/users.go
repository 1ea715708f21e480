package idvsdk

import (
	"context"
	"net/http"
)

// ListUsers lists the institution's enrolled users with optional pagination
// and filters. A nil opts lists the first page with service defaults.
func (conn *Connection) ListUsers(ctx context.Context, opts *ListUsersOptions) (*ListUsersResponse, error) {
	var out ListUsersResponse
	if err := conn.do(ctx, http.MethodGet, "/institutions/me/users", opts.query(), nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}
