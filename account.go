package cloudpdf

import (
	"context"
	"encoding/json"
	"net/http"
)

// Account returns the account the credentials belong to
func (c *Client) Account(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, FuncGetAccount, http.MethodGet, "/account", Params{}, false)
}

// Auth checks the credentials against the API
func (c *Client) Auth(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, FuncGetAuth, http.MethodGet, "/auth", Params{}, false)
}
