package cloudpdf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func webhookPath(id string) string {
	return "/webhooks/" + url.PathEscape(id)
}

func (c *Client) CreateWebhook(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.call(ctx, FuncCreateWebhook, http.MethodPost, "/webhooks", params, true)
}

func (c *Client) GetWebhook(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncGetWebhook, http.MethodGet, webhookPath(id), Params{"id": id}, false)
}

func (c *Client) UpdateWebhook(ctx context.Context, id string, params Params) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncUpdateWebhook, http.MethodPut, webhookPath(id), merge(Params{"id": id}, params), true)
}

func (c *Client) DeleteWebhook(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncDeleteWebhook, http.MethodDelete, webhookPath(id), Params{"id": id}, false)
}

func (c *Client) ListWebhooks(ctx context.Context) (json.RawMessage, error) {
	return c.call(ctx, FuncListWebhooks, http.MethodGet, "/webhooks", Params{}, false)
}
