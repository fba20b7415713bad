// Package transport sends a single JSON request to the CloudPDF API and hands back the raw response body.
//
// A Transport is built for one logical call: its headers carry the credentials
// for that call, which may be a token that is only valid for a few seconds.
// Non-2xx responses and network failures are returned as *Error; nothing is retried.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Doer is satisfied by *http.Client
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

type Transport struct {
	baseURL    string
	headers    http.Header
	httpClient Doer
	logger     zerolog.Logger
}

type Option func(*Transport)

func WithHTTPClient(c Doer) Option {
	return func(t *Transport) {
		if c != nil {
			t.httpClient = c
		}
	}
}

func WithLogger(l zerolog.Logger) Option {
	return func(t *Transport) {
		t.logger = l
	}
}

// New returns a Transport that prefixes every path with baseURL and sends headers on every request.
func New(baseURL string, headers http.Header, opts ...Option) *Transport {
	t := &Transport{
		baseURL:    baseURL,
		headers:    headers.Clone(),
		httpClient: http.DefaultClient,
		logger:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Transport) Get(ctx context.Context, path string) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, nil)
}

func (t *Transport) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPost, path, body)
}

func (t *Transport) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPatch, path, body)
}

func (t *Transport) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return t.do(ctx, http.MethodPut, path, body)
}

func (t *Transport) Delete(ctx context.Context, path string) ([]byte, error) {
	return t.do(ctx, http.MethodDelete, path, nil)
}

func (t *Transport) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	url := t.baseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, newInternalError(err, fmt.Sprintf("marshaling %s %s request body", method, path))
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, newInternalError(err, fmt.Sprintf("creating %s %s request", method, path))
	}
	for name, values := range t.headers {
		for _, v := range values {
			req.Header.Add(name, v)
		}
	}

	start := time.Now()
	res, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Debug().
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("request failed")
		return nil, newConnectionError(err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)

	t.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", res.StatusCode).
		Dur("duration_ms", time.Since(start)).
		Int("bytes_read", len(resBody)).
		Msg("request completed")

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, newStatusError(method, path, res, resBody)
	}
	if err != nil {
		return nil, newConnectionError(err)
	}

	return resBody, nil
}
