package transport

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nickabs/cloudpdf/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	method string
	path   string
	header http.Header
	body   string
}

func newTestServer(t *testing.T, status int, response string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.header = r.Header.Clone()
		captured.body = string(body)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, captured
}

func testHeaders() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("X-Authorization", "key-123")
	return h
}

func TestTransportMethods(t *testing.T) {
	tests := []struct {
		name     string
		call     func(ctx context.Context, tr *Transport) ([]byte, error)
		wantVerb string
		wantPath string
		wantBody string
	}{
		{
			name:     "get",
			call:     func(ctx context.Context, tr *Transport) ([]byte, error) { return tr.Get(ctx, "/documents/d1") },
			wantVerb: http.MethodGet,
			wantPath: "/v2/documents/d1",
			wantBody: "",
		},
		{
			name: "post",
			call: func(ctx context.Context, tr *Transport) ([]byte, error) {
				return tr.Post(ctx, "/documents", map[string]any{"name": "report"})
			},
			wantVerb: http.MethodPost,
			wantPath: "/v2/documents",
			wantBody: `{"name":"report"}`,
		},
		{
			name: "patch",
			call: func(ctx context.Context, tr *Transport) ([]byte, error) {
				return tr.Patch(ctx, "/documents/d1/files/f1", map[string]any{"id": "d1"})
			},
			wantVerb: http.MethodPatch,
			wantPath: "/v2/documents/d1/files/f1",
			wantBody: `{"id":"d1"}`,
		},
		{
			name: "put",
			call: func(ctx context.Context, tr *Transport) ([]byte, error) {
				return tr.Put(ctx, "/webhooks/w1", map[string]any{"url": "https://example.com/hook"})
			},
			wantVerb: http.MethodPut,
			wantPath: "/v2/webhooks/w1",
			wantBody: `{"url":"https://example.com/hook"}`,
		},
		{
			name:     "delete",
			call:     func(ctx context.Context, tr *Transport) ([]byte, error) { return tr.Delete(ctx, "/webhooks/w1") },
			wantVerb: http.MethodDelete,
			wantPath: "/v2/webhooks/w1",
			wantBody: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, captured := newTestServer(t, http.StatusOK, `{"ok":true}`)
			tr := New(srv.URL+"/v2", testHeaders())

			got, err := tt.call(context.Background(), tr)
			require.NoError(t, err)

			assert.Equal(t, `{"ok":true}`, string(got))
			assert.Equal(t, tt.wantVerb, captured.method)
			assert.Equal(t, tt.wantPath, captured.path)
			assert.Equal(t, tt.wantBody, captured.body)
			assert.Equal(t, "application/json", captured.header.Get("Content-Type"))
			assert.Equal(t, "key-123", captured.header.Get("X-Authorization"))
		})
	}
}

func TestTransportErrorStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantCode apperrors.ErrorCode
	}{
		{"not found", http.StatusNotFound, apperrors.ErrCodeResourceNotFound},
		{"unauthorized", http.StatusUnauthorized, apperrors.ErrCodeAuthenticationFailure},
		{"server error", http.StatusInternalServerError, apperrors.ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, `{"error_code":"x","message":"nope"}`)
			tr := New(srv.URL, testHeaders())

			got, err := tr.Get(context.Background(), "/account")
			assert.Nil(t, got)

			var trErr *Error
			require.True(t, errors.As(err, &trErr))
			assert.Equal(t, tt.status, trErr.StatusCode)
			assert.Equal(t, tt.wantCode, trErr.Code())
			assert.Equal(t, `{"error_code":"x","message":"nope"}`, string(trErr.Body))
			assert.Contains(t, trErr.Error(), "status: ")
			assert.Contains(t, trErr.Message, "GET /account")
		})
	}
}

func TestTransportNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := New(url, testHeaders())
	_, err := tr.Get(context.Background(), "/account")

	var trErr *Error
	require.True(t, errors.As(err, &trErr))
	assert.Equal(t, 0, trErr.StatusCode)
	assert.Equal(t, apperrors.ErrCodeNetworkError, trErr.Code())
	assert.NotNil(t, trErr.Unwrap())
}

func TestTransportCanceledContext(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{}`)
	tr := New(srv.URL, testHeaders())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Get(ctx, "/auth")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransportUnencodableBody(t *testing.T) {
	tr := New("http://127.0.0.1:0", testHeaders())

	_, err := tr.Post(context.Background(), "/documents", map[string]any{"bad": make(chan int)})

	var trErr *Error
	require.True(t, errors.As(err, &trErr))
	assert.Equal(t, 0, trErr.StatusCode)
	assert.Contains(t, trErr.Message, "marshaling POST /documents request body")
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

type doerFunc func(*http.Request) (*http.Response, error)

func (f doerFunc) Do(r *http.Request) (*http.Response, error) { return f(r) }

func TestTransportClosesBody(t *testing.T) {
	for _, status := range []int{http.StatusOK, http.StatusNotFound} {
		body := &trackingBody{Reader: strings.NewReader(`{}`)}
		doer := doerFunc(func(r *http.Request) (*http.Response, error) {
			return &http.Response{
				StatusCode: status,
				Status:     http.StatusText(status),
				Body:       body,
				Header:     http.Header{},
			}, nil
		})

		tr := New("https://api.example.com", testHeaders(), WithHTTPClient(doer))
		_, _ = tr.Get(context.Background(), "/account")

		assert.True(t, body.closed, "body not closed for status %d", status)
	}
}
