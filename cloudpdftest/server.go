// Package cloudpdftest provides an in-memory fake of the CloudPDF v2 API for
// tests of code that uses the cloudpdf client.
//
//	srv := cloudpdftest.NewServer(cloudpdftest.WithSigningKey("my-cloud", "secret"))
//	defer srv.Close()
//
//	client, _ := cloudpdf.New(cloudpdf.Config{
//	    APIKey:        cloudpdftest.DefaultAPIKey,
//	    CloudName:     "my-cloud",
//	    SigningSecret: "secret",
//	    BaseURL:       srv.BaseURL(),
//	})
//
// The server authenticates requests the same way the real API does, keeps
// documents, files and webhooks in memory and records every request it sees.
package cloudpdftest

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/nickabs/cloudpdf/internal/auth"
	internalMiddleware "github.com/nickabs/cloudpdf/internal/middleware"
	"github.com/rs/zerolog"
)

const (
	DefaultAPIKey = "test-api-key"

	basePath = "/v2"
)

// Request is a request received by the fake API
type Request struct {
	Method        string
	Path          string // relative to BaseURL, e.g. /documents/d1
	Authorization string // X-Authorization header
	ContentType   string
	Body          []byte

	// Claims is set when Authorization is a token that verifies against the signing secret
	Claims *auth.Claims

	Status int
}

// DecodeBody unmarshals the recorded JSON body into v
func (r Request) DecodeBody(v any) error {
	return json.Unmarshal(r.Body, v)
}

type Server struct {
	*httptest.Server

	creds  internalMiddleware.Credentials
	logger zerolog.Logger

	mu         sync.Mutex
	requests   []Request
	failStatus int
	store      *store
}

type Option func(*Server)

// WithAPIKey sets the API key the server accepts (default DefaultAPIKey)
func WithAPIKey(key string) Option {
	return func(s *Server) {
		s.creds.APIKey = key
	}
}

// WithSigningKey enables signed tokens for cloudName
func WithSigningKey(cloudName, secret string) Option {
	return func(s *Server) {
		s.creds.CloudName = cloudName
		s.creds.SigningSecret = secret
	}
}

// WithLogger logs every request the server handles
func WithLogger(l zerolog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// NewServer starts a fake API. Call Close when done.
func NewServer(opts ...Option) *Server {
	s := &Server{
		creds:  internalMiddleware.Credentials{APIKey: DefaultAPIKey},
		logger: zerolog.Nop(),
		store:  newStore(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Server = httptest.NewServer(s.routes())
	return s
}

// BaseURL is the value to use as the client's base url
func (s *Server) BaseURL() string {
	return s.URL + basePath
}

// FailWith makes every following request fail with status. FailWith(0) restores normal handling.
func (s *Server) FailWith(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failStatus = status
}

// Requests returns the requests received so far, oldest first
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

// recordRequest captures the request before any other handling so that rejected requests are recorded too
func (s *Server) recordRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body.Close()
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		rec := Request{
			Method:        r.Method,
			Path:          strings.TrimPrefix(r.URL.Path, basePath),
			Authorization: r.Header.Get("X-Authorization"),
			ContentType:   r.Header.Get("Content-Type"),
			Body:          body,
		}
		if s.creds.SigningSecret != "" && rec.Authorization != "" {
			if claims, err := auth.ValidateToken(rec.Authorization, s.creds.SigningSecret); err == nil {
				rec.Claims = claims
			}
		}

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		rec.Status = ww.Status()
		if rec.Status == 0 {
			rec.Status = http.StatusOK
		}
		s.mu.Lock()
		s.requests = append(s.requests, rec)
		s.mu.Unlock()
	})
}

func (s *Server) injectFailure(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		status := s.failStatus
		s.mu.Unlock()

		if status != 0 {
			respondWithStatus(w, r, status)
			return
		}
		next.ServeHTTP(w, r)
	})
}
