package cloudpdftest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	internalMiddleware "github.com/nickabs/cloudpdf/internal/middleware"
)

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.RequestID)
	r.Use(internalMiddleware.LoggerMiddleware(s.logger))
	r.Use(s.recordRequest)
	r.Use(s.injectFailure)

	r.Route(basePath, func(r chi.Router) {
		r.Use(internalMiddleware.RequireJSON)
		r.Use(internalMiddleware.AuthorizationMiddleware(s.creds))

		// Account
		r.Get("/account", s.handleAccount)
		r.Get("/auth", s.handleAuth)

		// Documents & files
		r.Route("/documents", func(r chi.Router) {
			r.Post("/", s.handleCreateDocument)
			r.Get("/{id}", s.handleGetDocument)
			r.Put("/{id}", s.handleUpdateDocument)
			r.Delete("/{id}", s.handleDeleteDocument)
			r.Post("/{id}/files", s.handleCreateFile)
			r.Get("/{id}/files/{fileId}", s.handleGetFile)
			r.Patch("/{id}/files/{fileId}", s.handleCompleteFile)
		})

		// Webhooks
		r.Route("/webhooks", func(r chi.Router) {
			r.Get("/", s.handleListWebhooks)
			r.Post("/", s.handleCreateWebhook)
			r.Get("/{id}", s.handleGetWebhook)
			r.Put("/{id}", s.handleUpdateWebhook)
			r.Delete("/{id}", s.handleDeleteWebhook)
		})
	})

	return r
}
