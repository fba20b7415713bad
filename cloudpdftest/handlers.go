package cloudpdftest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nickabs/cloudpdf/internal/apperrors"
	"github.com/nickabs/cloudpdf/internal/context"
	"github.com/nickabs/cloudpdf/internal/response"
)

func respondWithStatus(w http.ResponseWriter, r *http.Request, status int) {
	response.RespondWithError(w, r, status, apperrors.FromStatus(status), http.StatusText(status))
}

func respondNotFound(w http.ResponseWriter, r *http.Request, kind, id string) {
	response.RespondWithError(w, r, http.StatusNotFound, apperrors.ErrCodeResourceNotFound, fmt.Sprintf("%s %s not found", kind, id))
}

// decodeFields reads a JSON object body
func decodeFields(r *http.Request) (map[string]any, error) {
	fields := map[string]any{}

	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request body is empty")
		}
		return nil, err
	}
	return fields, nil
}

func (s *Server) handleAccount(w http.ResponseWriter, r *http.Request) {
	response.RespondWithJSON(w, http.StatusOK, map[string]any{
		"cloudName": s.creds.CloudName,
		"plan":      "test",
		"documents": s.store.documentCount(),
	})
}

func (s *Server) handleAuth(w http.ResponseWriter, r *http.Request) {
	mode, _ := context.AuthMode(r.Context())
	res := map[string]any{
		"authenticated": true,
		"mode":          mode,
	}
	if claims, ok := context.Claims(r.Context()); ok {
		res["function"] = claims.Function
	}
	response.RespondWithJSON(w, http.StatusOK, res)
}

func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	response.RespondWithJSON(w, http.StatusCreated, s.store.createDocument(fields))
}

func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	doc, ok := s.store.document(id)
	if !ok {
		respondNotFound(w, r, "document", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, doc)
}

func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	doc, ok := s.store.replaceDocument(id, fields)
	if !ok {
		respondNotFound(w, r, "document", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, doc)
}

func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.deleteDocument(id) {
		respondNotFound(w, r, "document", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}

func (s *Server) handleCreateFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	file, ok := s.store.createFile(id, s.URL, fields)
	if !ok {
		respondNotFound(w, r, "document", id)
		return
	}
	response.RespondWithJSON(w, http.StatusCreated, file)
}

func (s *Server) handleGetFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fileID := chi.URLParam(r, "fileId")
	file, ok := s.store.file(id, fileID)
	if !ok {
		respondNotFound(w, r, "file", fileID)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, file)
}

func (s *Server) handleCompleteFile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fileID := chi.URLParam(r, "fileId")
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	file, ok := s.store.completeFile(id, fileID, fields)
	if !ok {
		respondNotFound(w, r, "file", fileID)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, file)
}

func (s *Server) handleListWebhooks(w http.ResponseWriter, r *http.Request) {
	response.RespondWithJSON(w, http.StatusOK, map[string]any{"webhooks": s.store.listWebhooks()})
}

func (s *Server) handleCreateWebhook(w http.ResponseWriter, r *http.Request) {
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	response.RespondWithJSON(w, http.StatusCreated, s.store.createWebhook(fields))
}

func (s *Server) handleGetWebhook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	hook, ok := s.store.webhook(id)
	if !ok {
		respondNotFound(w, r, "webhook", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, hook)
}

func (s *Server) handleUpdateWebhook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fields, err := decodeFields(r)
	if err != nil {
		response.RespondWithError(w, r, http.StatusBadRequest, apperrors.ErrCodeMalformedBody, fmt.Sprintf("could not decode request body: %v", err))
		return
	}
	hook, ok := s.store.replaceWebhook(id, fields)
	if !ok {
		respondNotFound(w, r, "webhook", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, hook)
}

func (s *Server) handleDeleteWebhook(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.store.deleteWebhook(id) {
		respondNotFound(w, r, "webhook", id)
		return
	}
	response.RespondWithJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
