package cloudpdftest

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Resource is a stored document, file or webhook as returned by the API
type Resource map[string]any

func (r Resource) clone() Resource {
	out := make(Resource, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// store keeps resources in insertion order so that listings are stable
type store struct {
	mu        sync.Mutex
	documents map[string]Resource
	files     map[string]map[string]Resource // document id -> file id -> file
	webhooks  map[string]Resource
	hookOrder []string
}

func newStore() *store {
	return &store{
		documents: map[string]Resource{},
		files:     map[string]map[string]Resource{},
		webhooks:  map[string]Resource{},
	}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// apply copies fields onto r, skipping identifiers that are owned by the server
func apply(r Resource, fields map[string]any, reserved ...string) {
	for k, v := range fields {
		skip := false
		for _, name := range reserved {
			if k == name {
				skip = true
				break
			}
		}
		if !skip {
			r[k] = v
		}
	}
}

func (s *store) createDocument(fields map[string]any) Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc := Resource{}
	apply(doc, fields, "id", "createdAt", "updatedAt")
	doc["id"] = uuid.NewString()
	doc["createdAt"] = now()
	doc["updatedAt"] = doc["createdAt"]

	s.documents[doc["id"].(string)] = doc
	return doc.clone()
}

func (s *store) document(id string) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[id]
	if !ok {
		return nil, false
	}
	return doc.clone(), true
}

// replaceDocument swaps the client supplied fields of a document, keeping server owned ones
func (s *store) replaceDocument(id string, fields map[string]any) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.documents[id]
	if !ok {
		return nil, false
	}

	doc := Resource{}
	apply(doc, fields, "id", "createdAt", "updatedAt", "fileId")
	doc["id"] = id
	doc["createdAt"] = old["createdAt"]
	doc["updatedAt"] = now()
	if fileID, ok := old["fileId"]; ok {
		doc["fileId"] = fileID
	}

	s.documents[id] = doc
	return doc.clone(), true
}

func (s *store) deleteDocument(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[id]; !ok {
		return false
	}
	delete(s.documents, id)
	delete(s.files, id)
	return true
}

func (s *store) documentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.documents)
}

// createFile registers a pending file version. uploadBase is prefixed to the upload url.
func (s *store) createFile(docID, uploadBase string, fields map[string]any) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.documents[docID]; !ok {
		return nil, false
	}

	fileID := uuid.NewString()
	file := Resource{}
	apply(file, fields, "id", "fileId", "documentId", "status", "uploadUrl", "createdAt")
	file["id"] = fileID
	file["documentId"] = docID
	file["status"] = "pending"
	file["uploadUrl"] = uploadBase + "/uploads/" + fileID
	file["createdAt"] = now()

	if s.files[docID] == nil {
		s.files[docID] = map[string]Resource{}
	}
	s.files[docID][fileID] = file
	return file.clone(), true
}

func (s *store) file(docID, fileID string) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[docID][fileID]
	if !ok {
		return nil, false
	}
	return file.clone(), true
}

// completeFile marks a file version uploaded and makes it the document's current file
func (s *store) completeFile(docID, fileID string, fields map[string]any) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	file, ok := s.files[docID][fileID]
	if !ok {
		return nil, false
	}
	apply(file, fields, "id", "fileId", "documentId", "status", "uploadUrl", "createdAt")
	file["status"] = "complete"
	file["completedAt"] = now()

	if doc, ok := s.documents[docID]; ok {
		doc["fileId"] = fileID
		doc["updatedAt"] = file["completedAt"]
	}
	return file.clone(), true
}

func (s *store) createWebhook(fields map[string]any) Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	hook := Resource{}
	apply(hook, fields, "id", "createdAt", "updatedAt")
	hook["id"] = uuid.NewString()
	hook["createdAt"] = now()
	hook["updatedAt"] = hook["createdAt"]

	id := hook["id"].(string)
	s.webhooks[id] = hook
	s.hookOrder = append(s.hookOrder, id)
	return hook.clone()
}

func (s *store) webhook(id string) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hook, ok := s.webhooks[id]
	if !ok {
		return nil, false
	}
	return hook.clone(), true
}

func (s *store) replaceWebhook(id string, fields map[string]any) (Resource, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.webhooks[id]
	if !ok {
		return nil, false
	}

	hook := Resource{}
	apply(hook, fields, "id", "createdAt", "updatedAt")
	hook["id"] = id
	hook["createdAt"] = old["createdAt"]
	hook["updatedAt"] = now()

	s.webhooks[id] = hook
	return hook.clone(), true
}

func (s *store) deleteWebhook(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.webhooks[id]; !ok {
		return false
	}
	delete(s.webhooks, id)
	for i, hookID := range s.hookOrder {
		if hookID == id {
			s.hookOrder = append(s.hookOrder[:i], s.hookOrder[i+1:]...)
			break
		}
	}
	return true
}

func (s *store) listWebhooks() []Resource {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Resource, 0, len(s.hookOrder))
	for _, id := range s.hookOrder {
		out = append(out, s.webhooks[id].clone())
	}
	return out
}
