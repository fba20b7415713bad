package cloudpdf

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func documentPath(id string) string {
	return "/documents/" + url.PathEscape(id)
}

func documentFilePath(id, fileID string) string {
	return documentPath(id) + "/files/" + url.PathEscape(fileID)
}

// CreateDocument creates a document; params is sent as the request body
func (c *Client) CreateDocument(ctx context.Context, params Params) (json.RawMessage, error) {
	return c.call(ctx, FuncCreateDocument, http.MethodPost, "/documents", params, true)
}

func (c *Client) GetDocument(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncGetDocument, http.MethodGet, documentPath(id), Params{"id": id}, false)
}

// UpdateDocument replaces the document's fields with params. The body is params plus the id.
func (c *Client) UpdateDocument(ctx context.Context, id string, params Params) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncUpdateDocument, http.MethodPut, documentPath(id), merge(Params{"id": id}, params), true)
}

func (c *Client) DeleteDocument(ctx context.Context, id string) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncDeleteDocument, http.MethodDelete, documentPath(id), Params{"id": id}, false)
}

// CreateNewFileVersion starts the upload of a new file version for a document.
// The response describes the file, including where to upload its content.
func (c *Client) CreateNewFileVersion(ctx context.Context, id string, params Params) (json.RawMessage, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncCreateNewFileVersion, http.MethodPost, documentPath(id)+"/files", merge(Params{"id": id}, params), true)
}

// UploadDocumentFileComplete marks the upload of a file version as finished
func (c *Client) UploadDocumentFileComplete(ctx context.Context, id, fileID string, params Params) (json.RawMessage, error) {
	if id == "" || fileID == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncUploadDocumentFileComplete, http.MethodPatch, documentFilePath(id, fileID),
		merge(Params{"id": id, "fileId": fileID}, params), true)
}

func (c *Client) GetDocumentFile(ctx context.Context, id, fileID string) (json.RawMessage, error) {
	if id == "" || fileID == "" {
		return nil, ErrEmptyID
	}
	return c.call(ctx, FuncGetDocumentFile, http.MethodGet, documentFilePath(id, fileID), Params{"id": id, "fileId": fileID}, false)
}
