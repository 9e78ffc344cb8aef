package client

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"wakili/internal/model"
)

const (
	keyAllDocuments = "all"
	keyCasePrefix   = "case/"
)

// ListDocuments fetches every document visible to the caller. Results are
// cached under the Document tag until the next successful mutation.
func (c *Client) ListDocuments(ctx context.Context) ([]model.CaseDocument, error) {
	if v, ok := c.cache.get(tagDocument, keyAllDocuments); ok {
		return v.([]model.CaseDocument), nil
	}
	var docs []model.CaseDocument
	if err := c.do(ctx, http.MethodGet, "/documents", nil, "", &docs); err != nil {
		return nil, err
	}
	c.cache.put(tagDocument, keyAllDocuments, docs)
	return docs, nil
}

// GetDocument fetches a single document by its server-assigned identity.
func (c *Client) GetDocument(ctx context.Context, documentID int64) (*model.CaseDocument, error) {
	key := strconv.FormatInt(documentID, 10)
	if v, ok := c.cache.get(tagDocument, key); ok {
		doc := v.(model.CaseDocument)
		return &doc, nil
	}
	var doc model.CaseDocument
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/%d", documentID), nil, "", &doc); err != nil {
		return nil, err
	}
	c.cache.put(tagDocument, key, doc)
	return &doc, nil
}

// ListByCase fetches the documents scoped to one case. A case with no
// documents surfaces as KindNotFound; callers that treat that as an empty
// result should check IsNotFound.
func (c *Client) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	key := keyCasePrefix + strconv.FormatInt(caseID, 10)
	if v, ok := c.cache.get(tagDocument, key); ok {
		return v.([]model.CaseDocument), nil
	}
	var docs []model.CaseDocument
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/documents/by-case/%d", caseID), nil, "", &docs); err != nil {
		return nil, err
	}
	c.cache.put(tagDocument, key, docs)
	return docs, nil
}

// CreateDocument uploads a new document as multipart form data and returns the
// server-assigned record. The Document cache tag is invalidated on success so
// subsequent reads refetch.
func (c *Client) CreateDocument(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error) {
	if cmd.Content == nil {
		return nil, NewValidationError("document content is required")
	}
	if cmd.DocumentName == "" {
		return nil, NewValidationError("document name is required")
	}

	body, contentType, err := encodeMultipart(cmd)
	if err != nil {
		return nil, NewValidationError(fmt.Sprintf("encode multipart payload: %v", err))
	}

	var doc model.CaseDocument
	if err := c.do(ctx, http.MethodPost, "/documents", body, contentType, &doc); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagDocument)
	return &doc, nil
}

// UpdateDocument applies a partial update of a document's mutable fields
// (name, url reference) and invalidates the cache on success.
func (c *Client) UpdateDocument(ctx context.Context, documentID int64, cmd model.UpdateDocument) (*model.CaseDocument, error) {
	if cmd.DocumentName == nil && cmd.DocumentURL == nil {
		return nil, NewValidationError("no fields to update")
	}
	if cmd.DocumentName != nil && *cmd.DocumentName == "" {
		return nil, NewValidationError("document name cannot be empty")
	}
	if cmd.DocumentURL != nil && *cmd.DocumentURL == "" {
		return nil, NewValidationError("document url cannot be empty")
	}

	var doc model.CaseDocument
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/documents/%d", documentID), cmd, &doc); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagDocument)
	return &doc, nil
}

// DeleteDocument removes the record. Delete is terminal: the identity is never
// reused. A missing id surfaces as KindNotFound and is not retried here.
func (c *Client) DeleteDocument(ctx context.Context, documentID int64) (*model.DeleteResult, error) {
	var res model.DeleteResult
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/documents/%d", documentID), nil, "", &res); err != nil {
		return nil, err
	}
	c.cache.invalidate(tagDocument)
	return &res, nil
}

// encodeMultipart builds the multipart body for document creation. The file
// part is streamed through an in-memory buffer; uploads are bounded by the
// backend's configured size limit, not here.
func encodeMultipart(cmd model.CreateDocument) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		var err error
		defer func() { pw.CloseWithError(err) }()

		if cmd.CaseID != nil {
			if err = mw.WriteField("case_id", strconv.FormatInt(*cmd.CaseID, 10)); err != nil {
				return
			}
		}
		if err = mw.WriteField("document_name", cmd.DocumentName); err != nil {
			return
		}
		var part io.Writer
		if part, err = mw.CreateFormFile("file", cmd.DocumentName); err != nil {
			return
		}
		if _, err = io.Copy(part, cmd.Content); err != nil {
			return
		}
		err = mw.Close()
	}()

	return pr, mw.FormDataContentType(), nil
}
