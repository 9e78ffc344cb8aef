package model

import "io"

// CreateDocument carries the multipart payload for document creation:
// an optional owning case, a display name, and the raw file content.
type CreateDocument struct {
	CaseID       *int64
	DocumentName string
	MimeType     string
	Size         int64
	Content      io.Reader
}

// UpdateDocument is a partial update of a document's mutable fields.
// Nil fields are left untouched by the backend.
type UpdateDocument struct {
	DocumentName *string `json:"document_name,omitempty"`
	DocumentURL  *string `json:"document_url,omitempty"`
}

// DeleteResult is the backend acknowledgment for a document deletion.
type DeleteResult struct {
	Success    bool  `json:"success"`
	DocumentID int64 `json:"document_id"`
}
