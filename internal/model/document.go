package model

import "time"

// CaseDocument represents a document attached to a legal case (or a general,
// case-less document). It is a pure domain model with no persistence tags
// beyond the JSON wire names; it can be used across layers (client, composer,
// dashboard) without coupling to any backend implementation.
type CaseDocument struct {
	DocumentID   int64     `json:"document_id"`
	CaseID       *int64    `json:"case_id,omitempty"`
	DocumentName string    `json:"document_name"`
	DocumentURL  string    `json:"document_url"`
	MimeType     string    `json:"mime_type"`
	FileSize     int64     `json:"file_size"`
	UpdatedAt    time.Time `json:"updated_at"`
	// Checksum is reserved for a future integrity check. The client never
	// computes or verifies it.
	Checksum string `json:"checksum,omitempty"`
}

// BelongsTo reports whether the document is attached to the given case.
func (d *CaseDocument) BelongsTo(caseID int64) bool {
	return d.CaseID != nil && *d.CaseID == caseID
}
