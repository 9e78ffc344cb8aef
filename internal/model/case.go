package model

// Case is an externally-owned legal matter record. The document manager
// treats cases as read-only reference data used to populate case pickers.
type Case struct {
	CaseID          int64  `json:"case_id"`
	CaseNumber      string `json:"case_number"`
	CaseTrackNumber string `json:"case_track_number"`
	CaseDescription string `json:"case_description"`
}

// LogEntry is a best-effort audit record emitted after successful document
// creation.
type LogEntry struct {
	LogID     int64  `json:"log_id,omitempty"`
	Action    string `json:"action"`
	CreatedAt string `json:"created_at,omitempty"`
}
