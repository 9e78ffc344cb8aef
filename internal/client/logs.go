package client

import (
	"context"
	"net/http"

	"wakili/internal/model"
)

// RecordLog sends an audit entry to the log sink. Callers treat this as
// fire-and-forget: a failure must never roll back the operation being logged.
func (c *Client) RecordLog(ctx context.Context, action string) error {
	if action == "" {
		return NewValidationError("log action is required")
	}
	return c.doJSON(ctx, http.MethodPost, "/logs", model.LogEntry{Action: action}, nil)
}
