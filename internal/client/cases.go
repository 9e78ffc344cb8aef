package client

import (
	"context"
	"net/http"

	"wakili/internal/model"
)

// ListCases fetches the externally-owned case catalog used to populate case
// pickers. Cases are read-only reference data and are not cached: the list is
// small and owned by another system.
func (c *Client) ListCases(ctx context.Context) ([]model.Case, error) {
	var cases []model.Case
	if err := c.do(ctx, http.MethodGet, "/cases", nil, "", &cases); err != nil {
		return nil, err
	}
	return cases, nil
}
