package client

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"validation", NewValidationError("choose a document"), KindValidation},
		{"not found", notFoundError("NOT_FOUND", "document not found"), KindNotFound},
		{"network", networkError(assert.AnError), KindNetwork},
		{"server", serverError(500, "INTERNAL_ERROR", "boom"), KindServer},
		{"wrapped", fmt.Errorf("load list: %w", notFoundError("", "gone")), KindNotFound},
		{"foreign error", assert.AnError, Kind("")},
		{"nil", nil, Kind("")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	assert.Equal(t, "not_found (NOT_FOUND): document not found",
		notFoundError("NOT_FOUND", "document not found").Error())
	assert.Equal(t, "validation: choose a document",
		NewValidationError("choose a document").Error())
}

func TestNetworkErrorUnwraps(t *testing.T) {
	err := networkError(assert.AnError)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestCacheInvalidation(t *testing.T) {
	c := newTagCache()

	c.put(tagDocument, "all", []int{1, 2})
	v, ok := c.get(tagDocument, "all")
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2}, v)

	_, ok = c.get(tagDocument, "other")
	assert.False(t, ok)

	c.invalidate(tagDocument)
	_, ok = c.get(tagDocument, "all")
	assert.False(t, ok)
}
