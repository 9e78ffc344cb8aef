package repository

import (
	"context"
	"errors"

	"wakili/internal/model"
)

// ErrNotFound is returned when a record or case scope does not exist.
var ErrNotFound = errors.New("document not found")

// Record is the persisted shape of a document: the wire-visible fields plus
// the backend-private storage key the blob lives under.
type Record struct {
	model.CaseDocument
	StorageKey string
}

// DocumentRepository defines data access for document records. No business
// logic here; strictly persistence operations.
type DocumentRepository interface {
	// Create inserts a new record, assigning DocumentID and UpdatedAt.
	// Identities are never reused, even after deletion.
	Create(ctx context.Context, rec *Record) (*Record, error)

	// FindByID returns a record by its ID, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*Record, error)

	// FindByCase returns the records scoped to one case, in creation order.
	// A case with no documents returns ErrNotFound.
	FindByCase(ctx context.Context, caseID int64) ([]Record, error)

	// List returns all records in creation order.
	List(ctx context.Context) ([]Record, error)

	// Update applies a partial update and advances UpdatedAt strictly
	// monotonically. Returns ErrNotFound for a missing id.
	Update(ctx context.Context, id int64, cmd model.UpdateDocument) (*Record, error)

	// Delete removes a record by ID. Returns ErrNotFound for a missing id;
	// delete is terminal.
	Delete(ctx context.Context, id int64) error
}
