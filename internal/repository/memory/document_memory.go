package memory

import (
	"context"
	"sync"
	"time"

	"wakili/internal/model"
	"wakili/internal/repository"
)

// DocumentMemory is an in-memory implementation of
// repository.DocumentRepository backing the development server. It is safe
// for concurrent use.
type DocumentMemory struct {
	mu     sync.RWMutex
	nextID int64
	order  []int64
	docs   map[int64]repository.Record
}

// NewDocumentMemory creates an empty in-memory document repository.
func NewDocumentMemory() *DocumentMemory {
	return &DocumentMemory{nextID: 1, docs: make(map[int64]repository.Record)}
}

var _ repository.DocumentRepository = (*DocumentMemory)(nil)

// Create assigns the next identity and stores the record. IDs advance even
// across deletions so an identity is never reused.
func (r *DocumentMemory) Create(_ context.Context, rec *repository.Record) (*repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *rec
	stored.DocumentID = r.nextID
	stored.UpdatedAt = r.clockAfter(time.Time{})
	r.nextID++

	r.docs[stored.DocumentID] = stored
	r.order = append(r.order, stored.DocumentID)
	out := stored
	return &out, nil
}

func (r *DocumentMemory) FindByID(_ context.Context, id int64) (*repository.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := rec
	return &out, nil
}

func (r *DocumentMemory) FindByCase(_ context.Context, caseID int64) ([]repository.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []repository.Record
	for _, id := range r.order {
		rec := r.docs[id]
		if rec.BelongsTo(caseID) {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, repository.ErrNotFound
	}
	return out, nil
}

func (r *DocumentMemory) List(_ context.Context) ([]repository.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]repository.Record, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.docs[id])
	}
	return out, nil
}

func (r *DocumentMemory) Update(_ context.Context, id int64, cmd model.UpdateDocument) (*repository.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.docs[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	if cmd.DocumentName != nil {
		rec.DocumentName = *cmd.DocumentName
	}
	if cmd.DocumentURL != nil {
		rec.DocumentURL = *cmd.DocumentURL
	}
	rec.UpdatedAt = r.clockAfter(rec.UpdatedAt)
	r.docs[id] = rec
	out := rec
	return &out, nil
}

func (r *DocumentMemory) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.docs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.docs, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clockAfter returns the current time, bumped if needed so it is strictly
// after prev. updated_at must be strictly increasing across a record's
// history even on coarse clocks.
func (r *DocumentMemory) clockAfter(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		now = prev.Add(time.Microsecond)
	}
	return now
}
