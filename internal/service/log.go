package service

import (
	"context"
	"sync"
	"time"

	"wakili/internal/model"
)

// LogService records audit actions emitted by clients after successful
// document creation. Append-only; the dev backend keeps entries in memory.
type LogService interface {
	Record(ctx context.Context, action string) (*model.LogEntry, error)
	List(ctx context.Context) ([]model.LogEntry, error)
}

type memoryLogService struct {
	mu      sync.Mutex
	nextID  int64
	entries []model.LogEntry
}

// NewMemoryLogService creates an empty in-memory audit log.
func NewMemoryLogService() LogService {
	return &memoryLogService{nextID: 1}
}

func (s *memoryLogService) Record(_ context.Context, action string) (*model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry := model.LogEntry{
		LogID:     s.nextID,
		Action:    action,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	s.nextID++
	s.entries = append(s.entries, entry)
	out := entry
	return &out, nil
}

func (s *memoryLogService) List(_ context.Context) ([]model.LogEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.LogEntry(nil), s.entries...), nil
}
