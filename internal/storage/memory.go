package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// memoryStorage implements the Storage interface with in-process byte
// buffers. It backs the development server; nothing survives a restart.
// It is safe for concurrent use by multiple goroutines.
type memoryStorage struct {
	mu      sync.RWMutex
	objects map[string]memoryObject
}

type memoryObject struct {
	data []byte
	info ObjectInfo
}

// NewMemory creates an empty in-memory blob store.
func NewMemory() Storage {
	return &memoryStorage{objects: make(map[string]memoryObject)}
}

// Put stores the object, reading the stream fully into memory.
func (m *memoryStorage) Put(_ context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("read object content: %w", err)
	}
	if opt.Size >= 0 && opt.Size != int64(len(data)) {
		return ObjectInfo{}, fmt.Errorf("content size mismatch: declared %d, read %d", opt.Size, len(data))
	}

	info := ObjectInfo{
		Key:          key,
		Size:         int64(len(data)),
		ContentType:  opt.ContentType,
		LastModified: time.Now().UTC(),
		Metadata:     opt.Metadata,
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = memoryObject{data: data, info: info}
	return info, nil
}

// Get returns the stored content as a reader along with its info.
func (m *memoryStorage) Get(_ context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	obj, ok := m.objects[key]
	if !ok {
		return nil, ObjectInfo{}, ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(obj.data)), obj.info, nil
}

// Delete removes an object by key. Deleting a missing key is not an error.
func (m *memoryStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}
