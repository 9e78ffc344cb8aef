package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"

	"github.com/google/uuid"

	"wakili/internal/model"
	"wakili/internal/repository"
	"wakili/internal/storage"
)

var (
	ErrIDRequired  = errors.New("document id is required")
	ErrNotFound    = errors.New("document not found")
	ErrContentNil  = errors.New("document content is nil")
	ErrNameMissing = errors.New("document name is required")
)

// DocumentService defines the dev backend's use cases for case documents.
type DocumentService interface {
	// Create stores the uploaded content, computes its checksum, saves the
	// record, and rolls back storage if the record save fails.
	Create(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error)

	// List returns all documents in creation order.
	List(ctx context.Context) ([]model.CaseDocument, error)

	// ListByCase returns the documents scoped to one case.
	// A case with no documents fails with ErrNotFound.
	ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error)

	// Get returns a single document by its ID.
	Get(ctx context.Context, id int64) (*model.CaseDocument, error)

	// Update applies a partial update of the mutable fields (name, url).
	Update(ctx context.Context, id int64, cmd model.UpdateDocument) (*model.CaseDocument, error)

	// Delete removes a document from both storage and the repository.
	Delete(ctx context.Context, id int64) (*model.DeleteResult, error)

	// Open streams a stored blob by its storage key, for serving file URLs.
	Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error)
}

// documentService is a concrete implementation of DocumentService.
type documentService struct {
	store storage.Storage
	repo  repository.DocumentRepository
}

// NewDocumentService constructs a new DocumentService.
func NewDocumentService(store storage.Storage, repo repository.DocumentRepository) DocumentService {
	return &documentService{store: store, repo: repo}
}

func (s *documentService) Create(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error) {
	if cmd.Content == nil {
		return nil, ErrContentNil
	}
	if cmd.DocumentName == "" {
		return nil, ErrNameMissing
	}

	// Content is read once: hashed while buffered for storage.
	data, err := io.ReadAll(cmd.Content)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	sum := sha256.Sum256(data)

	// Storage key: UUID + original extension, under documents/.
	ext := filepath.Ext(cmd.DocumentName)
	key := path.Join("documents", uuid.New().String()+ext)

	objInfo, err := s.store.Put(ctx, key, bytes.NewReader(data), storage.PutObjectOptions{
		Size:        int64(len(data)),
		ContentType: cmd.MimeType,
		Metadata: map[string]string{
			"original-filename": cmd.DocumentName,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	rec := &repository.Record{
		CaseDocument: model.CaseDocument{
			CaseID:       cmd.CaseID,
			DocumentName: cmd.DocumentName,
			DocumentURL:  "/files/" + key,
			MimeType:     cmd.MimeType,
			FileSize:     objInfo.Size,
			Checksum:     hex.EncodeToString(sum[:]),
		},
		StorageKey: key,
	}
	stored, err := s.repo.Create(ctx, rec)
	if err != nil {
		// Rollback: delete the object from storage
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			return nil, fmt.Errorf("record save failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("record save failed: %w", err)
	}
	doc := stored.CaseDocument
	return &doc, nil
}

func (s *documentService) List(ctx context.Context) ([]model.CaseDocument, error) {
	recs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDocuments(recs), nil
}

func (s *documentService) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	recs, err := s.repo.FindByCase(ctx, caseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toDocuments(recs), nil
}

func (s *documentService) Get(ctx context.Context, id int64) (*model.CaseDocument, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	doc := rec.CaseDocument
	return &doc, nil
}

func (s *documentService) Update(ctx context.Context, id int64, cmd model.UpdateDocument) (*model.CaseDocument, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.Update(ctx, id, cmd)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	doc := rec.CaseDocument
	return &doc, nil
}

// Delete removes the blob first, then the record. A missing blob is ignored;
// a missing record surfaces as ErrNotFound.
func (s *documentService) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	if id <= 0 {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if rec.StorageKey != "" {
		if err := s.store.Delete(ctx, rec.StorageKey); err != nil {
			return nil, fmt.Errorf("delete storage: %w", err)
		}
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.DeleteResult{Success: true, DocumentID: id}, nil
}

func (s *documentService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	return s.store.Get(ctx, key)
}

func toDocuments(recs []repository.Record) []model.CaseDocument {
	docs := make([]model.CaseDocument, len(recs))
	for i, rec := range recs {
		docs[i] = rec.CaseDocument
	}
	return docs
}
