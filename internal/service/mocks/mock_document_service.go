package mocks

import (
	"context"
	"io"

	"wakili/internal/model"
	"wakili/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Create(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context) ([]model.CaseDocument, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockDocumentService) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.CaseDocument), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, id int64) (*model.CaseDocument, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockDocumentService) Update(ctx context.Context, id int64, cmd model.UpdateDocument) (*model.CaseDocument, error) {
	args := m.Called(ctx, id, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CaseDocument), args.Error(1)
}

func (m *MockDocumentService) Delete(ctx context.Context, id int64) (*model.DeleteResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DeleteResult), args.Error(1)
}

func (m *MockDocumentService) Open(ctx context.Context, key string) (io.ReadCloser, storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	var rc io.ReadCloser
	if args.Get(0) != nil {
		rc = args.Get(0).(io.ReadCloser)
	}
	return rc, args.Get(1).(storage.ObjectInfo), args.Error(2)
}
