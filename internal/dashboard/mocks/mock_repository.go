package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wakili/internal/model"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListDocuments(ctx context.Context) ([]model.CaseDocument, error) {
	args := m.Called(ctx)
	if docs, ok := args.Get(0).([]model.CaseDocument); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error) {
	args := m.Called(ctx, caseID)
	if docs, ok := args.Get(0).([]model.CaseDocument); ok {
		return docs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateDocument(ctx context.Context, documentID int64, cmd model.UpdateDocument) (*model.CaseDocument, error) {
	args := m.Called(ctx, documentID, cmd)
	if doc, ok := args.Get(0).(*model.CaseDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) DeleteDocument(ctx context.Context, documentID int64) (*model.DeleteResult, error) {
	args := m.Called(ctx, documentID)
	if res, ok := args.Get(0).(*model.DeleteResult); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}
