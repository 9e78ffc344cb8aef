package mocks

import (
	"context"

	"wakili/internal/model"
	"wakili/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) Create(ctx context.Context, rec *repository.Record) (*repository.Record, error) {
	args := m.Called(ctx, rec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Record), args.Error(1)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id int64) (*repository.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Record), args.Error(1)
}

func (m *MockDocumentRepository) FindByCase(ctx context.Context, caseID int64) ([]repository.Record, error) {
	args := m.Called(ctx, caseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Record), args.Error(1)
}

func (m *MockDocumentRepository) List(ctx context.Context) ([]repository.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.Record), args.Error(1)
}

func (m *MockDocumentRepository) Update(ctx context.Context, id int64, cmd model.UpdateDocument) (*repository.Record, error) {
	args := m.Called(ctx, id, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.Record), args.Error(1)
}

func (m *MockDocumentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
