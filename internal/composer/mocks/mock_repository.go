package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"wakili/internal/model"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateDocument(ctx context.Context, cmd model.CreateDocument) (*model.CaseDocument, error) {
	args := m.Called(ctx, cmd)
	if doc, ok := args.Get(0).(*model.CaseDocument); ok {
		return doc, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockLogSink struct {
	mock.Mock
}

func (m *MockLogSink) RecordLog(ctx context.Context, action string) error {
	args := m.Called(ctx, action)
	return args.Error(0)
}
