package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wakili/internal/client"
	"wakili/internal/dashboard/mocks"
	"wakili/internal/model"
)

func caseRef(id int64) *int64 { return &id }

func sampleDocs() []model.CaseDocument {
	return []model.CaseDocument{
		{DocumentID: 1, DocumentName: "Affidavit of Service.pdf", CaseID: caseRef(7), DocumentURL: "/files/a"},
		{DocumentID: 2, DocumentName: "Plaint.pdf", CaseID: caseRef(12), DocumentURL: "/files/b"},
		{DocumentID: 3, DocumentName: "retainer-agreement.pdf", DocumentURL: "/files/c"},
	}
}

func TestFilter(t *testing.T) {
	docs := sampleDocs()

	tests := []struct {
		name    string
		term    string
		wantIDs []int64
	}{
		{"empty term matches everything", "", []int64{1, 2, 3}},
		{"name substring case-insensitive", "AFFIDAVIT", []int64{1}},
		{"case id substring", "12", []int64{2}},
		{"single digit case id", "7", []int64{1}},
		{"no match", "zzz", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(docs, tt.term)
			var ids []int64
			for _, d := range got {
				ids = append(ids, d.DocumentID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}

	// The input set must never be mutated.
	assert.Equal(t, sampleDocs(), docs)
}

func TestLoadAndSearch(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	require.NoError(t, v.Load(context.Background()))
	assert.True(t, v.Loaded())
	assert.Len(t, v.Visible(), 3)

	v.SetSearch("plaint")
	visible := v.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, int64(2), visible[0].DocumentID)

	v.SetSearch("")
	assert.Len(t, v.Visible(), 3)
}

func TestLoadFailureAndRetry(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(nil, assert.AnError).Once()
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil).Once()

	v := NewDocumentList(repo)
	ctx := context.Background()

	require.Error(t, v.Load(ctx))
	assert.Error(t, v.LastError())
	assert.False(t, v.Loaded())

	// Nothing retried on its own; only the explicit Retry refetches.
	require.NoError(t, v.Retry(ctx))
	assert.NoError(t, v.LastError())
	assert.Len(t, v.Visible(), 3)
	repo.AssertExpectations(t)
}

func TestCaseListEmptyIsNotAnError(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListByCase", mock.Anything, int64(42)).
		Return(nil, &client.Error{Kind: client.KindNotFound, Message: "no documents"})

	v := NewCaseList(repo, 42)
	require.NoError(t, v.Load(context.Background()))
	assert.Empty(t, v.Visible())
	assert.True(t, v.Loaded())
}

func TestOpenURL(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	require.NoError(t, v.Load(context.Background()))

	url, ok := v.OpenURL(2)
	assert.True(t, ok)
	assert.Equal(t, "/files/b", url)

	_, ok = v.OpenURL(99)
	assert.False(t, ok)
}

func TestUpdateRefetches(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	name := "Amended Plaint.pdf"
	repo.On("UpdateDocument", ctx, int64(2), model.UpdateDocument{DocumentName: &name}).
		Return(&model.CaseDocument{DocumentID: 2, DocumentName: name, UpdatedAt: time.Now()}, nil)

	doc, err := v.Update(ctx, 2, model.UpdateDocument{DocumentName: &name})
	require.NoError(t, err)
	assert.Equal(t, name, doc.DocumentName)

	// One load up front, one after the update.
	repo.AssertNumberOfCalls(t, "ListDocuments", 2)
}

func TestConfirmDelete(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	confirm, err := v.ConfirmDelete(1)
	require.NoError(t, err)
	assert.Equal(t, StateConfirming, confirm.State())

	// The prompt shows the snapshot of the target's fields.
	target := confirm.Target()
	assert.Equal(t, int64(1), target.DocumentID)
	assert.Equal(t, "Affidavit of Service.pdf", target.DocumentName)

	// No delete was issued while the dialog sat open.
	repo.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)

	repo.On("DeleteDocument", ctx, int64(1)).
		Return(&model.DeleteResult{Success: true, DocumentID: 1}, nil)

	res, err := confirm.Confirm(ctx)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, StateClosed, confirm.State())

	// Closed dialogs refuse further confirms.
	_, err = confirm.Confirm(ctx)
	assert.ErrorIs(t, err, ErrConfirmClosed)
}

func TestConfirmDeleteUnknownRow(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	require.NoError(t, v.Load(context.Background()))

	_, err := v.ConfirmDelete(99)
	assert.True(t, client.IsValidation(err))
}

func TestCancelMakesNoNetworkCall(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	require.NoError(t, v.Load(context.Background()))

	confirm, err := v.ConfirmDelete(3)
	require.NoError(t, err)
	require.NoError(t, confirm.Cancel())
	assert.Equal(t, StateClosed, confirm.State())

	repo.AssertNotCalled(t, "DeleteDocument", mock.Anything, mock.Anything)
}

func TestConfirmFailureKeepsDialogOpen(t *testing.T) {
	repo := new(mocks.MockRepository)
	repo.On("ListDocuments", mock.Anything).Return(sampleDocs(), nil)

	v := NewDocumentList(repo)
	ctx := context.Background()
	require.NoError(t, v.Load(ctx))

	confirm, err := v.ConfirmDelete(1)
	require.NoError(t, err)

	// A vanished document keeps the dialog open but is not retryable.
	repo.On("DeleteDocument", ctx, int64(1)).
		Return(nil, &client.Error{Kind: client.KindNotFound, Message: "document not found"}).Once()

	_, err = confirm.Confirm(ctx)
	require.Error(t, err)
	assert.Equal(t, StateConfirming, confirm.State())
	assert.False(t, confirm.IsRetryable())

	// A network failure is retryable from the same open dialog.
	repo.On("DeleteDocument", ctx, int64(1)).
		Return(nil, &client.Error{Kind: client.KindNetwork, Message: "connection refused"}).Once()

	_, err = confirm.Confirm(ctx)
	require.Error(t, err)
	assert.Equal(t, StateConfirming, confirm.State())
	assert.True(t, confirm.IsRetryable())

	require.NoError(t, confirm.Cancel())
}
