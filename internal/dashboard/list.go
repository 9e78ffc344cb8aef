package dashboard

import (
	"context"

	"wakili/internal/client"
	"wakili/internal/model"
)

// Repository is the slice of the repository client the list view needs.
type Repository interface {
	ListDocuments(ctx context.Context) ([]model.CaseDocument, error)
	ListByCase(ctx context.Context, caseID int64) ([]model.CaseDocument, error)
	UpdateDocument(ctx context.Context, documentID int64, cmd model.UpdateDocument) (*model.CaseDocument, error)
	DeleteDocument(ctx context.Context, documentID int64) (*model.DeleteResult, error)
}

// DocumentList presents the current document set, global or scoped to one
// case, with client-side substring filtering. A fetch failure is kept on the
// view so the caller can offer a retry; retry is user-initiated only.
type DocumentList struct {
	repo   Repository
	caseID *int64

	docs    []model.CaseDocument
	term    string
	lastErr error
	loaded  bool
}

// NewDocumentList creates a global list view. Pass a case id via NewCaseList
// for a case-scoped view.
func NewDocumentList(repo Repository) *DocumentList {
	return &DocumentList{repo: repo}
}

// NewCaseList creates a list view scoped to one case.
func NewCaseList(repo Repository, caseID int64) *DocumentList {
	return &DocumentList{repo: repo, caseID: &caseID}
}

// Load fetches the document set. A case with no documents is an empty result,
// not an error.
func (v *DocumentList) Load(ctx context.Context) error {
	var (
		docs []model.CaseDocument
		err  error
	)
	if v.caseID != nil {
		docs, err = v.repo.ListByCase(ctx, *v.caseID)
		if client.IsNotFound(err) {
			docs, err = nil, nil
		}
	} else {
		docs, err = v.repo.ListDocuments(ctx)
	}
	if err != nil {
		v.lastErr = err
		return err
	}
	v.docs = docs
	v.lastErr = nil
	v.loaded = true
	return nil
}

// Retry re-issues the failed fetch. It is the only retry mechanism; nothing
// retries automatically.
func (v *DocumentList) Retry(ctx context.Context) error { return v.Load(ctx) }

// LastError returns the most recent fetch failure, or nil.
func (v *DocumentList) LastError() error { return v.lastErr }

// Loaded reports whether at least one fetch has succeeded.
func (v *DocumentList) Loaded() bool { return v.loaded }

// SetSearch updates the filter term. Visible results are derived, never
// stored back into the fetched set.
func (v *DocumentList) SetSearch(term string) { v.term = term }

// Visible returns the filtered document set for the current search term.
func (v *DocumentList) Visible() []model.CaseDocument {
	return Filter(v.docs, v.term)
}

// Find returns the loaded document with the given id, or nil.
func (v *DocumentList) Find(documentID int64) *model.CaseDocument {
	for i := range v.docs {
		if v.docs[i].DocumentID == documentID {
			return &v.docs[i]
		}
	}
	return nil
}

// OpenURL resolves the row-level Open action: the caller navigates to the
// returned url in a new context. No document bytes are handled locally.
func (v *DocumentList) OpenURL(documentID int64) (string, bool) {
	d := v.Find(documentID)
	if d == nil {
		return "", false
	}
	return d.DocumentURL, true
}

// Update applies a row-level edit and refetches the list on success.
func (v *DocumentList) Update(ctx context.Context, documentID int64, cmd model.UpdateDocument) (*model.CaseDocument, error) {
	doc, err := v.repo.UpdateDocument(ctx, documentID, cmd)
	if err != nil {
		return nil, err
	}
	if err := v.Load(ctx); err != nil {
		return doc, err
	}
	return doc, nil
}

// ConfirmDelete starts the guarded deletion flow for one row.
func (v *DocumentList) ConfirmDelete(documentID int64) (*DeleteConfirmation, error) {
	d := v.Find(documentID)
	if d == nil {
		return nil, client.NewValidationError("document is not in the current list")
	}
	return newDeleteConfirmation(v, *d), nil
}
