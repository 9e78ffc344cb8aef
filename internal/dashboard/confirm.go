package dashboard

import (
	"context"
	"errors"

	"wakili/internal/client"
	"wakili/internal/model"
)

// ConfirmState is the deletion flow's state.
type ConfirmState string

const (
	// StateConfirming: the dialog is open, showing the target's fields.
	StateConfirming ConfirmState = "confirming"
	// StatePending: the delete request is in flight.
	StatePending ConfirmState = "pending"
	// StateClosed: the flow is finished (confirmed or cancelled).
	StateClosed ConfirmState = "closed"
)

var (
	ErrConfirmClosed  = errors.New("confirmation dialog is closed")
	ErrConfirmPending = errors.New("delete request already in flight")
)

// DeleteConfirmation is the mandatory two-step guard in front of document
// deletion. It is created already holding a snapshot of the target's
// identifying fields, so no delete request can ever be issued without the
// user having seen them.
type DeleteConfirmation struct {
	list    *DocumentList
	target  model.CaseDocument
	state   ConfirmState
	lastErr error
}

func newDeleteConfirmation(list *DocumentList, target model.CaseDocument) *DeleteConfirmation {
	return &DeleteConfirmation{list: list, target: target, state: StateConfirming}
}

// State returns the flow's current state.
func (f *DeleteConfirmation) State() ConfirmState { return f.state }

// Target returns the snapshot of the document being deleted, for rendering in
// the confirmation prompt (id, name, size, case, last-updated).
func (f *DeleteConfirmation) Target() model.CaseDocument { return f.target }

// LastError returns the failure from the most recent confirm attempt, or nil.
func (f *DeleteConfirmation) LastError() error { return f.lastErr }

// Confirm issues the delete. On success the flow closes and the list
// refetches. On failure the dialog stays open so the user can retry or
// cancel; a NotFound failure in particular keeps it open for cancel.
func (f *DeleteConfirmation) Confirm(ctx context.Context) (*model.DeleteResult, error) {
	switch f.state {
	case StatePending:
		return nil, ErrConfirmPending
	case StateClosed:
		return nil, ErrConfirmClosed
	}

	f.state = StatePending
	res, err := f.list.repo.DeleteDocument(ctx, f.target.DocumentID)
	if err != nil {
		f.state = StateConfirming
		f.lastErr = err
		return nil, err
	}

	f.state = StateClosed
	f.lastErr = nil
	if loadErr := f.list.Load(ctx); loadErr != nil {
		return res, loadErr
	}
	return res, nil
}

// Cancel closes the dialog with no network call.
func (f *DeleteConfirmation) Cancel() error {
	if f.state == StatePending {
		return ErrConfirmPending
	}
	f.state = StateClosed
	return nil
}

// IsRetryable reports whether the last failure is worth retrying from the
// open dialog (network and server failures are; a vanished document is not).
func (f *DeleteConfirmation) IsRetryable() bool {
	if f.lastErr == nil {
		return false
	}
	return !client.IsNotFound(f.lastErr)
}
