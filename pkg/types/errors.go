package types

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinels for errors.Is branching. The structured error types below carry
// the payloads; each bridges to its sentinel via Is.
var (
	ErrBackend      = errors.New("backend error")
	ErrMismatch     = errors.New("created item does not match expectations")
	ErrInvalidID    = errors.New("invalid item id")
	ErrNotFound     = errors.New("item not found")
	ErrRelationship = errors.New("relationship contains errors")
)

// BackendError wraps an opaque transport or driver failure. The core never
// retries; the wrapped error is surfaced verbatim to the caller.
type BackendError struct {
	Op  string // the operation that failed, e.g. "create task"
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error: %s: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

func (e *BackendError) Is(target error) bool { return target == ErrBackend }

// MismatchError reports that a create apparently succeeded at the transport
// level but the backend returned a materially different stored value than
// the client intended to persist (silent truncation, server-side
// defaulting). Both values are carried so callers can diff them.
type MismatchError[I Item] struct {
	Expected I
	Actual   I
}

func (e *MismatchError[I]) Error() string {
	return fmt.Sprintf("created item does not match expectations: expected %+v, got %+v",
		e.Expected, e.Actual)
}

func (e *MismatchError[I]) Is(target error) bool { return target == ErrMismatch }

// InvalidIDError reports a stored identifier that cannot be parsed as a
// UUID. It surfaces at the conversion boundary inside a Store
// implementation and is never silently defaulted.
type InvalidIDError struct {
	ID string // the raw identifier as stored
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("item id %q is not a valid UUID", e.ID)
}

func (e *InvalidIDError) Is(target error) bool { return target == ErrInvalidID }

// NotFoundError reports a lookup by id that found no record. ItemType and
// ID are carried so callers can branch on "create new" vs "fatal" without
// inspecting error text.
type NotFoundError struct {
	ItemType string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s found with id %s", e.ItemType, e.ID)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }
