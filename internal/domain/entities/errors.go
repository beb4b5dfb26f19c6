package entities

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidEstimate matches every *ValidationError through errors.Is.
	ErrInvalidEstimate = errors.New("invalid estimate")
	// ErrRemote matches every *RemoteError through errors.Is.
	ErrRemote = errors.New("remote store error")
	// ErrLocalStore matches every *LocalStoreError through errors.Is.
	ErrLocalStore = errors.New("local store error")
	// ErrFreeQuotaExceeded is returned when a free account tries to create past the limit.
	ErrFreeQuotaExceeded = errors.New("free estimate quota exceeded")
)

// ValidationReason names the missing required field.
type ValidationReason string

const (
	ValidationMissingContractorName ValidationReason = "missing_contractor_name"
	ValidationMissingClientName     ValidationReason = "missing_client_name"
	ValidationNoItems               ValidationReason = "no_items"
	ValidationFieldTooLong          ValidationReason = "field_too_long"
	ValidationTooManyItems          ValidationReason = "too_many_items"
)

// ValidationError rejects an estimate before any persistence attempt.
// Field is set for length violations.
type ValidationError struct {
	Reason ValidationReason
	Field  string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid estimate: %s: %s", e.Reason, e.Field)
	}
	return fmt.Sprintf("invalid estimate: %s", e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidEstimate
}

// RemoteErrorKind classifies remote store failures.
type RemoteErrorKind string

const (
	RemoteUnreachable  RemoteErrorKind = "unreachable"
	RemoteUnauthorized RemoteErrorKind = "unauthorized"
	RemoteServerFault  RemoteErrorKind = "server_fault"
)

// RemoteError is surfaced to callers as-is; the core never retries it.
type RemoteError struct {
	Kind RemoteErrorKind
	Op   string
	Err  error
}

func NewRemoteError(kind RemoteErrorKind, op string, err error) *RemoteError {
	return &RemoteError{Kind: kind, Op: op, Err: err}
}

func (e *RemoteError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("remote %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("remote %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

func (e *RemoteError) Is(target error) bool {
	return target == ErrRemote
}

// IsRemoteKind reports whether err is a RemoteError of the given kind.
func IsRemoteKind(err error, kind RemoteErrorKind) bool {
	var re *RemoteError
	return errors.As(err, &re) && re.Kind == kind
}

// LocalStoreError is fatal to the current operation only.
type LocalStoreError struct {
	Op  string
	Err error
}

func (e *LocalStoreError) Error() string {
	return fmt.Sprintf("local store %s: %v", e.Op, e.Err)
}

func (e *LocalStoreError) Unwrap() error { return e.Err }

func (e *LocalStoreError) Is(target error) bool {
	return target == ErrLocalStore
}

// ErrAccountExists is returned when creating an account whose id is taken.
var ErrAccountExists = errors.New("account already exists")
