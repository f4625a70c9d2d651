package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrAccountLockedOut      = errors.New("account is locked out")
	ErrAccountNotApproved    = errors.New("account is not approved")
	ErrUserNotFound          = errors.New("user not found")
	ErrRoleNotFound          = errors.New("role not found")
	ErrDuplicateUserName     = errors.New("username already exists")
	ErrDuplicateEmail        = errors.New("email address already in use")
	ErrDuplicateRole         = errors.New("role already exists")
	ErrUnsupportedOperation  = errors.New("operation is not supported")
	ErrSchemaIncompatible    = errors.New("backing store schema version is not compatible")
	ErrPasswordResetDisabled = errors.New("password reset is disabled")
	ErrPasswordRetrievalOff  = errors.New("password retrieval is disabled")
	ErrCannotDecodeHashed    = errors.New("hashed passwords cannot be decoded")
	ErrWrongPasswordAnswer   = errors.New("incorrect password answer")
	ErrUserAlreadyInRole     = errors.New("user is already in role")
	ErrUserNotInRole         = errors.New("user is not in role")
)

// ValidationError reports caller input rejected before any backing-store call.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for the named field.
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ProviderError is the catch-all for unexpected backing-store status codes or
// transport failures. Name carries the offending username or rolename when
// the backing store reported one.
type ProviderError struct {
	Op     string
	Status int
	Name   string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s failed with status %d for %q", e.Op, e.Status, e.Name)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s failed with status %d", e.Op, e.Status)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CredentialError wraps a credential-specific failure so that handlers can
// avoid leaking detail to end users while still logging specifics
// server-side.
type CredentialError struct {
	Status int
	Err    error
}

func (e *CredentialError) Error() string { return e.Err.Error() }

func (e *CredentialError) Unwrap() error { return e.Err }

// IsCredential reports whether err is a CredentialError.
func IsCredential(err error) bool {
	var ce *CredentialError
	return errors.As(err, &ce)
}
