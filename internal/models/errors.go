package models

import (
	"errors"
	"fmt"
)

// Sentinel errors for the API error taxonomy. Stores and services
// return these (or a StoreError wrapping the driver failure); resolvers
// surface err.Error() as the GraphQL error message.
var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("username or email already taken")
	ErrUnauthorized      = errors.New("missing authorization")
	ErrInvalidCredential = errors.New("invalid credential")
	ErrAlreadyFollowing  = errors.New("already following this user")
	ErrAlreadyLiked      = errors.New("post already liked")
	ErrValidation        = errors.New("validation failed")
)

// StoreError wraps an underlying database or cache failure so callers
// can distinguish infrastructure faults from domain errors.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with the failing operation name
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
