package repository

import "errors"

// Domain-level errors implementations are expected to surface instead of
// driver- or store-specific failures. ErrAlreadyExists from TeamPlayer
// creation is the storage backstop for the active-duplicate invariant.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrConflict      = errors.New("conflict")
)
