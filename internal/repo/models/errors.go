package models

import "github.com/nikmy/intersched/pkg/errors"

var (
	// ErrNotFound is returned when a record the operation depends on does not exist.
	ErrNotFound = errors.Error("record not found")

	// ErrConflict is returned when a write violates a uniqueness or reference constraint.
	ErrConflict = errors.Error("record conflicts with existing data")
)
