// Package repository holds errors and helpers shared by the per-entity
// repository subpackages.
package repository

import "errors"

// ErrNotFound is returned when a requested document does not exist.
// Callers match it with errors.Is so they never depend on driver errors.
var ErrNotFound = errors.New("document not found")
