package repository

import "errors"

// Package repository contains data access layer abstractions.
// Implementations live in subpackages: postgres, mongo and memory.

// ErrNotFound is returned by single-record lookups and mutations when no record matches.
var ErrNotFound = errors.New("record not found")

// PageResult is a generic pagination result wrapper.
// Total counts every matching record, not only the ones in Items.
type PageResult[T any] struct {
	Items []T
	Total int
}
