package service

import "errors"

// ErrParentNotFound means a creation request referenced a parent id that
// does not resolve. Nothing is persisted when this is returned.
var ErrParentNotFound = errors.New("referenced parent not found")

// ErrInvalidValue means a field holds a value outside its allowed set.
// Nothing is persisted when this is returned.
var ErrInvalidValue = errors.New("invalid field value")
