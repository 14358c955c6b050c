package domain

import "errors"

// ErrNotFound signals that no live todo matches the given identifier. Stores
// return it (possibly wrapped) from Get, Update and Delete; callers match it
// with errors.Is.
var ErrNotFound = errors.New("todo not found")

// ErrInvalidTitle signals a title that violates the minimum-length contract.
// It is a boundary-validation failure and must be raised before a store is
// invoked.
var ErrInvalidTitle = errors.New("title must have at least one character")
