package repository

import "errors"

// ErrNotFound is returned when an operation targets a record that does
// not exist. Callers decide whether that is a 404 or a normal outcome.
var ErrNotFound = errors.New("record not found")
