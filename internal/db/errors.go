package db

import (
	"errors"
	"fmt"
)

// Errors returned when the Knowledge store cannot be used.
var (
	ErrDatastoreNotFound     = errors.New("screen time database not found")
	ErrDatastoreAccessDenied = errors.New("cannot read screen time database")
	ErrDatastoreQuery        = errors.New("database error")
)

// fullDiskAccessHint is appended to access errors on macOS.
const fullDiskAccessHint = "grant your terminal Full Disk Access in System Settings > Privacy & Security > Full Disk Access"

// QueryError wraps a failure while executing or reading a statement.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrDatastoreQuery, e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrDatastoreQuery.
func (e *QueryError) Is(target error) bool {
	return target == ErrDatastoreQuery
}

func queryError(op string, err error) error {
	return &QueryError{Op: op, Err: err}
}
