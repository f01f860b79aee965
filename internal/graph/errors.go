package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph integrity violations. Every violation is fatal
// for the run and maps to a non-zero exit code.
var (
	ErrDuplicateID     = errors.New("id already in use")
	ErrMissingEndpoint = errors.New("edge endpoint not in graph")
	ErrWrongAS         = errors.New("node does not belong to this autonomous system")
)

// IntegrityError wraps a graph integrity violation with the operation
// and id that triggered it.
type IntegrityError struct {
	Op  string
	ID  int
	Err error
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("%s(%d): %v", e.Op, e.ID, e.Err)
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

func integrityErr(op string, id int, err error) error {
	return &IntegrityError{Op: op, ID: id, Err: err}
}
