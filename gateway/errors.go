package gateway

import (
	"errors"
	"fmt"
)

// PersistenceError is returned for any failed gateway call: network,
// authorization, constraint violation, or row decoding.
type PersistenceError struct {
	Err     error
	Op      string
	Table   string
	Message string
}

func (e *PersistenceError) Error() string {
	msg := fmt.Sprintf("%s %s failed", e.Op, e.Table)

	if e.Message != "" {
		msg += ": " + e.Message
	}

	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}

	return msg
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// DecodeError reports a row that did not match the expected schema.
type DecodeError struct {
	Err   error
	Table string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unexpected row shape in %s: %v", e.Table, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IsPersistence reports whether err originates from a gateway call.
func IsPersistence(err error) bool {
	var perr *PersistenceError
	return errors.As(err, &perr)
}

func persistErr(op, table string, err error) *PersistenceError {
	return &PersistenceError{Op: op, Table: table, Err: err}
}

func decodeErr(op, table string, err error) *PersistenceError {
	return &PersistenceError{
		Op:    op,
		Table: table,
		Err:   &DecodeError{Table: table, Err: err},
	}
}
