package chain

import (
	"errors"
	"fmt"
)

// ErrNotFound marks a lookup for a block the node does not have yet,
// typically a height past the finalized tip.
var ErrNotFound = errors.New("block not found")

// ConnectionError wraps transport and RPC failures so callers can classify
// connectivity problems with errors.As instead of matching message text.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("chain connection: %s: %v", e.Op, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// ReconnectError reports that re-establishing the node connection failed
// after the client's own attempts were exhausted.
type ReconnectError struct {
	Attempts int
	Err      error
}

func (e *ReconnectError) Error() string {
	return fmt.Sprintf("chain reconnect failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *ReconnectError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err is (or wraps) a connectivity failure.
func IsConnectionError(err error) bool {
	var ce *ConnectionError
	var re *ReconnectError
	return errors.As(err, &ce) || errors.As(err, &re)
}

func connErr(op string, err error) error {
	return &ConnectionError{Op: op, Err: err}
}
