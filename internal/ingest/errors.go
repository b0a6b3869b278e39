package ingest

import "fmt"

// FetchError wraps a failure to assemble a block record for one height.
type FetchError struct {
	Height uint64
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch block %d: %v", e.Height, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
