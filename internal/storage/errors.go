package storage

import "fmt"

// StorageError wraps a durable read or write failure. Read failures are
// treated as recoverable by callers (they fall back to defaults); write
// failures are surfaced as warnings without discarding the in-memory state.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("storage %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
