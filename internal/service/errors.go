package service

import "fmt"

// ConnectionError reports a failure to reach the data store.
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connect to data store: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// PersistenceError reports a failure while reading or writing a record,
// including unique-index violations.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
