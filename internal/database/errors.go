package database

import "fmt"

// StoreInitError is returned when the backing store cannot be opened or its
// schema cannot be brought up to date.
type StoreInitError struct {
	Dialect string
	Err     error
}

func (e *StoreInitError) Error() string {
	return fmt.Sprintf("error initializing %s store: %v", e.Dialect, e.Err)
}

func (e *StoreInitError) Unwrap() error {
	return e.Err
}

// StoreWriteError is returned when a record cannot be inserted.
type StoreWriteError struct {
	Op  string
	Err error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("error during %s: %v", e.Op, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
