package checkout

import "fmt"

// ValidationError rejects the payload before anything is written. It is
// user input, not an incident.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// FatalStoreError means the order header could not be created: there is
// no durable sale to report success for, so the whole checkout fails.
type FatalStoreError struct {
	Err error
}

func (e *FatalStoreError) Error() string {
	return fmt.Sprintf("failed to create order: %v", e.Err)
}

func (e *FatalStoreError) Unwrap() error {
	return e.Err
}
