package command

import "fmt"

// NotFoundError indicates no registered command matches the trigger or id.
type NotFoundError struct {
	Key string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("command not found: %s", e.Key)
}

// ExecError wraps a failure raised by a command action, including recovered
// panics.
type ExecError struct {
	ID    string
	Cause error
}

func (e ExecError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.ID, e.Cause)
}

func (e ExecError) Unwrap() error { return e.Cause }
