// Package errors provides the error types shared by the batch engine.
// Use errors.Is() and errors.As() to check for specific conditions.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure conditions
var (
	// ErrUnsupportedOperation indicates that no builder is registered for an operation
	ErrUnsupportedOperation = errors.New("unsupported operation")

	// ErrCredentialNotFound indicates that a named credential record is missing
	ErrCredentialNotFound = errors.New("credential not found")

	// ErrCredentialInvalid indicates that a credential record is malformed
	ErrCredentialInvalid = errors.New("credential is invalid")

	// ErrMissingParameter indicates that a required operation parameter is absent
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrOutputLimit indicates that captured output exceeded the buffer ceiling
	ErrOutputLimit = errors.New("captured output exceeded limit")
)

// OperationError represents an error that occurred during a git operation
type OperationError struct {
	Op  string // The operation being performed
	Err error  // The underlying error
}

// Error implements the error interface
func (e *OperationError) Error() string {
	if e.Err == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *OperationError) Unwrap() error {
	return e.Err
}

// New creates a new OperationError
func New(op string, err error) *OperationError {
	return &OperationError{
		Op:  op,
		Err: err,
	}
}

// Is implements error matching for OperationError
func (e *OperationError) Is(target error) bool {
	t, ok := target.(*OperationError)
	if !ok {
		return false
	}
	return e.Op == t.Op
}

// CommandError represents a failed external command execution.
// Stdout and Stderr hold whatever was captured before the failure;
// both are empty when output was discarded.
type CommandError struct {
	Line   string // the shell command line that was executed
	Stdout string
	Stderr string
	Err    error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	msg := fmt.Sprintf("command failed: %s", e.Line)
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommand creates a new CommandError
func NewCommand(line, stdout, stderr string, err error) *CommandError {
	return &CommandError{
		Line:   line,
		Stdout: stdout,
		Stderr: stderr,
		Err:    err,
	}
}

// ItemError annotates an error with the zero-based index of the batch
// item it belongs to.
type ItemError struct {
	Index int
	Err   error
}

// Error implements the error interface
func (e *ItemError) Error() string {
	return fmt.Sprintf("item %d: %v", e.Index, e.Err)
}

// Unwrap returns the underlying error
func (e *ItemError) Unwrap() error {
	return e.Err
}

// NewItem wraps err with the index of the failing batch item
func NewItem(index int, err error) *ItemError {
	return &ItemError{Index: index, Err: err}
}
