package output

import "errors"

// Process exit codes:
// 0 = Success
// 1 = User error (bad args, missing fields, not found)
// 2 = System error (I/O, database, model API)
// 3 = Conflict (document or template already exists)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
	ExitConflict    = 3
)

// ExitError is an error that carries an exit code for the CLI.
type ExitError struct {
	Code    int
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *ExitError) Unwrap() error {
	return e.Cause
}

// NewUserError creates an error for user-caused issues (exit code 1):
// bad arguments, unreadable input files, invalid documents.
func NewUserError(message string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: message,
	}
}

// NewSystemError creates an error for system failures (exit code 2):
// storage, template database and model API failures.
func NewSystemError(message string) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
	}
}

// NewSystemErrorWithCause creates a system error wrapping an underlying cause.
func NewSystemErrorWithCause(message string, cause error) *ExitError {
	return &ExitError{
		Code:    ExitSystemError,
		Message: message,
		Cause:   cause,
	}
}

// NewConflictError creates an error for conflict situations (exit code 3).
func NewConflictError(message string) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: message,
	}
}

// Sentinels carried as the cause of folio's lookup and save errors, so
// callers can branch with errors.Is regardless of the message.
var (
	ErrNotFound = errors.New("not found")
	ErrExists   = errors.New("already exists")
)

// NewNotFoundError reports a missing document or template, named by what
// ("Resume", "document", "template"). Exit code 1; matches ErrNotFound.
func NewNotFoundError(what, id string) *ExitError {
	return &ExitError{
		Code:    ExitUserError,
		Message: what + " not found: " + id,
		Cause:   ErrNotFound,
	}
}

// NewExistsError reports a save that would overwrite an existing document
// or template. Exit code 3; matches ErrExists.
func NewExistsError(what, id string) *ExitError {
	return &ExitError{
		Code:    ExitConflict,
		Message: what + " already exists: " + id,
		Cause:   ErrExists,
	}
}

// WrapUserError reports err as a user error (exit code 1) with err's
// message, keeping err as the cause. A nil err returns nil.
func WrapUserError(err error) error {
	if err == nil {
		return nil
	}
	return &ExitError{
		Code:    ExitUserError,
		Message: err.Error(),
		Cause:   err,
	}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil, ExitUserError for non-ExitError errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	// Default to user error for untyped errors
	return ExitUserError
}
