package cmd

import "fmt"

// ExitError is returned by commands that need a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

// NewExitError creates an ExitError.
func NewExitError(code int, msg string) *ExitError {
	return &ExitError{Code: code, Message: msg}
}

func (e *ExitError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Message
}
