package cmd

import "fmt"

// ExitCodeError carries a process exit code through the command chain so
// main can exit with the code of a failed alias execution instead of 1.
type ExitCodeError struct {
	Code int
}

// NewExitCodeError returns an ExitCodeError with the given code.
func NewExitCodeError(code int) *ExitCodeError {
	return &ExitCodeError{Code: code}
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
