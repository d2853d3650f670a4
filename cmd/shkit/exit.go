package shkit

import "fmt"

// ExitError carries the status a command wants the process to exit with.
// main turns it into os.Exit without printing anything.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// exitWith returns nil for status 0 and an *ExitError otherwise
func exitWith(code int) error {
	if code == 0 {
		return nil
	}
	return &ExitError{Code: code}
}
