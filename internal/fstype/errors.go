package fstype

import "fmt"

// LowLevelError reports a failed operating-system query.
// Error returns the system's description of the failure.
type LowLevelError struct {
	Path string
	Err  error
}

func (e *LowLevelError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("statfs %s failed", e.Path)
	}
	return e.Err.Error()
}

func (e *LowLevelError) Unwrap() error {
	return e.Err
}
